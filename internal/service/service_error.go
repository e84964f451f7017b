package service

import "op-mental-be/internal/pkg/serverutils"

var (
	ErrSessionNotFound = serverutils.NewApiError(404, "Session not found.")
	ErrSessionComplete = serverutils.NewApiError(400, "This session is complete.")
)
