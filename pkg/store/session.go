// Package store defines the session values persisted between turns.
// The flat History is the source of truth; embedding indexes are
// rebuilt from it on rehydration, never persisted.
package store

import (
	"op-mental-be/pkg/dialogue"
	"op-mental-be/pkg/rag/memory"
)

// ChatSession is the unstructured general-support conversation.
type ChatSession struct {
	ID       string        `json:"id"`
	UserID   string        `json:"user_id"`
	AgeGroup string        `json:"age_group"` // "youth" | "adult" | "masters"
	History  []memory.Turn `json:"history"`
}

// TherapySession runs the five-phase internal challenge persona.
type TherapySession struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ChallengeType string          `json:"challenge_type"`
	State         *dialogue.State `json:"state"`
	History       []memory.Turn   `json:"history"`
	LastQuestion  string          `json:"last_question"`
}

// MindsetSession runs the four-step mindset persona.
type MindsetSession struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	State        *dialogue.State `json:"state"`
	History      []memory.Turn   `json:"history"`
	LastQuestion string          `json:"last_question"`
}

// JournalSession runs the five-layer journaling persona.
type JournalSession struct {
	ID      string                 `json:"id"`
	UserID  string                 `json:"user_id"`
	State   *dialogue.JournalState `json:"state"`
	History []memory.Turn          `json:"history"`
}
