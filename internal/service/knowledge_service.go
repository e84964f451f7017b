package service

import (
	"context"

	"op-mental-be/internal/dto"
	"op-mental-be/internal/pkg/logger"
	"op-mental-be/pkg/knowledge"
	"op-mental-be/pkg/vecindex"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IKnowledgeService interface {
	Query(ctx context.Context, req *dto.KnowledgeQueryRequest) ([]*dto.KnowledgeResultResponse, error)
	Reload(ctx context.Context) (*dto.KnowledgeReloadResponse, error)
}

type knowledgeService struct {
	retriever *knowledge.Retriever
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewKnowledgeService(
	retriever *knowledge.Retriever,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		retriever: retriever,
		pubSub:    pubSub,
		logger:    log,
	}
}

func (s *knowledgeService) Query(ctx context.Context, req *dto.KnowledgeQueryRequest) ([]*dto.KnowledgeResultResponse, error) {
	domain := req.Domain
	if domain == "" {
		domain = vecindex.DomainAll
	}
	topK := req.TopK
	if topK <= 0 {
		topK = knowledge.DefaultTopK
	}

	results, err := s.retriever.Retrieve(req.Query, domain, topK)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.KnowledgeResultResponse, 0, len(results))
	for _, r := range results {
		res = append(res, &dto.KnowledgeResultResponse{
			Title:      r.Title,
			Text:       r.Text,
			Domain:     r.Domain,
			Similarity: r.Similarity,
		})
	}
	return res, nil
}

// Reload schedules a corpus rebuild through the reload topic; the
// subscribed reloader swaps the index snapshot.
func (s *knowledgeService) Reload(ctx context.Context) (*dto.KnowledgeReloadResponse, error) {
	if err := knowledge.PublishReload(s.pubSub); err != nil {
		return nil, err
	}
	s.logger.Info("knowledge", "reload scheduled", nil)
	return &dto.KnowledgeReloadResponse{Documents: s.retriever.Len()}, nil
}
