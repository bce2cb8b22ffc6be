package service

import (
	"context"
	"fmt"
	"strings"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/logger"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/pkg/ai"
	"legaldocai-be/pkg/kvstore"
)

// IInsightService runs AI summarization and Q&A for pages of the
// active session. Summaries are cached per page number; a failure
// surfaces the fixed fallback text instead of an error, and the
// fallback is never written to the cache.
type IInsightService interface {
	Summarize(ctx context.Context, pageIndex int) (*dto.InsightResponse, error)
	Ask(ctx context.Context, pageIndex int, question string) (*dto.InsightResponse, error)
	ClearSummary(ctx context.Context, pageIndex int) error
}

type insightService struct {
	sessions ISessionService
	provider ai.Provider
	cache    kvstore.Store
	logger   logger.ILogger
}

func NewInsightService(sessions ISessionService, provider ai.Provider, cache kvstore.Store, log logger.ILogger) IInsightService {
	return &insightService{
		sessions: sessions,
		provider: provider,
		cache:    cache,
		logger:   log,
	}
}

func (s *insightService) Summarize(ctx context.Context, pageIndex int) (*dto.InsightResponse, error) {
	page, err := s.page(pageIndex)
	if err != nil {
		return nil, err
	}

	key := summaryCacheKey(page.Page)
	if cached, found := s.cache.Get(ctx, key); found {
		return &dto.InsightResponse{Answer: cached, Cached: true}, nil
	}

	answer, err := s.provider.Answer(ctx, page.Text, "")
	if err != nil {
		s.logger.Error("InsightService", "Summary request failed", map[string]interface{}{
			"page":  page.Page,
			"error": err.Error(),
		})
		return &dto.InsightResponse{Answer: constant.MsgSummaryFailed}, nil
	}
	if answer == "" {
		answer = "No response."
	}

	s.cache.Set(ctx, key, answer)
	return &dto.InsightResponse{Answer: answer}, nil
}

func (s *insightService) Ask(ctx context.Context, pageIndex int, question string) (*dto.InsightResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, serverutils.NewValidationError("Question must not be empty")
	}

	page, err := s.page(pageIndex)
	if err != nil {
		return nil, err
	}

	answer, err := s.provider.Answer(ctx, page.Text, question)
	if err != nil {
		s.logger.Error("InsightService", "Question request failed", map[string]interface{}{
			"page":  page.Page,
			"error": err.Error(),
		})
		return &dto.InsightResponse{Answer: constant.MsgAnswerFailed}, nil
	}
	if answer == "" {
		answer = "No response."
	}
	return &dto.InsightResponse{Answer: answer}, nil
}

func (s *insightService) ClearSummary(ctx context.Context, pageIndex int) error {
	page, err := s.page(pageIndex)
	if err != nil {
		return err
	}
	s.cache.Delete(ctx, summaryCacheKey(page.Page))
	return nil
}

func (s *insightService) page(pageIndex int) (*entity.PageResult, error) {
	session := s.sessions.Active()
	if session == nil || len(session.Results) == 0 {
		return nil, serverutils.NewNotFoundError(constant.MsgNoExtractedData)
	}
	if pageIndex < 0 || pageIndex >= len(session.Results) {
		return nil, serverutils.NewValidationError("Page index out of range")
	}
	page := session.Results[pageIndex]
	return &page, nil
}

func summaryCacheKey(pageNumber int) string {
	return fmt.Sprintf("%s%d", constant.SummaryCacheKeyPrefix, pageNumber)
}
