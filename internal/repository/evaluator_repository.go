package repository

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/config"
	"golang-trade-pilot/pkg/logger"
)

// EvaluatorRepository talks to the external plan evaluator.
// Its outputs are taken verbatim; nothing here recomputes a score or a condition.
type EvaluatorRepository interface {
	Evaluate(ctx context.Context, stockCode string) (*dto.EvaluationResult, error)
	EvaluateConditions(ctx context.Context, req dto.ConditionEvaluationRequest) (*dto.ConditionEvaluationResult, error)
}

type evaluatorRepository struct {
	client *jsonClient
}

func NewEvaluatorRepository(cfg config.Evaluator, log *logger.Logger) EvaluatorRepository {
	return &evaluatorRepository{
		client: newJSONClient("evaluator", strings.TrimRight(cfg.BaseURL, "/"), cfg.MaxRequestPerMinute, cfg.Timeout, log),
	}
}

func (r *evaluatorRepository) Evaluate(ctx context.Context, stockCode string) (*dto.EvaluationResult, error) {
	var result dto.EvaluationResult
	if err := r.client.do(ctx, http.MethodGet, "/evaluate/"+url.PathEscape(stockCode), nil, &result); err != nil {
		return nil, unavailable(ctx, err, "evaluation for %s", stockCode)
	}
	if result.StockCode == "" {
		result.StockCode = stockCode
	}
	return &result, nil
}

func (r *evaluatorRepository) EvaluateConditions(ctx context.Context, req dto.ConditionEvaluationRequest) (*dto.ConditionEvaluationResult, error) {
	var result dto.ConditionEvaluationResult
	if err := r.client.do(ctx, http.MethodPost, "/conditions", req, &result); err != nil {
		return nil, unavailable(ctx, err, "condition verdicts for %s", req.StockCode)
	}
	if result.StopLoss == nil {
		result.StopLoss = map[string]bool{}
	}
	if result.TakeProfit == nil {
		result.TakeProfit = map[string]bool{}
	}
	return &result, nil
}
