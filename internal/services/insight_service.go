package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"fincoach/internal/config"
	"fincoach/internal/models"
)

// ErrInsightDisabled is returned when no API key is configured
var ErrInsightDisabled = errors.New("insight service disabled")

const (
	spendingInsightPrompt = "당신은 개인 금융 코치입니다. 주어진 소비 분석과 절약 플랜 데이터를 바탕으로 " +
		"사용자의 소비 습관에 대한 핵심 인사이트를 3문장 이내의 한국어로 요약하세요. " +
		"숫자는 데이터에 있는 값만 사용하고 새로운 수치를 만들어내지 마세요."

	recommendationInsightPrompt = "당신은 금융상품 상담사입니다. 주어진 추천 결과를 바탕으로 " +
		"추천 상품 구성의 핵심 포인트를 3문장 이내의 한국어로 요약하세요. " +
		"데이터에 없는 상품이나 수치를 언급하지 마세요."
)

type insightService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	metrics MetricsRecorderInterface
}

// NewInsightService creates the optional LLM elaboration service. With
// an empty API key the service stays disabled and every call returns
// ErrInsightDisabled.
func NewInsightService(cfg config.OpenAIConfig, metrics MetricsRecorderInterface) InsightServiceInterface {
	s := &insightService{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		metrics: metrics,
	}
	if cfg.APIKey != "" {
		s.client = openai.NewClient(cfg.APIKey)
	}
	return s
}

func (s *insightService) Enabled() bool {
	return s.client != nil
}

// SpendingInsight narrates a computed analysis. The structured result is
// final before this runs; a failure here never changes it.
func (s *insightService) SpendingInsight(ctx context.Context, analysis models.SpendingAnalysis, plans models.SavingPlans) (string, error) {
	payload := struct {
		Analysis models.SpendingAnalysis `json:"analysis"`
		Plans    models.SavingPlans      `json:"saving_plans"`
	}{analysis, plans}
	return s.complete(ctx, spendingInsightPrompt, payload)
}

// RecommendationInsight narrates a computed recommendation result
func (s *insightService) RecommendationInsight(ctx context.Context, result models.RecommendationResult) (string, error) {
	return s.complete(ctx, recommendationInsightPrompt, result)
}

func (s *insightService) complete(ctx context.Context, systemPrompt string, payload any) (string, error) {
	if s.client == nil {
		return "", ErrInsightDisabled
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling insight payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(data)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordInsightRequest("error")
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		if s.metrics != nil {
			s.metrics.RecordInsightRequest("empty")
		}
		return "", errors.New("chat completion returned no choices")
	}

	if s.metrics != nil {
		s.metrics.RecordInsightRequest("success")
	}
	return resp.Choices[0].Message.Content, nil
}
