package coloranalysis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/r-G7D/color-outfit-app/internal/infra/llm/chatgpt"
	apperrors "github.com/r-G7D/color-outfit-app/pkg/errors"
	"github.com/r-G7D/color-outfit-app/pkg/metrics"
)

// Service exposes the color analysis capability.
type Service interface {
	Analyze(ctx context.Context, req Request) (Result, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg      Config
	client   ChatClient
	validate *validator.Validate
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the color analysis domain.
func NewService(cfg Config, client ChatClient, recorder *metrics.Recorder, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		client:   client,
		validate: newValidator(),
		metrics:  recorder,
		logger:   logger.With("component", "coloranalysis.service"),
		now:      time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, req Request) (Result, error) {
	if err := s.validate.Struct(req); err != nil {
		s.metrics.ObserveAnalysis(apperrors.CodeInvalidInput)
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid analysis request", describeValidation(err))
	}

	completion, err := s.complete(ctx, req)
	if err != nil {
		s.metrics.ObserveAnalysis(apperrors.CodeOf(err))
		return Result{}, err
	}

	usage := metrics.TokenUsage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}
	s.metrics.ObserveTokens(usage)

	if len(completion.Choices) == 0 {
		s.metrics.ObserveAnalysis(apperrors.CodeMalformedResponse)
		return Result{}, apperrors.Wrap(apperrors.CodeMalformedResponse, "chatgpt returned no choices", nil)
	}
	choice := completion.Choices[0]
	s.logger.Debug("chatgpt response received", "finish_reason", choice.FinishReason, "content", choice.Message.Content)

	analysis, err := parseAnalysis(s.validate, choice.Message.Content)
	if err != nil {
		s.metrics.ObserveAnalysis(apperrors.CodeMalformedResponse)
		if choice.FinishReason == "length" {
			s.logger.Warn("chatgpt output truncated by max_tokens", "max_tokens", s.cfg.MaxTokens)
		}
		return Result{}, apperrors.Wrap(apperrors.CodeMalformedResponse, "chatgpt response malformed", err)
	}
	if analysis.SkinTone == "" {
		analysis.SkinTone = req.Color
	}

	s.metrics.ObserveAnalysis("success")
	s.logger.Info("color analysis completed", "season", analysis.Season, "occasions", len(analysis.Outfits), "total_tokens", usage.TotalTokens)
	return Result{Analysis: analysis, Usage: usage}, nil
}

func (s *service) complete(ctx context.Context, req Request) (chatgpt.ChatCompletionResponse, error) {
	start := s.now()
	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:          s.cfg.Model,
		Messages:       BuildMessages(s.cfg.SystemPrompt, req.Color, *req.UserData),
		MaxTokens:      s.cfg.MaxTokens,
		ResponseFormat: chatgpt.JSONObject,
	})
	s.metrics.ObserveUpstream(s.cfg.Model, s.now().Sub(start))
	if err != nil {
		var statusErr *chatgpt.StatusError
		if errors.As(err, &statusErr) {
			return completion, apperrors.Wrap(apperrors.CodeUpstreamStatus, "ChatGPT request failed", err)
		}
		if errors.Is(err, chatgpt.ErrDecode) {
			return completion, apperrors.Wrap(apperrors.CodeMalformedResponse, "chatgpt envelope malformed", err)
		}
		return completion, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "chatgpt call failed", err)
	}
	return completion, nil
}
