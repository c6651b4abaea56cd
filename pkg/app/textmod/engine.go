package textmod

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMinTextLength = 3
	defaultTimeout       = 10 * time.Second
	breakerTimeout       = 30 * time.Second
	breakerFailures      = 5
)

type Price struct {
	Prompt     float64
	Completion float64
}

type Config struct {
	Provider      string
	Model         string
	MaxTokens     int
	Temperature   float64
	Timeout       time.Duration
	MinTextLength int
	Thresholds    moderation.Thresholds
	Credentials   providers.Credentials
	// Pricing is USD per 1k tokens keyed by model.
	Pricing map[string]Price
}

//go:generate mockery --name=Engine --dir=. --output=./mocks --filename=engine_mock.go --case=underscore --with-expecter
type Engine interface {
	Moderate(ctx context.Context, req moderation.Request) (*moderation.Result, error)
}

type engine struct {
	cfg         Config
	locator     factory.ProviderLocator
	rules       *Rules
	invocations moderation.InvocationRepository
	breaker     httpx.CircuitBreaker
	logger      *logrus.Logger
}

func NewEngine(
	cfg Config,
	locator factory.ProviderLocator,
	rules *Rules,
	invocations moderation.InvocationRepository,
	logger *logrus.Logger,
) Engine {
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = DefaultMinTextLength
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &engine{
		cfg:         cfg,
		locator:     locator,
		rules:       rules,
		invocations: invocations,
		breaker:     httpx.NewCircuitBreaker("text-moderation-"+cfg.Provider, breakerTimeout, breakerFailures, logger),
		logger:      logger,
	}
}

// Moderate classifies one piece of text. Provider failures are absorbed by
// the rules fallback; only a cancelled context is returned as an error.
func (e *engine) Moderate(ctx context.Context, req moderation.Request) (*moderation.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) < e.cfg.MinTextLength {
		result := &moderation.Result{
			Decision:   moderation.DecisionApproved,
			Categories: []moderation.Category{},
			Scores:     map[moderation.Category]float64{},
			Confidence: 1.0,
			Source:     moderation.SourceShortCircuit,
		}
		e.finish(ctx, req, result, start, nil)
		return result, nil
	}

	result, aiErr := e.classify(ctx, req, text)
	if aiErr != nil {
		reason := "error"
		switch {
		case httpx.IsOpen(aiErr):
			reason = "circuit_open"
		case errors.Is(aiErr, context.DeadlineExceeded):
			reason = "timeout"
		case errors.Is(aiErr, errEmptyResponse), errors.Is(aiErr, errUnparseable):
			reason = "unparseable"
		}
		prometheus.ProviderFallbacks.WithLabelValues(e.cfg.Provider, reason).Inc()
		e.logger.WithError(aiErr).WithFields(logrus.Fields{
			"provider":     e.cfg.Provider,
			"content_type": req.ContentType,
			"reason":       reason,
		}).Warn("text classifier failed, using rules fallback")
		result = e.rules.Evaluate(text)
	}

	e.finish(ctx, req, result, start, aiErr)
	return result, nil
}

func (e *engine) classify(ctx context.Context, req moderation.Request, text string) (*moderation.Result, error) {
	client, err := e.locator.Get(e.cfg.Provider)
	if err != nil {
		return nil, &moderation.ProviderError{Provider: e.cfg.Provider, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	var resp *providers.CompletionResponse
	callStart := time.Now()
	err = e.breaker.Execute(func() error {
		var askErr error
		resp, askErr = client.Ask(callCtx, &providers.Config{
			Credentials:  e.cfg.Credentials,
			Model:        e.cfg.Model,
			MaxTokens:    e.cfg.MaxTokens,
			Temperature:  e.cfg.Temperature,
			SystemPrompt: systemPrompt(req.ContentType),
			Instructions: instructions,
			JSONResponse: true,
		}, text)
		return askErr
	})
	latency := time.Since(callStart)
	if err != nil {
		return nil, &moderation.ProviderError{Provider: e.cfg.Provider, Err: err}
	}
	if resp == nil {
		return nil, &moderation.ProviderError{Provider: e.cfg.Provider, Err: errEmptyResponse}
	}

	v, err := parseVerdict(resp.Response)
	if err != nil {
		return nil, &moderation.ProviderError{Provider: e.cfg.Provider, Err: err}
	}
	if len(v.unknown) > 0 {
		e.logger.WithField("labels", v.unknown).Debug("classifier returned categories outside the taxonomy")
	}

	result := e.decide(v)
	model := resp.Model
	if model == "" {
		model = e.cfg.Model
	}
	result.Usage = &moderation.Usage{
		Provider:         e.cfg.Provider,
		Model:            model,
		PromptTokens:     int64(resp.Usage.PromptTokens),
		CompletionTokens: int64(resp.Usage.CompletionTokens),
		CostUSD:          e.cost(model, resp.Usage),
		Latency:          latency,
	}
	return result, nil
}

// decide applies the confidence bands. confidence is the certainty of the
// direction the classifier chose.
func (e *engine) decide(v *verdict) *moderation.Result {
	maxScore := v.maxScore()
	result := &moderation.Result{
		Categories: v.categories,
		Scores:     v.scores,
		Reasoning:  v.reasoning,
		Source:     moderation.SourceAI,
	}
	if result.Categories == nil {
		result.Categories = []moderation.Category{}
	}
	if v.approved {
		result.Decision = moderation.DecisionApproved
		result.Confidence = 1 - maxScore
		return result
	}
	result.Confidence = maxScore
	result.Decision = e.cfg.Thresholds.Decide(maxScore)
	if result.Decision == moderation.DecisionApproved {
		result.Confidence = 1 - maxScore
	}
	return result
}

func (e *engine) cost(model string, usage providers.Usage) float64 {
	price, ok := e.cfg.Pricing[model]
	if !ok {
		return 0
	}
	return float64(usage.PromptTokens)/1000*price.Prompt +
		float64(usage.CompletionTokens)/1000*price.Completion
}

func (e *engine) finish(
	ctx context.Context,
	req moderation.Request,
	result *moderation.Result,
	start time.Time,
	aiErr error,
) {
	elapsed := time.Since(start)
	provider := ""
	if result.Source != moderation.SourceShortCircuit {
		provider = e.cfg.Provider
	}

	inv := &moderation.Invocation{
		AuthorID:    req.AuthorID,
		ContentType: string(req.ContentType),
		Source:      string(result.Source),
		Provider:    provider,
		Decision:    string(result.Decision),
		LatencyMs:   elapsed.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if u := result.Usage; u != nil {
		inv.Model = u.Model
		inv.PromptTokens = u.PromptTokens
		inv.CompletionTokens = u.CompletionTokens
		inv.CostUSD = u.CostUSD

		prometheus.ModerationTokens.WithLabelValues(u.Provider, u.Model, "prompt").Add(float64(u.PromptTokens))
		prometheus.ModerationTokens.WithLabelValues(u.Provider, u.Model, "completion").Add(float64(u.CompletionTokens))
		prometheus.ModerationCost.WithLabelValues(u.Provider, u.Model).Add(u.CostUSD)
	}
	if aiErr != nil {
		inv.Error = truncate(aiErr.Error(), 1024)
	}

	prometheus.ModerationDecisions.WithLabelValues(string(req.ContentType), string(result.Source), string(result.Decision)).Inc()
	prometheus.ModerationLatency.WithLabelValues(provider, string(result.Source)).Observe(float64(elapsed.Milliseconds()))

	e.logger.WithFields(logrus.Fields{
		"author_id":    req.AuthorID,
		"content_type": req.ContentType,
		"source":       result.Source,
		"decision":     result.Decision,
		"confidence":   fmt.Sprintf("%.3f", result.Confidence),
		"categories":   result.Categories,
		"latency_ms":   elapsed.Milliseconds(),
		"cost_usd":     inv.CostUSD,
	}).Info("text moderated")

	if e.invocations == nil {
		return
	}
	if err := e.invocations.Save(context.WithoutCancel(ctx), inv); err != nil {
		e.logger.WithError(err).Error("failed to save moderation invocation")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
