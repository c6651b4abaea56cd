package textmod

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	moderationMocks "github.com/NeuralTrust/TrustPost/pkg/domain/moderation/mocks"
	"github.com/NeuralTrust/TrustPost/pkg/infra/providers"
	factoryMocks "github.com/NeuralTrust/TrustPost/pkg/infra/providers/factory/mocks"
	providerMocks "github.com/NeuralTrust/TrustPost/pkg/infra/providers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Provider:      "openai",
		Model:         "gpt-4o-mini",
		Timeout:       time.Second,
		MinTextLength: 3,
		Thresholds:    moderation.Thresholds{ReviewLow: 0.3, Reject: 0.6},
		Pricing:       map[string]Price{"gpt-4o-mini": {Prompt: 0.15, Completion: 0.6}},
	}
}

type engineFixture struct {
	engine      Engine
	locator     *factoryMocks.ProviderLocator
	client      *providerMocks.Client
	invocations *moderationMocks.InvocationRepository
}

func newFixture(t *testing.T, blocklist map[string][]string) *engineFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	locator := factoryMocks.NewProviderLocator(t)
	client := providerMocks.NewClient(t)
	invocations := moderationMocks.NewInvocationRepository(t)
	rules, _ := NewRules(blocklist)

	return &engineFixture{
		engine:      NewEngine(testConfig(), locator, rules, invocations, logger),
		locator:     locator,
		client:      client,
		invocations: invocations,
	}
}

func (f *engineFixture) respond(body string, err error) {
	f.locator.EXPECT().Get("openai").Return(f.client, nil)
	var resp *providers.CompletionResponse
	if err == nil {
		resp = &providers.CompletionResponse{
			ID:       "resp-1",
			Model:    "gpt-4o-mini",
			Response: body,
			Usage:    providers.NewUsage(1000, 100),
		}
	}
	f.client.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).Return(resp, err)
}

func (f *engineFixture) expectInvocation(check func(inv *moderation.Invocation)) {
	f.invocations.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, inv *moderation.Invocation) {
			if check != nil {
				check(inv)
			}
		}).
		Return(nil)
}

func TestModerate_ShortTextSkipsProvider(t *testing.T) {
	for _, text := range []string{"", "  ", "ok", " hi "} {
		f := newFixture(t, nil)
		f.expectInvocation(func(inv *moderation.Invocation) {
			assert.Equal(t, string(moderation.SourceShortCircuit), inv.Source)
			assert.Empty(t, inv.Provider)
		})

		res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: text, ContentType: moderation.ContentTypeComment})
		require.NoError(t, err)
		assert.Equal(t, moderation.DecisionApproved, res.Decision)
		assert.Equal(t, 1.0, res.Confidence)
		assert.Equal(t, moderation.SourceShortCircuit, res.Source)
		f.locator.AssertNotCalled(t, "Get", mock.Anything)
	}
}

func TestModerate_ApprovedByAI(t *testing.T) {
	f := newFixture(t, nil)
	f.respond(`{"approved":true,"flagged_categories":[],"category_scores":{"spam":0.1}}`, nil)
	f.expectInvocation(func(inv *moderation.Invocation) {
		assert.Equal(t, int64(1000), inv.PromptTokens)
		assert.InDelta(t, 0.15+0.06, inv.CostUSD, 1e-9)
	})

	res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: "a friendly post", ContentType: moderation.ContentTypePost})
	require.NoError(t, err)
	assert.Equal(t, moderation.DecisionApproved, res.Decision)
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
	assert.Equal(t, moderation.SourceAI, res.Source)
	require.NotNil(t, res.Usage)
	assert.Equal(t, "gpt-4o-mini", res.Usage.Model)
}

func TestModerate_EscalationBands(t *testing.T) {
	tests := []struct {
		name     string
		score    string
		decision moderation.Decision
	}{
		{"needs review inside band", "0.5", moderation.DecisionNeedsReview},
		{"review low is inclusive", "0.3", moderation.DecisionNeedsReview},
		{"reject threshold is inclusive", "0.6", moderation.DecisionRejected},
		{"high score rejects", "0.95", moderation.DecisionRejected},
		{"below band approves", "0.2", moderation.DecisionApproved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.respond(`{"approved":false,"flagged_categories":["harassment"],"category_scores":{"harassment":`+tt.score+`}}`, nil)
			f.expectInvocation(nil)

			res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: "borderline remark here"})
			require.NoError(t, err)
			assert.Equal(t, tt.decision, res.Decision)
		})
	}
}

func TestModerate_ProviderErrorFallsBackToRules(t *testing.T) {
	blocklist := map[string][]string{"hate_speech": {"slurword"}}
	text := "this contains slurword in it"

	f := newFixture(t, blocklist)
	f.respond("", errors.New("connection refused"))
	f.expectInvocation(func(inv *moderation.Invocation) {
		assert.Equal(t, string(moderation.SourceRules), inv.Source)
		assert.Contains(t, inv.Error, "connection refused")
	})

	res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: text, ContentType: moderation.ContentTypePost})
	require.NoError(t, err)

	rules, _ := NewRules(blocklist)
	assert.Equal(t, rules.Evaluate(text), res)
	assert.Equal(t, moderation.DecisionRejected, res.Decision)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Equal(t, []moderation.Category{moderation.CategoryHateSpeech}, res.Categories)
}

func TestModerate_UnparseableResponseFallsBack(t *testing.T) {
	f := newFixture(t, nil)
	f.respond("I'm sorry, I can't classify that.", nil)
	f.expectInvocation(nil)

	res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: "a perfectly normal post"})
	require.NoError(t, err)
	assert.Equal(t, moderation.SourceRules, res.Source)
	assert.Equal(t, moderation.DecisionApproved, res.Decision)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestModerate_UnknownProviderFallsBack(t *testing.T) {
	f := newFixture(t, nil)
	f.locator.EXPECT().Get("openai").Return(nil, errors.New("unknown provider"))
	f.expectInvocation(nil)

	res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: "hello there friends"})
	require.NoError(t, err)
	assert.Equal(t, moderation.SourceRules, res.Source)
}

func TestModerate_InvocationSaveErrorIsNotFatal(t *testing.T) {
	f := newFixture(t, nil)
	f.respond(`{"approved":true,"category_scores":{}}`, nil)
	f.invocations.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))

	res, err := f.engine.Moderate(context.Background(), moderation.Request{Text: "hello there friends"})
	require.NoError(t, err)
	assert.Equal(t, moderation.DecisionApproved, res.Decision)
}

func TestModerate_CancelledContext(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.engine.Moderate(ctx, moderation.Request{Text: "anything at all"})
	assert.ErrorIs(t, err, context.Canceled)
}
