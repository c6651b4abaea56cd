package textmod

import (
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cafe", normalize("  CAFÉ "))
	assert.Equal(t, "idiot", normalize("1d10t"))
	assert.Equal(t, "a b", normalize("a \n\t b"))
	assert.Equal(t, "meet at 5", normalize("Meet at 5"))
	assert.Equal(t, "room 101, save 4 u", normalize("room 101, $ave 4 u"))
}

func TestRules_NumbersAreNotReadAsLetters(t *testing.T) {
	r, _ := NewRules(map[string][]string{"spam": {"ass"}})

	assert.Equal(t, moderation.DecisionApproved, r.Evaluate("I scored 455 points").Decision)
	assert.Equal(t, moderation.DecisionRejected, r.Evaluate("what an 4ss").Decision)
}

func TestRules_NoMatchApproves(t *testing.T) {
	r, _ := NewRules(nil)
	res := r.Evaluate("What a lovely sunset over the harbour today")

	assert.Equal(t, moderation.DecisionApproved, res.Decision)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, moderation.SourceRules, res.Source)
	assert.Empty(t, res.Categories)
}

func TestRules_BlocklistTermRejects(t *testing.T) {
	r, unknown := NewRules(map[string][]string{
		"hate":      {"slurword"},
		"not_a_cat": {"x"},
	})
	assert.Equal(t, []string{"not_a_cat"}, unknown)

	res := r.Evaluate("you are a SLÜRWORD honestly")
	assert.Equal(t, moderation.DecisionRejected, res.Decision)
	assert.Equal(t, RulesConfidence, res.Confidence)
	assert.Equal(t, []moderation.Category{moderation.CategoryHateSpeech}, res.Categories)
	assert.Equal(t, RulesConfidence, res.Scores[moderation.CategoryHateSpeech])
}

func TestRules_BlocklistMatchesWholeWordsOnly(t *testing.T) {
	r, _ := NewRules(map[string][]string{"spam": {"ass"}})
	res := r.Evaluate("a classic passage")
	assert.Equal(t, moderation.DecisionApproved, res.Decision)
}

func TestRules_BuiltinPatterns(t *testing.T) {
	r, _ := NewRules(nil)

	tests := []struct {
		name string
		text string
		want moderation.Category
	}{
		{"self harm", "just kys already", moderation.CategorySelfHarm},
		{"leet harassment", "you are an 1d10t", moderation.CategoryHarassment},
		{"ssn", "my number is 123-45-6789", moderation.CategoryPersonalInfo},
		{"email", "mail me at someone@example.com", moderation.CategoryPersonalInfo},
		{"spam", "CLICK HERE for free money", moderation.CategorySpam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Evaluate(tt.text)
			require.Equal(t, moderation.DecisionRejected, res.Decision)
			assert.Contains(t, res.Categories, tt.want)
		})
	}
}

func TestRules_Deterministic(t *testing.T) {
	r, _ := NewRules(map[string][]string{"harassment": {"loser"}})
	first := r.Evaluate("such a loser, call 555 123 4567")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Evaluate("such a loser, call 555 123 4567"))
	}
}

func TestRules_NeverEscalates(t *testing.T) {
	r, _ := NewRules(map[string][]string{"violence": {"stab"}})
	for _, text := range []string{"i will stab", "nice day", ""} {
		res := r.Evaluate(text)
		assert.NotEqual(t, moderation.DecisionNeedsReview, res.Decision)
	}
}
