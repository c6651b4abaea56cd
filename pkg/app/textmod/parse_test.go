package textmod

import (
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_PlainJSON(t *testing.T) {
	v, err := parseVerdict(`{"approved":false,"flagged_categories":["hate"],"category_scores":{"hate":0.8,"spam":0.1},"reasoning":"slur"}`)
	require.NoError(t, err)
	assert.False(t, v.approved)
	assert.Equal(t, []moderation.Category{moderation.CategoryHateSpeech}, v.categories)
	assert.Equal(t, 0.8, v.scores[moderation.CategoryHateSpeech])
	assert.Equal(t, 0.8, v.maxScore())
	assert.Equal(t, "slur", v.reasoning)
}

func TestParseVerdict_FencedWithProse(t *testing.T) {
	raw := "```json\n{\"approved\": true, \"flagged_categories\": [], \"category_scores\": {\"spam\": 0.05}}\n```"
	v, err := parseVerdict(raw)
	require.NoError(t, err)
	assert.True(t, v.approved)
	assert.Equal(t, 0.05, v.maxScore())

	v, err = parseVerdict("Sure! Here is the result: {\"approved\": \"false\", \"category_scores\": {}} hope it helps")
	require.NoError(t, err)
	assert.False(t, v.approved)
}

func TestParseVerdict_ClampsAndNormalizes(t *testing.T) {
	v, err := parseVerdict(`{"approved":false,"flagged_categories":["PII","pii","weird"],"category_scores":{"pii":1.7,"violence":-2,"weird":0.9}}`)
	require.NoError(t, err)
	assert.Equal(t, []moderation.Category{moderation.CategoryPersonalInfo}, v.categories)
	assert.Equal(t, 1.0, v.scores[moderation.CategoryPersonalInfo])
	assert.Equal(t, 0.0, v.scores[moderation.CategoryViolence])
	assert.ElementsMatch(t, []string{"weird", "weird"}, v.unknown)
}

func TestParseVerdict_Errors(t *testing.T) {
	_, err := parseVerdict("")
	assert.ErrorIs(t, err, errEmptyResponse)

	_, err = parseVerdict("I can't help with that")
	assert.ErrorIs(t, err, errUnparseable)

	_, err = parseVerdict(`{"flagged_categories":[]}`)
	assert.ErrorIs(t, err, errUnparseable)
}
