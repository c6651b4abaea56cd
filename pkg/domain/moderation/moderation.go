package moderation

import (
	"strings"
	"time"
)

type Decision string

const (
	DecisionApproved    Decision = "approved"
	DecisionRejected    Decision = "rejected"
	DecisionNeedsReview Decision = "needs_review"
)

type Category string

const (
	CategoryHarassment     Category = "harassment"
	CategoryHateSpeech     Category = "hate_speech"
	CategoryViolence       Category = "violence"
	CategorySexualContent  Category = "sexual_content"
	CategorySelfHarm       Category = "self_harm"
	CategorySpam           Category = "spam"
	CategoryMisinformation Category = "misinformation"
	CategoryPersonalInfo   Category = "personal_info"
)

// Categories is the taxonomy in its canonical order.
var Categories = []Category{
	CategoryHarassment,
	CategoryHateSpeech,
	CategoryViolence,
	CategorySexualContent,
	CategorySelfHarm,
	CategorySpam,
	CategoryMisinformation,
	CategoryPersonalInfo,
}

var categoryAliases = map[string]Category{
	"harassment":             CategoryHarassment,
	"harassment/threatening": CategoryHarassment,
	"bullying":               CategoryHarassment,
	"hate":                   CategoryHateSpeech,
	"hate_speech":            CategoryHateSpeech,
	"hate/threatening":       CategoryHateSpeech,
	"violence":               CategoryViolence,
	"violence/graphic":       CategoryViolence,
	"threat":                 CategoryViolence,
	"sexual":                 CategorySexualContent,
	"sexual_content":         CategorySexualContent,
	"sexual/minors":          CategorySexualContent,
	"self_harm":              CategorySelfHarm,
	"self-harm":              CategorySelfHarm,
	"spam":                   CategorySpam,
	"scam":                   CategorySpam,
	"misinformation":         CategoryMisinformation,
	"disinformation":         CategoryMisinformation,
	"personal_info":          CategoryPersonalInfo,
	"pii":                    CategoryPersonalInfo,
	"doxxing":                CategoryPersonalInfo,
}

// ParseCategory maps a vendor category name onto the taxonomy.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
	ContentTypeTitle   ContentType = "title"
)

type Source string

const (
	SourceAI           Source = "ai"
	SourceRules        Source = "rules"
	SourceShortCircuit Source = "short_circuit"
)

type Request struct {
	Text        string
	ContentType ContentType
	AuthorID    string
}

type Usage struct {
	Provider         string
	Model            string
	PromptTokens     int64
	CompletionTokens int64
	CostUSD          float64
	Latency          time.Duration
}

type Result struct {
	Decision   Decision             `json:"decision"`
	Categories []Category           `json:"categories"`
	Scores     map[Category]float64 `json:"scores"`
	Confidence float64              `json:"confidence"`
	Reasoning  string               `json:"reasoning,omitempty"`
	Source     Source               `json:"source"`
	Usage      *Usage               `json:"-"`
}

func (r *Result) Approved() bool {
	return r.Decision == DecisionApproved
}

// Thresholds are the escalation bands applied to AI results.
type Thresholds struct {
	ReviewLow float64
	Reject    float64
}

// Decide maps a confidence in the not-approved direction onto a decision.
func (t Thresholds) Decide(confidence float64) Decision {
	switch {
	case confidence >= t.Reject:
		return DecisionRejected
	case confidence >= t.ReviewLow:
		return DecisionNeedsReview
	default:
		return DecisionApproved
	}
}
