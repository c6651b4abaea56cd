package textmod

import (
	"regexp"
	"sort"
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
)

const RulesConfidence = 0.9

type pattern struct {
	category moderation.Category
	expr     string
	// leet patterns run over normalized text, the others over folded text
	// so digits survive.
	leet bool
}

var builtinPatterns = []pattern{
	{moderation.CategoryHarassment, `\byou(?:'re| are) (?:an? )?(?:idiot|moron|loser|worthless)\b`, true},
	{moderation.CategoryHarassment, `\bnobody (?:likes|wants) you\b`, true},
	{moderation.CategoryViolence, `\bi(?:'ll| will) (?:kill|shoot|stab|hurt) you\b`, true},
	{moderation.CategoryViolence, `\b(?:bomb|shoot up) the (?:school|office|building)\b`, true},
	{moderation.CategorySelfHarm, `\bkill (?:yourself|urself)\b`, true},
	{moderation.CategorySelfHarm, `\bkys\b`, true},
	{moderation.CategorySpam, `\b(?:buy now|click here|limited offer|free money|work from home)\b`, true},
	{moderation.CategorySpam, `(?:https?://\S+.*){3,}`, false},
	{moderation.CategoryPersonalInfo, `\b\d{3}-\d{2}-\d{4}\b`, false},
	{moderation.CategoryPersonalInfo, `\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`, false},
	{moderation.CategoryPersonalInfo, `\+?\d[\d -]{8,}\d`, false},
}

type rule struct {
	category moderation.Category
	re       *regexp.Regexp
	leet     bool
}

// Rules is the deterministic fallback classifier. It never escalates: any
// match rejects at RulesConfidence.
type Rules struct {
	rules []rule
}

// NewRules compiles the built-in patterns plus blocklist terms keyed by
// category name. Unknown category names are reported in the returned slice.
func NewRules(blocklist map[string][]string) (*Rules, []string) {
	r := &Rules{}
	for _, p := range builtinPatterns {
		r.rules = append(r.rules, rule{category: p.category, re: regexp.MustCompile(p.expr), leet: p.leet})
	}

	var unknown []string
	names := make([]string, 0, len(blocklist))
	for name := range blocklist {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cat, ok := moderation.ParseCategory(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		for _, term := range blocklist[name] {
			t := normalizeTerm(term)
			if t == "" {
				continue
			}
			r.rules = append(r.rules, rule{
				category: cat,
				re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`),
				leet:     true,
			})
		}
	}
	return r, unknown
}

// Evaluate classifies text. The same input always yields the same result.
func (r *Rules) Evaluate(text string) *moderation.Result {
	folded := fold(text)
	leet := unleet(folded)

	matched := make(map[moderation.Category]struct{})
	if folded != "" {
		for _, rl := range r.rules {
			if _, done := matched[rl.category]; done {
				continue
			}
			subject := folded
			if rl.leet {
				subject = leet
			}
			if rl.re.MatchString(subject) {
				matched[rl.category] = struct{}{}
			}
		}
	}

	if len(matched) == 0 {
		return &moderation.Result{
			Decision:   moderation.DecisionApproved,
			Categories: []moderation.Category{},
			Scores:     map[moderation.Category]float64{},
			Confidence: 1.0,
			Source:     moderation.SourceRules,
		}
	}

	cats := make([]moderation.Category, 0, len(matched))
	scores := make(map[moderation.Category]float64, len(matched))
	for _, c := range moderation.Categories {
		if _, ok := matched[c]; ok {
			cats = append(cats, c)
			scores[c] = RulesConfidence
		}
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return &moderation.Result{
		Decision:   moderation.DecisionRejected,
		Categories: cats,
		Scores:     scores,
		Confidence: RulesConfidence,
		Reasoning:  "matched rules: " + strings.Join(names, ", "),
		Source:     moderation.SourceRules,
	}
}
