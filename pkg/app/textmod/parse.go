package textmod

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/valyala/fastjson"
)

var (
	errEmptyResponse = errors.New("empty classifier response")
	errUnparseable   = errors.New("unparseable classifier response")
)

type verdict struct {
	approved   bool
	categories []moderation.Category
	scores     map[moderation.Category]float64
	reasoning  string
	unknown    []string
}

// extractJSON drops markdown fences and any prose around the first JSON
// object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func parseVerdict(raw string) (*verdict, error) {
	body := extractJSON(raw)
	if body == "" {
		return nil, errEmptyResponse
	}

	var p fastjson.Parser
	v, err := p.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparseable, err)
	}

	approvedVal := v.Get("approved")
	if approvedVal == nil {
		return nil, fmt.Errorf("%w: missing approved field", errUnparseable)
	}
	out := &verdict{
		scores: make(map[moderation.Category]float64),
	}
	switch approvedVal.Type() {
	case fastjson.TypeTrue:
		out.approved = true
	case fastjson.TypeFalse:
		out.approved = false
	case fastjson.TypeString:
		out.approved = strings.EqualFold(string(approvedVal.GetStringBytes()), "true")
	default:
		return nil, fmt.Errorf("%w: approved has type %s", errUnparseable, approvedVal.Type())
	}

	if obj := v.GetObject("category_scores"); obj != nil {
		obj.Visit(func(key []byte, val *fastjson.Value) {
			cat, ok := moderation.ParseCategory(string(key))
			if !ok {
				out.unknown = append(out.unknown, string(key))
				return
			}
			f, err := val.Float64()
			if err != nil {
				return
			}
			if f = clamp01(f); f > out.scores[cat] {
				out.scores[cat] = f
			}
		})
	}

	seen := make(map[moderation.Category]struct{})
	for _, item := range v.GetArray("flagged_categories") {
		cat, ok := moderation.ParseCategory(string(item.GetStringBytes()))
		if !ok {
			out.unknown = append(out.unknown, string(item.GetStringBytes()))
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out.categories = append(out.categories, cat)
	}

	out.reasoning = string(v.GetStringBytes("reasoning"))
	return out, nil
}

func (v *verdict) maxScore() float64 {
	var max float64
	for _, s := range v.scores {
		if s > max {
			max = s
		}
	}
	return max
}
