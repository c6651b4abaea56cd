package mediasafety

import (
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/infra/imageclassifier"
)

type Label string

const (
	LabelDrawing Label = "drawing"
	LabelHentai  Label = "hentai"
	LabelNeutral Label = "neutral"
	LabelPorn    Label = "porn"
	LabelSexy    Label = "sexy"
	LabelUnknown Label = "unknown"
)

var labelAliases = map[string]Label{
	"drawing":     LabelDrawing,
	"drawings":    LabelDrawing,
	"hentai":      LabelHentai,
	"neutral":     LabelNeutral,
	"safe":        LabelNeutral,
	"porn":        LabelPorn,
	"pornography": LabelPorn,
	"explicit":    LabelPorn,
	"nsfw":        LabelPorn,
	"sexy":        LabelSexy,
	"suggestive":  LabelSexy,
}

func NormalizeLabel(vendor string) Label {
	if l, ok := labelAliases[strings.ToLower(strings.TrimSpace(vendor))]; ok {
		return l
	}
	return LabelUnknown
}

func (l Label) Unsafe() bool {
	return l == LabelPorn || l == LabelHentai || l == LabelSexy
}

// ModelScores is a classifier output folded onto the fixed label set.
type ModelScores struct {
	PornScore      float64
	SexyScore      float64
	TopLabel       Label
	TopProbability float64
	// Unknown holds vendor labels outside the mapping. Their probability is
	// kept under LabelUnknown.
	Unknown []string
}

// Summarize sums probabilities per normalized label and picks the top one.
func Summarize(preds []imageclassifier.Prediction) ModelScores {
	sums := make(map[Label]float64, len(preds))
	var out ModelScores
	for _, p := range preds {
		l := NormalizeLabel(p.Label)
		if l == LabelUnknown {
			out.Unknown = append(out.Unknown, p.Label)
		}
		sums[l] += p.Probability
	}
	out.PornScore = sums[LabelPorn]
	out.SexyScore = sums[LabelSexy]

	for _, l := range []Label{LabelPorn, LabelHentai, LabelSexy, LabelDrawing, LabelNeutral, LabelUnknown} {
		if p, ok := sums[l]; ok && p > out.TopProbability {
			out.TopLabel = l
			out.TopProbability = p
		}
	}
	return out
}

type ModelThresholds struct {
	Porn     float64
	Sexy     float64
	TopLabel float64
}

var DefaultModelThresholds = ModelThresholds{Porn: 0.6, Sexy: 0.8, TopLabel: 0.8}

// Flag reports whether the scores flag the frame and why.
func (t ModelThresholds) Flag(s ModelScores) (bool, string) {
	switch {
	case s.PornScore >= t.Porn:
		return true, "model_porn"
	case s.SexyScore >= t.Sexy:
		return true, "model_sexy"
	case s.TopProbability >= t.TopLabel && s.TopLabel.Unsafe():
		return true, "model_top_" + string(s.TopLabel)
	default:
		return false, ""
	}
}
