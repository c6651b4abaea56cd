package mediasafety

import (
	"context"
	"image"

	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/sirupsen/logrus"
)

const DefaultSkinThreshold = 0.35

type AnalyzerConfig struct {
	Bands             SkinBands
	MinPixels         int
	SkinThreshold     float64
	MaxFrameDimension int
	Thresholds        ModelThresholds
}

// Analyzer scores one frame with the skin heuristic and the model.
type Analyzer struct {
	cfg        AnalyzerConfig
	classifier Classifier
	logger     *logrus.Logger
}

func NewAnalyzer(cfg AnalyzerConfig, classifier Classifier, logger *logrus.Logger) *Analyzer {
	if cfg.MaxFrameDimension <= 0 {
		cfg.MaxFrameDimension = DefaultMaxFrameDimension
	}
	if cfg.MinPixels <= 0 {
		cfg.MinPixels = DefaultMinPixels
	}
	if cfg.SkinThreshold <= 0 {
		cfg.SkinThreshold = DefaultSkinThreshold
	}
	if cfg.Bands == (SkinBands{}) {
		cfg.Bands = DefaultSkinBands
	}
	if cfg.Thresholds == (ModelThresholds{}) {
		cfg.Thresholds = DefaultModelThresholds
	}
	return &Analyzer{cfg: cfg, classifier: classifier, logger: logger}
}

func (a *Analyzer) MaxFrameDimension() int {
	return a.cfg.MaxFrameDimension
}

// AnalyzeFrame never fails: a classifier error leaves the frame unflagged by
// the model.
func (a *Analyzer) AnalyzeFrame(ctx context.Context, img image.Image, ratio float64) media.FrameSample {
	frame := Downscale(img, a.cfg.MaxFrameDimension)
	sample := media.FrameSample{
		Ratio:     ratio,
		SkinRatio: SkinRatio(frame, a.cfg.Bands, a.cfg.MinPixels),
	}
	if sample.SkinRatio >= a.cfg.SkinThreshold {
		sample.Flagged = true
		sample.Reason = "skin_ratio"
	}

	if a.classifier == nil {
		return sample
	}
	scores, err := a.classifier.Classify(ctx, frame)
	if err != nil {
		a.logger.WithError(err).WithField("ratio", ratio).Warn("image classifier unavailable, frame not scored by model")
		return sample
	}
	sample.PornScore = scores.PornScore
	sample.SexyScore = scores.SexyScore
	sample.TopLabel = string(scores.TopLabel)
	sample.TopProbability = scores.TopProbability
	if flagged, reason := a.cfg.Thresholds.Flag(*scores); flagged && !sample.Flagged {
		sample.Flagged = true
		sample.Reason = reason
	}
	return sample
}
