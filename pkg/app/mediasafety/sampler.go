package mediasafety

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/infra/frames"
	"github.com/sirupsen/logrus"
)

var DefaultFrameRatios = []float64{0.05, 0.20, 0.40, 0.60, 0.80, 0.95}

// FrameSampler captures frames at fixed fractions of a clip and analyzes
// them one at a time.
type FrameSampler struct {
	extractor frames.Extractor
	analyzer  *Analyzer
	ratios    []float64
	logger    *logrus.Logger
}

func NewFrameSampler(extractor frames.Extractor, analyzer *Analyzer, ratios []float64, logger *logrus.Logger) *FrameSampler {
	if len(ratios) == 0 {
		ratios = DefaultFrameRatios
	}
	return &FrameSampler{
		extractor: extractor,
		analyzer:  analyzer,
		ratios:    ratios,
		logger:    logger,
	}
}

// Sample returns the aggregated verdict. A frame that cannot be captured is
// recorded as not flagged.
func (s *FrameSampler) Sample(ctx context.Context, path string, duration time.Duration) (media.VideoVerdict, error) {
	samples := make([]media.FrameSample, 0, len(s.ratios))
	for _, ratio := range s.ratios {
		if err := ctx.Err(); err != nil {
			return media.VideoVerdict{}, err
		}
		at := time.Duration(float64(duration) * ratio)
		img, err := s.extractor.Capture(ctx, path, at, s.analyzer.MaxFrameDimension())
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return media.VideoVerdict{}, ctxErr
			}
			s.logger.WithError(err).WithFields(logrus.Fields{
				"ratio": ratio,
				"at":    at.String(),
			}).Warn("frame capture failed, frame counted as not flagged")
			samples = append(samples, media.FrameSample{Ratio: ratio, Reason: "capture_failed"})
			continue
		}
		samples = append(samples, s.analyzer.AnalyzeFrame(ctx, img, ratio))
	}
	return media.Aggregate(samples), nil
}
