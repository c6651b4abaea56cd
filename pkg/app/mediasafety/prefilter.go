package mediasafety

import (
	"context"
	"fmt"
	"image"

	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// ScanResult holds the first flagged candidate, if any, and its verdict.
type ScanResult struct {
	Flagged *media.Candidate
	Verdict media.VideoVerdict
	Scanned int
}

//go:generate mockery --name=Prefilter --dir=. --output=./mocks --filename=prefilter_mock.go --case=underscore --with-expecter
type Prefilter interface {
	Validate(ctx context.Context, candidates []*media.Candidate) error
	NeedsCompression(candidates []*media.Candidate) bool
	Compress(ctx context.Context, candidates []*media.Candidate) error
	Scan(ctx context.Context, candidates []*media.Candidate) (*ScanResult, error)
}

type prefilter struct {
	enforcer *ConstraintEnforcer
	analyzer *Analyzer
	sampler  *FrameSampler
	logger   *logrus.Logger
}

func NewPrefilter(enforcer *ConstraintEnforcer, analyzer *Analyzer, sampler *FrameSampler, logger *logrus.Logger) Prefilter {
	return &prefilter{
		enforcer: enforcer,
		analyzer: analyzer,
		sampler:  sampler,
		logger:   logger,
	}
}

// Validate checks every candidate and stops at the first violation.
func (p *prefilter) Validate(ctx context.Context, candidates []*media.Candidate) error {
	for _, c := range candidates {
		if err := p.enforcer.Validate(ctx, c); err != nil {
			if IsValidation(err) {
				prometheus.MediaScans.WithLabelValues(string(c.Kind), "invalid").Inc()
			}
			return err
		}
	}
	return nil
}

func (p *prefilter) NeedsCompression(candidates []*media.Candidate) bool {
	for _, c := range candidates {
		if p.enforcer.NeedsCompression(c) {
			return true
		}
	}
	return false
}

func (p *prefilter) Compress(ctx context.Context, candidates []*media.Candidate) error {
	for _, c := range candidates {
		if err := p.enforcer.Compress(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// Scan analyzes candidates one at a time and stops at the first flagged one.
func (p *prefilter) Scan(ctx context.Context, candidates []*media.Candidate) (*ScanResult, error) {
	result := &ScanResult{}
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		verdict, err := p.scanOne(ctx, c)
		if err != nil {
			return nil, err
		}
		result.Scanned++

		log := p.logger.WithFields(logrus.Fields{
			"candidate_id": c.ID.String(),
			"kind":         string(c.Kind),
			"max_score":    verdict.MaxScore,
		})
		if verdict.Flagged {
			c.Flag(verdict.FirstReason())
			prometheus.MediaScans.WithLabelValues(string(c.Kind), "flagged").Inc()
			log.WithFields(logrus.Fields{
				"reason":              c.FlagReason,
				"flagged_frame_count": verdict.FlaggedFrameCount,
			}).Warn("media flagged by safety scan")
			result.Flagged = c
			result.Verdict = verdict
			return result, nil
		}
		prometheus.MediaScans.WithLabelValues(string(c.Kind), "clean").Inc()
		log.Debug("media passed safety scan")
	}
	return result, nil
}

func (p *prefilter) scanOne(ctx context.Context, c *media.Candidate) (media.VideoVerdict, error) {
	if c.Kind == media.KindVideo {
		return p.sampler.Sample(ctx, c.Path, c.Duration)
	}
	img, err := decodeImage(c)
	if err != nil {
		return media.VideoVerdict{}, err
	}
	return media.Aggregate([]media.FrameSample{p.analyzer.AnalyzeFrame(ctx, img, 0)}), nil
}

func decodeImage(c *media.Candidate) (image.Image, error) {
	f, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", c.Filename, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, moderation.NewValidationError(c.Filename, "image could not be decoded: %v", err)
	}
	return img, nil
}
