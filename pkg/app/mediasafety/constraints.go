package mediasafety

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/domain/media"
	"github.com/NeuralTrust/TrustPost/pkg/domain/moderation"
	"github.com/NeuralTrust/TrustPost/pkg/infra/encoder"
	"github.com/NeuralTrust/TrustPost/pkg/infra/frames"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

type CompressionSettings struct {
	VideoShare       float64
	AudioBitrateKbps int
	MinBitrateKbps   int
	MaxBitrateKbps   int
	MaxHeight        int
}

var DefaultCompression = CompressionSettings{
	VideoShare:       0.92,
	AudioBitrateKbps: 128,
	MinBitrateKbps:   250,
	MaxBitrateKbps:   8000,
	MaxHeight:        1080,
}

type Limits struct {
	MaxImageBytes       int64
	MaxVideoSourceBytes int64
	TargetVideoBytes    int64
	MaxVideoBytes       int64
	MaxVideoDuration    time.Duration
	AllowedImageTypes   []string
	AllowedVideoTypes   []string
	Compression         CompressionSettings
}

// Bitrate computes the video bitrate in kbps that fits targetBytes over
// duration, leaving room for the audio track.
func Bitrate(targetBytes int64, duration time.Duration, s CompressionSettings) int {
	seconds := duration.Seconds()
	if seconds <= 0 {
		return s.MaxBitrateKbps
	}
	totalKbps := float64(targetBytes*8) / seconds / 1000
	kbps := int(totalKbps*s.VideoShare) - s.AudioBitrateKbps
	if kbps < s.MinBitrateKbps {
		return s.MinBitrateKbps
	}
	if kbps > s.MaxBitrateKbps {
		return s.MaxBitrateKbps
	}
	return kbps
}

// ConstraintEnforcer checks type, size and duration limits before any
// analysis and compresses oversized videos.
type ConstraintEnforcer struct {
	limits    Limits
	extractor frames.Extractor
	encoder   encoder.Client
	workDir   string
	logger    *logrus.Logger
}

func NewConstraintEnforcer(
	limits Limits,
	extractor frames.Extractor,
	enc encoder.Client,
	workDir string,
	logger *logrus.Logger,
) *ConstraintEnforcer {
	if limits.Compression == (CompressionSettings{}) {
		limits.Compression = DefaultCompression
	}
	if workDir == "" {
		workDir = os.TempDir()
	}
	return &ConstraintEnforcer{
		limits:    limits,
		extractor: extractor,
		encoder:   enc,
		workDir:   workDir,
		logger:    logger,
	}
}

func allowed(list []string, contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, a := range list {
		if strings.EqualFold(a, ct) {
			return true
		}
	}
	return false
}

// Validate returns a *moderation.ValidationError on any violation. For
// videos it probes the duration and stores it on the candidate.
func (e *ConstraintEnforcer) Validate(ctx context.Context, c *media.Candidate) error {
	switch c.Kind {
	case media.KindImage:
		if !allowed(e.limits.AllowedImageTypes, c.ContentType) {
			return moderation.NewValidationError(c.Filename, "image type %q is not allowed", c.ContentType)
		}
		if e.limits.MaxImageBytes > 0 && c.Size > e.limits.MaxImageBytes {
			return moderation.NewValidationError(c.Filename, "image is %d bytes, limit is %d", c.Size, e.limits.MaxImageBytes)
		}
		return e.checkImageReadable(c)

	case media.KindVideo:
		if !allowed(e.limits.AllowedVideoTypes, c.ContentType) {
			return moderation.NewValidationError(c.Filename, "video type %q is not allowed", c.ContentType)
		}
		if e.limits.MaxVideoSourceBytes > 0 && c.Size > e.limits.MaxVideoSourceBytes {
			return moderation.NewValidationError(c.Filename, "video is %d bytes, limit is %d", c.Size, e.limits.MaxVideoSourceBytes)
		}
		probe, err := e.extractor.Probe(ctx, c.Path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return moderation.NewValidationError(c.Filename, "video could not be read: %v", err)
		}
		c.Duration = probe.Duration
		if e.limits.MaxVideoDuration > 0 && probe.Duration > e.limits.MaxVideoDuration {
			return moderation.NewValidationError(c.Filename, "video is %s long, limit is %s",
				probe.Duration.Round(time.Second), e.limits.MaxVideoDuration)
		}
		return nil

	default:
		return moderation.NewValidationError(c.Filename, "unsupported media kind %q", c.Kind)
	}
}

func (e *ConstraintEnforcer) checkImageReadable(c *media.Candidate) error {
	f, err := c.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.Filename, err)
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		return moderation.NewValidationError(c.Filename, "image could not be decoded: %v", err)
	}
	return nil
}

// NeedsCompression reports whether the candidate is a video above the target
// size.
func (e *ConstraintEnforcer) NeedsCompression(c *media.Candidate) bool {
	return c.Kind == media.KindVideo && e.limits.TargetVideoBytes > 0 && c.Size > e.limits.TargetVideoBytes
}

// Compress runs one encode call for oversized videos. On encoder failure the
// original is kept when it fits under the hard ceiling.
func (e *ConstraintEnforcer) Compress(ctx context.Context, c *media.Candidate) error {
	if !e.NeedsCompression(c) {
		return nil
	}

	bitrate := Bitrate(e.limits.TargetVideoBytes, c.Duration, e.limits.Compression)
	out := filepath.Join(e.workDir, c.ID.String()+"-compressed.mp4")
	log := e.logger.WithFields(logrus.Fields{
		"candidate_id": c.ID.String(),
		"size":         c.Size,
		"duration":     c.Duration.String(),
		"bitrate_kbps": bitrate,
	})

	res, err := e.encoder.Encode(ctx, encoder.Request{
		SourcePath:  c.Path,
		OutputPath:  out,
		BitrateKbps: bitrate,
		MaxHeight:   e.limits.Compression.MaxHeight,
	})
	if err != nil {
		_ = os.Remove(out)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if e.limits.MaxVideoBytes > 0 && c.Size > e.limits.MaxVideoBytes {
			prometheus.Compressions.WithLabelValues("failed_rejected").Inc()
			log.WithError(err).Warn("video compression failed and original exceeds ceiling")
			return moderation.NewValidationError(c.Filename, "video could not be compressed under %d bytes", e.limits.MaxVideoBytes)
		}
		prometheus.Compressions.WithLabelValues("failed_fallback").Inc()
		log.WithError(err).Warn("video compression failed, keeping original")
		c.Compression = media.CompressionFailedFallbackOriginal
		return nil
	}

	c.ReplaceFile(res.Path, res.Size)
	if e.limits.MaxVideoBytes > 0 && res.Size > e.limits.MaxVideoBytes {
		prometheus.Compressions.WithLabelValues("over_ceiling").Inc()
		return moderation.NewValidationError(c.Filename, "compressed video is %d bytes, limit is %d", res.Size, e.limits.MaxVideoBytes)
	}
	c.Compression = media.CompressionCompressed
	prometheus.Compressions.WithLabelValues("compressed").Inc()
	log.WithField("compressed_size", res.Size).Info("video compressed")
	return nil
}

// IsValidation reports whether err is a constraint violation.
func IsValidation(err error) bool {
	var ve *moderation.ValidationError
	return errors.As(err, &ve)
}
