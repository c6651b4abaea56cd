package frames

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"time"

	"github.com/valyala/fastjson"
)

var ErrNoVideoStream = errors.New("no video stream found")

type ProbeResult struct {
	Duration time.Duration
	Width    int
	Height   int
}

//go:generate mockery --name=Extractor --dir=. --output=mocks/ --filename=extractor_mock.go --case=underscore --with-expecter
type Extractor interface {
	Probe(ctx context.Context, path string) (*ProbeResult, error)
	// Capture decodes the frame at the given offset, scaled so its longest
	// side is at most maxDim.
	Capture(ctx context.Context, path string, at time.Duration, maxDim int) (image.Image, error)
}

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

type Config struct {
	FFmpegPath  string
	FFprobePath string
}

type ffmpegExtractor struct {
	cfg Config
	run Runner
}

func NewFFmpegExtractor(cfg Config) Extractor {
	return NewExtractorWithRunner(cfg, execRunner)
}

func NewExtractorWithRunner(cfg Config, run Runner) Extractor {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.FFprobePath == "" {
		cfg.FFprobePath = "ffprobe"
	}
	return &ffmpegExtractor{cfg: cfg, run: run}
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if len(msg) > 512 {
			msg = msg[:512]
		}
		return nil, fmt.Errorf("%s failed: %w: %s", name, err, msg)
	}
	return stdout.Bytes(), nil
}

func (e *ffmpegExtractor) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	out, err := e.run(ctx, e.cfg.FFprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "format=duration:stream=width,height",
		"-of", "json",
		path,
	)
	if err != nil {
		return nil, err
	}

	v, err := fastjson.ParseBytes(out)
	if err != nil {
		return nil, fmt.Errorf("invalid ffprobe output: %w", err)
	}
	streams := v.GetArray("streams")
	if len(streams) == 0 {
		return nil, ErrNoVideoStream
	}
	res := &ProbeResult{
		Width:  streams[0].GetInt("width"),
		Height: streams[0].GetInt("height"),
	}
	rawDuration := string(v.GetStringBytes("format", "duration"))
	if rawDuration == "" {
		return nil, errors.New("ffprobe reported no duration")
	}
	seconds, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", rawDuration, err)
	}
	res.Duration = time.Duration(seconds * float64(time.Second))
	return res, nil
}

func (e *ffmpegExtractor) Capture(ctx context.Context, path string, at time.Duration, maxDim int) (image.Image, error) {
	args := []string{
		"-v", "error",
		"-ss", strconv.FormatFloat(at.Seconds(), 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
	}
	if maxDim > 0 {
		args = append(args, "-vf",
			fmt.Sprintf("scale=w=%d:h=%d:force_original_aspect_ratio=decrease", maxDim, maxDim))
	}
	args = append(args, "-f", "image2pipe", "-vcodec", "png", "-")

	out, err := e.run(ctx, e.cfg.FFmpegPath, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no frame captured at %s", at)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("failed to decode captured frame: %w", err)
	}
	return img, nil
}
