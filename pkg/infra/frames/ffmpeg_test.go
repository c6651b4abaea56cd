package frames

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	var gotName string
	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		return []byte(`{"streams":[{"width":1920,"height":1080}],"format":{"duration":"90.500000"}}`), nil
	}
	ext := NewExtractorWithRunner(Config{FFprobePath: "/usr/bin/ffprobe"}, run)

	res, err := ext.Probe(context.Background(), "clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/ffprobe", gotName)
	assert.Equal(t, 1920, res.Width)
	assert.Equal(t, 1080, res.Height)
	assert.Equal(t, 90500*time.Millisecond, res.Duration)
}

func TestProbe_NoVideoStream(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return []byte(`{"streams":[],"format":{"duration":"3.0"}}`), nil
	}
	_, err := NewExtractorWithRunner(Config{}, run).Probe(context.Background(), "a.mp4")
	assert.ErrorIs(t, err, ErrNoVideoStream)
}

func TestProbe_RunnerError(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("ffprobe missing")
	}
	_, err := NewExtractorWithRunner(Config{}, run).Probe(context.Background(), "a.mp4")
	assert.Error(t, err)
}

func TestCapture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 1, color.RGBA{R: 200, G: 120, B: 90, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	var gotArgs []string
	run := func(_ context.Context, _ string, args ...string) ([]byte, error) {
		gotArgs = args
		return buf.Bytes(), nil
	}
	img, err := NewExtractorWithRunner(Config{}, run).Capture(context.Background(), "a.mp4", 1500*time.Millisecond, 320)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Contains(t, gotArgs, "1.500")
	assert.Contains(t, gotArgs, "scale=w=320:h=320:force_original_aspect_ratio=decrease")
}

func TestCapture_EmptyOutput(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) { return nil, nil }
	_, err := NewExtractorWithRunner(Config{}, run).Capture(context.Background(), "a.mp4", time.Second, 0)
	assert.Error(t, err)
}
