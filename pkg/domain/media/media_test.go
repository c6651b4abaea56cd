package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_FlaggedIffAnyFrameFlagged(t *testing.T) {
	clean := []FrameSample{{Ratio: 0.05, SkinRatio: 0.1}, {Ratio: 0.2, SkinRatio: 0.2}}
	v := Aggregate(clean)
	assert.False(t, v.Flagged)
	assert.Equal(t, 0, v.FlaggedFrameCount)
	assert.InDelta(t, 0.2, v.MaxScore, 1e-9)

	withOne := append(clean, FrameSample{Ratio: 0.6, SkinRatio: 0.4, Flagged: true, Reason: "skin"})
	v = Aggregate(withOne)
	assert.True(t, v.Flagged)
	assert.Equal(t, 1, v.FlaggedFrameCount)
	assert.InDelta(t, 0.4, v.MaxScore, 1e-9)
	assert.Equal(t, "skin", v.FirstReason())
}

func TestAggregate_Empty(t *testing.T) {
	v := Aggregate(nil)
	assert.False(t, v.Flagged)
	assert.Zero(t, v.MaxScore)
}

func TestCandidate_ReleaseRemovesOwnedFiles(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "orig.mp4")
	out := filepath.Join(dir, "out.mp4")
	require.NoError(t, os.WriteFile(orig, []byte("a"), 0600))
	require.NoError(t, os.WriteFile(out, []byte("b"), 0600))

	c := NewCandidate("clip.mp4", orig, "video/mp4", 1)
	assert.Equal(t, KindVideo, c.Kind)
	c.ReplaceFile(out, 1)
	c.Release()
	c.Release()

	assert.True(t, c.Released())
	assert.NoFileExists(t, orig)
	assert.NoFileExists(t, out)
}

func TestKindFromContentType(t *testing.T) {
	assert.Equal(t, KindImage, KindFromContentType("image/png"))
	assert.Equal(t, KindVideo, KindFromContentType("video/webm"))
	assert.Equal(t, KindImage, KindFromContentType(""))
}
