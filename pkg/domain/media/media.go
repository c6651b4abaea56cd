package media

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

type CompressionState string

const (
	CompressionNone                   CompressionState = "none"
	CompressionCompressed             CompressionState = "compressed"
	CompressionFailedFallbackOriginal CompressionState = "failed_fallback_original"
)

// Candidate is one user-selected file for the current submission attempt.
// It owns its local files and removes them on Release.
type Candidate struct {
	ID          uuid.UUID
	Filename    string
	Path        string
	Kind        Kind
	ContentType string
	Size        int64
	Duration    time.Duration
	Compression CompressionState
	Flagged     bool
	FlagReason  string
	StorageKey  string

	mu       sync.Mutex
	owned    []string
	released bool
}

func NewCandidate(filename, path, contentType string, size int64) *Candidate {
	return &Candidate{
		ID:          uuid.New(),
		Filename:    filename,
		Path:        path,
		Kind:        KindFromContentType(contentType),
		ContentType: contentType,
		Size:        size,
		Compression: CompressionNone,
		owned:       []string{path},
	}
}

// KindFromContentType classifies a MIME type; anything that is not video is
// treated as an image and left to the allow-list check.
func KindFromContentType(contentType string) Kind {
	if len(contentType) >= 6 && contentType[:6] == "video/" {
		return KindVideo
	}
	return KindImage
}

// ReplaceFile points the candidate at a new local file (a compressed output)
// and takes ownership of it.
func (c *Candidate) ReplaceFile(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Path = path
	c.Size = size
	c.owned = append(c.owned, path)
}

func (c *Candidate) Open() (io.ReadCloser, error) {
	return os.Open(c.Path)
}

func (c *Candidate) Flag(reason string) {
	c.Flagged = true
	c.FlagReason = reason
}

// Release removes every local file owned by the candidate. It is idempotent.
func (c *Candidate) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.released = true
	for _, p := range c.owned {
		_ = os.Remove(p)
	}
	c.owned = nil
}

func (c *Candidate) Released() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

// ReleaseAll releases every candidate in the list.
func ReleaseAll(candidates []*Candidate) {
	for _, c := range candidates {
		c.Release()
	}
}
