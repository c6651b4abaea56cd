package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout  = 2 * time.Minute
	breakerTimeout  = time.Minute
	breakerFailures = 3
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Request struct {
	SourcePath  string
	OutputPath  string
	BitrateKbps int
	MaxHeight   int
}

type Result struct {
	Path string
	Size int64
}

//go:generate mockery --name=Client --dir=. --output=mocks/ --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	// Encode re-encodes the source video and writes the MP4 output to
	// req.OutputPath.
	Encode(ctx context.Context, req Request) (*Result, error)
}

type client struct {
	cfg     Config
	http    httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
}

func NewClient(cfg Config, httpClient httpx.Client, logger *logrus.Logger) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &client{
		cfg:     cfg,
		http:    httpClient,
		breaker: httpx.NewCircuitBreaker("video-encoder", breakerTimeout, breakerFailures, logger),
		logger:  logger,
	}
}

func (c *client) Encode(ctx context.Context, req Request) (*Result, error) {
	if req.SourcePath == "" || req.OutputPath == "" {
		return nil, errors.New("encoder source and output paths are required")
	}
	if req.BitrateKbps <= 0 {
		return nil, fmt.Errorf("invalid bitrate %d", req.BitrateKbps)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	src, err := os.Open(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source video: %w", err)
	}
	defer src.Close()

	fields := map[string]string{
		"bitrate_kbps": strconv.Itoa(req.BitrateKbps),
	}
	if req.MaxHeight > 0 {
		fields["max_height"] = strconv.Itoa(req.MaxHeight)
	}

	var out []byte
	err = c.breaker.Execute(func() error {
		httpReq, err := httpx.NewMultipartRequest(ctx, c.cfg.BaseURL+"/v1/encode", fields, httpx.FormFile{
			Field:    "file",
			Filename: filepath.Base(req.SourcePath),
			Content:  src,
		})
		if err != nil {
			return err
		}
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return fmt.Errorf("encode request failed: %w", err)
		}
		out, err = httpx.ReadBody(resp)
		if err != nil {
			return err
		}
		if ct := resp.Header.Get("Content-Type"); !isVideoContentType(ct) {
			return fmt.Errorf("unexpected encoder content type %q", ct)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("encoder returned an empty body")
	}

	if err := os.WriteFile(req.OutputPath, out, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write encoded video: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"bitrate_kbps": req.BitrateKbps,
		"max_height":   req.MaxHeight,
		"size":         len(out),
	}).Debug("video encoded")

	return &Result{Path: req.OutputPath, Size: int64(len(out))}, nil
}

func isVideoContentType(ct string) bool {
	return ct == "" || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "application/octet-stream")
}
