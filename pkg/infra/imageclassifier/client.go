package imageclassifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout  = 10 * time.Second
	breakerTimeout  = 30 * time.Second
	breakerFailures = 5
)

var ErrModelNotReady = errors.New("image classifier model is not ready")

type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

type classifyResponse struct {
	Predictions []Prediction `json:"predictions"`
}

type modelStatus struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

//go:generate mockery --name=Client --dir=. --output=mocks/ --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	// Ready probes the model; it returns nil once the model can serve.
	Ready(ctx context.Context, model string) error
	// Classify returns up to topK predictions ordered by probability.
	Classify(ctx context.Context, model string, png []byte, topK int) ([]Prediction, error)
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
		breaker: httpx.NewCircuitBreaker("image-classifier", breakerTimeout, breakerFailures, logger),
		logger:  logger,
	}
}

func (c *client) modelURL(model string) string {
	return c.cfg.BaseURL + "/v1/models/" + url.PathEscape(model)
}

func (c *client) Ready(ctx context.Context, model string) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	return c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.modelURL(model), nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("model readiness probe failed: %w", err)
		}
		body, err := httpx.ReadBody(resp)
		if err != nil {
			return err
		}
		var status modelStatus
		if err := json.Unmarshal(body, &status); err != nil {
			return fmt.Errorf("invalid readiness response: %w", err)
		}
		if !strings.EqualFold(status.State, "ready") && !strings.EqualFold(status.State, "available") {
			return fmt.Errorf("%w: state %q", ErrModelNotReady, status.State)
		}
		return nil
	})
}

func (c *client) Classify(ctx context.Context, model string, png []byte, topK int) ([]Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	var out []Prediction
	err := c.breaker.Execute(func() error {
		u := c.modelURL(model) + "/classify?top_k=" + strconv.Itoa(topK)
		req, err := httpx.NewMultipartRequest(ctx, u, nil, httpx.FormFile{
			Field:    "image",
			Filename: "frame.png",
			Content:  bytes.NewReader(png),
		})
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("classify request failed: %w", err)
		}
		body, err := httpx.ReadBody(resp)
		if err != nil {
			return err
		}
		var parsed classifyResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return fmt.Errorf("invalid classify response: %w", err)
		}
		out = parsed.Predictions
		return nil
	})

	status := "ok"
	if err != nil {
		status = "error"
	}
	prometheus.ClassifierLatency.WithLabelValues(model, status).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	if topK > 0 && len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}
