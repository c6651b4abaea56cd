package mediasafety

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/NeuralTrust/TrustPost/pkg/infra/imageclassifier"
	"github.com/NeuralTrust/TrustPost/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const MinTopK = 5

type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore --with-expecter
type Classifier interface {
	Classify(ctx context.Context, img image.Image) (*ModelScores, error)
	State() State
}

// ClassifierManager shares one lazily loaded model per name across the
// process.
type ClassifierManager struct {
	client imageclassifier.Client
	topK   int
	logger *logrus.Logger

	mu      sync.Mutex
	models  map[string]*modelAdapter
	loading singleflight.Group
}

func NewClassifierManager(client imageclassifier.Client, topK int, logger *logrus.Logger) *ClassifierManager {
	if topK < MinTopK {
		topK = MinTopK
	}
	return &ClassifierManager{
		client: client,
		topK:   topK,
		logger: logger,
		models: make(map[string]*modelAdapter),
	}
}

// Get returns the adapter for model without loading it.
func (m *ClassifierManager) Get(model string) Classifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.models[model]; ok {
		return a
	}
	a := &modelAdapter{manager: m, model: model, state: StateUninitialized}
	m.models[model] = a
	return a
}

type modelAdapter struct {
	manager *ClassifierManager
	model   string

	mu    sync.RWMutex
	state State
}

func (a *modelAdapter) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *modelAdapter) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()

	ready := 0.0
	if s == StateReady {
		ready = 1
	}
	prometheus.ClassifierState.WithLabelValues(a.model).Set(ready)
}

// ensureLoaded runs at most one load per model at a time. A failed load is
// retried on the next call.
func (a *modelAdapter) ensureLoaded(ctx context.Context) error {
	if a.State() == StateReady {
		return nil
	}
	_, err, _ := a.manager.loading.Do(a.model, func() (interface{}, error) {
		if a.State() == StateReady {
			return nil, nil
		}
		a.setState(StateLoading)
		if err := a.manager.client.Ready(ctx, a.model); err != nil {
			a.setState(StateFailed)
			a.manager.logger.WithError(err).WithField("model", a.model).Warn("image classifier failed to load")
			return nil, err
		}
		a.setState(StateReady)
		a.manager.logger.WithField("model", a.model).Info("image classifier ready")
		return nil, nil
	})
	return err
}

func (a *modelAdapter) Classify(ctx context.Context, img image.Image) (*ModelScores, error) {
	if err := a.ensureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("classifier %s not loaded: %w", a.model, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	preds, err := a.manager.client.Classify(ctx, a.model, buf.Bytes(), a.manager.topK)
	if err != nil {
		return nil, err
	}

	scores := Summarize(preds)
	if len(scores.Unknown) > 0 {
		a.manager.logger.WithFields(logrus.Fields{
			"model":  a.model,
			"labels": scores.Unknown,
		}).Warn("classifier returned unmapped labels")
	}
	return &scores, nil
}
