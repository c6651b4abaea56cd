package mediasafety

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/infra/imageclassifier"
	"github.com/NeuralTrust/TrustPost/pkg/infra/imageclassifier/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestClassifierManager_LoadsOnceAndClassifies(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().Ready(mock.Anything, "nsfw").Return(nil).Once()
	client.EXPECT().Classify(mock.Anything, "nsfw", mock.Anything, MinTopK).
		Return([]imageclassifier.Prediction{
			{Label: "neutral", Probability: 0.7},
			{Label: "sexy", Probability: 0.2},
		}, nil).Twice()

	manager := NewClassifierManager(client, 1, quietLogger())
	c := manager.Get("nsfw")
	assert.Same(t, c, manager.Get("nsfw"))
	assert.Equal(t, StateUninitialized, c.State())

	frame := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 2; i++ {
		scores, err := c.Classify(context.Background(), frame)
		require.NoError(t, err)
		assert.Equal(t, LabelNeutral, scores.TopLabel)
		assert.InDelta(t, 0.2, scores.SexyScore, 1e-9)
	}
	assert.Equal(t, StateReady, c.State())
}

func TestClassifierManager_FailedLoadIsRetried(t *testing.T) {
	client := mocks.NewClient(t)
	client.EXPECT().Ready(mock.Anything, "nsfw").Return(errors.New("model not ready")).Once()
	client.EXPECT().Ready(mock.Anything, "nsfw").Return(nil).Once()
	client.EXPECT().Classify(mock.Anything, "nsfw", mock.Anything, MinTopK).
		Return([]imageclassifier.Prediction{{Label: "porn", Probability: 0.9}}, nil).Once()

	c := NewClassifierManager(client, MinTopK, quietLogger()).Get("nsfw")
	frame := image.NewRGBA(image.Rect(0, 0, 8, 8))

	_, err := c.Classify(context.Background(), frame)
	require.Error(t, err)
	assert.Equal(t, StateFailed, c.State())

	scores, err := c.Classify(context.Background(), frame)
	require.NoError(t, err)
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, LabelPorn, scores.TopLabel)
}

func TestClassifierManager_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	release := make(chan struct{})
	client := mocks.NewClient(t)
	client.EXPECT().Ready(mock.Anything, "nsfw").
		RunAndReturn(func(context.Context, string) error {
			<-release
			return nil
		}).Once()
	client.EXPECT().Classify(mock.Anything, "nsfw", mock.Anything, MinTopK).
		Return([]imageclassifier.Prediction{{Label: "neutral", Probability: 1}}, nil).Times(4)

	c := NewClassifierManager(client, MinTopK, quietLogger()).Get("nsfw")
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Classify(context.Background(), frame)
			errs <- err
		}()
	}
	close(release)
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
