package imageclassifier

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/NeuralTrust/TrustPost/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(httpClient *mocks.MockHTTPClient) Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(Config{BaseURL: "http://classifier:8501/"}, httpClient, logger)
}

func TestReady(t *testing.T) {
	httpClient := &mocks.MockHTTPClient{}
	httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodGet && req.URL.String() == "http://classifier:8501/v1/models/nsfw-mobilenet"
	})).Return(mocks.Response(http.StatusOK, `{"name":"nsfw-mobilenet","state":"READY"}`), nil).Once()

	err := newTestClient(httpClient).Ready(context.Background(), "nsfw-mobilenet")
	assert.NoError(t, err)
	httpClient.AssertExpectations(t)
}

func TestReady_Loading(t *testing.T) {
	httpClient := &mocks.MockHTTPClient{}
	httpClient.On("Do", mock.Anything).
		Return(mocks.Response(http.StatusOK, `{"name":"m","state":"loading"}`), nil)

	err := newTestClient(httpClient).Ready(context.Background(), "m")
	assert.ErrorIs(t, err, ErrModelNotReady)
}

func TestClassify_SortsAndTruncates(t *testing.T) {
	httpClient := &mocks.MockHTTPClient{}
	var sent *http.Request
	httpClient.On("Do", mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(0).(*http.Request) }).
		Return(mocks.Response(http.StatusOK, `{"predictions":[
			{"label":"neutral","probability":0.1},
			{"label":"porn","probability":0.7},
			{"label":"sexy","probability":0.15},
			{"label":"drawings","probability":0.03},
			{"label":"hentai","probability":0.02}
		]}`), nil)

	preds, err := newTestClient(httpClient).Classify(context.Background(), "m", []byte{0x89, 'P', 'N', 'G'}, 3)
	require.NoError(t, err)
	require.Len(t, preds, 3)
	assert.Equal(t, "porn", preds[0].Label)
	assert.Equal(t, "sexy", preds[1].Label)
	assert.Equal(t, "neutral", preds[2].Label)

	require.NotNil(t, sent)
	assert.Equal(t, "3", sent.URL.Query().Get("top_k"))
	assert.Contains(t, sent.Header.Get("Content-Type"), "multipart/form-data")
}

func TestClassify_ServerError(t *testing.T) {
	httpClient := &mocks.MockHTTPClient{}
	httpClient.On("Do", mock.Anything).Return(mocks.Response(http.StatusInternalServerError, "boom"), nil)

	_, err := newTestClient(httpClient).Classify(context.Background(), "m", []byte("x"), 5)
	assert.Error(t, err)
}
