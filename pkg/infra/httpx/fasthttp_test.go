package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastHTTPClient_DoDecodesGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trustpost-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"q":1}`, string(body))
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(gzipCompress(payload))
	}))
	defer srv.Close()

	client := NewFastHTTPClient(WithUserAgent("trustpost-test"))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL, strings.NewReader(`{"q":1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	body, err := ReadBody(resp)
	require.NoError(t, err)

	assert.Equal(t, payload, body)
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestReadBody_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := NewFastHTTPClient().Do(req)
	require.NoError(t, err)

	_, err = ReadBody(resp)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "model not loaded")
}

func TestNewMultipartRequest(t *testing.T) {
	req, err := NewMultipartRequest(context.Background(), "http://localhost/upload",
		map[string]string{"bitrate_kbps": "900"},
		FormFile{Field: "file", Filename: "clip.mp4", Content: strings.NewReader("data")})
	require.NoError(t, err)

	require.NoError(t, req.ParseMultipartForm(1<<20))
	assert.Equal(t, "900", req.FormValue("bitrate_kbps"))
	f, hdr, err := req.FormFile("file")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "clip.mp4", hdr.Filename)
}
