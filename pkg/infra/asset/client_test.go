package asset_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/assetfetch/pkg/infra/asset"
)

func TestClient_Download_Success(t *testing.T) {
	content := []byte("<html>home</html>")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodGet)
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}))
	defer server.Close()

	var buf bytes.Buffer
	n, err := asset.NewClient().Download(context.Background(), server.URL, &buf)

	gt.NoError(t, err)
	gt.Equal(t, n, int64(len(content)))
	gt.Equal(t, buf.String(), string(content))
}

func TestClient_Download_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("final content"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	var buf bytes.Buffer
	_, err := asset.NewClient().Download(context.Background(), server.URL+"/moved", &buf)

	gt.NoError(t, err)
	gt.Equal(t, buf.String(), "final content")
}

func TestClient_Download_TooManyRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusMovedPermanently)
	}))
	defer server.Close()

	var buf bytes.Buffer
	_, err := asset.NewClient(asset.WithMaxRedirects(2)).Download(context.Background(), server.URL, &buf)

	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("too many redirects")
	gt.Equal(t, buf.Len(), 0)
}

func TestClient_Download_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	var buf bytes.Buffer
	n, err := asset.NewClient().Download(context.Background(), server.URL, &buf)

	gt.Error(t, err)
	gt.Equal(t, n, int64(0))
	gt.String(t, err.Error()).Contains("404")
	gt.Equal(t, buf.Len(), 0)
}

func TestClient_Download_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var buf bytes.Buffer
	_, err := asset.NewClient().Download(context.Background(), url, &buf)

	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to send download request")
}

func TestClient_Download_InvalidURL(t *testing.T) {
	var buf bytes.Buffer
	_, err := asset.NewClient().Download(context.Background(), "://bad", &buf)

	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to create download request")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestClient_Download_WithTransport(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       http.NoBody,
			Header:     http.Header{},
			Request:    r,
		}, nil
	})

	var buf bytes.Buffer
	n, err := asset.NewClient(asset.WithTransport(rt)).Download(context.Background(), "https://example.invalid/asset.png", &buf)

	gt.NoError(t, err)
	gt.True(t, called)
	gt.Equal(t, n, int64(0))
}
