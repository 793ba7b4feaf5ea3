package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/assetfetch/pkg/infra/asset"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// rerouteTo sends every request to target, keeping the original path and query
func rerouteTo(t *testing.T, target string) asset.Option {
	t.Helper()
	u, err := url.Parse(target)
	gt.NoError(t, err)

	return asset.WithTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		r = r.Clone(r.Context())
		r.URL.Scheme = u.Scheme
		r.URL.Host = u.Host
		r.Host = u.Host
		return http.DefaultTransport.RoundTrip(r)
	}))
}

func closedServerURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()
	return addr
}

func TestRun_List(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"assetfetch", "--log-level", "error", "list"}, withStdout(&stdout))
	gt.NoError(t, err)

	out := stdout.String()
	gt.String(t, out).Contains("home-v2 (default)")
	gt.String(t, out).Contains("home-v2.html")
	gt.String(t, out).Contains("home-v2.png")
	gt.String(t, out).Contains("all\n")
	gt.String(t, out).Contains("dashboard.png")
}

func TestRun_UnknownManifest(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"assetfetch", "--log-level", "error", "--manifest", "missing"}, withStdout(&stdout))
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("unknown manifest")
	gt.Equal(t, stdout.Len(), 0)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"assetfetch", "--log-level", "verbose", "list"}, withStdout(&stdout))
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("invalid log level")
}

func TestRun_AllFail_ReturnsNil(t *testing.T) {
	var stdout bytes.Buffer
	outputDir := filepath.Join(t.TempDir(), "backer-app", "public")

	err := run(context.Background(),
		[]string{"assetfetch", "--log-level", "error", "--no-color"},
		withStdout(&stdout),
		withOutputDir(outputDir),
		withAssetOptions(rerouteTo(t, closedServerURL(t))),
	)
	gt.NoError(t, err)

	info, err := os.Stat(outputDir)
	gt.NoError(t, err)
	gt.True(t, info.IsDir())

	out := stdout.String()
	gt.String(t, out).Contains("Error downloading HTML: ")
	gt.String(t, out).Contains("Error downloading PNG: ")
}

func TestRun_FailOnError_ReturnsError(t *testing.T) {
	var stdout bytes.Buffer
	outputDir := t.TempDir()

	err := run(context.Background(),
		[]string{"assetfetch", "--log-level", "error", "--no-color", "--fail-on-error"},
		withStdout(&stdout),
		withOutputDir(outputDir),
		withAssetOptions(rerouteTo(t, closedServerURL(t))),
	)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("asset download failed")
}

func TestRun_FailOnError_AllSucceed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "content of "+r.URL.Path)
	}))
	defer server.Close()

	var stdout bytes.Buffer
	outputDir := t.TempDir()

	err := run(context.Background(),
		[]string{"assetfetch", "--log-level", "error", "--no-color", "--fail-on-error"},
		withStdout(&stdout),
		withOutputDir(outputDir),
		withAssetOptions(rerouteTo(t, server.URL)),
	)
	gt.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(outputDir, "home-v2.html"))
	gt.NoError(t, err)
	gt.Equal(t, string(html), "content of /download")

	png, err := os.ReadFile(filepath.Join(outputDir, "home-v2.png"))
	gt.NoError(t, err)
	gt.String(t, string(png)).Contains("content of /aida/")

	gt.String(t, stdout.String()).Contains("HTML downloaded successfully.")
	gt.String(t, stdout.String()).Contains("PNG downloaded successfully.")
}
