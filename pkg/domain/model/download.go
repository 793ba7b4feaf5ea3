package model

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DownloadTask represents one remote asset to retrieve
type DownloadTask struct {
	Label    string // Human-readable name used in status messages, e.g. "HTML"
	URL      string // Source URL
	Filename string // File name relative to the manifest output directory
}

// Origin returns the task URL without query string and fragment, which may carry access tokens
func (t DownloadTask) Origin() string {
	u, err := url.Parse(t.URL)
	if err != nil {
		return "[invalid url]"
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil
	return u.String()
}

// Manifest is a fixed, ordered list of download tasks sharing an output directory
type Manifest struct {
	Name      string
	OutputDir string
	Tasks     []DownloadTask
}

// Destination returns the local path the task is written to
func (m *Manifest) Destination(task DownloadTask) string {
	return filepath.Join(m.OutputDir, task.Filename)
}

// Validate checks that every task has a source and resolves inside OutputDir
func (m *Manifest) Validate() error {
	if m.OutputDir == "" {
		return goerr.New("output directory is empty", goerr.V("manifest", m.Name))
	}

	base := filepath.Clean(m.OutputDir)
	for i, task := range m.Tasks {
		if task.URL == "" {
			return goerr.New("task has no URL",
				goerr.V("manifest", m.Name),
				goerr.V("index", i),
				goerr.V("label", task.Label),
			)
		}

		// Prevent destinations escaping the output directory
		dest := m.Destination(task)
		rel, err := filepath.Rel(base, dest)
		if task.Filename == "" || err != nil || rel == "." || rel == ".." ||
			strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return goerr.New("invalid destination path",
				goerr.V("manifest", m.Name),
				goerr.V("filename", task.Filename),
				goerr.V("dest", dest),
			)
		}
	}

	return nil
}

// DownloadResult represents the outcome of a single download task
type DownloadResult struct {
	Task DownloadTask
	Path string // Destination path
	Size int64  // Bytes written, zero on failure
	Err  error  // Non-nil when the task failed
}

// FetchReport collects the per-task results of one fetch run
type FetchReport struct {
	RunID   string
	Results []DownloadResult
}

// Failed returns the number of failed tasks
func (r *FetchReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Succeeded returns the number of successful tasks
func (r *FetchReport) Succeeded() int {
	return len(r.Results) - r.Failed()
}
