package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

type reporter struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
}

// Option is a functional option for the console reporter
type Option func(*reporter)

// WithWriter sets the output destination. Defaults to os.Stdout
func WithWriter(w io.Writer) Option {
	return func(r *reporter) {
		r.w = w
	}
}

// WithNoColor disables colored output
func WithNoColor() Option {
	return func(r *reporter) {
		r.success.DisableColor()
		r.failure.DisableColor()
	}
}

// NewReporter creates a reporter printing one status line per event
func NewReporter(opts ...Option) interfaces.Reporter {
	r := &reporter{
		w:       os.Stdout,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *reporter) Start(task model.DownloadTask, dest string) {
	fmt.Fprintf(r.w, "Downloading %s to %s...\n", task.Label, dest)
}

func (r *reporter) Success(result model.DownloadResult) {
	r.success.Fprintf(r.w, "%s downloaded successfully.\n", result.Task.Label)
}

func (r *reporter) Failure(result model.DownloadResult) {
	r.failure.Fprintf(r.w, "Error downloading %s: %v\n", result.Task.Label, result.Err)
}
