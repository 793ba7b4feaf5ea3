package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/assetfetch/pkg/cli/config"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/assetfetch/pkg/infra/asset"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args)
}

// runEnv holds process-level dependencies that are not exposed as flags
type runEnv struct {
	stdout       io.Writer
	assetOptions []asset.Option
	outputDir    string
}

type runOption func(*runEnv)

func withStdout(w io.Writer) runOption {
	return func(e *runEnv) {
		e.stdout = w
	}
}

func withAssetOptions(opts ...asset.Option) runOption {
	return func(e *runEnv) {
		e.assetOptions = append(e.assetOptions, opts...)
	}
}

// withOutputDir replaces the output directory of the selected manifest
func withOutputDir(dir string) runOption {
	return func(e *runEnv) {
		e.outputDir = dir
	}
}

func run(ctx context.Context, args []string, opts ...runOption) error {
	env := &runEnv{stdout: os.Stdout}
	for _, opt := range opts {
		opt(env)
	}
	stdout := env.stdout

	var (
		loggerCfg config.Logger
		fetchCfg  config.Fetch
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:    "assetfetch",
		Usage:   "Download static design assets into backer-app/public",
		Version: types.Version,
		Writer:  stdout,
		Flags:   append(loggerCfg.Flags(), fetchCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: fetchAction(&fetchCfg, env),
		Commands: []*cli.Command{
			cmdList(stdout),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
