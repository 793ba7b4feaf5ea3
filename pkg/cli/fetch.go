package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/assetfetch/pkg/cli/config"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/infra/asset"
	"github.com/m-mizutani/assetfetch/pkg/infra/console"
	"github.com/m-mizutani/assetfetch/pkg/usecase"
)

// fetchAction downloads the assets of the selected built-in manifest
func fetchAction(fetchCfg *config.Fetch, env *runEnv) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		logger := ctxlog.From(ctx)

		manifest, err := model.LookupManifest(fetchCfg.Manifest)
		if err != nil {
			return err
		}
		if env.outputDir != "" {
			manifest.OutputDir = env.outputDir
		}

		reporterOpts := []console.Option{console.WithWriter(env.stdout)}
		if fetchCfg.NoColor {
			reporterOpts = append(reporterOpts, console.WithNoColor())
		}

		fetchUC := usecase.NewFetch(
			asset.NewClient(env.assetOptions...),
			console.NewReporter(reporterOpts...),
		)

		report, err := fetchUC.Fetch(ctx, manifest)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch assets", goerr.V("manifest", manifest.Name))
		}

		if report.Failed() > 0 {
			logger.Warn("Some assets could not be downloaded",
				slog.Int("failed", report.Failed()),
				slog.Int("total", len(report.Results)),
			)
			if fetchCfg.FailOnError {
				return goerr.New("asset download failed",
					goerr.V("failed", report.Failed()),
					goerr.V("run_id", report.RunID),
				)
			}
		}

		return nil
	}
}
