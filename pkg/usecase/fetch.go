package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/utils/safe"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

type fetchUseCase struct {
	client   interfaces.AssetClient
	reporter interfaces.Reporter
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(client interfaces.AssetClient, reporter interfaces.Reporter) interfaces.FetchUseCase {
	return &fetchUseCase{
		client:   client,
		reporter: reporter,
	}
}

// Fetch creates the output directory and then downloads each task in order.
// Only a failure to prepare the output directory is returned as an error.
func (uc *fetchUseCase) Fetch(ctx context.Context, manifest *model.Manifest) (*model.FetchReport, error) {
	report := &model.FetchReport{RunID: uuid.NewString()}
	logger := ctxlog.From(ctx).With("run_id", report.RunID)
	ctx = ctxlog.With(ctx, logger)

	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Starting asset fetch",
		"manifest", manifest.Name,
		"output_dir", manifest.OutputDir,
		"tasks", len(manifest.Tasks),
	)

	if err := os.MkdirAll(manifest.OutputDir, dirPerm); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory",
			goerr.V("output_dir", manifest.OutputDir),
		)
	}

	for _, task := range manifest.Tasks {
		dest := manifest.Destination(task)
		uc.reporter.Start(task, dest)

		result := model.DownloadResult{Task: task, Path: dest}
		result.Err = safe.Run(ctx, func(ctx context.Context) error {
			n, err := uc.download(ctx, task, dest)
			result.Size = n
			return err
		})

		if result.Err != nil {
			result.Size = 0
			logger.Warn("Failed to download asset",
				"label", task.Label,
				"source", task.Origin(),
				"dest", dest,
				"error", result.Err,
			)
			uc.reporter.Failure(result)
		} else {
			logger.Info("Downloaded asset",
				"label", task.Label,
				"dest", dest,
				"size", humanize.Bytes(uint64(result.Size)),
			)
			uc.reporter.Success(result)
		}

		report.Results = append(report.Results, result)
	}

	logger.Info("Asset fetch finished",
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
	)

	return report, nil
}

// download writes the asset into a temporary file next to dest and renames it
// into place, so dest is either fully replaced or left untouched
func (uc *fetchUseCase) download(ctx context.Context, task model.DownloadTask, dest string) (int64, error) {
	logger := ctxlog.From(ctx)

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()
	logger.Debug("Created temporary file", "path", tmpPath)

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
				logger.Warn("Failed to remove temporary file", "path", tmpPath, "error", err)
			}
		}
	}()

	n, err := uc.client.Download(ctx, task.URL, tmp)
	if err != nil {
		return 0, err
	}

	if err := tmp.Close(); err != nil {
		return 0, goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpPath))
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return 0, goerr.Wrap(err, "failed to set file permissions", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return 0, goerr.Wrap(err, "failed to move downloaded file into place",
			goerr.V("from", tmpPath),
			goerr.V("to", dest),
		)
	}
	committed = true

	return n, nil
}
