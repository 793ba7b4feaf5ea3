package interfaces

import (
	"context"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

// FetchUseCase defines the asset fetch operation
type FetchUseCase interface {
	// Fetch ensures the output directory exists and downloads every task of the manifest in order.
	// Per-task failures are recorded in the report, not returned.
	Fetch(ctx context.Context, manifest *model.Manifest) (*model.FetchReport, error)
}
