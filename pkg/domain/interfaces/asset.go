package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

// AssetClient defines retrieval of remote assets
type AssetClient interface {
	// Download fetches url and streams the response body into w, returning the number of bytes written
	Download(ctx context.Context, url string, w io.Writer) (int64, error)
}

// Reporter receives human-readable progress of a fetch run
type Reporter interface {
	Start(task model.DownloadTask, dest string)
	Success(result model.DownloadResult)
	Failure(result model.DownloadResult)
}
