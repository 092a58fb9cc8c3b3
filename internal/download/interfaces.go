package download

import (
	"context"

	"github.com/ytget/ytvd/internal/model"
)

// ProgressFunc receives engine progress callbacks. It is called synchronously
// on the goroutine running the engine.
type ProgressFunc func(model.ProgressUpdate)

// Options are the engine parameters of a single download
type Options struct {
	Format         string // format selector expression
	OutputTemplate string // absolute output path template
	MergeFormat    string // container for merged video+audio
}

// Output is what the engine reports about a finished download
type Output struct {
	Title string
	Path  string
}

// Engine is the external extraction/download engine.
type Engine interface {
	// ExtractInfo lists formats for url without downloading media
	ExtractInfo(ctx context.Context, url string) (*model.MediaInfo, error)

	// Download fetches and merges the selected streams for url
	Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) (*Output, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// FetchQualities returns the quality labels available for url, ascending
	FetchQualities(ctx context.Context, url string) ([]model.Quality, error)

	// Download runs the request and reports progress through onProgress
	Download(ctx context.Context, req model.Request, onProgress ProgressFunc) (*model.Result, error)
}
