package download

import (
	"errors"
	"fmt"

	"github.com/ytget/ytvd/internal/model"
)

// Validation errors. These are returned before the engine is invoked.
var (
	ErrEmptyURL       = errors.New("empty URL")
	ErrNoFolder       = errors.New("no download folder selected")
	ErrInvalidFolder  = errors.New("invalid download folder")
	ErrUnknownQuality = errors.New("quality was not offered for this URL")
)

// ErrNoQualities is wrapped by ExtractionError when the engine reports no
// formats in the expected container.
var ErrNoQualities = errors.New("no available video qualities found")

// ExtractionError is returned when metadata for a URL could not be fetched
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not fetch qualities for %s: %v", e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DownloadError is returned when the engine fails during transfer or merge
type DownloadError struct {
	URL     string
	Quality model.Quality
	Err     error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s at %s failed: %v", e.URL, e.Quality, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was raised before calling the engine
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyURL) ||
		errors.Is(err, ErrNoFolder) ||
		errors.Is(err, ErrInvalidFolder) ||
		errors.Is(err, ErrUnknownQuality)
}
