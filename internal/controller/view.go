package controller

import (
	"github.com/ytget/ytvd/internal/model"
	"github.com/ytget/ytvd/internal/progress"
)

// View is the form the controller drives. All methods are called on the
// goroutine the Dispatcher runs functions on.
type View interface {
	progress.Sink

	// ClearURL empties the URL field
	ClearURL()

	// SetQualities replaces the quality list and its selection. A nil list
	// clears the selector.
	SetQualities(qualities []model.Quality, selected model.Quality)

	// ShowFetching shows the placeholder while qualities load
	ShowFetching()

	SetFetchEnabled(enabled bool)
	SetDownloadEnabled(enabled bool)

	// SetInputsLocked locks URL, quality and folder inputs
	SetInputsLocked(locked bool)

	// ShowError reports a validation, extraction, or download error
	ShowError(err error)

	// ShowSuccess reports a finished download
	ShowSuccess(result *model.Result)
}

// Dispatcher runs fn on the UI goroutine
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) {
	fn()
}
