// Package progress republishes engine byte counters as a percentage and a
// "downloaded / total MB" line for the form.
package progress

import (
	"fmt"
	"sync"

	"github.com/ytget/ytvd/internal/model"
)

const bytesPerMB = 1024 * 1024

// TextFormat is the textual log shown while bytes are flowing
const TextFormat = "Downloading: %s MB / %s MB"

// Sink receives relayed progress. Each Handle call maps to exactly one sink
// call sequence on the calling goroutine.
type Sink interface {
	SetProgress(percent float64)
	SetProgressText(text string, visible bool)
}

// Relay turns engine callbacks into sink refreshes
type Relay struct {
	sink  Sink
	mu    sync.Mutex
	state model.ProgressState
}

// NewRelay creates a relay publishing to sink
func NewRelay(sink Sink) *Relay {
	return &Relay{sink: sink}
}

// Handle processes one engine callback
func (r *Relay) Handle(update model.ProgressUpdate) {
	if update.Status != model.ProgressStatusDownloading {
		r.mu.Lock()
		r.state.Reset()
		r.mu.Unlock()
		r.sink.SetProgressText("", false)
		return
	}

	r.mu.Lock()
	r.state.Apply(update)
	state := r.state
	r.mu.Unlock()

	r.sink.SetProgress(state.Percent())
	r.sink.SetProgressText(FormatText(state), true)
}

// Reset zeroes the counters, the bar, and hides the text
func (r *Relay) Reset() {
	r.mu.Lock()
	r.state.Reset()
	r.mu.Unlock()
	r.sink.SetProgress(0)
	r.sink.SetProgressText("", false)
}

// State returns a copy of the current counters
func (r *Relay) State() model.ProgressState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// FormatMB renders bytes as binary megabytes with two decimals
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/bytesPerMB)
}

// FormatText renders the textual log for state
func FormatText(state model.ProgressState) string {
	return fmt.Sprintf(TextFormat, FormatMB(state.DownloadedBytes), FormatMB(state.TotalBytes))
}
