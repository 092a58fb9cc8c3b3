// Package controller sequences the fetch → select → download flow of the
// form. Engine calls either run inline (blocking mode) or on a worker
// goroutine that posts typed messages to a bounded channel drained by Run.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/ytvd/internal/config"
	"github.com/ytget/ytvd/internal/download"
	"github.com/ytget/ytvd/internal/model"
	"github.com/ytget/ytvd/internal/platform"
	"github.com/ytget/ytvd/internal/progress"
)

// ErrBusy is returned when an operation is already in flight
var ErrBusy = errors.New("another operation is in progress")

// Config selects the scheduling model
type Config struct {
	// Threaded runs engine calls on a worker goroutine
	Threaded bool

	// EventBuffer bounds the worker → UI channel in threaded mode;
	// config.DefaultEventBuffer when not positive
	EventBuffer int

	// Dispatch runs functions on the UI goroutine; Immediate when nil
	Dispatch Dispatcher
}

// Controller drives a View from user actions and engine results
type Controller struct {
	svc      download.Downloader
	view     View
	relay    *progress.Relay
	dispatch Dispatcher
	threaded bool

	// guard admits one fetch or download at a time
	guard *semaphore.Weighted

	events chan message
	done   chan struct{}
	wg     sync.WaitGroup

	mu        sync.Mutex
	state     model.FormState
	qualities []model.Quality
	current   string
}

// New creates a controller in the Idle state and renders it on view
func New(svc download.Downloader, view View, cfg Config) *Controller {
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = config.DefaultEventBuffer
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = Immediate
	}

	c := &Controller{
		svc:      svc,
		view:     view,
		relay:    progress.NewRelay(view),
		dispatch: cfg.Dispatch,
		threaded: cfg.Threaded,
		guard:    semaphore.NewWeighted(1),
		events:   make(chan message, cfg.EventBuffer),
		done:     make(chan struct{}),
		state:    model.FormStateIdle,
	}

	c.render()
	return c
}

// Run drains worker messages and applies them through the dispatcher until
// ctx is done. It is only needed in threaded mode.
func (c *Controller) Run(ctx context.Context) {
	defer close(c.done)
	for {
		select {
		case msg := <-c.events:
			c.dispatch(func() { c.apply(msg) })
		case <-ctx.Done():
			return
		}
	}
}

// Done is closed when Run returns
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until all worker goroutines have returned
func (c *Controller) Wait() {
	c.wg.Wait()
}

// State returns the current form state
func (c *Controller) State() model.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Qualities returns the quality list offered by the last successful fetch
func (c *Controller) Qualities() []model.Quality {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Quality(nil), c.qualities...)
}

// Fetch loads the quality list for rawURL
func (c *Controller) Fetch(rawURL string) error {
	url := model.NormalizeURL(rawURL)
	if url == "" {
		c.view.ShowError(download.ErrEmptyURL)
		return download.ErrEmptyURL
	}

	if !c.guard.TryAcquire(1) {
		c.view.ShowError(ErrBusy)
		return ErrBusy
	}

	id, err := c.begin(model.EventFetch)
	if err != nil {
		c.guard.Release(1)
		c.view.ShowError(err)
		return err
	}

	logrus.WithFields(logrus.Fields{"op": id, "url": url}).Debug("Fetch submitted")

	c.render()
	c.view.ShowFetching()

	c.run(func() {
		qualities, err := c.svc.FetchQualities(context.Background(), url)
		c.post(fetchDone{id: id, url: url, qualities: qualities, err: err})
	})
	return nil
}

// Download starts req. The request is validated before the guard is taken
// so invalid input never reaches the download adapter.
func (c *Controller) Download(req model.Request) error {
	req.URL = req.NormalizedURL()
	if err := c.validate(req); err != nil {
		c.view.ShowError(err)
		return err
	}

	if !c.guard.TryAcquire(1) {
		c.view.ShowError(ErrBusy)
		return ErrBusy
	}

	id, err := c.begin(model.EventDownload)
	if err != nil {
		c.guard.Release(1)
		c.view.ShowError(err)
		return err
	}

	req.ID = id
	req.SubmittedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"op":      id,
		"url":     req.URL,
		"quality": req.Quality,
		"folder":  req.OutputFolder,
	}).Debug("Download submitted")

	c.render()
	c.relay.Reset()

	c.run(func() {
		result, err := c.svc.Download(context.Background(), req, func(update model.ProgressUpdate) {
			c.post(progressMsg{id: id, update: update})
		})
		c.post(downloadDone{id: id, result: result, err: err})
	})
	return nil
}

// validate checks the request against the form state
func (c *Controller) validate(req model.Request) error {
	if req.URL == "" {
		return download.ErrEmptyURL
	}

	if err := platform.ValidateFolder(req.OutputFolder); err != nil {
		if errors.Is(err, platform.ErrFolderNotSet) {
			return download.ErrNoFolder
		}
		return fmt.Errorf("%w: %w", download.ErrInvalidFolder, err)
	}

	c.mu.Lock()
	offered := model.ContainsQuality(c.qualities, req.Quality)
	c.mu.Unlock()
	if !offered {
		return fmt.Errorf("%w: %q", download.ErrUnknownQuality, req.Quality)
	}
	return nil
}

// begin applies event and assigns the operation ID
func (c *Controller) begin(event model.FormEvent) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.Transition(event)
	if err != nil {
		return "", err
	}
	c.state = next
	c.current = newOperationID()
	return c.current, nil
}

// run executes work inline or on a worker goroutine
func (c *Controller) run(work func()) {
	if !c.threaded {
		work()
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		work()
	}()
}

// post hands msg to the UI goroutine. In blocking mode the caller already
// is the UI goroutine.
func (c *Controller) post(msg message) {
	if !c.threaded {
		c.apply(msg)
		return
	}

	select {
	case c.events <- msg:
	case <-c.done:
		logrus.WithField("op", msg.opID()).Warn("Dropping message after shutdown")
	}
}

// apply mutates state and view for one message. UI goroutine only.
func (c *Controller) apply(msg message) {
	c.mu.Lock()
	stale := msg.opID() != c.current
	c.mu.Unlock()
	if stale {
		logrus.WithField("op", msg.opID()).Warn("Ignoring message for stale operation")
		return
	}

	switch m := msg.(type) {
	case progressMsg:
		c.relay.Handle(m.update)
	case fetchDone:
		c.finishFetch(m)
	case downloadDone:
		c.finishDownload(m)
	}
}

func (c *Controller) finishFetch(m fetchDone) {
	defer c.guard.Release(1)

	log := logrus.WithFields(logrus.Fields{"op": m.id, "url": m.url})

	err := m.err
	if err == nil && len(m.qualities) == 0 {
		err = &download.ExtractionError{URL: m.url, Err: download.ErrNoQualities}
	}

	c.mu.Lock()
	if err != nil {
		c.state, _ = c.state.Transition(model.EventFetchFailed)
		c.qualities = nil
	} else {
		c.state, _ = c.state.Transition(model.EventFetchSucceeded)
		c.qualities = m.qualities
	}
	qualities := c.qualities
	c.current = ""
	c.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Fetch failed")
		c.view.SetQualities(nil, "")
		c.render()
		c.view.ShowError(err)
		return
	}

	selected, _ := model.Highest(qualities)
	log.WithField("selected", selected).Info("Fetch completed")
	c.view.SetQualities(qualities, selected)
	c.render()
}

func (c *Controller) finishDownload(m downloadDone) {
	defer c.guard.Release(1)

	event := model.EventDownloadDone
	if m.err != nil {
		event = model.EventDownloadAborted
	}

	c.mu.Lock()
	c.state, _ = c.state.Transition(event)
	c.qualities = nil
	c.current = ""
	c.mu.Unlock()

	c.relay.Reset()
	c.view.ClearURL()
	c.view.SetQualities(nil, "")
	c.render()

	log := logrus.WithField("op", m.id)
	if m.err != nil {
		log.WithError(m.err).Warn("Download failed")
		c.view.ShowError(m.err)
		return
	}

	log.Info("Download completed")
	c.view.ShowSuccess(m.result)
}

// render syncs affordances with the current state
func (c *Controller) render() {
	state := c.State()
	c.view.SetFetchEnabled(state.CanFetch())
	c.view.SetDownloadEnabled(state.CanDownload())
	c.view.SetInputsLocked(state.InputsLocked())
}

// newOperationID generates a unique operation ID
func newOperationID() string {
	return "op-" + uuid.NewString()
}
