package model

import "fmt"

// FormState represents the enablement state of the download form
type FormState string

const (
	// FormStateIdle means no qualities are fetched yet
	FormStateIdle FormState = "Idle"

	// FormStateFetching means a metadata request is in flight
	FormStateFetching FormState = "Fetching"

	// FormStateReady means the quality list is populated and download is allowed
	FormStateReady FormState = "Ready"

	// FormStateDownloading means a download is in flight and inputs are locked
	FormStateDownloading FormState = "Downloading"
)

// FormEvent is an input to the form state machine
type FormEvent string

const (
	EventFetch           FormEvent = "fetch"
	EventFetchSucceeded  FormEvent = "fetch_succeeded"
	EventFetchFailed     FormEvent = "fetch_failed"
	EventDownload        FormEvent = "download"
	EventDownloadDone    FormEvent = "download_done"
	EventDownloadAborted FormEvent = "download_aborted"
)

// String returns the string representation of FormState
func (fs FormState) String() string {
	return string(fs)
}

// CanFetch returns true if the fetch affordance should be enabled
func (fs FormState) CanFetch() bool {
	return fs == FormStateIdle || fs == FormStateReady
}

// CanDownload returns true if the download affordance should be enabled
func (fs FormState) CanDownload() bool {
	return fs == FormStateReady
}

// InputsLocked returns true while an engine call owns the form
func (fs FormState) InputsLocked() bool {
	return fs == FormStateFetching || fs == FormStateDownloading
}

// Transition returns the state reached from fs on event, or an error if the
// event is not accepted in fs.
func (fs FormState) Transition(event FormEvent) (FormState, error) {
	switch fs {
	case FormStateIdle, FormStateReady:
		switch event {
		case EventFetch:
			return FormStateFetching, nil
		case EventDownload:
			if fs == FormStateReady {
				return FormStateDownloading, nil
			}
		}
	case FormStateFetching:
		switch event {
		case EventFetchSucceeded:
			return FormStateReady, nil
		case EventFetchFailed:
			return FormStateIdle, nil
		}
	case FormStateDownloading:
		switch event {
		case EventDownloadDone, EventDownloadAborted:
			return FormStateIdle, nil
		}
	}
	return fs, fmt.Errorf("invalid transition from %s on %s", fs, event)
}
