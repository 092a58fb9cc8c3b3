package controller

import (
	"github.com/ytget/ytvd/internal/model"
)

// message is posted by workers and applied on the UI goroutine
type message interface {
	opID() string
}

type fetchDone struct {
	id        string
	url       string
	qualities []model.Quality
	err       error
}

func (m fetchDone) opID() string { return m.id }

type progressMsg struct {
	id     string
	update model.ProgressUpdate
}

func (m progressMsg) opID() string { return m.id }

type downloadDone struct {
	id     string
	result *model.Result
	err    error
}

func (m downloadDone) opID() string { return m.id }
