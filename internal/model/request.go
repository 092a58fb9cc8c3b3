package model

import (
	"strings"
	"time"
)

// Request represents a single download submitted from the form.
// It is treated as read-only once the download starts.
type Request struct {
	ID           string
	URL          string
	OutputFolder string
	Quality      Quality
	SubmittedAt  time.Time
}

// Result describes a finished download
type Result struct {
	Request    Request
	Title      string // video title, if the engine reported it
	OutputPath string // merged output file, if the engine reported it
	Selector   string // format selector passed to the engine
	FinishedAt time.Time
}

// NormalizedURL returns the URL with whitespace and control characters stripped
func (r Request) NormalizedURL() string {
	return NormalizeURL(r.URL)
}

// NormalizeURL strips line breaks and tabs that sneak in through pasting
func NormalizeURL(raw string) string {
	clean := strings.ReplaceAll(raw, "\n", "")
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\t", " ")
	return strings.TrimSpace(clean)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (r *Result) GetDisplayTitle() string {
	if r.Title != "" && !strings.HasPrefix(r.Title, "http") {
		return r.Title
	}

	if r.OutputPath != "" {
		parts := strings.FieldsFunc(r.OutputPath, func(c rune) bool {
			return c == '/' || c == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return r.Request.URL
}
