package download

import (
	"fmt"
	"path/filepath"

	"github.com/ytget/ytvd/internal/model"
)

// Engine defaults
const (
	DefaultContainer      = "mp4"
	DefaultMergeFormat    = "mp4"
	DefaultOutputTemplate = "%(title)s.%(ext)s"
)

// selectorTemplate asks for the best video stream at the exact height merged
// with the best audio stream, falling back to the best single file.
const selectorTemplate = "bestvideo[height=%d]+bestaudio/best"

// FormatSelector builds the engine format selector for q
func FormatSelector(q model.Quality) (string, error) {
	height, err := q.Height()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(selectorTemplate, height), nil
}

// OutputPathTemplate joins the output folder and the engine filename template
func OutputPathTemplate(folder, template string) string {
	if template == "" {
		template = DefaultOutputTemplate
	}
	return filepath.Join(folder, template)
}
