package download

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/ytget/ytvd/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 250 * time.Millisecond

// YTDLPEngine runs the yt-dlp executable through go-ytdlp
type YTDLPEngine struct {
	executable       string
	progressInterval time.Duration
}

// NewYTDLPEngine creates an engine. An empty executable lets go-ytdlp resolve
// the binary from its install cache or PATH.
func NewYTDLPEngine(executable string) *YTDLPEngine {
	return &YTDLPEngine{
		executable:       executable,
		progressInterval: DefaultProgressInterval,
	}
}

// SetProgressInterval sets the progress sampling frequency
func (e *YTDLPEngine) SetProgressInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	e.progressInterval = interval
}

func (e *YTDLPEngine) command() *ytdlp.Command {
	cmd := ytdlp.New()
	if e.executable != "" {
		cmd.SetExecutable(e.executable)
	}
	return cmd
}

// ExtractInfo runs yt-dlp in metadata-only mode and decodes its JSON dump
func (e *YTDLPEngine) ExtractInfo(ctx context.Context, url string) (*model.MediaInfo, error) {
	res, err := e.command().
		SkipDownload().
		DumpSingleJSON().
		NoPlaylist().
		Run(ctx, url)
	if err != nil {
		return nil, engineError(res, err)
	}

	return parseMediaInfo(res.Stdout)
}

// Download runs yt-dlp with the given selector, template, and merge container.
// The info JSON printed after the download carries the final file name; the
// last file seen in progress updates is the fallback.
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) (*Output, error) {
	cmd := e.command().
		NoPlaylist().
		Format(opts.Format).
		MergeOutputFormat(opts.MergeFormat).
		Output(opts.OutputTemplate).
		PrintJSON()

	out := &Output{}
	var lastFile string
	cmd.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
		converted := convertProgress(&update)
		if converted.Title != "" && out.Title == "" {
			out.Title = converted.Title
		}
		if converted.Filename != "" {
			lastFile = converted.Filename
		}
		if onProgress != nil {
			onProgress(converted)
		}
	})

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, engineError(res, err)
	}

	if infos, err := res.GetExtractedInfo(); err != nil {
		logrus.WithError(err).Debug("Unreadable yt-dlp info output")
	} else {
		for _, info := range infos {
			if path := infoPath(info); path != "" {
				out.Path = path
			}
			if info.Title != nil && out.Title == "" {
				out.Title = *info.Title
			}
		}
	}

	if out.Path == "" {
		out.Path = lastFile
	}
	return out, nil
}

func infoPath(info *ytdlp.ExtractedInfo) string {
	if info.Filename != nil && *info.Filename != "" {
		return *info.Filename
	}
	if info.AltFilename != nil {
		return *info.AltFilename
	}
	return ""
}

// convertProgress maps a go-ytdlp update onto the engine-neutral model.
// go-ytdlp already folds the size estimate into TotalBytes.
func convertProgress(update *ytdlp.ProgressUpdate) model.ProgressUpdate {
	converted := model.ProgressUpdate{
		Status:          model.ProgressStatus(update.Status),
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Filename:        update.Filename,
	}
	if update.Info != nil {
		if update.Info.Title != nil {
			converted.Title = *update.Info.Title
		}
		if converted.Filename == "" && update.Info.Filename != nil {
			converted.Filename = *update.Info.Filename
		}
	}
	return converted
}

// parseMediaInfo decodes the subset of a yt-dlp JSON dump we need
func parseMediaInfo(raw string) (*model.MediaInfo, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty metadata output")
	}
	// DumpSingleJSON prints one object per line; fall back to the last line
	// when something else leaked onto stdout before it
	if !gjson.Valid(raw) {
		if idx := strings.LastIndex(raw, "\n"); idx >= 0 {
			raw = raw[idx+1:]
		}
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("invalid metadata output")
	}

	doc := gjson.Parse(raw)
	info := &model.MediaInfo{
		ID:    doc.Get("id").String(),
		Title: doc.Get("title").String(),
	}

	doc.Get("formats").ForEach(func(_, f gjson.Result) bool {
		info.Formats = append(info.Formats, model.Format{
			ID:     f.Get("format_id").String(),
			Ext:    f.Get("ext").String(),
			Height: int(f.Get("height").Int()),
		})
		return true
	})

	return info, nil
}

// engineError adds the tail of yt-dlp stderr to err when available
func engineError(res *ytdlp.Result, err error) error {
	if res == nil {
		return err
	}
	stderr := strings.TrimSpace(res.Stderr)
	if stderr == "" {
		return err
	}
	lines := strings.Split(stderr, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	logrus.WithField("exit_code", res.ExitCode).Debugf("yt-dlp stderr: %s", stderr)
	return fmt.Errorf("%w: %s", err, last)
}
