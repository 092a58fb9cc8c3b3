package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytvd/internal/model"
)

// fakeYTDLP writes a shell script standing in for yt-dlp. The script records
// its arguments one per line, prints stdout, writes stderr and exits with code.
func fakeYTDLP(t *testing.T, stdout, stderr string, code int) (executable, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp is a shell script")
	}

	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	stdoutFile := filepath.Join(dir, "stdout")
	stderrFile := filepath.Join(dir, "stderr")
	executable = filepath.Join(dir, "yt-dlp")

	if err := os.WriteFile(stdoutFile, []byte(stdout), 0644); err != nil {
		t.Fatalf("Failed to write stdout fixture: %v", err)
	}
	if err := os.WriteFile(stderrFile, []byte(stderr), 0644); err != nil {
		t.Fatalf("Failed to write stderr fixture: %v", err)
	}

	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > '%s'\ncat '%s'\ncat '%s' >&2\nexit %d\n",
		argsFile, stdoutFile, stderrFile, code)
	if err := os.WriteFile(executable, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake yt-dlp: %v", err)
	}
	return executable, argsFile
}

func readArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	raw, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("Fake yt-dlp did not record arguments: %v", err)
	}
	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

func hasArg(args []string, flag string, value ...string) bool {
	for i, arg := range args {
		if arg != flag {
			continue
		}
		if len(value) == 0 {
			return true
		}
		if i+1 < len(args) && args[i+1] == value[0] {
			return true
		}
	}
	return false
}

func TestParseMediaInfo(t *testing.T) {
	raw := `{"id":"test123","title":"Test Video","formats":[` +
		`{"format_id":"sb0","ext":"mhtml","height":45},` +
		`{"format_id":"140","ext":"m4a","height":null},` +
		`{"format_id":"18","ext":"mp4","width":640,"height":360},` +
		`{"format_id":"22","ext":"mp4","width":1280,"height":720},` +
		`{"format_id":"248","ext":"webm","height":1080}]}`

	info, err := parseMediaInfo(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if info.ID != "test123" || info.Title != "Test Video" {
		t.Errorf("Unexpected header fields: %+v", info)
	}

	if len(info.Formats) != 5 {
		t.Fatalf("Expected 5 formats, got %d", len(info.Formats))
	}

	if info.Formats[1].Height != 0 {
		t.Errorf("Expected null height to decode as 0, got %d", info.Formats[1].Height)
	}

	got := model.QualitiesFromFormats(info.Formats, "mp4")
	if len(got) != 2 || got[0] != "360p" || got[1] != "720p" {
		t.Errorf("Unexpected qualities: %v", got)
	}
}

func TestParseMediaInfo_LeadingNoise(t *testing.T) {
	raw := "[youtube] test123: Downloading webpage\n" +
		`{"id":"test123","title":"T","formats":[{"format_id":"18","ext":"mp4","height":360}]}`

	info, err := parseMediaInfo(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(info.Formats) != 1 {
		t.Errorf("Expected 1 format, got %d", len(info.Formats))
	}
}

func TestParseMediaInfo_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json", "{\"id\":"} {
		if _, err := parseMediaInfo(raw); err == nil {
			t.Errorf("parseMediaInfo(%q) expected error", raw)
		}
	}
}

func TestEngineError_NilResult(t *testing.T) {
	err := engineError(nil, errTest)
	if err != errTest {
		t.Errorf("Expected original error, got %v", err)
	}
}

func TestNewYTDLPEngine(t *testing.T) {
	engine := NewYTDLPEngine("/usr/local/bin/yt-dlp")
	if engine.executable != "/usr/local/bin/yt-dlp" {
		t.Errorf("Unexpected executable: %s", engine.executable)
	}
	if engine.progressInterval != DefaultProgressInterval {
		t.Errorf("Unexpected interval: %v", engine.progressInterval)
	}

	engine.SetProgressInterval(0)
	if engine.progressInterval != DefaultProgressInterval {
		t.Errorf("Expected non-positive interval to reset to default, got %v", engine.progressInterval)
	}
}

func TestYTDLPEngine_ExtractInfo(t *testing.T) {
	stdout := `{"id":"abc","title":"Test Video","formats":[` +
		`{"format_id":"18","ext":"mp4","height":360},` +
		`{"format_id":"22","ext":"mp4","height":720}]}` + "\n"
	executable, argsFile := fakeYTDLP(t, stdout, "", 0)

	info, err := NewYTDLPEngine(executable).ExtractInfo(context.Background(), testURL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info.Title != "Test Video" || len(info.Formats) != 2 {
		t.Errorf("Unexpected media info: %+v", info)
	}

	args := readArgs(t, argsFile)
	for _, flag := range []string{"--skip-download", "--dump-single-json", "--no-playlist"} {
		if !hasArg(args, flag) {
			t.Errorf("Expected %s in %v", flag, args)
		}
	}
	if args[len(args)-1] != testURL {
		t.Errorf("Expected URL as last argument, got %v", args)
	}
}

func TestYTDLPEngine_ExtractInfo_Failure(t *testing.T) {
	executable, _ := fakeYTDLP(t, "", "ERROR: [youtube] abc: Video unavailable\n", 1)

	_, err := NewYTDLPEngine(executable).ExtractInfo(context.Background(), testURL)
	if err == nil {
		t.Fatal("Expected error for failing yt-dlp")
	}
	if !strings.Contains(err.Error(), "Video unavailable") {
		t.Errorf("Expected stderr tail in error, got %v", err)
	}
}

func TestYTDLPEngine_Download(t *testing.T) {
	stdout := `progress:{"info":{"id":"abc","title":"T","_type":"video"},` +
		`"progress":{"status":"downloading","downloaded_bytes":50,"total_bytes":200,"filename":"/videos/T.f137.mp4"}}` + "\n" +
		`progress:{"info":{"id":"abc","title":"T","_type":"video"},` +
		`"progress":{"status":"downloading","downloaded_bytes":100,"total_bytes_estimate":400,"filename":"/videos/T.f140.m4a"}}` + "\n" +
		`{"_type":"video","id":"abc","title":"T","filename":"/videos/T.mp4","_filename":"/videos/T.mp4"}` + "\n"
	executable, argsFile := fakeYTDLP(t, stdout, "", 0)

	var updates []model.ProgressUpdate
	opts := Options{
		Format:         "bestvideo[height=720]+bestaudio/best",
		OutputTemplate: "/videos/%(title)s.%(ext)s",
		MergeFormat:    "mp4",
	}
	out, err := NewYTDLPEngine(executable).Download(context.Background(), testURL, opts, func(u model.ProgressUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if out.Path != "/videos/T.mp4" {
		t.Errorf("Expected merged output path, got %q", out.Path)
	}
	if out.Title != "T" {
		t.Errorf("Expected title T, got %q", out.Title)
	}

	if len(updates) != 2 {
		t.Fatalf("Expected 2 progress updates, got %d", len(updates))
	}
	first := updates[0]
	if first.Status != model.ProgressStatusDownloading || first.DownloadedBytes != 50 || first.TotalBytes != 200 {
		t.Errorf("Unexpected first update: %+v", first)
	}
	if first.Filename != "/videos/T.f137.mp4" || first.Title != "T" {
		t.Errorf("Unexpected first update file fields: %+v", first)
	}
	if updates[1].Total() != 400 {
		t.Errorf("Expected estimate to be used as total, got %d", updates[1].Total())
	}

	args := readArgs(t, argsFile)
	checks := [][]string{
		{"--format", opts.Format},
		{"--merge-output-format", "mp4"},
		{"--output", opts.OutputTemplate},
		{"--no-playlist"},
		{"--print-json"},
		{"--progress"},
	}
	for _, check := range checks {
		if !hasArg(args, check[0], check[1:]...) {
			t.Errorf("Expected %v in %v", check, args)
		}
	}
}

func TestYTDLPEngine_Download_PathFromProgress(t *testing.T) {
	stdout := `progress:{"info":{"id":"abc","title":"T","_type":"video"},` +
		`"progress":{"status":"finished","downloaded_bytes":200,"total_bytes":200,"filename":"/videos/T.mp4"}}` + "\n"
	executable, _ := fakeYTDLP(t, stdout, "", 0)

	out, err := NewYTDLPEngine(executable).Download(context.Background(), testURL, Options{Format: "best"}, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.Path != "/videos/T.mp4" {
		t.Errorf("Expected path from last progress update, got %q", out.Path)
	}
}

func TestYTDLPEngine_Download_Failure(t *testing.T) {
	executable, _ := fakeYTDLP(t, "", "ERROR: unable to merge\n", 1)

	out, err := NewYTDLPEngine(executable).Download(context.Background(), testURL, Options{Format: "best"}, nil)
	if err == nil {
		t.Fatal("Expected error for failing yt-dlp")
	}
	if out != nil {
		t.Errorf("Expected no output on failure, got %+v", out)
	}
	if !strings.Contains(err.Error(), "unable to merge") {
		t.Errorf("Expected stderr tail in error, got %v", err)
	}
}

func TestConvertProgress(t *testing.T) {
	title := "Title"
	infoFile := "/videos/from-info.mp4"

	tests := []struct {
		name   string
		update ytdlp.ProgressUpdate
		want   model.ProgressUpdate
	}{
		{
			name:   "nil info",
			update: ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusStarting},
			want:   model.ProgressUpdate{Status: model.ProgressStatusStarting},
		},
		{
			name: "downloading",
			update: ytdlp.ProgressUpdate{
				Status:          ytdlp.ProgressStatusDownloading,
				DownloadedBytes: 10,
				TotalBytes:      40,
				Filename:        "/videos/part.mp4",
				Info:            &ytdlp.ExtractedInfo{Title: &title, Filename: &infoFile},
			},
			want: model.ProgressUpdate{
				Status:          model.ProgressStatusDownloading,
				DownloadedBytes: 10,
				TotalBytes:      40,
				Title:           "Title",
				Filename:        "/videos/part.mp4",
			},
		},
		{
			name: "filename from info",
			update: ytdlp.ProgressUpdate{
				Status: ytdlp.ProgressStatusPostProcessing,
				Info:   &ytdlp.ExtractedInfo{Filename: &infoFile},
			},
			want: model.ProgressUpdate{
				Status:   model.ProgressStatusPostProcessing,
				Filename: infoFile,
			},
		},
		{
			name:   "finished",
			update: ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished, DownloadedBytes: 40, TotalBytes: 40},
			want:   model.ProgressUpdate{Status: model.ProgressStatusFinished, DownloadedBytes: 40, TotalBytes: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertProgress(&tt.update); got != tt.want {
				t.Errorf("convertProgress() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}
