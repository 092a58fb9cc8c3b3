package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// BundleDirEnv names the directory a packaged build unpacks its resources to
const BundleDirEnv = "YTVD_BUNDLE_DIR"

var (
	// ErrFolderNotSet is returned when no output folder was chosen
	ErrFolderNotSet = errors.New("folder not set")

	// ErrNotADirectory is returned when the folder does not exist or is a file
	ErrNotADirectory = errors.New("not a directory")
)

// ValidateFolder checks that path is set, exists, and is a directory
func ValidateFolder(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrFolderNotSet
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotADirectory, path)
		}
		return fmt.Errorf("failed to stat folder %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return nil
}

// ResolveIconPath returns the bundled resource path for name when a packaged
// build exposes its unpack directory, else name relative to the working dir.
func ResolveIconPath(name string) string {
	if dir := os.Getenv(BundleDirEnv); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", filePath)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	case OSWindows:
		cmd = exec.Command(ExplorerCommand, WindowsSelectParam+filePath)
	default:
		// xdg-open cannot select a file, open the containing folder instead
		cmd = exec.Command(XDGOpenCommand, filepath.Dir(filePath))
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open file in manager: %w", err)
	}
	return nil
}
