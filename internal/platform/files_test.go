package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFolder(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"existing directory", tempDir, nil},
		{"empty", "", ErrFolderNotSet},
		{"whitespace", "   ", ErrFolderNotSet},
		{"missing", filepath.Join(tempDir, "missing"), ErrNotADirectory},
		{"regular file", filePath, ErrNotADirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolder(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFolder(%q) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFolder(%q) = %v, expected %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestResolveIconPath(t *testing.T) {
	t.Setenv(BundleDirEnv, "")
	if got := ResolveIconPath("icon.png"); got != "icon.png" {
		t.Errorf("Expected relative icon path, got %s", got)
	}

	bundle := t.TempDir()
	t.Setenv(BundleDirEnv, bundle)
	if got := ResolveIconPath("icon.png"); got != filepath.Join(bundle, "icon.png") {
		t.Errorf("Expected bundled icon path, got %s", got)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.txt")

	if err := OpenFileInManager(nonExistentFile); err == nil {
		t.Error("Expected error for non-existent file")
	}

	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path")
	}
}
