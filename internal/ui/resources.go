package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytvd/internal/platform"
)

// AppIcon is the window icon file name
const AppIcon = "icon.png"

// LoadAppIcon loads the icon from the bundle directory or the working directory
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(platform.ResolveIconPath(AppIcon))
}
