package ui

import "image/color"

// Window sizing
const (
	WindowWidth  float32 = 320
	WindowHeight float32 = 420
)

// Attribution link
const (
	AttributionText = "Nubsuki"
	AttributionURL  = "https://github.com/nubsuki/YouTube-Downloader"
)

// Palette
var (
	ColorBackground = color.RGBA{R: 0x2e, G: 0x2e, B: 0x2e, A: 0xff}
	ColorInput      = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	ColorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ProgressMax is the progress bar scale; the relay reports 0..100
const ProgressMax = 100
