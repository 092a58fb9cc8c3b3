package ui

// Package ui contains the Fyne form of the application: URL entry, quality
// selector, folder picker, progress bar and download button. It implements
// controller.View and renders every controller update on the Fyne goroutine.
