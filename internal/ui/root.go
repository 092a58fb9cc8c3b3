package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/ytvd/internal/config"
	"github.com/ytget/ytvd/internal/controller"
	"github.com/ytget/ytvd/internal/download"
	"github.com/ytget/ytvd/internal/model"
	"github.com/ytget/ytvd/internal/platform"
)

// RootUI represents the main form
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	controller   *controller.Controller

	urlEntry      *widget.Entry
	fetchBtn      *widget.Button
	qualitySelect *widget.Select
	folderEntry   *widget.Entry
	browseBtn     *widget.Button
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	downloadBtn   *widget.Button
	attribution   *widget.Hyperlink
}

// NewRootUI builds the form on window and binds it to a controller over svc
func NewRootUI(window fyne.Window, app fyne.App, svc download.Downloader, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.controller = controller.New(svc, ui, controller.Config{
		Threaded:    settings.GetThreaded(),
		EventBuffer: settings.GetEventBuffer(),
		Dispatch:    fyne.Do,
	})

	logrus.WithField("threaded", settings.GetThreaded()).Debug("RootUI initialized")
	return ui
}

// Start drains controller messages until ctx is done. Blocking mode needs
// no drain loop.
func (ui *RootUI) Start(ctx context.Context) {
	if !ui.settings.GetThreaded() {
		return
	}
	go ui.controller.Run(ctx)
}

// Controller returns the controller driving the form
func (ui *RootUI) Controller() *controller.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(text(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(text(KeyFetchQualities), ui.onFetchClick)

	ui.qualitySelect = widget.NewSelect(nil, nil)

	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDefaultFolder())

	ui.browseBtn = widget.NewButton(text(KeyBrowse), ui.onBrowseClick)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = ProgressMax

	ui.progressLabel = widget.NewLabel("")
	ui.progressLabel.Alignment = fyne.TextAlignCenter
	ui.progressLabel.Hide()

	ui.downloadBtn = widget.NewButton(text(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	link, _ := url.Parse(AttributionURL)
	ui.attribution = widget.NewHyperlink(AttributionText, link)
	ui.attribution.OnTapped = ui.onAttributionTapped

	form := container.NewVBox(
		widget.NewLabel(text(KeyURLLabel)),
		ui.urlEntry,
		ui.fetchBtn,
		widget.NewLabel(text(KeySelectQuality)),
		ui.qualitySelect,
		widget.NewLabel(text(KeyDownloadFolder)),
		container.NewBorder(nil, nil, nil, ui.browseBtn, ui.folderEntry),
		widget.NewLabel(text(KeyDownloadProgress)),
		ui.progressBar,
		ui.progressLabel,
		ui.downloadBtn,
	)

	footer := container.NewHBox(layout.NewSpacer(), ui.attribution)

	ui.window.SetContent(container.NewBorder(nil, footer, nil, nil, form))
}

func (ui *RootUI) onFetchClick() {
	_ = ui.controller.Fetch(ui.urlEntry.Text)
}

func (ui *RootUI) onDownloadClick() {
	_ = ui.controller.Download(model.Request{
		URL:          ui.urlEntry.Text,
		OutputFolder: ui.folderEntry.Text,
		Quality:      model.Quality(ui.qualitySelect.Selected),
	})
}

func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.ShowError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
	}, ui.window)
}

func (ui *RootUI) onAttributionTapped() {
	if err := ui.app.OpenURL(ui.attribution.URL); err != nil {
		logrus.WithError(err).WithField("url", AttributionURL).Warn("Failed to open attribution link")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyOpenLinkFailed), err), ui.window)
	}
}

// SetProgress implements progress.Sink
func (ui *RootUI) SetProgress(percent float64) {
	ui.progressBar.SetValue(percent)
}

// SetProgressText implements progress.Sink
func (ui *RootUI) SetProgressText(text string, visible bool) {
	ui.progressLabel.SetText(text)
	if visible {
		ui.progressLabel.Show()
	} else {
		ui.progressLabel.Hide()
	}
}

// ClearURL implements controller.View
func (ui *RootUI) ClearURL() {
	ui.urlEntry.SetText("")
}

// SetQualities implements controller.View
func (ui *RootUI) SetQualities(qualities []model.Quality, selected model.Quality) {
	ui.qualitySelect.PlaceHolder = ""
	ui.qualitySelect.Options = model.QualityLabels(qualities)
	if selected != "" {
		ui.qualitySelect.SetSelected(string(selected))
	} else {
		ui.qualitySelect.ClearSelected()
	}
	ui.qualitySelect.Refresh()
}

// ShowFetching implements controller.View
func (ui *RootUI) ShowFetching() {
	ui.qualitySelect.Options = nil
	ui.qualitySelect.ClearSelected()
	ui.qualitySelect.PlaceHolder = ui.localization.GetText(KeyFetchingQualities)
	ui.qualitySelect.Refresh()
}

// SetFetchEnabled implements controller.View
func (ui *RootUI) SetFetchEnabled(enabled bool) {
	setEnabled(ui.fetchBtn, enabled)
}

// SetDownloadEnabled implements controller.View
func (ui *RootUI) SetDownloadEnabled(enabled bool) {
	setEnabled(ui.downloadBtn, enabled)
}

// SetInputsLocked implements controller.View
func (ui *RootUI) SetInputsLocked(locked bool) {
	setEnabled(ui.urlEntry, !locked)
	setEnabled(ui.qualitySelect, !locked)
	setEnabled(ui.folderEntry, !locked)
	setEnabled(ui.browseBtn, !locked)
}

// ShowError implements controller.View
func (ui *RootUI) ShowError(err error) {
	if err == nil {
		return
	}

	log := logrus.WithError(err)
	if download.IsValidationError(err) {
		log.Debug("Rejected form input")
	} else {
		log.Warn("Operation failed")
	}

	dialog.ShowError(errors.New(ui.errorMessage(err)), ui.window)
}

// ShowSuccess implements controller.View. When the engine reported the output
// file the dialog offers to reveal it.
func (ui *RootUI) ShowSuccess(result *model.Result) {
	text := ui.localization.GetText
	message := text(KeyDownloadSuccess)

	if result == nil || result.OutputPath == "" {
		dialog.ShowInformation(text(KeySuccess), message, ui.window)
		return
	}

	message = fmt.Sprintf("%s\n%s\n\n%s", message, result.GetDisplayTitle(), text(KeyShowInFolder))
	dialog.ShowConfirm(text(KeySuccess), message, func(reveal bool) {
		if !reveal {
			return
		}
		if err := platform.OpenFileInManager(result.OutputPath); err != nil {
			logrus.WithError(err).WithField("path", result.OutputPath).Warn("Failed to reveal file")
			dialog.ShowError(fmt.Errorf("%s: %w", text(KeyErrorOpeningFile), err), ui.window)
		}
	}, ui.window)
}

// errorMessage maps controller and download errors to localized text
func (ui *RootUI) errorMessage(err error) string {
	text := ui.localization.GetText

	switch {
	case errors.Is(err, download.ErrEmptyURL):
		return text(KeyPleaseEnterURL)
	case errors.Is(err, download.ErrNoFolder):
		return text(KeySelectFolder)
	case errors.Is(err, download.ErrInvalidFolder):
		return text(KeyInvalidFolder)
	case errors.Is(err, download.ErrUnknownQuality):
		return text(KeySelectQualityHint)
	case errors.Is(err, download.ErrNoQualities):
		return text(KeyNoQualities)
	case errors.Is(err, controller.ErrBusy):
		return text(KeyBusy)
	}

	var extractionErr *download.ExtractionError
	if errors.As(err, &extractionErr) {
		return fmt.Sprintf("%s: %v", text(KeyCouldNotFetch), extractionErr.Err)
	}

	var downloadErr *download.DownloadError
	if errors.As(err, &downloadErr) {
		return fmt.Sprintf("%s: %v", text(KeyErrorOccurred), downloadErr.Err)
	}

	return fmt.Sprintf("%s: %v", text(KeyErrorOccurred), err)
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
