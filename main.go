package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"

	"github.com/ytget/ytvd/internal/config"
	"github.com/ytget/ytvd/internal/download"
	"github.com/ytget/ytvd/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytvd"
	AppName = "YT Downloader"
)

func main() {
	settings := config.NewSettings()
	if err := config.InitLogging(settings); err != nil {
		logrus.WithError(err).Warn("File logging disabled")
	}

	logrus.Infof("%s v%s starting...", AppName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	executable := settings.GetYTDLPPath()
	if executable == "" && settings.GetInstallEngine() {
		resolved, err := ytdlp.Install(ctx, nil)
		if err != nil {
			logrus.WithError(err).Warn("Failed to install yt-dlp, relying on PATH")
		} else {
			executable = resolved.Executable
			logrus.WithFields(logrus.Fields{
				"path":    resolved.Executable,
				"version": resolved.Version,
			}).Info("yt-dlp resolved")
		}
	}

	engine := download.NewYTDLPEngine(executable)
	engine.SetProgressInterval(settings.GetProgressInterval())

	svc := download.NewService(engine)
	svc.SetContainer(settings.GetContainer())
	svc.SetMergeFormat(settings.GetMergeFormat())
	svc.SetOutputTemplate(settings.GetOutputTemplate())
	svc.SetMetadataCacheTTL(settings.GetMetadataCacheTTL())

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	if icon, err := ui.LoadAppIcon(); err != nil {
		logrus.WithError(err).Warn("Window icon not loaded")
	} else {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)
	myWindow.CenterOnScreen()

	root := ui.NewRootUI(myWindow, myApp, svc, settings)
	root.Start(ctx)

	myWindow.ShowAndRun()
}
