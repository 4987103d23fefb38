package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/thingibrowser/thingibrowser/internal/analytics"
	"github.com/thingibrowser/thingibrowser/internal/api"
	"github.com/thingibrowser/thingibrowser/internal/browse"
	"github.com/thingibrowser/thingibrowser/internal/config"
	"github.com/thingibrowser/thingibrowser/internal/extension"
	"github.com/thingibrowser/thingibrowser/internal/host"
	"github.com/thingibrowser/thingibrowser/internal/logging"
	"github.com/thingibrowser/thingibrowser/internal/platform"
	"github.com/thingibrowser/thingibrowser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID    = "com.thingibrowser.app"
	AppName  = "ThingiBrowser"
	PluginID = "ThingiBrowser"

	// AnalyticsEndpoint receives anonymous usage events when enabled.
	AnalyticsEndpoint = "https://collector.thingibrowser.app/events"
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	logDir := ""
	if root := myApp.Storage().RootURI(); root != nil {
		logDir = root.Path()
	}
	logger := logging.New(settings.GetLogLevel(), logDir)
	logger.Info().Str("version", version).Msg("ThingiBrowser starting")

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	modelsDir := settings.GetModelsDirectory()
	if err := platform.CreateDirectoryIfNotExists(modelsDir); err != nil {
		logger.Warn().Err(err).Str("dir", modelsDir).Msg("Could not create models directory")
	}
	application := host.NewLocalApplication(modelsDir, logger)

	client := api.NewClient(api.Config{
		BaseURL: settings.GetAPIBaseURL(),
		Token:   settings.GetAPIToken(),
		PerPage: settings.GetResultsPerPage(),
		Logger:  logger,
	})

	var tracker analytics.Tracker = analytics.Noop{}
	if settings.GetAnalyticsEnabled() {
		analyticsClient := analytics.NewClient(AnalyticsEndpoint, settings.GetAnalyticsClientID(), logger)
		settings.SetAnalyticsClientID(analyticsClient.ClientID())
		tracker = analyticsClient
	}

	reporter := ui.NewErrorDialog(window)
	service := browse.NewService(client, application, reporter, tracker, logger)

	// The standalone "host" builds the browser UI into the main window when
	// the extension asks for its view component.
	fyneHost := host.NewFyneHost(myApp, window, PluginID, func(resourcePath string, contextValues map[string]any) error {
		boundService, ok := contextValues[extension.ContextService].(*browse.Service)
		if !ok {
			return fmt.Errorf("component context is missing %s", extension.ContextService)
		}
		logger.Debug().Str("resource", resourcePath).Msg("Creating browser component")
		ui.NewBrowser(window, boundService, settings, logger)
		window.Show()
		return nil
	})

	ext := extension.New(fyneHost, fyneHost, fyneHost, service, tracker, logger)

	// Open the browser straight away; the registered menu entry can reopen it.
	ext.ShowMainWindow()

	window.ShowAndRun()
}
