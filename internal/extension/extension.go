package extension

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/thingibrowser/thingibrowser/internal/analytics"
	"github.com/thingibrowser/thingibrowser/internal/browse"
	"github.com/thingibrowser/thingibrowser/internal/host"
)

// MenuName is the display name the extension registers under.
const MenuName = "ThingiBrowser"

// MenuItemOpen is the label of the single menu entry.
const MenuItemOpen = "Open"

// ViewResource is the main window's UI resource, relative to the plugin
// installation path.
const ViewResource = "views/ThingiBrowser"

// Context value names the created component binds against.
const (
	ContextService   = "ThingiService"
	ContextAnalytics = "Analytics"
)

// Extension registers the browser with a host framework and opens its main
// window on demand.
type Extension struct {
	framework host.ExtensionHost
	registry  host.PluginRegistry
	factory   host.ComponentFactory
	service   *browse.Service
	analytics analytics.Tracker
	logger    zerolog.Logger
}

// New registers the extension: one menu named MenuName with a single "Open"
// item wired to ShowMainWindow.
func New(framework host.ExtensionHost, registry host.PluginRegistry, factory host.ComponentFactory,
	service *browse.Service, tracker analytics.Tracker, logger zerolog.Logger) *Extension {
	if tracker == nil {
		tracker = analytics.Noop{}
	}
	e := &Extension{
		framework: framework,
		registry:  registry,
		factory:   factory,
		service:   service,
		analytics: tracker,
		logger:    logger,
	}

	framework.SetMenuName(MenuName)
	framework.AddMenuItem(MenuItemOpen, e.ShowMainWindow)

	return e
}

// ShowMainWindow resolves the UI resource relative to this plugin's install
// path and asks the host to instantiate it, passing the browse service and
// the analytics tracker as named context values.
func (e *Extension) ShowMainWindow() {
	pluginPath, err := e.registry.PluginPath(e.framework.PluginID())
	if err != nil {
		e.logger.Error().Err(err).Msg("Could not resolve plugin path")
		return
	}

	// The host looks up the supported mesh types only on demand, so the
	// cached set is refreshed every time the window opens.
	e.service.UpdateSupportedFileTypes()
	e.analytics.TrackEvent(analytics.EventAppOpen, nil)

	resource := filepath.Join(pluginPath, ViewResource)
	err = e.factory.CreateComponent(resource, map[string]any{
		ContextService:   e.service,
		ContextAnalytics: e.analytics,
	})
	if err != nil {
		e.logger.Error().Err(err).Str("resource", resource).Msg("Could not create main window")
	}
}
