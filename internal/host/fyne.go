package host

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// ComponentBuilder materialises a UI component for a resource path with the
// given named context values. Injected from main to keep this package free of
// widget code.
type ComponentBuilder func(resourcePath string, contextValues map[string]any) error

// FyneHost adapts a Fyne application to the ExtensionHost, PluginRegistry
// and ComponentFactory contracts, so the extension shim can register against
// the standalone app exactly as it would against a slicer.
type FyneHost struct {
	app      fyne.App
	window   fyne.Window
	pluginID string
	build    ComponentBuilder

	menuName string
	items    []*fyne.MenuItem
}

// NewFyneHost creates a host around the given app and main window.
func NewFyneHost(app fyne.App, window fyne.Window, pluginID string, build ComponentBuilder) *FyneHost {
	return &FyneHost{
		app:      app,
		window:   window,
		pluginID: pluginID,
		build:    build,
	}
}

// PluginID returns the identifier the extension is registered under.
func (h *FyneHost) PluginID() string {
	return h.pluginID
}

// SetMenuName sets the display name of the extension's menu.
func (h *FyneHost) SetMenuName(name string) {
	h.menuName = name
	h.refreshMenu()
}

// AddMenuItem appends a menu item wired to the given activation callback.
func (h *FyneHost) AddMenuItem(label string, activate func()) {
	h.items = append(h.items, fyne.NewMenuItem(label, activate))
	h.refreshMenu()
}

// refreshMenu rebuilds the main menu from the registered items.
func (h *FyneHost) refreshMenu() {
	if h.menuName == "" || len(h.items) == 0 {
		return
	}
	h.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(h.menuName, h.items...)))
}

// PluginPath resolves the installation path for a plugin ID. Standalone, the
// "plugin" is the executable itself, so resources live next to it.
func (h *FyneHost) PluginPath(pluginID string) (string, error) {
	if pluginID != h.pluginID {
		return "", fmt.Errorf("unknown plugin: %s", pluginID)
	}
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving plugin path: %w", err)
	}
	return filepath.Dir(executable), nil
}

// CreateComponent delegates to the injected component builder.
func (h *FyneHost) CreateComponent(resourcePath string, contextValues map[string]any) error {
	if h.build == nil {
		return fmt.Errorf("no component builder registered")
	}
	return h.build(resourcePath, contextValues)
}
