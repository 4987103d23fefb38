package extension

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingibrowser/thingibrowser/internal/analytics"
	"github.com/thingibrowser/thingibrowser/internal/browse"
)

// fakeFramework records menu registration calls.
type fakeFramework struct {
	menuNames []string
	items     []string
	activates []func()
}

func (f *fakeFramework) PluginID() string { return "ThingiBrowser" }

func (f *fakeFramework) SetMenuName(name string) {
	f.menuNames = append(f.menuNames, name)
}

func (f *fakeFramework) AddMenuItem(label string, activate func()) {
	f.items = append(f.items, label)
	f.activates = append(f.activates, activate)
}

// fakeRegistry resolves plugin paths.
type fakeRegistry struct {
	requested []string
	path      string
	err       error
}

func (r *fakeRegistry) PluginPath(pluginID string) (string, error) {
	r.requested = append(r.requested, pluginID)
	return r.path, r.err
}

// fakeFactory records component creation requests.
type fakeFactory struct {
	resources []string
	contexts  []map[string]any
	err       error
}

func (f *fakeFactory) CreateComponent(resourcePath string, contextValues map[string]any) error {
	f.resources = append(f.resources, resourcePath)
	f.contexts = append(f.contexts, contextValues)
	return f.err
}

// stubApp satisfies host.Application for the browse service.
type stubApp struct{}

func (stubApp) SupportedFileExtensions() []string { return []string{"stl"} }
func (stubApp) LoadModel(string) error            { return nil }

// stubReporter satisfies browse.ErrorReporter.
type stubReporter struct{}

func (stubReporter) ReportError(string, string) {}

func newTestExtension(framework *fakeFramework, registry *fakeRegistry, factory *fakeFactory) *Extension {
	service := browse.NewService(nil, stubApp{}, stubReporter{}, nil, zerolog.Nop())
	return New(framework, registry, factory, service, analytics.Noop{}, zerolog.Nop())
}

func TestExtensionLoads(t *testing.T) {
	framework := &fakeFramework{}
	newTestExtension(framework, &fakeRegistry{path: "the/path"}, &fakeFactory{})

	require.Equal(t, []string{"ThingiBrowser"}, framework.menuNames,
		"menu must be registered exactly once with the fixed name")
	require.Equal(t, []string{"Open"}, framework.items)
	require.Len(t, framework.activates, 1)
	assert.NotNil(t, framework.activates[0])
}

func TestExtensionOpensMainWindow(t *testing.T) {
	framework := &fakeFramework{}
	registry := &fakeRegistry{path: "the/path"}
	factory := &fakeFactory{}
	e := newTestExtension(framework, registry, factory)

	e.ShowMainWindow()

	require.Equal(t, []string{"ThingiBrowser"}, registry.requested)
	require.Len(t, factory.resources, 1)
	assert.Equal(t, filepath.Join("the", "path", "views", "ThingiBrowser"), factory.resources[0])

	require.Len(t, factory.contexts, 1)
	context := factory.contexts[0]
	assert.Contains(t, context, ContextService)
	assert.Contains(t, context, ContextAnalytics)
	assert.IsType(t, &browse.Service{}, context[ContextService])
}

func TestExtensionOpensViaMenuItem(t *testing.T) {
	framework := &fakeFramework{}
	registry := &fakeRegistry{path: "the/path"}
	factory := &fakeFactory{}
	newTestExtension(framework, registry, factory)

	// Activating the registered menu item opens the window.
	framework.activates[0]()

	assert.Len(t, factory.resources, 1)
}

func TestShowMainWindow_RegistryFailure(t *testing.T) {
	framework := &fakeFramework{}
	registry := &fakeRegistry{err: fmt.Errorf("plugin not found")}
	factory := &fakeFactory{}
	e := newTestExtension(framework, registry, factory)

	assert.NotPanics(t, e.ShowMainWindow)
	assert.Empty(t, factory.resources, "no component is created when the path cannot be resolved")
}

func TestShowMainWindow_FactoryFailureDoesNotPanic(t *testing.T) {
	framework := &fakeFramework{}
	registry := &fakeRegistry{path: "the/path"}
	factory := &fakeFactory{err: fmt.Errorf("resource missing")}
	e := newTestExtension(framework, registry, factory)

	assert.NotPanics(t, e.ShowMainWindow)
}
