package host

// Application is the slicer-side surface the browse service depends on:
// which mesh file types can be imported, and importing a downloaded file.
type Application interface {
	// SupportedFileExtensions returns the lowercase file extensions (without
	// leading dot) the application can read as a model.
	SupportedFileExtensions() []string

	// LoadModel imports the file at the given local path as a new model.
	LoadModel(path string) error
}

// PluginRegistry resolves where a plugin is installed so UI resources can be
// located relative to it.
type PluginRegistry interface {
	PluginPath(pluginID string) (string, error)
}

// ComponentFactory instantiates a UI component from a resource path, binding
// the given named values so the component can reach them.
type ComponentFactory interface {
	CreateComponent(resourcePath string, contextValues map[string]any) error
}

// ExtensionHost is the framework surface an extension registers itself with.
type ExtensionHost interface {
	PluginID() string
	SetMenuName(name string)
	AddMenuItem(label string, activate func())
}
