package host

// Package host defines the capability interfaces the app requires from a
// hosting slicer application (model import, supported mesh types, plugin
// registry, UI component creation, menu registration) and provides the
// standalone implementations used when running as its own desktop app.
