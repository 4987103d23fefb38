package extension

// Package extension contains the registration shim: it announces the
// browser to the host framework as a menu with a single "Open" entry and
// opens the main window, binding the browse service and analytics tracker
// into the created UI component.
