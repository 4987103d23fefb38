package browse

// Package browse implements the content bridge between the Thingiverse API
// client and the UI: search results, the active thing and its files, and the
// download-in-progress flag. Network calls run on their own goroutines;
// state mutations are serialized by the service mutex and announced to
// subscribers through change events.
