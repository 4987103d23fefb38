package ui

// Package ui contains the Fyne-based browser window: search box, result
// list with pagination, the thing detail pane with downloadable files, and
// the modal error dialog. It subscribes to browse service events and hops
// back onto the Fyne render thread for every update.
