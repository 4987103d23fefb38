package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	DetailPaneWidth float32 = 360
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Labels
const (
	LabelSearchPlaceholder = "Search Thingiverse..."
	LabelSearch            = "Search"
	LabelLoadMore          = "Load more"
	LabelBack              = "Back"
	LabelDownload          = "Download"
	LabelDownloading       = "Downloading..."
	LabelSettings          = "Settings"
	LabelNoResults         = "No results. Try a different search."
	LabelNoFiles           = "No printable files for this thing."

	ErrorDialogTitle  = "Oh no!"
	ErrorDialogFormat = "Thingiverse returned an error: %s."
)

// File size formatting
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)
