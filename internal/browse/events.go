package browse

// Event identifies which slice of the service state changed. Subscribers
// re-read the matching accessor when they receive one.
type Event int

const (
	// EventThingsChanged fires when the search result list changed.
	EventThingsChanged Event = iota

	// EventActiveThingChanged fires when the active thing was set or cleared.
	EventActiveThingChanged

	// EventActiveThingFilesChanged fires when the active thing's file list changed.
	EventActiveThingFilesChanged

	// EventDownloadingStateChanged fires when a file download started or finished.
	EventDownloadingStateChanged
)

// String returns the event name for logging.
func (e Event) String() string {
	switch e {
	case EventThingsChanged:
		return "ThingsChanged"
	case EventActiveThingChanged:
		return "ActiveThingChanged"
	case EventActiveThingFilesChanged:
		return "ActiveThingFilesChanged"
	case EventDownloadingStateChanged:
		return "DownloadingStateChanged"
	default:
		return "Unknown"
	}
}

// Listener receives change events. Listeners are invoked outside the service
// lock and may call any accessor; UI implementations are responsible for
// hopping back onto their render thread.
type Listener func(Event)

// ErrorReporter renders a request failure to the user. Implemented by the UI
// as a modal dialog with a short message and a raw detail dump.
type ErrorReporter interface {
	ReportError(message, detail string)
}
