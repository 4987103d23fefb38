package browse

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thingibrowser/thingibrowser/internal/analytics"
	"github.com/thingibrowser/thingibrowser/internal/api"
	"github.com/thingibrowser/thingibrowser/internal/host"
	"github.com/thingibrowser/thingibrowser/internal/model"
	"github.com/thingibrowser/thingibrowser/internal/platform"
)

// Service serves Thingiverse content to the UI. It owns all browse state and
// forwards operations to the API client asynchronously.
type Service struct {
	mu sync.Mutex

	client    api.Client
	app       host.Application
	reporter  ErrorReporter
	analytics analytics.Tracker
	logger    zerolog.Logger

	// Search state. searchSeq identifies the current search session so that
	// responses from a superseded search are dropped instead of corrupting
	// the newer result list.
	things    []model.Thing
	session   model.SearchSession
	searchSeq uint64

	// Detail state for the thing currently inspected.
	activeThing      *model.Thing
	activeThingFiles []model.ThingFile

	downloading bool

	// Supported file extensions cached from the host application. Must be
	// refreshed via UpdateSupportedFileTypes before the first file list
	// arrives; there is no automatic refresh.
	supportedExtensions map[string]struct{}

	listeners []Listener
}

// NewService creates the content bridge. All collaborators are required
// except analytics, which falls back to a no-op tracker.
func NewService(client api.Client, app host.Application, reporter ErrorReporter,
	tracker analytics.Tracker, logger zerolog.Logger) *Service {
	if tracker == nil {
		tracker = analytics.Noop{}
	}
	return &Service{
		client:              client,
		app:                 app,
		reporter:            reporter,
		analytics:           tracker,
		logger:              logger,
		supportedExtensions: make(map[string]struct{}),
	}
}

// Subscribe registers a listener for state change events.
func (s *Service) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// UpdateSupportedFileTypes refreshes the cached set of file extensions the
// host application can import. Called when the browser window is opened.
func (s *Service) UpdateSupportedFileTypes() {
	extensions := s.app.SupportedFileExtensions()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.supportedExtensions = make(map[string]struct{}, len(extensions))
	for _, extension := range extensions {
		s.supportedExtensions[extension] = struct{}{}
	}
}

// Things returns the current search results.
func (s *Service) Things() []model.Thing {
	s.mu.Lock()
	defer s.mu.Unlock()
	things := make([]model.Thing, len(s.things))
	copy(things, s.things)
	return things
}

// ActiveThing returns the details of the currently inspected thing, or nil.
func (s *Service) ActiveThing() *model.Thing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeThing
}

// HasActiveThing reports whether a thing is currently inspected.
func (s *Service) HasActiveThing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeThing != nil
}

// ActiveThingFiles returns the active thing's files, already filtered down
// to types the host application can import.
func (s *Service) ActiveThingFiles() []model.ThingFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := make([]model.ThingFile, len(s.activeThingFiles))
	copy(files, s.activeThingFiles)
	return files
}

// IsDownloading reports whether a file download is in progress.
func (s *Service) IsDownloading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloading
}

// Search starts a new search session: prior results and the active thing are
// cleared, pagination resets to page 1, and the first page is requested.
func (s *Service) Search(terms string) {
	s.mu.Lock()
	s.things = nil
	s.activeThing = nil
	s.searchSeq++
	seq := s.searchSeq
	s.session = model.SearchSession{Terms: terms, Page: 1}
	page := s.session.Page
	s.mu.Unlock()

	s.notify(EventThingsChanged)
	s.notify(EventActiveThingChanged)

	s.analytics.TrackEvent(analytics.EventSearch, map[string]string{"terms": terms})

	go s.runSearch(seq, terms, page)
}

// AddSearchPage requests the next page of the current search and appends the
// results to the existing list.
func (s *Service) AddSearchPage() {
	s.mu.Lock()
	seq := s.searchSeq
	s.session.Page++
	terms := s.session.Terms
	page := s.session.Page
	s.mu.Unlock()

	go s.runSearch(seq, terms, page)
}

// runSearch performs one page request and appends the results, unless a
// newer search superseded this one while the request was in flight.
func (s *Service) runSearch(seq uint64, terms string, page int) {
	things, err := s.client.Search(context.Background(), terms, page)
	if err != nil {
		s.onRequestFailed(err)
		return
	}

	s.mu.Lock()
	if seq != s.searchSeq {
		s.mu.Unlock()
		s.logger.Debug().Str("terms", terms).Int("page", page).Msg("Dropping stale search response")
		return
	}
	s.things = append(s.things, things...)
	s.mu.Unlock()

	s.notify(EventThingsChanged)
}

// ShowThingDetails fetches and exposes the details of a single thing. The
// metadata and file list are requested independently; each updates its own
// slice of state as it arrives.
func (s *Service) ShowThingDetails(thingID int) {
	s.analytics.TrackEvent(analytics.EventThingDetails, map[string]string{"thing_id": strconv.Itoa(thingID)})

	go func() {
		thing, err := s.client.GetThing(context.Background(), thingID)
		if err != nil {
			s.onRequestFailed(err)
			return
		}

		s.mu.Lock()
		s.activeThing = thing
		s.mu.Unlock()
		s.notify(EventActiveThingChanged)
	}()

	go func() {
		files, err := s.client.GetThingFiles(context.Background(), thingID)
		if err != nil {
			s.onRequestFailed(err)
			return
		}

		s.mu.Lock()
		s.activeThingFiles = s.filterSupportedLocked(files)
		s.mu.Unlock()
		s.notify(EventActiveThingFilesChanged)
	}()
}

// HideThingDetails clears the active thing, hiding the detail view.
func (s *Service) HideThingDetails() {
	s.mu.Lock()
	s.activeThing = nil
	s.mu.Unlock()
	s.notify(EventActiveThingChanged)
}

// DownloadThingFile downloads a thing file and imports it into the host
// application. The downloaded bytes are written to a temp file carrying the
// original file name so the importer can recognise the type.
func (s *Service) DownloadThingFile(fileID int, fileName string) {
	s.mu.Lock()
	s.downloading = true
	s.mu.Unlock()
	s.notify(EventDownloadingStateChanged)

	s.analytics.TrackEvent(analytics.EventFileDownload, map[string]string{"file_name": fileName})

	go func() {
		data, err := s.client.DownloadFile(context.Background(), fileID)
		if err != nil {
			s.finishDownload()
			s.onRequestFailed(err)
			return
		}
		s.onDownloadFinished(data, fileName)
	}()
}

// onDownloadFinished writes the payload to disk and hands it to the host.
func (s *Service) onDownloadFinished(data []byte, fileName string) {
	defer s.finishDownload()

	path, err := platform.WriteTempFile(data, fileName)
	if err != nil {
		s.onRequestFailed(err)
		return
	}
	s.logger.Info().Str("path", path).Msg("Thing file downloaded")

	if err := s.app.LoadModel(path); err != nil {
		s.onRequestFailed(err)
		return
	}
	s.analytics.TrackEvent(analytics.EventImportSuccess, map[string]string{"file_name": fileName})
}

// finishDownload clears the downloading flag. Runs on both the success and
// the failure path so a failed download cannot leave the UI stuck.
func (s *Service) finishDownload() {
	s.mu.Lock()
	s.downloading = false
	s.mu.Unlock()
	s.notify(EventDownloadingStateChanged)
}

// filterSupportedLocked keeps only files whose extension the host can
// import. Caller must hold s.mu.
func (s *Service) filterSupportedLocked(files []model.ThingFile) []model.ThingFile {
	supported := make([]model.ThingFile, 0, len(files))
	for _, file := range files {
		if _, ok := s.supportedExtensions[file.Extension()]; ok {
			supported = append(supported, file)
		}
	}
	return supported
}

// onRequestFailed is the single shared failure handler: every failed request
// ends in one error dialog with a short message and a raw detail dump.
func (s *Service) onRequestFailed(err error) {
	message := "Unknown"
	detail := ""

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		message = apiErr.UserMessage()
		detail = apiErr.Detail()
	} else if err != nil {
		message = err.Error()
	}

	s.logger.Warn().Err(err).Msg("Thingiverse request failed")
	s.reporter.ReportError(message, detail)
}

// notify delivers an event to all subscribers outside the service lock.
func (s *Service) notify(event Event) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}
