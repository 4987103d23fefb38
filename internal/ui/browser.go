package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/thingibrowser/thingibrowser/internal/browse"
	"github.com/thingibrowser/thingibrowser/internal/config"
	"github.com/thingibrowser/thingibrowser/internal/model"
)

// Browser is the main browser window: search on top, results on the left,
// the active thing's details and files on the right.
type Browser struct {
	window   fyne.Window
	service  *browse.Service
	settings *config.Settings
	logger   zerolog.Logger

	searchEntry *widget.Entry
	searchBtn   *widget.Button
	resultsList *widget.List
	loadMoreBtn *widget.Button
	statusLabel *widget.Label
	downloadBar *widget.ProgressBarInfinite
	detail      *DetailView
	split       *container.Split

	// Local copy of the service's result list; the list widget callbacks
	// must not hit the service on every row redraw.
	things   []model.Thing
	searched bool
}

// NewBrowser creates the browser UI inside the given window and subscribes
// it to the browse service.
func NewBrowser(window fyne.Window, service *browse.Service, settings *config.Settings, logger zerolog.Logger) *Browser {
	b := &Browser{
		window:   window,
		service:  service,
		settings: settings,
		logger:   logger,
	}

	b.setupUI()
	service.Subscribe(b.onServiceEvent)
	return b
}

// setupUI creates and arranges all UI components
func (b *Browser) setupUI() {
	b.searchEntry = widget.NewEntry()
	b.searchEntry.SetPlaceHolder(LabelSearchPlaceholder)
	b.searchEntry.OnSubmitted = func(string) { b.onSearch() }

	b.searchBtn = widget.NewButton(LabelSearch, b.onSearch)

	settingsBtn := widget.NewButton(LabelSettings, b.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, b.searchBtn, b.searchEntry)

	b.statusLabel = widget.NewLabel("")
	b.statusLabel.Hide()

	b.downloadBar = widget.NewProgressBarInfinite()
	b.downloadBar.Hide()

	b.resultsList = widget.NewList(
		func() int { return len(b.things) },
		func() fyne.CanvasObject { return newResultRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { b.updateResultRow(id, obj) },
	)
	b.resultsList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(b.things) {
			return
		}
		b.service.ShowThingDetails(b.things[id].ID)
	}

	b.loadMoreBtn = widget.NewButton(LabelLoadMore, b.service.AddSearchPage)
	b.loadMoreBtn.Hide()

	resultsPane := container.NewBorder(b.statusLabel, b.loadMoreBtn, nil, nil, b.resultsList)

	b.detail = NewDetailView(b.service.HideThingDetails, b.service.DownloadThingFile)
	b.detail.Hide()

	b.split = container.NewHSplit(resultsPane, b.detail.Container())
	b.split.SetOffset(0.55)

	content := container.NewBorder(
		container.NewVBox(topPanel, b.downloadBar), // top
		nil, // bottom
		nil, // left
		nil, // right
		b.split,
	)
	b.window.SetContent(content)
}

// onSearch starts a new search from the entry contents.
func (b *Browser) onSearch() {
	terms := b.searchEntry.Text
	if terms == "" {
		return
	}
	b.searched = true
	b.service.Search(terms)
}

// onShowSettings opens the settings dialog.
func (b *Browser) onShowSettings() {
	NewSettingsDialog(b.settings, b.window).Show()
}

// onServiceEvent receives browse state changes. Events arrive on network
// goroutines, so every widget touch goes through fyne.Do.
func (b *Browser) onServiceEvent(event browse.Event) {
	b.logger.Debug().Stringer("event", event).Msg("Browse state changed")

	switch event {
	case browse.EventThingsChanged:
		fyne.Do(b.refreshResults)
	case browse.EventActiveThingChanged:
		fyne.Do(b.refreshActiveThing)
	case browse.EventActiveThingFilesChanged:
		files := b.service.ActiveThingFiles()
		fyne.Do(func() { b.detail.SetFiles(files) })
	case browse.EventDownloadingStateChanged:
		downloading := b.service.IsDownloading()
		fyne.Do(func() { b.refreshDownloadState(downloading) })
	}
}

// refreshResults re-reads the result list from the service.
func (b *Browser) refreshResults() {
	b.things = b.service.Things()
	b.resultsList.UnselectAll()
	b.resultsList.Refresh()

	if len(b.things) > 0 {
		b.statusLabel.Hide()
		b.loadMoreBtn.Show()
	} else {
		b.loadMoreBtn.Hide()
		if b.searched {
			b.statusLabel.SetText(LabelNoResults)
			b.statusLabel.Show()
		}
	}
}

// refreshActiveThing shows or hides the detail pane.
func (b *Browser) refreshActiveThing() {
	thing := b.service.ActiveThing()
	b.detail.SetThing(thing)
	if thing == nil {
		b.detail.Hide()
	} else {
		b.detail.Show()
	}
}

// refreshDownloadState toggles the busy bar and download buttons.
func (b *Browser) refreshDownloadState(downloading bool) {
	if downloading {
		b.downloadBar.Show()
	} else {
		b.downloadBar.Hide()
	}
	b.detail.SetDownloading(downloading)
}

// newResultRow builds the template row for the results list.
func newResultRow() fyne.CanvasObject {
	name := widget.NewLabel("")
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Truncation = fyne.TextTruncateEllipsis

	creator := widget.NewLabel("")
	creator.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, nil, nil, creator, name)
}

// updateResultRow fills a row with a search result.
func (b *Browser) updateResultRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(b.things) {
		return
	}
	thing := b.things[id]

	row := obj.(*fyne.Container)
	name := row.Objects[0].(*widget.Label)
	creator := row.Objects[1].(*widget.Label)

	name.SetText(thing.DisplayName())
	if thing.Creator.Name != "" {
		creator.SetText("by " + thing.Creator.Name)
	} else {
		creator.SetText("")
	}
}
