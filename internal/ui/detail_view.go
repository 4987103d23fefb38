package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/thingibrowser/thingibrowser/internal/model"
)

// DetailView renders the active thing: metadata on top, the importable
// files with download buttons below.
type DetailView struct {
	root *fyne.Container

	backBtn          *widget.Button
	nameLabel        *widget.Label
	creatorLabel     *widget.Label
	descriptionLabel *widget.Label
	filesBox         *fyne.Container
	noFilesLabel     *widget.Label

	onBack     func()
	onDownload func(fileID int, fileName string)

	files        []model.ThingFile
	downloadBtns []*widget.Button
}

// NewDetailView creates the detail pane. onBack hides the details again;
// onDownload starts a file download.
func NewDetailView(onBack func(), onDownload func(fileID int, fileName string)) *DetailView {
	d := &DetailView{
		onBack:     onBack,
		onDownload: onDownload,
	}

	d.backBtn = widget.NewButton(LabelBack, func() {
		if d.onBack != nil {
			d.onBack()
		}
	})

	d.nameLabel = widget.NewLabel("")
	d.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	d.nameLabel.Wrapping = fyne.TextWrapWord

	d.creatorLabel = widget.NewLabel("")

	d.descriptionLabel = widget.NewLabel("")
	d.descriptionLabel.Wrapping = fyne.TextWrapWord

	d.noFilesLabel = widget.NewLabel(LabelNoFiles)
	d.noFilesLabel.Hide()

	d.filesBox = container.NewVBox()

	header := container.NewBorder(nil, nil, nil, d.backBtn, d.nameLabel)
	meta := container.NewVBox(header, d.creatorLabel, widget.NewSeparator())
	body := container.NewVScroll(container.NewVBox(d.descriptionLabel, widget.NewSeparator(), d.noFilesLabel, d.filesBox))

	d.root = container.NewBorder(meta, nil, nil, nil, body)
	return d
}

// Container returns the pane's root object.
func (d *DetailView) Container() fyne.CanvasObject {
	return d.root
}

// Show makes the pane visible.
func (d *DetailView) Show() { d.root.Show() }

// Hide hides the pane.
func (d *DetailView) Hide() { d.root.Hide() }

// SetThing updates the metadata section. A nil thing clears it.
func (d *DetailView) SetThing(thing *model.Thing) {
	if thing == nil {
		d.nameLabel.SetText("")
		d.creatorLabel.SetText("")
		d.descriptionLabel.SetText("")
		return
	}

	d.nameLabel.SetText(thing.DisplayName())
	if thing.Creator.Name != "" {
		d.creatorLabel.SetText("by " + thing.Creator.Name + MiddleDotSeparator + fmt.Sprintf("%d likes", thing.LikeCount))
	} else {
		d.creatorLabel.SetText(DashPlaceholder)
	}
	d.descriptionLabel.SetText(thing.Description)
}

// SetFiles replaces the file rows. The list is already filtered down to
// importable types by the browse service.
func (d *DetailView) SetFiles(files []model.ThingFile) {
	d.files = files
	d.filesBox.RemoveAll()
	d.downloadBtns = nil

	if len(files) == 0 {
		d.noFilesLabel.Show()
		return
	}
	d.noFilesLabel.Hide()

	for _, file := range files {
		d.filesBox.Add(d.newFileRow(file))
	}
	d.filesBox.Refresh()
}

// SetDownloading disables the download buttons while a download runs.
func (d *DetailView) SetDownloading(downloading bool) {
	for _, btn := range d.downloadBtns {
		if downloading {
			btn.SetText(LabelDownloading)
			btn.Disable()
		} else {
			btn.SetText(LabelDownload)
			btn.Enable()
		}
	}
}

// newFileRow builds one downloadable-file row.
func (d *DetailView) newFileRow(file model.ThingFile) fyne.CanvasObject {
	fileID := file.ID
	fileName := file.Name

	downloadBtn := widget.NewButton(LabelDownload, func() {
		if d.onDownload != nil {
			d.onDownload(fileID, fileName)
		}
	})
	d.downloadBtns = append(d.downloadBtns, downloadBtn)

	label := widget.NewLabel(fileName + MiddleDotSeparator + formatFileSize(file.Size))
	label.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, nil, nil, downloadBtn, label)
}

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes <= 0 {
		return DashPlaceholder
	}
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
