package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/thingibrowser/thingibrowser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	tokenEntry     *widget.Entry
	baseURLEntry   *widget.Entry
	perPageEntry   *widget.Entry
	modelsDirEntry *widget.Entry
	analyticsCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.tokenEntry = widget.NewPasswordEntry()
	sd.tokenEntry.SetPlaceHolder("Thingiverse API token")

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.perPageEntry = widget.NewEntry()
	sd.perPageEntry.SetPlaceHolder("1-100")

	sd.modelsDirEntry = widget.NewEntry()
	sd.modelsDirEntry.SetPlaceHolder("Models directory path")

	sd.analyticsCheck = widget.NewCheck("Send anonymous usage statistics", nil)

	form := container.NewVBox(
		widget.NewLabel("API Settings"),
		widget.NewSeparator(),

		widget.NewLabel("API Token:"),
		sd.tokenEntry,

		widget.NewLabel("API Base URL:"),
		sd.baseURLEntry,

		widget.NewLabel("Results Per Page:"),
		sd.perPageEntry,

		widget.NewLabel("Import Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Models Directory:"),
		sd.modelsDirEntry,

		sd.analyticsCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(LabelSettings, "Save", "Cancel", form,
		func(save bool) {
			if save {
				sd.onSave()
			}
		}, sd.window)
	sd.dialog.Resize(fyne.NewSize(480, 420))
}

// loadCurrentSettings fills the form from the stored preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.tokenEntry.SetText(sd.settings.GetAPIToken())
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.perPageEntry.SetText(strconv.Itoa(sd.settings.GetResultsPerPage()))
	sd.modelsDirEntry.SetText(sd.settings.GetModelsDirectory())
	sd.analyticsCheck.SetChecked(sd.settings.GetAnalyticsEnabled())
}

// onSave persists the form values. API settings take effect on next launch.
func (sd *SettingsDialog) onSave() {
	sd.settings.SetAPIToken(sd.tokenEntry.Text)
	if sd.baseURLEntry.Text != "" {
		sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	}
	if perPage, err := strconv.Atoi(sd.perPageEntry.Text); err == nil {
		sd.settings.SetResultsPerPage(perPage)
	}
	if sd.modelsDirEntry.Text != "" {
		sd.settings.SetModelsDirectory(sd.modelsDirEntry.Text)
	}
	sd.settings.SetAnalyticsEnabled(sd.analyticsCheck.Checked)
}
