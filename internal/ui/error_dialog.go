package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ErrorDialog implements browse.ErrorReporter: every failed request becomes
// one modal dialog with a short message and the raw error payload below it.
type ErrorDialog struct {
	window fyne.Window
}

// NewErrorDialog creates a reporter showing dialogs on the given window.
func NewErrorDialog(window fyne.Window) *ErrorDialog {
	return &ErrorDialog{window: window}
}

// ReportError shows the dialog. Safe to call from network goroutines.
func (e *ErrorDialog) ReportError(message, detail string) {
	fyne.Do(func() {
		text := widget.NewLabel(fmt.Sprintf(ErrorDialogFormat, message))
		text.Wrapping = fyne.TextWrapWord

		content := container.NewVBox(text)
		if detail != "" {
			detailLabel := widget.NewLabel(detail)
			detailLabel.Wrapping = fyne.TextWrapBreak
			detailLabel.TextStyle = fyne.TextStyle{Monospace: true}

			scroll := container.NewVScroll(detailLabel)
			scroll.SetMinSize(fyne.NewSize(DetailPaneWidth, 120))
			content.Add(scroll)
		}

		dialog.NewCustom(ErrorDialogTitle, "Close", content, e.window).Show()
	})
}
