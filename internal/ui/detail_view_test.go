package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/thingibrowser/thingibrowser/internal/model"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, DashPlaceholder},
		{-1, DashPlaceholder},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := formatFileSize(tt.bytes); got != tt.expected {
			t.Errorf("formatFileSize(%d) = %q, expected %q", tt.bytes, got, tt.expected)
		}
	}
}

func TestDetailView_SetThing(t *testing.T) {
	test.NewApp()

	d := NewDetailView(nil, nil)
	d.SetThing(&model.Thing{
		Name:        "Benchy",
		Description: "A calibration boat",
		Creator:     model.Creator{Name: "creator"},
		LikeCount:   3,
	})

	assert.Equal(t, "Benchy", d.nameLabel.Text)
	assert.Contains(t, d.creatorLabel.Text, "creator")
	assert.Equal(t, "A calibration boat", d.descriptionLabel.Text)

	d.SetThing(nil)
	assert.Empty(t, d.nameLabel.Text)
}

func TestDetailView_SetFiles(t *testing.T) {
	test.NewApp()

	var downloadedID int
	var downloadedName string
	d := NewDetailView(nil, func(fileID int, fileName string) {
		downloadedID = fileID
		downloadedName = fileName
	})

	d.SetFiles([]model.ThingFile{
		{ID: 1, Name: "benchy.stl", Size: 2048},
		{ID: 2, Name: "lid.stl", Size: 1024},
	})
	assert.Len(t, d.downloadBtns, 2)
	assert.False(t, d.noFilesLabel.Visible())

	test.Tap(d.downloadBtns[1])
	assert.Equal(t, 2, downloadedID)
	assert.Equal(t, "lid.stl", downloadedName)

	d.SetFiles(nil)
	assert.Empty(t, d.downloadBtns)
	assert.True(t, d.noFilesLabel.Visible())
}

func TestDetailView_SetDownloading(t *testing.T) {
	test.NewApp()

	d := NewDetailView(nil, nil)
	d.SetFiles([]model.ThingFile{{ID: 1, Name: "benchy.stl"}})

	d.SetDownloading(true)
	assert.True(t, d.downloadBtns[0].Disabled())

	d.SetDownloading(false)
	assert.False(t, d.downloadBtns[0].Disabled())
}

func TestDetailView_BackButton(t *testing.T) {
	test.NewApp()

	backCalled := false
	d := NewDetailView(func() { backCalled = true }, nil)

	test.Tap(d.backBtn)
	assert.True(t, backCalled)
}
