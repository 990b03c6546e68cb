package ui

import (
	"sync"

	"carparkSimulator/src/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const displayInit = "– – –"

// InfoDisplay is the live parking information window: one row per display
// field, values refreshed by the DisplayRefresher. Implements models.Surface.
type InfoDisplay struct {
	Window fyne.Window

	mutex  sync.Mutex
	values map[string]*widget.Label
	closed bool
}

func NewInfoDisplay(app fyne.App, title string) *InfoDisplay {
	window := app.NewWindow(title + " - Parking Info")
	window.Resize(fyne.NewSize(500, 250))
	window.SetFixedSize(true)

	d := &InfoDisplay{
		Window: window,
		values: make(map[string]*widget.Label),
	}

	rows := make([]fyne.CanvasObject, 0, len(models.DisplayFields)*2)
	for _, field := range models.DisplayFields {
		label := widget.NewLabel(field + ":")
		value := widget.NewLabel(displayInit)
		value.TextStyle = fyne.TextStyle{Bold: true}
		d.values[field] = value
		rows = append(rows, label, value)
	}
	window.SetContent(container.NewGridWithColumns(2, rows...))

	window.SetOnClosed(func() {
		d.mutex.Lock()
		d.closed = true
		d.mutex.Unlock()
	})

	return d
}

// Update sets the value labels for the fields present in values. Updates
// after the window is closed are dropped.
func (d *InfoDisplay) Update(values map[string]string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.closed {
		return
	}
	for field, text := range values {
		if label, ok := d.values[field]; ok {
			label.SetText(text)
		}
	}
}

// IsOpen reports whether the window still exists.
func (d *InfoDisplay) IsOpen() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return !d.closed
}

func (d *InfoDisplay) Show() {
	d.Window.Show()
}
