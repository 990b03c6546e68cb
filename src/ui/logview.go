package ui

import (
	"fmt"
	"sync"

	"carparkSimulator/src/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// LogView is a console window mirroring the activity log. Its Append method
// is wired as the ActivityLog sink at construction time.
type LogView struct {
	Window fyne.Window

	mutex  sync.Mutex
	lines  []string
	list   *widget.List
	closed bool
}

func NewLogView(app fyne.App) *LogView {
	window := app.NewWindow("Activity Log")
	window.Resize(fyne.NewSize(600, 400))

	v := &LogView{Window: window}
	v.list = widget.NewList(
		func() int {
			v.mutex.Lock()
			defer v.mutex.Unlock()
			return len(v.lines)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			v.mutex.Lock()
			defer v.mutex.Unlock()
			if i < len(v.lines) {
				o.(*widget.Label).SetText(v.lines[i])
			}
		},
	)
	window.SetContent(v.list)

	window.SetOnClosed(func() {
		v.mutex.Lock()
		v.closed = true
		v.mutex.Unlock()
	})

	return v
}

// Append adds one formatted entry and scrolls to it. Safe to call after the
// window is closed; the entry is simply dropped.
func (v *LogView) Append(entry models.LogEntry) {
	v.mutex.Lock()
	if v.closed {
		v.mutex.Unlock()
		return
	}
	v.lines = append(v.lines, fmt.Sprintf("[%s] %s", entry.Timestamp.Format("15:04:05"), entry.Message))
	n := len(v.lines)
	v.mutex.Unlock()

	v.list.Refresh()
	v.list.ScrollTo(n - 1)
}

func (v *LogView) Show() {
	v.Window.Show()
}
