package ui

import (
	"strconv"
	"strings"
	"time"

	"carparkSimulator/src/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SensorSimulator is the window that produces simulated sensor events:
// entry/exit buttons, a license-plate field, a debounced temperature field
// and a reset button. It only calls the dispatcher's Emit entry points;
// it holds no carpark state of its own.
type SensorSimulator struct {
	Window fyne.Window

	dispatcher *models.SensorDispatcher
	debouncer  *models.Debouncer

	plateEntry *widget.Entry
	tempEntry  *widget.Entry
}

func NewSensorSimulator(app fyne.App, dispatcher *models.SensorDispatcher, debounceWindow time.Duration) *SensorSimulator {
	window := app.NewWindow("Sensor Simulator")
	window.Resize(fyne.NewSize(400, 300))

	s := &SensorSimulator{
		Window:     window,
		dispatcher: dispatcher,
		debouncer:  models.NewDebouncer(debounceWindow),
		plateEntry: widget.NewEntry(),
		tempEntry:  widget.NewEntry(),
	}

	s.plateEntry.SetPlaceHolder("ABC123")
	s.tempEntry.SetPlaceHolder("20.0")
	s.tempEntry.OnChanged = s.onTempChange

	enter := widget.NewButton("🚗 Car Enters", s.carIn)
	leave := widget.NewButton("Car Leaves 🚙", s.carOut)
	reset := widget.NewButton("Reset Parking", s.reset)

	form := container.NewGridWithColumns(2,
		widget.NewLabel("License Plate"), s.plateEntry,
		widget.NewLabel("Temperature (°C)"), s.tempEntry,
	)
	window.SetContent(container.NewVBox(enter, leave, form, reset))

	return s
}

// Close cancels any pending debounced temperature emit. Call when the
// window goes away.
func (s *SensorSimulator) Close() {
	s.debouncer.Stop()
}

func (s *SensorSimulator) plate() string {
	return strings.TrimSpace(s.plateEntry.Text)
}

func (s *SensorSimulator) carIn() {
	s.dispatcher.EmitIncoming(s.plate())
}

func (s *SensorSimulator) carOut() {
	s.dispatcher.EmitOutgoing(s.plate())
}

// onTempChange fires once per debounce window with the last typed value.
// Non-numeric text never reaches the dispatcher.
func (s *SensorSimulator) onTempChange(text string) {
	s.debouncer.Trigger(func() {
		temp, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return
		}
		s.dispatcher.EmitTemperature(temp)
	})
}

func (s *SensorSimulator) reset() {
	s.dispatcher.EmitReset()
}

func (s *SensorSimulator) Show() {
	s.Window.Show()
}
