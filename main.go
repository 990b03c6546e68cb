package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"carparkSimulator/src/config"
	"carparkSimulator/src/logging"
	"carparkSimulator/src/models"
	"carparkSimulator/src/traffic"
	"carparkSimulator/src/ui"

	"fyne.io/fyne/v2/app"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	headless := flag.Bool("headless", false, "run with a console surface instead of windows")
	demo := flag.Bool("demo", false, "generate random traffic in the background")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger, closeLog := logging.Init("")
		logger.Error("invalid configuration", "error", err)
		closeLog()
		os.Exit(1)
	}
	if *headless {
		cfg.Headless = true
	}

	logger, closeLog := logging.Init(cfg.Log.Dir)
	defer closeLog()

	if cfg.Headless {
		runHeadless(cfg, logger, *demo)
		return
	}
	runWindows(cfg, logger, *demo)
}

// runWindows wires the sensor simulator, the info display and the activity
// log console, then hands control to the Fyne event loop.
func runWindows(cfg config.Config, logger *slog.Logger, demo bool) {
	myApp := app.New()
	dispatcher := models.NewSensorDispatcher(logger)

	display := ui.NewInfoDisplay(myApp, "City Carpark")
	logView := ui.NewLogView(myApp)
	sensor := ui.NewSensorSimulator(myApp, dispatcher, cfg.Sensor.DebounceWindow.Std())

	refresher := models.NewDisplayRefresher(display, models.SystemClock, logger, cfg.Refresh.Period.Std())
	activityLog := models.NewActivityLog(models.SystemClock, cfg.Log.MaxEntries, logView.Append)
	carpark := models.NewCarpark(cfg.Capacity, activityLog, models.SystemClock, logger, refresher.Refresh)
	refresher.Attach(carpark)
	dispatcher.Register(carpark)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		refresher.Run(ctx)
	}()

	if demo {
		generator := traffic.NewGenerator(dispatcher, logger, 0.5, models.SystemClock().UnixNano())
		wg.Add(1)
		go func() {
			defer wg.Done()
			generator.Run(ctx)
		}()
	}

	display.Show()
	logView.Show()
	sensor.Window.SetOnClosed(func() {
		logger.Info("closing the simulator")
		sensor.Close()
		cancel()
		myApp.Quit()
	})

	// The sensor window is the main window; closing it ends the run.
	sensor.Window.ShowAndRun()

	cancel()
	wg.Wait()
	logger.Info("simulation finished")
}

// runHeadless drives the same core with a console surface. Only useful
// together with -demo; without a window there is no manual event source.
func runHeadless(cfg config.Config, logger *slog.Logger, demo bool) {
	dispatcher := models.NewSensorDispatcher(logger)
	surface := models.NewConsoleSurface(os.Stdout)

	refresher := models.NewDisplayRefresher(surface, models.SystemClock, logger, cfg.Refresh.Period.Std())
	activityLog := models.NewActivityLog(models.SystemClock, cfg.Log.MaxEntries, nil)
	carpark := models.NewCarpark(cfg.Capacity, activityLog, models.SystemClock, logger, refresher.Refresh)
	refresher.Attach(carpark)
	dispatcher.Register(carpark)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		refresher.Run(ctx)
	}()

	if demo {
		generator := traffic.NewGenerator(dispatcher, logger, 0.5, models.SystemClock().UnixNano())
		wg.Add(1)
		go func() {
			defer wg.Done()
			generator.Run(ctx)
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("closing the simulator")
	cancel()
	wg.Wait()
	surface.Close()
	logger.Info("simulation finished")
}
