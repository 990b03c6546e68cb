package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Capacity != 100 {
		t.Fatalf("capacity: got %d want 100", cfg.Capacity)
	}
	if cfg.Refresh.Period.Std() != time.Second {
		t.Fatalf("refresh period: got %s want 1s", cfg.Refresh.Period.Std())
	}
	if cfg.Sensor.DebounceWindow.Std() != 400*time.Millisecond {
		t.Fatalf("debounce window: got %s want 400ms", cfg.Sensor.DebounceWindow.Std())
	}
	if cfg.Log.MaxEntries != 0 {
		t.Fatalf("log max_entries: got %d want 0 (unbounded)", cfg.Log.MaxEntries)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carpark.yaml")
	body := "capacity: 25\n" +
		"refresh:\n" +
		"  period: 250ms\n" +
		"sensor:\n" +
		"  debounce_window: 1s\n" +
		"log:\n" +
		"  max_entries: 500\n" +
		"headless: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Capacity != 25 {
		t.Fatalf("capacity: got %d want 25", cfg.Capacity)
	}
	if cfg.Refresh.Period.Std() != 250*time.Millisecond {
		t.Fatalf("refresh period: got %s want 250ms", cfg.Refresh.Period.Std())
	}
	if cfg.Sensor.DebounceWindow.Std() != time.Second {
		t.Fatalf("debounce window: got %s want 1s", cfg.Sensor.DebounceWindow.Std())
	}
	if cfg.Log.MaxEntries != 500 {
		t.Fatalf("log max_entries: got %d want 500", cfg.Log.MaxEntries)
	}
	if !cfg.Headless {
		t.Fatal("headless flag not parsed")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero capacity":      "capacity: 0\n",
		"negative capacity":  "capacity: -3\n",
		"negative log bound": "log:\n  max_entries: -1\n",
		"malformed duration": "refresh:\n  period: soon\n",
		"not yaml":           ": : :\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error, got none", name)
		}
	}
}
