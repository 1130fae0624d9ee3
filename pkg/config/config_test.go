package config

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PEPTRACK_WIDTH", "PEPTRACK_MIN_VISIBLE_SPAN", "PEPTRACK_LOG_LEVEL"} {
		t.Setenv(key, "") // restores the original value after the test
		os.Unsetenv(key)
	}

	d, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Width != 960 || d.MinVisibleSpan != 10 || d.Level() != log.InfoLevel {
		t.Errorf("Load() = %+v", d)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PEPTRACK_WIDTH", "1280")
	t.Setenv("PEPTRACK_MIN_VISIBLE_SPAN", "25")
	t.Setenv("PEPTRACK_LOG_LEVEL", "DEBUG")

	d, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Width != 1280 || d.MinVisibleSpan != 25 {
		t.Errorf("Load() = %+v", d)
	}
	if d.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", d.Level())
	}
}

func TestLoadRejectsBadWidth(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "wide"},
		{name: "negative", value: "-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PEPTRACK_WIDTH", tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with PEPTRACK_WIDTH=%q should fail", tt.value)
			}
		})
	}
}

func TestLevelFallback(t *testing.T) {
	if got := (Defaults{LogLevel: "chatty"}).Level(); got != log.InfoLevel {
		t.Errorf("Level() = %v, want info", got)
	}
}
