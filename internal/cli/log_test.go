package cli

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/track"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	// Test that it can log
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Small delay to ensure measurable duration
	time.Sleep(10 * time.Millisecond)

	prog.done("test completed")

	output := buf.String()
	if output == "" {
		t.Error("progress.done() should produce output")
	}

	// Should contain the message
	if !bytes.Contains(buf.Bytes(), []byte("test completed")) {
		t.Error("progress.done() output should contain message")
	}
}

func TestSyncStatsCountsRelays(t *testing.T) {
	var buf bytes.Buffer
	stats := newSyncStats(newLogger(&buf, log.DebugLevel))
	defer stats.install()()

	d := newTestDashboard(t)
	if _, err := d.Gesture("heatmap", track.Wheel{PointerX: 300, DeltaY: -240}); err != nil {
		t.Fatalf("Gesture() error = %v", err)
	}

	if stats.originated != 1 {
		t.Errorf("originated = %d, want 1", stats.originated)
	}
	if stats.relays != 1 || stats.delivered != 2 {
		t.Errorf("relays = %d delivered = %d, want 1 and 2", stats.relays, stats.delivered)
	}
	if !bytes.Contains(buf.Bytes(), []byte("relay")) {
		t.Error("debug log should mention the relay")
	}
}

func TestSyncStatsUninstall(t *testing.T) {
	stats := newSyncStats(newLogger(io.Discard, log.InfoLevel))
	stats.install()()

	d := newTestDashboard(t)
	if _, err := d.Gesture("scan", track.Drag{DX: -10}); err != nil {
		t.Fatalf("Gesture() error = %v", err)
	}
	if stats.originated != 0 {
		t.Errorf("originated = %d after uninstall, want 0", stats.originated)
	}
}
