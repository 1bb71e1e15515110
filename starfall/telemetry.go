package starfall

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Telemetry event names.
const (
	EventSessionStarted = "session_started"
	EventWaveAdvanced   = "wave_advanced"
	EventLowFPS         = "low_fps"
	EventHighScore      = "high_score"
	EventPlayerHit      = "player_hit"
)

type Fields map[string]interface{}

// Notifier receives named game events. How and where they are kept is up to
// the implementation.
type Notifier interface {
	Notify(event string, data Fields)
}

type NopNotifier struct{}

func (NopNotifier) Notify(string, Fields) {}

// LogNotifier writes events through the standard logger.
type LogNotifier struct {
	Logger *log.Logger // nil uses the default logger
}

func (n LogNotifier) Notify(event string, data Fields) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, data[k])
	}

	if n.Logger != nil {
		n.Logger.Printf("[telemetry] %s%s", event, b.String())
		return
	}
	log.Printf("[telemetry] %s%s", event, b.String())
}

// fpsMonitor reports a low_fps event once the frame rate has stayed under the
// threshold for a run of frames, then stays quiet until it recovers.
type fpsMonitor struct {
	threshold float64
	frames    int
	slow      int
	reported  bool
}

func newFPSMonitor(cfg TelemetryConfig) *fpsMonitor {
	return &fpsMonitor{threshold: cfg.LowFPSThreshold, frames: cfg.LowFPSFrames}
}

// observe returns true when a low_fps event should be sent.
func (m *fpsMonitor) observe(dt float64) bool {
	if dt <= 0 || m.threshold <= 0 {
		return false
	}
	if 1/dt >= m.threshold {
		m.slow = 0
		m.reported = false
		return false
	}
	m.slow++
	if m.slow >= m.frames && !m.reported {
		m.reported = true
		return true
	}
	return false
}
