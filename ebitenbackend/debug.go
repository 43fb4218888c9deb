package ebitenbackend

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timing and draw-call metrics. Only logged when
// the logger has debug enabled.
type frameStats struct {
	buildTime  time.Duration
	submitTime time.Duration
	commands   int
	batches    int
	texts      int
	textures   int
	evicted    int
}

// debugStatsInterval is how many rendered frames pass between stats lines.
const debugStatsInterval = 60

// debugLog writes one stats line.
func debugLog(l *slog.Logger, frame uint64, s frameStats) {
	l.Debug("frame",
		"n", frame,
		"build", s.buildTime,
		"submit", s.submitTime,
		"total", s.buildTime+s.submitTime,
		"commands", s.commands,
		"draw_calls", s.batches,
		"texts", s.texts,
		"textures", s.textures,
		"evicted", s.evicted,
	)
}
