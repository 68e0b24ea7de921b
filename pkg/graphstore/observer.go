package graphstore

import (
	"log/slog"

	"github.com/dustin/go-humanize"
)

// ProgressObserver is the optional execution observer consumed at graph
// build time and at Pregel superstep boundaries. Absent, callers run
// silently — no observer is required.
type ProgressObserver interface {
	BeginTask(name string, total int64)
	Advance(delta int64)
	Finish()
}

// SlogObserver is the default ProgressObserver, logging task progress
// through log/slog rather than introducing a bespoke logger abstraction.
// Byte-size-flavored messages (e.g. property column allocation) are
// rendered human-readably via go-humanize.
type SlogObserver struct {
	logger  *slog.Logger
	task    string
	total   int64
	current int64
}

// NewSlogObserver returns a SlogObserver logging through the given logger,
// or slog.Default() if logger is nil.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

// BeginTask starts tracking progress for a named task with an expected
// total unit count (e.g. node count, byte count).
func (o *SlogObserver) BeginTask(name string, total int64) {
	o.task = name
	o.total = total
	o.current = 0
	o.logger.Info("task started", "task", name, "total", total)
}

// Advance records delta additional units completed.
func (o *SlogObserver) Advance(delta int64) {
	o.current += delta
	o.logger.Debug("task progress", "task", o.task, "completed", o.current, "total", o.total)
}

// Finish logs task completion.
func (o *SlogObserver) Finish() {
	o.logger.Info("task finished", "task", o.task, "completed", o.current)
}

// LogAllocation logs a human-readable byte allocation for a named property
// column, e.g. "allocated 128 MB for property column 'rank'".
func (o *SlogObserver) LogAllocation(columnName string, bytes uint64) {
	o.logger.Info("allocated property column",
		"column", columnName,
		"size", humanize.Bytes(bytes),
	)
}
