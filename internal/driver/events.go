package driver

// Stage identifies a batch pipeline phase for progress reporting.
type Stage uint8

const (
	StageQueued Stage = iota
	StageShifting
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageShifting:
		return "shifting"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event is one progress update for one file in a batch run.
type Event struct {
	Path    string
	Stage   Stage
	Message string
	Records int
}

// Sink receives progress events. Implementations must be safe for use from
// multiple worker goroutines.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel (consumed by the TUI).
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	s.Ch <- ev
}

// NopSink отбрасывает события (тихий batch-режим).
type NopSink struct{}

func (NopSink) Send(Event) {}
