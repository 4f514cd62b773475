package driver

import "time"

// Stage is one phase of a compiler run.
type Stage string

const (
	StageScan     Stage = "scan"
	StageParse    Stage = "parse"
	StageValidate Stage = "validate"
	StageAttr     Stage = "attr"
	StageGenerate Stage = "generate"
)

// Stages lists the phases in execution order.
var Stages = []Stage{StageScan, StageParse, StageValidate, StageAttr, StageGenerate}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Events arrive from the driver's
// goroutine in order.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }

type nopSink struct{}

func (nopSink) OnEvent(Event) {}
