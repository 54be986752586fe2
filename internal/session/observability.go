package session

import (
	"fmt"
	"io"
	"time"
)

// TransitionEvent records metadata about one processed machine event.
type TransitionEvent struct {
	Event EventType
	From  Phase
	To    Phase
	Err   string
}

// Observer receives transition events for logging and diagnostics.
type Observer interface {
	OnTransition(event TransitionEvent)
}

// LogObserver writes transition events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnTransition(event TransitionEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.Err != "" {
		status = "err:" + event.Err
	}
	fmt.Fprintf(o.w, "[%s] session_event event=%s from=%s to=%s status=%s\n",
		ts, event.Event, event.From, event.To, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnTransition(TransitionEvent) {}
