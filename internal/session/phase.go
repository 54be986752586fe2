package session

// Phase is the lifecycle phase of a workout session.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading_plan"
	PhaseActive     Phase = "active"
	PhaseCompleting Phase = "completing"
	PhaseCompleted  Phase = "completed"
	PhaseCancelled  Phase = "cancelled"
)

// Terminal reports whether the phase accepts no further events.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseCancelled
}

// Mode is the presentation mode while a session is active. It is
// orthogonal to Phase: switching modes never touches session data.
type Mode string

const (
	ModeExpanded  Mode = "expanded"
	ModeMinimized Mode = "minimized"
)

// EventType identifies a command sent to the machine.
type EventType string

const (
	EventStart       EventType = "START"
	EventCompleteSet EventType = "COMPLETE_SET"
	EventMinimize    EventType = "MINIMIZE"
	EventExpand      EventType = "EXPAND"
	EventFinish      EventType = "FINISH"
	EventCancel      EventType = "CANCEL"
)
