package session

import (
	"errors"
	"fmt"
)

// PlanResolutionError reports a failed plan lookup. Recoverable: the
// machine returns to idle and the session can be started again.
type PlanResolutionError struct {
	Ref string
	Err error
}

func (e *PlanResolutionError) Error() string {
	return fmt.Sprintf("resolving plan %s: %v", e.Ref, e.Err)
}

func (e *PlanResolutionError) Unwrap() error { return e.Err }

// InvalidTransitionError reports an event that is illegal in the current
// phase. The machine rejects it with no state change. This is a
// collaborator contract violation, not a user-facing failure; it is
// logged through the observer and never attached to snapshots.
type InvalidTransitionError struct {
	Event EventType
	Phase Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("event %s is not valid in phase %s", e.Event, e.Phase)
}

// errStaleResult marks an async result that arrived for a superseded
// generation. Discarded silently, never surfaced.
var errStaleResult = errors.New("stale resolution result")
