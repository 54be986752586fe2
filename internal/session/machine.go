// Package session implements the active-session orchestrator: a
// hierarchical state machine owning the lifecycle of one workout in
// progress. The machine is the sole mutator of its session context;
// presentation surfaces communicate through events and read through
// immutable snapshots. Events are processed one at a time to
// completion, so no caller can observe a half-applied transition.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
)

// PlanResolver is the plan-store collaborator. It must be idempotent;
// the machine keeps at most one outstanding call.
type PlanResolver interface {
	ResolvePlan(ctx context.Context, ref string) (*domain.WorkoutPlan, error)
}

// Identity supplies the user id stamped onto the finalized record.
type Identity interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// Publisher accepts the finalized record. The machine hands off once
// and does not track delivery; retry policy belongs to the publisher.
type Publisher interface {
	Publish(ctx context.Context, w *domain.CompletedWorkout) error
}

// Config holds the machine's injectable parameters.
type Config struct {
	// MinDuration rejects a FINISH whose elapsed time is implausibly
	// small, guarding against accidental taps.
	MinDuration time.Duration
}

// Machine is the active-session state machine. One Machine governs one
// session from START to a terminal phase; create a fresh Machine per
// session. The zero value is not usable; use New.
type Machine struct {
	resolver  PlanResolver
	identity  Identity
	publisher Publisher
	obs       Observer
	clock     func() time.Time
	cfg       Config

	// mu serializes event processing: one event runs to completion
	// before the next is accepted, so transitions are atomic and no
	// reader observes a half-applied state.
	mu             sync.Mutex
	phase          Phase
	mode           Mode
	gen            uint64
	cancelLoad     context.CancelFunc
	plan           *domain.WorkoutPlan
	ledger         domain.SetLedger
	timing         domain.TimingInfo
	activeExercise int
	lastErr        error
	workout        *domain.CompletedWorkout
}

// Option configures a Machine during construction.
type Option func(*Machine)

// WithClock overrides the wall clock. Tests inject deterministic time.
func WithClock(clock func() time.Time) Option {
	return func(m *Machine) { m.clock = clock }
}

// WithObserver sets the transition observer.
func WithObserver(obs Observer) Option {
	return func(m *Machine) { m.obs = obs }
}

// New creates an idle Machine wired to its collaborators.
func New(resolver PlanResolver, identity Identity, publisher Publisher, cfg Config, opts ...Option) *Machine {
	m := &Machine{
		resolver:  resolver,
		identity:  identity,
		publisher: publisher,
		obs:       NoopObserver{},
		clock:     time.Now,
		cfg:       cfg,
		phase:     PhaseIdle,
		mode:      ModeExpanded,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins a session from a plan reference. Valid only while idle;
// a START while a session is live is rejected, it never replaces the
// running session. Plan resolution runs asynchronously: the machine
// enters the loading phase and transitions again when the result
// arrives, unless a newer generation has superseded it.
func (m *Machine) Start(ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseIdle {
		return m.reject(EventStart)
	}

	ref = domain.NormalizeRef(ref)
	m.gen++
	gen := m.gen
	from := m.phase
	m.phase = PhaseLoading
	m.lastErr = nil

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	go func() {
		plan, err := m.resolver.ResolvePlan(ctx, ref)
		m.completeLoad(gen, ref, plan, err)
	}()

	m.observe(EventStart, from, "")
	return nil
}

// completeLoad applies an asynchronous resolution result. Results for a
// superseded generation are discarded silently.
func (m *Machine) completeLoad(gen uint64, ref string, plan *domain.WorkoutPlan, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen || m.phase != PhaseLoading {
		m.observe(EventStart, m.phase, errStaleResult.Error())
		return
	}
	from := m.phase
	m.cancelLoad = nil

	if err != nil {
		m.phase = PhaseIdle
		m.lastErr = &PlanResolutionError{Ref: ref, Err: err}
		m.observe(EventStart, from, m.lastErr.Error())
		return
	}

	m.plan = plan
	m.ledger = domain.SetLedger{}
	m.timing = domain.StartTiming(m.clock())
	m.activeExercise = 0
	m.phase = PhaseActive
	m.mode = ModeExpanded
	m.lastErr = nil
	m.observe(EventStart, from, "")
}

// CompleteSet appends a set to the ledger. Valid in either active mode.
// A rejected entry surfaces a recoverable error; the session stays
// active and the ledger is unchanged.
func (m *Machine) CompleteSet(rec domain.SetRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseActive {
		return m.reject(EventCompleteSet)
	}

	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = m.clock()
	}
	ledger, err := m.ledger.Append(rec)
	if err != nil {
		m.lastErr = err
		m.observe(EventCompleteSet, m.phase, err.Error())
		return err
	}
	m.ledger = ledger
	m.lastErr = nil

	// Track which planned exercise the lifter is on for display.
	if m.plan != nil {
		for i, e := range m.plan.Exercises {
			if domain.RefEqual(e.ExerciseRef, rec.ExerciseRef) {
				m.activeExercise = i
				break
			}
		}
	}
	m.observe(EventCompleteSet, m.phase, "")
	return nil
}

// Minimize switches the presentation mode to the compact surface.
// Idempotent; only presentation mode changes, never session data.
func (m *Machine) Minimize() error {
	return m.setMode(EventMinimize, ModeMinimized)
}

// Expand switches the presentation mode to the full surface.
// Idempotent; only presentation mode changes, never session data.
func (m *Machine) Expand() error {
	return m.setMode(EventExpand, ModeExpanded)
}

func (m *Machine) setMode(event EventType, mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseActive {
		return m.reject(event)
	}
	m.mode = mode
	m.lastErr = nil
	m.observe(event, m.phase, "")
	return nil
}

// Finish validates the session and finalizes it into a completed
// workout. On validation failure the machine returns to the active
// expanded state with a recoverable error. On success the record is
// handed to the publisher exactly once.
func (m *Machine) Finish() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase != PhaseActive {
		return m.reject(EventFinish)
	}
	from := m.phase
	m.phase = PhaseCompleting

	ctx := context.Background()
	authorID, err := m.identity.CurrentUserID(ctx)
	if err == nil {
		var w *domain.CompletedWorkout
		w, err = finalize(m.plan, m.ledger, m.timing, authorID, m.clock(), m.cfg.MinDuration)
		if err == nil {
			m.workout = w
			m.phase = PhaseCompleted
			m.lastErr = nil
			m.observe(EventFinish, from, "")
			// Hand-off happens once; delivery tracking is the
			// publisher's concern.
			if pubErr := m.publisher.Publish(ctx, w); pubErr != nil {
				m.observe(EventFinish, m.phase, pubErr.Error())
			}
			return nil
		}
	}

	m.phase = PhaseActive
	m.mode = ModeExpanded
	m.lastErr = err
	m.observe(EventFinish, from, err.Error())
	return err
}

// Cancel ends the session without producing a record. Valid in any
// non-terminal phase. All derived resources are released synchronously:
// an in-flight plan load is cancelled and its late result discarded.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase.Terminal() {
		return m.reject(EventCancel)
	}
	from := m.phase
	m.gen++
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
	m.plan = nil
	m.ledger = domain.SetLedger{}
	m.timing = domain.TimingInfo{}
	m.phase = PhaseCancelled
	m.lastErr = nil
	m.observe(EventCancel, from, "")
	return nil
}

// Snapshot returns an immutable projection of the current state. The
// elapsed value is computed against the machine's clock at call time.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Phase:          m.phase,
		Mode:           m.mode,
		ActiveExercise: m.activeExercise,
		Workout:        m.workout,
	}
	if m.lastErr != nil {
		snap.Err = m.lastErr.Error()
	}
	if m.plan != nil {
		snap.PlanTitle = m.plan.Title
		snap.Exercises = append([]domain.PlannedExercise(nil), m.plan.Exercises...)
	}
	if m.phase == PhaseActive {
		snap.Elapsed = m.timing.Elapsed(m.clock())
	}
	if m.workout != nil {
		snap.Elapsed = m.workout.Duration()
	}
	stats := m.ledger.Aggregate()
	snap.Summary = LedgerSummary{
		TotalSets:   stats.TotalSets,
		TotalReps:   stats.TotalReps,
		TotalVolume: stats.TotalVolume,
		AvgRPE:      stats.AvgRPE,
		RPEKnown:    stats.RPEKnown,
	}
	snap.Sets = m.ledger.BySetNumber()
	return snap
}

// reject records an invalid transition without touching state.
// Illegal events indicate a collaborator bug: they are observable in
// logs but never attached to the snapshot error field.
func (m *Machine) reject(event EventType) error {
	err := &InvalidTransitionError{Event: event, Phase: m.phase}
	m.observe(event, m.phase, err.Error())
	return err
}

func (m *Machine) observe(event EventType, from Phase, errMsg string) {
	m.obs.OnTransition(TransitionEvent{Event: event, From: from, To: m.phase, Err: errMsg})
}
