package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/openbarbell/liftlog/internal/session"
)

// tickMsg drives the live timer. It is re-armed only while the session
// is in a non-terminal phase, so a finished program stops scheduling.
type tickMsg time.Time

// refreshMsg requests a fresh snapshot without re-arming the timer.
type refreshMsg struct{}

type sessionKeymap struct {
	LogSet   key.Binding
	Minimize key.Binding
	Expand   key.Binding
	Finish   key.Binding
	Cancel   key.Binding
}

func newSessionKeymap() sessionKeymap {
	return sessionKeymap{
		LogSet:   key.NewBinding(key.WithKeys("l", "enter"), key.WithHelp("l", "log set")),
		Minimize: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "minimize")),
		Expand:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "expand")),
		Finish:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish")),
		Cancel:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// sessionModel is the bubbletea surface for one live session. All
// session state lives in the machine; the model holds only the latest
// snapshot and transient form state.
type sessionModel struct {
	machine *session.Machine
	planRef string
	tick    time.Duration
	keys    sessionKeymap

	snap    session.Snapshot
	form    *huh.Form
	draft   *setDraft
	confirm *bool
	width   int
}

func newSessionModel(machine *session.Machine, planRef string, tick time.Duration) sessionModel {
	return sessionModel{
		machine: machine,
		planRef: planRef,
		tick:    tick,
		keys:    newSessionKeymap(),
		snap:    machine.Snapshot(),
	}
}

func (m sessionModel) Init() tea.Cmd {
	start := func() tea.Msg {
		// A fresh machine is idle, so this cannot be rejected.
		_ = m.machine.Start(m.planRef)
		return refreshMsg{}
	}
	return tea.Batch(start, m.tickCmd())
}

func (m sessionModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshMsg:
		m.snap = m.machine.Snapshot()
		return m, nil

	case tickMsg:
		m.snap = m.machine.Snapshot()
		if m.snap.Phase.Terminal() {
			return m, nil
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if !m.snap.Phase.Terminal() {
			_ = m.machine.Cancel()
			m.snap = m.machine.Snapshot()
		}
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	// A resolution failure returns the machine to idle with an error;
	// terminal phases accept no further events. Any key closes.
	if m.snap.Phase.Terminal() || (m.snap.Phase == session.PhaseIdle && m.snap.Err != "") {
		return m, tea.Quit
	}

	if m.snap.Phase != session.PhaseActive {
		return m, nil
	}

	if m.snap.Mode == session.ModeMinimized {
		switch {
		case key.Matches(msg, m.keys.Expand):
			_ = m.machine.Expand()
			m.snap = m.machine.Snapshot()
		case key.Matches(msg, m.keys.Cancel):
			_ = m.machine.Cancel()
			m.snap = m.machine.Snapshot()
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.LogSet):
		return m.openSetForm()
	case key.Matches(msg, m.keys.Minimize):
		_ = m.machine.Minimize()
		m.snap = m.machine.Snapshot()
	case key.Matches(msg, m.keys.Finish):
		return m.openFinishConfirm()
	case key.Matches(msg, m.keys.Cancel):
		_ = m.machine.Cancel()
		m.snap = m.machine.Snapshot()
		return m, tea.Quit
	}
	return m, nil
}

func (m sessionModel) openSetForm() (tea.Model, tea.Cmd) {
	draft := newSetDraft(m.snap)
	m.draft = draft
	m.form = newSetForm(m.snap, draft)
	return m, m.form.Init()
}

func (m sessionModel) openFinishConfirm() (tea.Model, tea.Cmd) {
	m.confirm = new(bool)
	m.form = newFinishConfirm(m.snap, m.confirm)
	return m, m.form.Init()
}

func (m sessionModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.draft != nil {
			rec, err := m.draft.record(m.snap)
			if err == nil {
				_ = m.machine.CompleteSet(rec)
			}
		} else if m.confirm != nil && *m.confirm {
			_ = m.machine.Finish()
		}
		m.form = nil
		m.draft = nil
		m.confirm = nil
		m.snap = m.machine.Snapshot()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.draft = nil
		m.confirm = nil
		return m, nil
	}
	return m, cmd
}
