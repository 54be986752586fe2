package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/session"
)

// setDraft carries raw form input for one set entry. Parsing happens at
// submit time in record().
type setDraft struct {
	ExerciseRef string
	Reps        string
	Weight      string
	RPE         string
	SetType     string
	Assisted    bool
}

// newSetDraft prefills a draft from the plan's active exercise targets.
func newSetDraft(snap session.Snapshot) *setDraft {
	d := &setDraft{SetType: string(domain.SetWorking)}
	if snap.ActiveExercise < len(snap.Exercises) {
		ex := snap.Exercises[snap.ActiveExercise]
		d.ExerciseRef = ex.ExerciseRef
		d.Reps = strconv.Itoa(ex.TargetReps)
		d.Weight = strconv.FormatFloat(ex.TargetWeight, 'f', -1, 64)
		d.SetType = string(ex.SetType)
	}
	return d
}

// record parses the draft into a set record. The set number is the next
// number for the chosen exercise, counted over the current ledger.
func (d *setDraft) record(snap session.Snapshot) (domain.SetRecord, error) {
	reps, err := strconv.Atoi(strings.TrimSpace(d.Reps))
	if err != nil {
		return domain.SetRecord{}, fmt.Errorf("parse reps: %w", err)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(d.Weight), 64)
	if err != nil {
		return domain.SetRecord{}, fmt.Errorf("parse weight: %w", err)
	}

	rec := domain.SetRecord{
		ExerciseRef: d.ExerciseRef,
		SetNumber:   nextSetNumber(snap, d.ExerciseRef),
		Reps:        reps,
		Weight:      weight,
		Assisted:    d.Assisted,
		SetType:     domain.SetType(d.SetType),
	}
	if v := strings.TrimSpace(d.RPE); v != "" {
		rpe, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.SetRecord{}, fmt.Errorf("parse rpe: %w", err)
		}
		rec.RPE = &rpe
	}
	return rec, nil
}

func nextSetNumber(snap session.Snapshot, exerciseRef string) int {
	n := 0
	for _, s := range snap.Sets {
		if domain.RefEqual(s.ExerciseRef, exerciseRef) {
			n++
		}
	}
	return n + 1
}

// newSetForm builds the set-entry form over the plan's exercises.
func newSetForm(snap session.Snapshot, d *setDraft) *huh.Form {
	exercises := make([]huh.Option[string], 0, len(snap.Exercises))
	for _, ex := range snap.Exercises {
		exercises = append(exercises, huh.NewOption(ex.Name, ex.ExerciseRef))
	}

	setTypes := make([]huh.Option[string], 0, len(domain.ValidSetTypes))
	for _, t := range []domain.SetType{domain.SetWorking, domain.SetWarmup, domain.SetDrop, domain.SetFailure} {
		setTypes = append(setTypes, huh.NewOption(string(t), string(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exercise").
				Options(exercises...).
				Value(&d.ExerciseRef),
			huh.NewInput().
				Title("Reps").
				Validate(validateInt).
				Value(&d.Reps),
			huh.NewInput().
				Title("Weight (kg)").
				Description("0 for bodyweight, negative for assisted").
				Validate(validateFloat).
				Value(&d.Weight),
			huh.NewInput().
				Title("RPE").
				Description("1-10, blank to skip").
				Validate(validateRPE).
				Value(&d.RPE),
			huh.NewSelect[string]().
				Title("Set type").
				Options(setTypes...).
				Value(&d.SetType),
		),
	).WithTheme(liftlogHuhTheme()).WithShowHelp(false)
}

// newFinishConfirm guards finish against accidental taps.
func newFinishConfirm(snap session.Snapshot, confirmed *bool) *huh.Form {
	desc := fmt.Sprintf("%d sets logged over %s.",
		snap.Summary.TotalSets, formatter.FormatDuration(snap.Elapsed))
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Finish workout?").
				Description(desc).
				Affirmative("Finish").
				Negative("Keep lifting").
				Value(confirmed),
		),
	).WithTheme(liftlogHuhTheme()).WithShowHelp(false)
}

func validateInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateRPE(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number or leave blank")
	}
	if v < 1 || v > 10 {
		return fmt.Errorf("RPE is rated 1-10")
	}
	return nil
}

// liftlogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func liftlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
