package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/session"
)

func (m sessionModel) View() string {
	switch m.snap.Phase {
	case session.PhaseLoading:
		return "\n  " + formatter.Dim("Resolving plan "+m.planRef+"...") + "\n"

	case session.PhaseIdle:
		if m.snap.Err != "" {
			return "\n  " + formatter.StyleRed.Render(m.snap.Err) + "\n" +
				"  " + formatter.Dim("press any key to close") + "\n"
		}
		return "\n  " + formatter.Dim("Starting...") + "\n"

	case session.PhaseActive:
		if m.form != nil {
			return m.headerView() + "\n\n" + m.form.View()
		}
		if m.snap.Mode == session.ModeMinimized {
			return m.minimizedView()
		}
		return m.expandedView()

	case session.PhaseCompleting:
		return "\n  " + formatter.Dim("Saving workout...") + "\n"

	case session.PhaseCompleted:
		out := "\n" + formatter.RenderBox("Workout Complete", formatter.WorkoutDetail(m.snap.Workout))
		return out + "\n  " + formatter.Dim("press any key to close") + "\n"

	case session.PhaseCancelled:
		return "\n  " + formatter.Dim("Workout discarded.") + "\n"
	}
	return ""
}

func (m sessionModel) headerView() string {
	return fmt.Sprintf("  %s  %s",
		formatter.Bold(m.snap.PlanTitle),
		formatter.StyleYellow.Render(formatter.Clock(m.snap.Elapsed)))
}

// minimizedView is the compact one-line surface. Session data keeps
// accruing underneath; only the presentation shrinks.
func (m sessionModel) minimizedView() string {
	bar := fmt.Sprintf("▶ %s · %s · %d sets",
		m.snap.PlanTitle,
		formatter.Clock(m.snap.Elapsed),
		m.snap.Summary.TotalSets)
	return formatter.StyleGreen.Render(bar) + formatter.Dim("  [e]xpand [q]uit") + "\n"
}

func (m sessionModel) expandedView() string {
	var b strings.Builder

	b.WriteString(m.headerView() + "\n\n")
	b.WriteString(m.exercisesView())

	if len(m.snap.Sets) > 0 {
		b.WriteString("\n" + m.setsView())
		b.WriteString("\n  " + formatter.StatsLine(statsFromSummary(m.snap.Summary)) + "\n")
	} else {
		b.WriteString("\n  " + formatter.Dim("No sets logged yet.") + "\n")
	}

	if m.snap.Err != "" {
		b.WriteString("\n  " + formatter.StyleRed.Render(m.snap.Err) + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("[l]og set  [m]inimize  [f]inish  [q]uit") + "\n")
	return b.String()
}

func (m sessionModel) exercisesView() string {
	done := make(map[string]int)
	for _, s := range m.snap.Sets {
		done[domain.NormalizeRef(s.ExerciseRef)]++
	}

	var b strings.Builder
	for i, ex := range m.snap.Exercises {
		marker := "  "
		style := formatter.StyleFg
		if i == m.snap.ActiveExercise {
			marker = formatter.StyleHeader.Render("▸ ")
			style = formatter.StyleBold
		}
		count := done[domain.NormalizeRef(ex.ExerciseRef)]
		progress := fmt.Sprintf("%d/%d", count, ex.TargetSets)
		if count >= ex.TargetSets {
			progress = formatter.StyleGreen.Render(progress)
		} else {
			progress = formatter.Dim(progress)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			marker,
			style.Render(ex.Name),
			progress,
			formatter.Dim(fmt.Sprintf("%d × %s", ex.TargetReps, formatter.FormatWeight(ex.TargetWeight)))))
	}
	return b.String()
}

func (m sessionModel) setsView() string {
	headers := []string{"EXERCISE", "SET", "REPS", "WEIGHT", "RPE"}
	rows := make([][]string, 0, len(m.snap.Sets))
	for _, s := range m.snap.Sets {
		rows = append(rows, []string{
			formatter.StyleFg.Render(exerciseName(m.snap, s.ExerciseRef)),
			strconv.Itoa(s.SetNumber),
			strconv.Itoa(s.Reps),
			formatter.FormatWeight(s.Weight),
			formatter.FormatRPE(s.RPE),
		})
	}
	table := formatter.RenderTable(headers, rows)

	// Indent the table to line up with the rest of the surface.
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func exerciseName(snap session.Snapshot, ref string) string {
	for _, ex := range snap.Exercises {
		if domain.RefEqual(ex.ExerciseRef, ref) {
			return ex.Name
		}
	}
	return ref
}

func statsFromSummary(s session.LedgerSummary) domain.LedgerStats {
	return domain.LedgerStats{
		TotalSets:   s.TotalSets,
		TotalReps:   s.TotalReps,
		TotalVolume: s.TotalVolume,
		AvgRPE:      s.AvgRPE,
		RPEKnown:    s.RPEKnown,
	}
}
