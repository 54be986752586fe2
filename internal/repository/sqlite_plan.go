package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbarbell/liftlog/internal/db"
	"github.com/openbarbell/liftlog/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
// References are normalized on every write and lookup, so a wrapped
// reference always finds the canonical row.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Put(ctx context.Context, p *domain.WorkoutPlan) error {
	ref := domain.NormalizeRef(p.Ref)
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `INSERT OR REPLACE INTO plans (ref, title, author_id, workout_type, created_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		ref, p.Title, p.AuthorID, string(p.WorkoutType), createdAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	// Replace the exercise list wholesale; plans are immutable templates.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_exercises WHERE plan_ref = ?`, ref); err != nil {
		return fmt.Errorf("clearing plan exercises: %w", err)
	}
	for i, e := range p.Exercises {
		query := `INSERT INTO plan_exercises (plan_ref, position, exercise_ref, name,
			target_sets, target_reps, target_weight, rpe_hint, set_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			ref, i, domain.NormalizeRef(e.ExerciseRef), e.Name,
			e.TargetSets, e.TargetReps, e.TargetWeight,
			nullableFloatToValue(e.RPEHint), string(e.SetType),
		); err != nil {
			return fmt.Errorf("inserting plan exercise %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByRef(ctx context.Context, ref string) (*domain.WorkoutPlan, error) {
	ref = domain.NormalizeRef(ref)
	query := `SELECT ref, title, author_id, workout_type, created_at FROM plans WHERE ref = ?`
	row := r.db.QueryRowContext(ctx, query, ref)

	var p domain.WorkoutPlan
	var workoutType, createdAtStr string
	if err := row.Scan(&p.Ref, &p.Title, &p.AuthorID, &workoutType, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.WorkoutType = domain.WorkoutType(workoutType)
	p.CreatedAt = parseTime(createdAtStr)

	exercises, err := r.listExercises(ctx, ref)
	if err != nil {
		return nil, err
	}
	p.Exercises = exercises
	return &p, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.WorkoutPlan, error) {
	query := `SELECT ref, title, author_id, workout_type, created_at FROM plans ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.WorkoutPlan
	for rows.Next() {
		var p domain.WorkoutPlan
		var workoutType, createdAtStr string
		if err := rows.Scan(&p.Ref, &p.Title, &p.AuthorID, &workoutType, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		p.WorkoutType = domain.WorkoutType(workoutType)
		p.CreatedAt = parseTime(createdAtStr)
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	for _, p := range plans {
		exercises, err := r.listExercises(ctx, p.Ref)
		if err != nil {
			return nil, err
		}
		p.Exercises = exercises
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, ref string) error {
	ref = domain.NormalizeRef(ref)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE ref = ?`, ref); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) listExercises(ctx context.Context, ref string) ([]domain.PlannedExercise, error) {
	query := `SELECT exercise_ref, name, target_sets, target_reps, target_weight, rpe_hint, set_type
		FROM plan_exercises WHERE plan_ref = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, ref)
	if err != nil {
		return nil, fmt.Errorf("listing plan exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.PlannedExercise
	for rows.Next() {
		var e domain.PlannedExercise
		var rpeHint sql.NullFloat64
		var setType string
		if err := rows.Scan(&e.ExerciseRef, &e.Name, &e.TargetSets, &e.TargetReps,
			&e.TargetWeight, &rpeHint, &setType); err != nil {
			return nil, fmt.Errorf("scanning plan exercise: %w", err)
		}
		e.RPEHint = parseNullableFloat(rpeHint)
		e.SetType = domain.SetType(setType)
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan exercises: %w", err)
	}
	return exercises, nil
}
