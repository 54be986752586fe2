package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbarbell/liftlog/internal/db"
	"github.com/openbarbell/liftlog/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) Create(ctx context.Context, w *domain.CompletedWorkout) error {
	query := `INSERT INTO workouts (id, title, author_id, workout_type, plan_ref, started_at, ended_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		w.AuthorID,
		string(w.WorkoutType),
		domain.NormalizeRef(w.PlanRef),
		w.StartTime.Format(time.RFC3339Nano),
		w.EndTime.Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}

	for i, s := range w.Sets {
		query := `INSERT INTO workout_sets (workout_id, seq, exercise_ref, set_number, reps,
			weight, rpe, assisted, set_type, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			w.ID, i, domain.NormalizeRef(s.ExerciseRef), s.SetNumber, s.Reps,
			s.Weight, nullableFloatToValue(s.RPE), boolToInt(s.Assisted),
			string(s.SetType), s.CompletedAt.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("inserting workout set %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error) {
	query := `SELECT id, title, author_id, workout_type, plan_ref, started_at, ended_at
		FROM workouts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	w, err := r.scanWorkout(row)
	if err != nil {
		return nil, err
	}
	sets, err := r.listSets(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Sets = sets
	return w, nil
}

func (r *SQLiteWorkoutRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CompletedWorkout, error) {
	query := `SELECT id, title, author_id, workout_type, plan_ref, started_at, ended_at
		FROM workouts ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*domain.CompletedWorkout
	for rows.Next() {
		var w domain.CompletedWorkout
		var workoutType, startedAt, endedAt string
		if err := rows.Scan(&w.ID, &w.Title, &w.AuthorID, &workoutType, &w.PlanRef, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		w.WorkoutType = domain.WorkoutType(workoutType)
		w.StartTime = parseTime(startedAt)
		w.EndTime = parseTime(endedAt)
		workouts = append(workouts, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}

	for _, w := range workouts {
		sets, err := r.listSets(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		w.Sets = sets
	}
	return workouts, nil
}

func (r *SQLiteWorkoutRepo) scanWorkout(row *sql.Row) (*domain.CompletedWorkout, error) {
	var w domain.CompletedWorkout
	var workoutType, startedAt, endedAt string
	err := row.Scan(&w.ID, &w.Title, &w.AuthorID, &workoutType, &w.PlanRef, &startedAt, &endedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout: %w", err)
	}
	w.WorkoutType = domain.WorkoutType(workoutType)
	w.StartTime = parseTime(startedAt)
	w.EndTime = parseTime(endedAt)
	return &w, nil
}

func (r *SQLiteWorkoutRepo) listSets(ctx context.Context, workoutID string) ([]domain.SetRecord, error) {
	query := `SELECT exercise_ref, set_number, reps, weight, rpe, assisted, set_type, completed_at
		FROM workout_sets WHERE workout_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout sets: %w", err)
	}
	defer rows.Close()

	var sets []domain.SetRecord
	for rows.Next() {
		var s domain.SetRecord
		var rpe sql.NullFloat64
		var assisted int
		var setType, completedAt string
		if err := rows.Scan(&s.ExerciseRef, &s.SetNumber, &s.Reps, &s.Weight,
			&rpe, &assisted, &setType, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning workout set: %w", err)
		}
		s.RPE = parseNullableFloat(rpe)
		s.Assisted = intToBool(assisted)
		s.SetType = domain.SetType(setType)
		s.CompletedAt = parseTime(completedAt)
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout sets: %w", err)
	}
	return sets, nil
}
