package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/openbarbell/liftlog/internal/db"
	"github.com/openbarbell/liftlog/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
// A single row with id 'default' holds the local user.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, user_id, display_name, updated_at FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var updatedAt string
	if err := row.Scan(&p.ID, &p.UserID, &p.DisplayName, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT OR REPLACE INTO user_profile (id, user_id, display_name, updated_at)
		VALUES ('default', ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		p.UserID, p.DisplayName, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
