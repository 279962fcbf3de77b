package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stackpoker/stackweb/internal/model"
)

// ShareRepo reads share records and bumps their view counters.
type ShareRepo struct{ DB *sql.DB }

func NewShareRepo(db *sql.DB) *ShareRepo { return &ShareRepo{DB: db} }

// GetByID fetches a share record by its primary key. Returns ErrNotFound
// when no such share exists.
func (r *ShareRepo) GetByID(ctx context.Context, shareID string) (*model.ShareRecord, error) {
	var s model.ShareRecord
	err := r.DB.QueryRowContext(ctx,
		"SELECT share_id, hand_id, user_id, sharer_name, view_count FROM shared_hands WHERE share_id=? LIMIT 1",
		shareID).Scan(&s.ShareID, &s.HandID, &s.UserID, &s.SharerName, &s.ViewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// IncrementViewCount adds one page view. Missing rows are not an error:
// the counter is best-effort and a share deleted between render and
// increment should not surface anywhere.
func (r *ShareRepo) IncrementViewCount(ctx context.Context, shareID string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE shared_hands SET view_count=view_count+1 WHERE share_id=?",
		shareID)
	return err
}
