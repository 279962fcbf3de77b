package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stackpoker/stackweb/internal/model"
)

// HandRepo reads hand-log documents. Hands are written by the game backend
// as JSON blobs; this service never mutates them.
type HandRepo struct{ DB *sql.DB }

func NewHandRepo(db *sql.DB) *HandRepo { return &HandRepo{DB: db} }

// GetByID fetches and decodes one hand document. Returns ErrNotFound when
// the document does not exist. A document that exists but fails to decode
// is an unexpected error, not a 404: the upstream writer owns well-formedness.
func (r *HandRepo) GetByID(ctx context.Context, handID string) (*model.HandLog, error) {
	var doc []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT doc FROM hands WHERE hand_id=? LIMIT 1",
		handID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var hand model.HandLog
	if err := json.Unmarshal(doc, &hand); err != nil {
		return nil, fmt.Errorf("decode hand %s: %w", handID, err)
	}
	return &hand, nil
}
