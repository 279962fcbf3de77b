package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stackpoker/stackweb/internal/model"
)

// InviteRepo persists referral tokens and their redemptions.
type InviteRepo struct{ DB *sql.DB }

func NewInviteRepo(db *sql.DB) *InviteRepo { return &InviteRepo{DB: db} }

// CreatePending inserts a fresh unredeemed invite token.
func (r *InviteRepo) CreatePending(ctx context.Context, token, inviterID, source string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO pending_invites (token, inviter_id, created_at, redeemed, source) VALUES (?,?,?,0,?)",
		token, inviterID, time.Now().UTC(), source)
	return err
}

// ClaimLatestWeb marks the newest unredeemed web-sourced invite as redeemed
// by userID and returns it. The row is locked inside a transaction so two
// freshly installed apps cannot claim the same token. Returns ErrNotFound
// when no claimable invite exists.
func (r *InviteRepo) ClaimLatestWeb(ctx context.Context, userID string) (*model.PendingInvite, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var inv model.PendingInvite
	err = tx.QueryRowContext(ctx,
		"SELECT token, inviter_id, created_at FROM pending_invites WHERE redeemed=0 AND source=? ORDER BY created_at DESC LIMIT 1 FOR UPDATE",
		model.InviteSourceWeb).Scan(&inv.Token, &inv.InviterID, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		"UPDATE pending_invites SET redeemed=1, redeemed_by=?, redeemed_at=? WHERE token=?",
		userID, now, inv.Token); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	inv.Redeemed = true
	inv.RedeemedBy = &userID
	inv.RedeemedAt = &now
	inv.Source = model.InviteSourceWeb
	return &inv, nil
}

// Redeem records that userID entered through inviterID's referral. A user
// may never redeem their own invite (ErrSelfInvite, checked before any
// store access) and may redeem at most one invite ever; a second attempt
// returns ErrAlreadyRedeemed.
func (r *InviteRepo) Redeem(ctx context.Context, userID, inviterID, source string) error {
	if userID == inviterID {
		return ErrSelfInvite
	}
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM redeemed_invites WHERE user_id=? LIMIT 1",
		userID).Scan(&exists)
	if err == nil {
		return ErrAlreadyRedeemed
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	rec := model.RedeemedInvite{
		UserID:     userID,
		InviterID:  inviterID,
		RedeemedAt: time.Now().UTC(),
		Source:     source,
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO redeemed_invites (user_id, inviter_id, redeemed_at, source) VALUES (?,?,?,?)",
		rec.UserID, rec.InviterID, rec.RedeemedAt, rec.Source)
	return err
}
