// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting database driver errors. For example, ErrNotFound maps to an
// HTTP 404 while ErrAlreadyRedeemed maps to a 400 with a specific message.
package repository

import "errors"

// ErrNotFound is returned when a share record, hand document or pending
// invite does not exist. Handlers should translate this into an HTTP 404
// response.
var ErrNotFound = errors.New("not found")

// ErrAlreadyRedeemed is returned when a user who has already redeemed an
// invite attempts to redeem another one. One referral per user, ever.
var ErrAlreadyRedeemed = errors.New("already redeemed")

// ErrSelfInvite is returned when a user attempts to redeem their own invite.
var ErrSelfInvite = errors.New("self invite")
