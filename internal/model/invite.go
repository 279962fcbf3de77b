package model

import "time"

// Invite token sources.  App-created tokens travel inside the app's own
// share sheet; web tokens are minted when somebody opens an invite landing
// page and are later claimed by the freshly installed app.
const (
    InviteSourceApp = "app"
    InviteSourceWeb = "web"

    // InviteSourceUniversalLink marks redemptions that arrived through the
    // universal-link flow rather than an in-app claim.
    InviteSourceUniversalLink = "universal_link"
)

// PendingInvite is a referral token waiting to be redeemed.
//
// Fields:
//  Token      – primary key, a random UUID.
//  InviterID  – user who issued the invite.
//  Redeemed   – set once a user claims the token.
//  RedeemedBy – user who claimed it (nullable until redeemed).
//  RedeemedAt – claim timestamp (nullable until redeemed).
//  Source     – "app" or "web".
type PendingInvite struct {
    Token      string     // pending_invites.token
    InviterID  string     // pending_invites.inviter_id
    CreatedAt  time.Time  // pending_invites.created_at
    Redeemed   bool       // pending_invites.redeemed
    RedeemedBy *string    // pending_invites.redeemed_by (nullable)
    RedeemedAt *time.Time // pending_invites.redeemed_at (nullable)
    Source     string     // pending_invites.source
}

// RedeemedInvite is the permanent record that a user entered through a
// referral.  At most one row may exist per redeeming user.
type RedeemedInvite struct {
    ID         uint64    // redeemed_invites.id
    UserID     string    // redeemed_invites.user_id
    InviterID  string    // redeemed_invites.inviter_id
    RedeemedAt time.Time // redeemed_invites.redeemed_at
    Source     string    // redeemed_invites.source
}
