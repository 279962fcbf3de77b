package replay

import "time"

// Slot is an opaque visual position at the table. Slot 0 is the anchor
// nearest the viewer; the hero always rotates into it. Playback addresses
// the view exclusively through slots so state transitions stay decoupled
// from any particular rendering technology.
type Slot int

// StackChange classifies a seat's end-of-hand stack update for display.
type StackChange int

const (
	StackGain StackChange = iota
	StackLoss
)

// Summary is the hero-perspective result panel shown when playback
// finishes.
type Summary struct {
	Title       string // "You Win!", "Opponent Wins" or "Hand Complete"
	Amount      string // signed dollar amount, e.g. "+$10.00"
	Description string // winning hand description, may be empty
	Loss        bool   // styles the amount as a loss
}

// View renders playback state. Implementations: the DOM view in
// cmd/replaywasm and the recording fake in the package tests. All methods
// are invoked from the single playback goroutine; a view must tolerate any
// slot it was initialized with but is never asked about unknown slots.
type View interface {
	// Reset restores the initial render: starting stacks, face-down or hero
	// cards per seat, empty board, hidden pot, bets and overlays.
	Reset()
	// ShowBet displays a bet chip for the slot with its exact amount.
	ShowBet(slot Slot, amount int64)
	// ClearBets hides every bet display; called when a street's bets move
	// into the pot.
	ClearBets()
	// MarkFolded greys out a folded seat.
	MarkFolded(slot Slot)
	// SetPot updates the pot display. Only called with a positive total.
	SetPot(amount int64)
	// RevealBoardCard turns over one community card. The delay staggers
	// per-card flip animations inside a street reveal; it is decorative and
	// order-independent.
	RevealBoardCard(index int, card Card, delay time.Duration)
	// ShowAction flashes an action indicator over the slot for ttl.
	ShowAction(slot Slot, label string, ttl time.Duration)
	// ClearActions hides all action indicators at a street boundary.
	ClearActions()
	// MarkWinner highlights a winning seat.
	MarkWinner(slot Slot)
	// RevealCards replaces a slot's face-down placeholders with face-up
	// cards at showdown.
	RevealCards(slot Slot, cards []Card, hero bool)
	// SetStack applies a seat's end-of-hand stack, distinguishing gain from
	// loss.
	SetStack(slot Slot, amount int64, change StackChange)
	// ShowSummary presents the win/loss panel.
	ShowSummary(s Summary)
	// ShowReplayPrompt surfaces the manual replay affordance.
	ShowReplayPrompt()
	// ShowCTA presents the call-to-action panel after the summary delay.
	ShowCTA()
}
