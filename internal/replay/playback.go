package replay

import "time"

// Playback steps through a Snapshot's action sequence at a fixed pace,
// driving a View. States: Idle -> Playing -> Finished. Finished returns to
// Playing only through Start, which resets all accumulator state first.
//
// The engine is single-threaded by contract: Start and every scheduled step
// must run on the same goroutine (the wasm build has only one; tests drive
// the virtual clock synchronously). There is no timer cancellation — a
// reset while timers from a prior run are pending relies on the playing
// flag check at the top of each step to turn stale callbacks into no-ops.
type Playback struct {
	snap   Snapshot
	view   View
	sched  Scheduler
	pacing Pacing

	rotated []Seat
	slots   map[int]Slot

	playing   bool
	actionIdx int
	street    string
	pot       int64
	bets      map[int]int64
	folded    map[int]bool
}

// NewPlayback builds an engine for one snapshot. The rotation is computed
// once here and identically on every reset since it is a pure function of
// the hero seat and seat list.
func NewPlayback(snap Snapshot, view View, sched Scheduler, pacing Pacing) *Playback {
	p := &Playback{
		snap:   snap,
		view:   view,
		sched:  sched,
		pacing: pacing,
	}
	p.rotated = RotateSeats(snap.Seats, snap.HeroSeat)
	p.slots = make(map[int]Slot, len(p.rotated))
	for i, s := range p.rotated {
		p.slots[s.SeatIndex] = Slot(i)
	}
	p.resetState()
	return p
}

// RotateSeats returns the seat list rotated so the hero seat occupies the
// first (viewer-anchor) position, with the remaining seats following in
// their original order wrapping around. A hero seat not present in the list
// leaves the order untouched.
func RotateSeats(seats []Seat, heroSeat int) []Seat {
	heroIdx := -1
	for i, s := range seats {
		if s.SeatIndex == heroSeat {
			heroIdx = i
			break
		}
	}
	if heroIdx < 0 {
		return seats
	}
	rotated := make([]Seat, 0, len(seats))
	for i := range seats {
		rotated = append(rotated, seats[(heroIdx+i)%len(seats)])
	}
	return rotated
}

// Rotated exposes the display order for view initialization.
func (p *Playback) Rotated() []Seat { return p.rotated }

// Slot maps a seat index to its visual slot. Seats without a layout slot
// report ok=false and are skipped silently by the engine.
func (p *Playback) Slot(seatIndex int) (Slot, bool) {
	s, ok := p.slots[seatIndex]
	return s, ok
}

// Playing reports whether a playback session is in flight.
func (p *Playback) Playing() bool { return p.playing }

// Start begins a playback session. Starting while already playing is a
// no-op so an eager replay button cannot corrupt the in-progress cursor;
// starting from Finished resets all visual and accumulator state first.
func (p *Playback) Start() {
	if p.playing {
		return
	}
	p.resetState()
	p.view.Reset()
	p.playing = true
	p.step()
}

// resetState returns every playback field to Idle semantics.
func (p *Playback) resetState() {
	p.playing = false
	p.actionIdx = 0
	p.street = StreetPreflop
	p.pot = 0
	p.bets = make(map[int]int64)
	p.folded = make(map[int]bool)
}

// step consumes one action, or handles a street change, or finishes. Stale
// invocations from a previous session bail on the playing flag.
func (p *Playback) step() {
	if !p.playing {
		return
	}
	if p.actionIdx >= len(p.snap.Actions) {
		p.finish()
		return
	}

	a := p.snap.Actions[p.actionIdx]

	if a.Street != p.street && a.Street != StreetPreflop {
		p.collectPot()
		p.revealBoard(a.Street)
		p.street = a.Street
		p.view.ClearActions()
		p.sched.After(p.pacing.StreetPause, p.step)
		return
	}

	label := NormalizeAction(a.Action)
	if slot, ok := p.slots[a.Seat]; ok {
		p.view.ShowAction(slot, ActionLabel(a.Action, a.Amount), p.pacing.Indicator)
	}

	if label == "Fold" {
		p.foldSeat(a.Seat)
	} else if label != "Check" && a.Amount > 0 {
		p.showBet(a.Seat, a.Amount)
	}

	p.actionIdx++
	p.sched.After(p.pacing.PerAction, p.step)
}

// showBet records and displays a seat's current bet. The map holds the last
// displayed amount per seat; street collection sums exactly what is on the
// felt.
func (p *Playback) showBet(seat int, amount int64) {
	slot, ok := p.slots[seat]
	if !ok {
		return
	}
	p.bets[seat] = amount
	p.view.ShowBet(slot, amount)
}

func (p *Playback) foldSeat(seat int) {
	slot, ok := p.slots[seat]
	if !ok {
		return
	}
	p.folded[seat] = true
	p.view.MarkFolded(slot)
}

// collectPot sweeps all displayed bets into the pot and clears the felt.
func (p *Playback) collectPot() {
	var total int64
	for _, amount := range p.bets {
		total += amount
	}
	p.pot += total
	p.bets = make(map[int]int64)
	p.view.ClearBets()
	if p.pot > 0 {
		p.view.SetPot(p.pot)
	}
}

// revealBoard turns over the board cards belonging to the new street: flop
// reveals indices 0-2, turn index 3, river index 4. Per-card delays stagger
// the flip animation only; they are not sequenced relative to each other.
func (p *Playback) revealBoard(street string) {
	var start, end int
	switch street {
	case StreetFlop:
		start, end = 0, 3
	case StreetTurn:
		start, end = 3, 4
	case StreetRiver:
		start, end = 4, 5
	default:
		return
	}
	for i := start; i < end && i < len(p.snap.Board); i++ {
		card, ok := ParseCard(p.snap.Board[i])
		if !ok {
			continue
		}
		p.view.RevealBoardCard(i, card, time.Duration(i-start)*p.pacing.BoardStagger)
	}
}

// finish enters the terminal state: final pot collection, winner marking,
// showdown reveal, stack-delta application, summary and CTA.
func (p *Playback) finish() {
	p.playing = false
	p.collectPot()

	unfolded := 0
	for _, s := range p.rotated {
		if !p.folded[s.SeatIndex] {
			unfolded++
		}
	}
	showdown := unfolded > 1

	for _, w := range p.snap.Winners {
		slot, ok := p.slots[w.Seat]
		if !ok {
			continue
		}
		p.view.MarkWinner(slot)
		if !showdown {
			continue
		}
		shown := w.ShownCards
		if len(shown) != 2 && w.Seat == p.snap.HeroSeat {
			shown = p.heroHoleCards()
		}
		if cards := parseCards(shown); len(cards) == 2 {
			p.view.RevealCards(slot, cards, w.Seat == p.snap.HeroSeat)
		}
	}

	p.applyStackDeltas()
	p.view.ShowSummary(p.summary())
	p.view.ShowReplayPrompt()
	p.sched.After(p.pacing.CTADelay, p.view.ShowCTA)
}

func (p *Playback) heroHoleCards() []string {
	for _, s := range p.rotated {
		if s.SeatIndex == p.snap.HeroSeat {
			return s.HoleCards
		}
	}
	return nil
}

func parseCards(notations []string) []Card {
	if len(notations) != 2 {
		return nil
	}
	cards := make([]Card, 0, 2)
	for _, n := range notations {
		c, ok := ParseCard(n)
		if !ok {
			return nil
		}
		cards = append(cards, c)
	}
	return cards
}

// applyStackDeltas updates each seat's displayed stack by its hand delta.
// Seats with a zero or missing delta keep their starting-stack display.
func (p *Playback) applyStackDeltas() {
	for _, s := range p.rotated {
		delta := p.snap.StackDeltas[s.SeatIndex]
		if delta == 0 {
			continue
		}
		slot, ok := p.slots[s.SeatIndex]
		if !ok {
			continue
		}
		change := StackGain
		if delta < 0 {
			change = StackLoss
		}
		p.view.SetStack(slot, s.StartingStack+delta, change)
	}
}

// summary builds the hero-perspective result panel.
func (p *Playback) summary() Summary {
	if p.snap.HeroDelta > 0 {
		desc := ""
		for _, w := range p.snap.Winners {
			if w.Seat == p.snap.HeroSeat {
				desc = w.HandDescription
				break
			}
		}
		return Summary{
			Title:       "You Win!",
			Amount:      SignedCents(p.snap.HeroDelta),
			Description: desc,
		}
	}

	title := "Hand Complete"
	desc := ""
	if len(p.snap.Winners) > 0 {
		first := p.snap.Winners[0]
		if first.Seat != p.snap.HeroSeat {
			title = "Opponent Wins"
		} else {
			title = "You Win!"
		}
		desc = first.HandDescription
	}
	return Summary{
		Title:       title,
		Amount:      "-" + Cents(p.snap.HeroDelta),
		Description: desc,
		Loss:        true,
	}
}
