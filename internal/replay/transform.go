package replay

import (
	"strconv"

	"github.com/stackpoker/stackweb/internal/model"
)

// Transform projects a stored hand log and its share record into a
// Snapshot. It is a pure, total function over well-formed input: malformed
// documents are the upstream fetch layer's problem, and a share whose user
// matches no seat degrades silently to hero seat 0 with a zero delta.
func Transform(hand *model.HandLog, share *model.ShareRecord) Snapshot {
	heroSeat := 0
	heroFound := false
	for _, s := range hand.Seats {
		if s.UserID == share.UserID {
			heroSeat = s.SeatIndex
			heroFound = true
			break
		}
	}

	// Pot size is computed defensively as the larger of the two sides of the
	// zero-sum accounting. The sides are expected to be equal; the max
	// tolerates rounding or data-entry asymmetries in stored deltas.
	var positive, negative int64
	deltas := make(map[int]int64, len(hand.StackDeltas))
	for key, d := range hand.StackDeltas {
		if idx, err := strconv.Atoi(key); err == nil {
			deltas[idx] = d
		}
		if d > 0 {
			positive += d
		} else {
			negative -= d
		}
	}
	potSize := positive
	if negative > potSize {
		potSize = negative
	}

	var heroDelta int64
	if heroFound {
		heroDelta = deltas[heroSeat]
	}

	seats := make([]Seat, 0, len(hand.Seats))
	for _, s := range hand.Seats {
		seats = append(seats, Seat{
			SeatIndex:     s.SeatIndex,
			DisplayName:   s.DisplayName,
			IsHero:        s.UserID == share.UserID,
			StartingStack: s.StartingStack,
			HoleCards:     hand.HoleCards[strconv.Itoa(s.SeatIndex)],
		})
	}

	actions := make([]Action, 0, len(hand.Actions))
	for _, a := range hand.Actions {
		actions = append(actions, Action{
			Seat:    a.Seat,
			Action:  a.Action,
			Amount:  a.Amount,
			Street:  a.Street,
			IsAllIn: a.IsAllIn,
		})
	}

	winners := make([]Winner, 0, len(hand.Winners))
	for _, w := range hand.Winners {
		shown := w.ShownCards
		if len(shown) == 0 {
			// Fall back to the winner's hole cards so a fold-through winner
			// still has cards available; playback decides whether to reveal.
			shown = hand.HoleCards[strconv.Itoa(w.Seat)]
		}
		winners = append(winners, Winner{
			Seat:            w.Seat,
			AmountWon:       w.AmountWon,
			HandDescription: w.HandDescription,
			ShownCards:      shown,
		})
	}

	return Snapshot{
		HandID:      hand.HandID,
		Seats:       seats,
		ButtonSeat:  hand.ButtonSeat,
		SmallBlind:  hand.SmallBlind,
		BigBlind:    hand.BigBlind,
		Actions:     actions,
		Board:       hand.Board,
		Winners:     winners,
		HeroSeat:    heroSeat,
		HeroDelta:   heroDelta,
		PotSize:     potSize,
		SharerName:  share.SharerName,
		StackDeltas: deltas,
	}
}

// Describe returns the hero-perspective one-liner used for the page's meta
// description and social share card.
func Describe(s Snapshot) string {
	var heroWin *Winner
	for i := range s.Winners {
		if s.Winners[i].Seat == s.HeroSeat {
			heroWin = &s.Winners[i]
			break
		}
	}
	switch {
	case s.HeroDelta > 0 && heroWin != nil && heroWin.HandDescription != "":
		return "Won " + SignedCents(s.HeroDelta) + " with " + heroWin.HandDescription
	case s.HeroDelta > 0:
		return "Won " + SignedCents(s.HeroDelta)
	case s.HeroDelta < 0:
		return "Lost " + SignedCents(s.HeroDelta)
	}
	return "Watch the hand replay"
}
