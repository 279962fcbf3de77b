package replay

import (
	"fmt"
	"strings"
)

// Cents renders an absolute cent amount as dollars, e.g. 1050 -> "$10.50".
func Cents(c int64) string {
	if c < 0 {
		c = -c
	}
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// SignedCents renders a signed cent amount with an explicit sign; zero is
// positive, matching the share-card wording rules.
func SignedCents(c int64) string {
	if c < 0 {
		return "-" + Cents(c)
	}
	return "+" + Cents(c)
}

// positionLabels is indexed by a seat's offset from the button, clockwise.
var positionLabels = [...]string{"BTN", "SB", "BB", "UTG", "HJ", "CO"}

// PositionLabel derives a seat's positional label from its offset to the
// button seat modulo the table size. Offsets past the label list (tables
// larger than six) fall back to a generic seat label.
func PositionLabel(seat, buttonSeat, tableSize int) string {
	if tableSize <= 0 {
		return fmt.Sprintf("S%d", seat)
	}
	rel := ((seat-buttonSeat)%tableSize + tableSize) % tableSize
	if rel < len(positionLabels) {
		return positionLabels[rel]
	}
	return fmt.Sprintf("S%d", seat)
}

// NormalizeAction title-cases a raw action tag for display. The blind-post
// tags collapse to "Post".
func NormalizeAction(raw string) string {
	if raw == "" {
		return raw
	}
	lower := strings.ToLower(raw)
	if lower == "post_blind" || lower == "post" {
		return "Post"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ActionLabel renders the full on-table indicator text. Fold and check are
// never annotated with an amount even if the record carries one.
func ActionLabel(raw string, amount int64) string {
	label := NormalizeAction(raw)
	if amount > 0 && label != "Check" && label != "Fold" {
		return label + " " + Cents(amount)
	}
	return label
}

// ChipDenoms is the descending denomination ladder for the chip-stack
// visual, in cents.
var ChipDenoms = [...]int64{10000, 2500, 500, 100, 50, 10, 1}

// ChipTier is one denomination column in a bet's chip-stack visual.
type ChipTier struct {
	Denom int64
	Count int
}

// ChipStack decomposes a bet amount into at most two denomination tiers of
// at most four chips each. Purely cosmetic: the numeric label always shows
// the exact amount and pot accounting never touches this.
func ChipStack(amount int64) []ChipTier {
	remaining := amount
	var tiers []ChipTier
	for _, d := range ChipDenoms {
		count := remaining / d
		if count > 0 {
			c := int(count)
			if c > 4 {
				c = 4
			}
			tiers = append(tiers, ChipTier{Denom: d, Count: c})
			remaining -= count * d
			if len(tiers) >= 2 {
				break
			}
		}
	}
	return tiers
}

// Card is a parsed card notation. Rank is one of 23456789TJQKA, Suit one of
// hdcs.
type Card struct {
	Rank byte
	Suit byte
}

// ParseCard parses a two-character notation like "Ah" or "Td". Malformed
// notations report ok=false and are skipped by callers; a presentation
// layer degrades silently rather than crashing.
func ParseCard(notation string) (Card, bool) {
	if len(notation) < 2 {
		return Card{}, false
	}
	return Card{Rank: notation[0], Suit: notation[1]}, true
}

// RankLabel returns the display form of the rank; tens render as "10".
func (c Card) RankLabel() string {
	if c.Rank == 'T' {
		return "10"
	}
	return string(c.Rank)
}
