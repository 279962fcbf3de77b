// Package replay turns stored hand logs into client-ready snapshots and
// replays them as a deterministic, timer-paced sequence of view updates.
//
// The package splits into two halves mirroring their lifecycles: Transform
// runs once per page request on the server, Playback runs in the viewer's
// browser (compiled to WebAssembly) against the snapshot embedded in the
// page. Both halves are plain Go so the whole sequencing logic is testable
// server-side with a virtual clock.
package replay

// Snapshot is the compact read-only projection of one hand, embedded in the
// replay page as inline JSON. Field names are the client wire contract; the
// stored documents use snake_case, the snapshot camelCase.
type Snapshot struct {
	HandID      string        `json:"handId"`
	Seats       []Seat        `json:"seats"`
	ButtonSeat  int           `json:"buttonSeat"`
	SmallBlind  int64         `json:"smallBlind"`
	BigBlind    int64         `json:"bigBlind"`
	Actions     []Action      `json:"actions"`
	Board       []string      `json:"board"`
	Winners     []Winner      `json:"winners"`
	HeroSeat    int           `json:"heroSeat"`
	HeroDelta   int64         `json:"heroDelta"`
	PotSize     int64         `json:"potSize"`
	SharerName  string        `json:"sharerName"`
	StackDeltas map[int]int64 `json:"stackDeltas"`
}

// Seat carries the per-seat display data. HoleCards are copied for every
// seat that has them in the hand log; whether non-hero cards render face
// down is playback policy, not a transform concern.
type Seat struct {
	SeatIndex     int      `json:"seatIndex"`
	DisplayName   string   `json:"displayName"`
	IsHero        bool     `json:"isHero"`
	StartingStack int64    `json:"startingStack"`
	HoleCards     []string `json:"holeCards,omitempty"`
}

// Action is one betting action reduced to what playback needs.
type Action struct {
	Seat    int    `json:"seat"`
	Action  string `json:"action"`
	Amount  int64  `json:"amount"`
	Street  string `json:"street"`
	IsAllIn bool   `json:"isAllIn"`
}

// Winner is one settlement entry. ShownCards already carries the hole-card
// fallback applied at transform time.
type Winner struct {
	Seat            int      `json:"seat"`
	AmountWon       int64    `json:"amountWon"`
	HandDescription string   `json:"handDescription,omitempty"`
	ShownCards      []string `json:"shownCards,omitempty"`
}

// Streets in reveal order.
const (
	StreetPreflop = "preflop"
	StreetFlop    = "flop"
	StreetTurn    = "turn"
	StreetRiver   = "river"
)
