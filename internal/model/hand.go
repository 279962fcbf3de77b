package model

// HandLog is the immutable source-of-truth record of one played hand, written
// by the app's game backend and only ever read here.  Field names mirror the
// snake_case JSON documents stored in the hands table.  Maps keyed by seat
// index use string keys because that is how the documents arrive; callers
// convert with strconv where an int is needed.
//
// Fields:
//  HandID        – opaque identifier (primary key of the document).
//  Seats         – ordered seat list; indices are stable small ints (0..5).
//  ButtonSeat    – seat index holding the dealer button.
//  Actions       – chronological action sequence; sole source of temporal
//                  ordering for playback, timestamps are informational only.
//  HoleCards     – seat index -> pair of card notations (rank+suit), present
//                  only for seats whose cards are known to the viewer.
//  Board         – up to 5 community cards in reveal order.
//  Winners       – settlement results per winning seat.
//  StackDeltas   – seat index -> signed cents change over the hand.
type HandLog struct {
    HandID      string              `json:"hand_id"`
    TableID     string              `json:"table_id"`
    StakeID     string              `json:"stake_id"`
    StartedAt   string              `json:"started_at"`
    EndedAt     string              `json:"ended_at"`
    Seats       []HandSeat          `json:"seats"`
    ButtonSeat  int                 `json:"button_seat"`
    SmallBlind  int64               `json:"small_blind"`
    BigBlind    int64               `json:"big_blind"`
    Actions     []HandAction        `json:"actions"`
    HoleCards   map[string][]string `json:"hole_cards"`
    Board       []string            `json:"board"`
    Winners     []HandWinner        `json:"winners"`
    StackDeltas map[string]int64    `json:"stack_deltas"`
}

// HandSeat describes one occupied seat at hand start.
type HandSeat struct {
    SeatIndex     int    `json:"seat_index"`     // stable 0-based table position
    UserID        string `json:"user_id"`        // player identity
    DisplayName   string `json:"display_name"`   // name shown at the table
    StartingStack int64  `json:"starting_stack"` // stack in cents before the hand
}

// HandAction is a single betting action.  Amount is optional in the stored
// document and defaults to zero.
type HandAction struct {
    Seat      int    `json:"seat"`
    Action    string `json:"action"` // bet, raise, call, check, fold, post_blind, ...
    Amount    int64  `json:"amount,omitempty"`
    IsAllIn   bool   `json:"is_all_in"`
    Street    string `json:"street"` // preflop, flop, turn, river
    Timestamp string `json:"timestamp,omitempty"`
}

// HandWinner records one seat's share of the pot at settlement.
type HandWinner struct {
    Seat            int      `json:"seat"`
    UserID          string   `json:"user_id"`
    AmountWon       int64    `json:"amount_won"`
    HandDescription string   `json:"hand_description,omitempty"` // e.g. "Two Pair"
    ShownCards      []string `json:"shown_cards,omitempty"`      // cards revealed at showdown
}
