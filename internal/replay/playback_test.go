package replay

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

// fakeClock is a deterministic Scheduler. Tasks run in timestamp order when
// the clock is advanced, including tasks scheduled by tasks.
type fakeClock struct {
	now   time.Duration
	seq   int
	tasks []fakeTask
}

type fakeTask struct {
	at  time.Duration
	seq int
	fn  func()
}

func (c *fakeClock) After(d time.Duration, fn func()) {
	c.seq++
	c.tasks = append(c.tasks, fakeTask{at: c.now + d, seq: c.seq, fn: fn})
}

func (c *fakeClock) advance(d time.Duration) {
	target := c.now + d
	for {
		idx := -1
		for i, t := range c.tasks {
			if t.at > target {
				continue
			}
			if idx == -1 || t.at < c.tasks[idx].at || (t.at == c.tasks[idx].at && t.seq < c.tasks[idx].seq) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		t := c.tasks[idx]
		c.tasks = append(c.tasks[:idx], c.tasks[idx+1:]...)
		c.now = t.at
		t.fn()
	}
	c.now = target
}

func (c *fakeClock) runAll() {
	for len(c.tasks) > 0 {
		c.advance(time.Hour)
	}
}

// recordingView logs every call so tests can assert ordering and compare
// whole sessions for determinism.
type recordingView struct{ ops []string }

func (v *recordingView) log(format string, args ...any) {
	v.ops = append(v.ops, fmt.Sprintf(format, args...))
}

func (v *recordingView) Reset()                      { v.log("reset") }
func (v *recordingView) ShowBet(s Slot, a int64)     { v.log("bet slot=%d amount=%d", s, a) }
func (v *recordingView) ClearBets()                  { v.log("clearBets") }
func (v *recordingView) MarkFolded(s Slot)           { v.log("fold slot=%d", s) }
func (v *recordingView) SetPot(a int64)              { v.log("pot %d", a) }
func (v *recordingView) ClearActions()               { v.log("clearActions") }
func (v *recordingView) MarkWinner(s Slot)           { v.log("winner slot=%d", s) }
func (v *recordingView) ShowCTA()                    { v.log("cta") }
func (v *recordingView) ShowReplayPrompt()           { v.log("replayPrompt") }
func (v *recordingView) ShowSummary(s Summary)       { v.log("summary %q %q %q loss=%v", s.Title, s.Amount, s.Description, s.Loss) }
func (v *recordingView) ShowAction(s Slot, label string, ttl time.Duration) {
	v.log("action slot=%d %q", s, label)
}
func (v *recordingView) RevealBoardCard(i int, c Card, delay time.Duration) {
	v.log("board %d %s%c", i, c.RankLabel(), c.Suit)
}
func (v *recordingView) RevealCards(s Slot, cards []Card, hero bool) {
	v.log("reveal slot=%d n=%d hero=%v", s, len(cards), hero)
}
func (v *recordingView) SetStack(s Slot, a int64, ch StackChange) {
	v.log("stack slot=%d amount=%d change=%d", s, a, ch)
}

func (v *recordingView) count(prefix string) int {
	n := 0
	for _, op := range v.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func playbackSnapshot() Snapshot {
	return Snapshot{
		HandID:     "h1",
		ButtonSeat: 1,
		HeroSeat:   0,
		HeroDelta:  700,
		PotSize:    700,
		Seats: []Seat{
			{SeatIndex: 0, DisplayName: "Alice", IsHero: true, StartingStack: 10000, HoleCards: []string{"Ah", "Ad"}},
			{SeatIndex: 1, DisplayName: "Bob", StartingStack: 10000},
		},
		Actions: []Action{
			{Seat: 1, Action: "post_blind", Amount: 50, Street: StreetPreflop},
			{Seat: 0, Action: "post_blind", Amount: 100, Street: StreetPreflop},
			{Seat: 1, Action: "call", Amount: 100, Street: StreetPreflop},
			{Seat: 0, Action: "check", Street: StreetPreflop},
			{Seat: 0, Action: "bet", Amount: 200, Street: StreetFlop},
			{Seat: 1, Action: "call", Amount: 200, Street: StreetFlop},
			{Seat: 0, Action: "check", Street: StreetTurn},
			{Seat: 1, Action: "check", Street: StreetTurn},
			{Seat: 0, Action: "bet", Amount: 150, Street: StreetRiver},
			{Seat: 1, Action: "call", Amount: 150, Street: StreetRiver},
		},
		Board:       []string{"2h", "7d", "Js", "Qc", "3s"},
		Winners:     []Winner{{Seat: 0, AmountWon: 700, HandDescription: "Two Pair", ShownCards: []string{"Ah", "Ad"}}},
		StackDeltas: map[int]int64{0: 700, 1: -700},
	}
}

func TestRotateSeats(t *testing.T) {
	seats := make([]Seat, 6)
	for i := range seats {
		seats[i] = Seat{SeatIndex: i}
	}
	rotated := RotateSeats(seats, 3)
	got := make([]int, len(rotated))
	for i, s := range rotated {
		got[i] = s.SeatIndex
	}
	if want := []int{3, 4, 5, 0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rotation = %v, want %v", got, want)
	}

	// A hero without a seat leaves the order untouched.
	rotated = RotateSeats(seats, 9)
	if rotated[0].SeatIndex != 0 {
		t.Fatalf("unknown hero must not rotate, got %v", rotated[0])
	}
}

func TestPlaybackSlotsFollowRotation(t *testing.T) {
	p := NewPlayback(playbackSnapshot(), &recordingView{}, &fakeClock{}, DefaultPacing())
	if slot, ok := p.Slot(0); !ok || slot != 0 {
		t.Fatalf("hero must anchor slot 0, got %v %v", slot, ok)
	}
	if slot, ok := p.Slot(1); !ok || slot != 1 {
		t.Fatalf("seat 1 slot = %v %v", slot, ok)
	}
	if _, ok := p.Slot(5); ok {
		t.Fatalf("unoccupied seat must have no slot")
	}
}

func TestPlaybackIdempotentStart(t *testing.T) {
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(playbackSnapshot(), view, clock, DefaultPacing())

	p.Start()
	clock.advance(2 * 650 * time.Millisecond)
	before := len(view.ops)

	// Starting mid-session must not reset or duplicate the cursor.
	p.Start()
	if len(view.ops) != before {
		t.Fatalf("second Start produced ops while playing")
	}
	clock.runAll()
	if got := view.count("reset"); got != 1 {
		t.Fatalf("reset called %d times, want 1", got)
	}
	if got := view.count("summary"); got != 1 {
		t.Fatalf("summary called %d times, want 1", got)
	}
}

func TestPlaybackStreetTransitions(t *testing.T) {
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(playbackSnapshot(), view, clock, DefaultPacing())

	p.Start()
	clock.runAll()

	// Three street changes: flop reveals three cards, turn and river one each.
	if got := view.count("board"); got != 5 {
		t.Fatalf("board reveals = %d, want 5", got)
	}
	if got := view.count("clearActions"); got != 3 {
		t.Fatalf("clearActions = %d, want 3", got)
	}
	// Bets are collected at each street change plus once at finish.
	if got := view.count("clearBets"); got != 4 {
		t.Fatalf("clearBets = %d, want 4", got)
	}
}

func TestPlaybackFullHandOutcome(t *testing.T) {
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(playbackSnapshot(), view, clock, DefaultPacing())

	p.Start()
	if !p.Playing() {
		t.Fatalf("expected Playing after Start")
	}
	clock.runAll()
	if p.Playing() {
		t.Fatalf("expected Finished after exhausting actions")
	}

	want := `summary "You Win!" "+$7.00" "Two Pair" loss=false`
	if view.count(want) != 1 {
		t.Fatalf("missing %q in ops:\n%s", want, strings.Join(view.ops, "\n"))
	}
	// Both seats stayed in: showdown reveals the winner's cards.
	if view.count("reveal slot=0 n=2 hero=true") != 1 {
		t.Fatalf("expected hero showdown reveal, ops:\n%s", strings.Join(view.ops, "\n"))
	}
	// Stack deltas applied with gain/loss distinction.
	if view.count(fmt.Sprintf("stack slot=0 amount=%d change=%d", 10700, StackGain)) != 1 {
		t.Fatalf("hero stack not updated")
	}
	if view.count(fmt.Sprintf("stack slot=1 amount=%d change=%d", 9300, StackLoss)) != 1 {
		t.Fatalf("villain stack not updated")
	}
	// CTA arrives only after the summary delay.
	if view.ops[len(view.ops)-1] != "cta" {
		t.Fatalf("cta must be the final op, got %q", view.ops[len(view.ops)-1])
	}
}

func TestPlaybackNoShowdownKeepsCardsHidden(t *testing.T) {
	snap := playbackSnapshot()
	snap.Actions = []Action{
		{Seat: 1, Action: "post_blind", Amount: 50, Street: StreetPreflop},
		{Seat: 0, Action: "post_blind", Amount: 100, Street: StreetPreflop},
		{Seat: 1, Action: "fold", Street: StreetPreflop},
	}
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(snap, view, clock, DefaultPacing())

	p.Start()
	clock.runAll()

	if view.count("reveal") != 0 {
		t.Fatalf("fold-through must not reveal cards:\n%s", strings.Join(view.ops, "\n"))
	}
	if view.count("winner slot=0") != 1 {
		t.Fatalf("winner seat must still be marked")
	}
	if view.count("fold slot=1") != 1 {
		t.Fatalf("folded seat must be marked")
	}
}

func TestPlaybackSkipsSeatsWithoutSlots(t *testing.T) {
	snap := playbackSnapshot()
	snap.Actions = append(snap.Actions, Action{Seat: 9, Action: "bet", Amount: 100, Street: StreetRiver})
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(snap, view, clock, DefaultPacing())

	p.Start()
	clock.runAll()

	if view.count("bet slot=9") != 0 || view.count("action slot=9") != 0 {
		t.Fatalf("seat without a layout slot must be skipped silently")
	}
	if view.count("summary") != 1 {
		t.Fatalf("playback must still finish")
	}
}

func TestPlaybackRestartIsDeterministic(t *testing.T) {
	view := &recordingView{}
	clock := &fakeClock{}
	p := NewPlayback(playbackSnapshot(), view, clock, DefaultPacing())

	p.Start()
	clock.runAll()
	first := append([]string(nil), view.ops...)

	view.ops = nil
	p.Start()
	clock.runAll()

	if !reflect.DeepEqual(first, view.ops) {
		t.Fatalf("restart diverged:\nfirst:\n%s\nsecond:\n%s",
			strings.Join(first, "\n"), strings.Join(view.ops, "\n"))
	}
}
