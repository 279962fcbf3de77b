//go:build js && wasm

// The browser half of the replay page. Parses the snapshot embedded in the
// document, builds the table DOM and drives it through the playback engine
// with real timers. All poker sequencing lives in internal/replay; this file
// only translates view calls into DOM mutations.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"
	"time"

	"github.com/stackpoker/stackweb/internal/replay"
)

// Visual anchor points for up to six seats, in percent of the table box.
// Index 0 is the bottom-center anchor the hero rotates into.
var seatPositions = [6][2]float64{
	{88, 50},
	{72, 12},
	{28, 14},
	{12, 50},
	{28, 86},
	{72, 88},
}

// Bet chips sit between each seat and the table center.
var betPositions = [6][2]float64{
	{73, 50},
	{62, 24},
	{38, 24},
	{25, 50},
	{38, 76},
	{62, 76},
}

var botEmojis = [...]string{"🤖", "🎰", "🎲", "🃏", "🎯", "🎪"}

var suitSymbols = map[byte]string{'h': "♥", 'd': "♦", 'c': "♣", 's': "♠"}
var suitClasses = map[byte]string{'h': "hearts", 'd': "diamonds", 'c': "clubs", 's': "spades"}

var chipColors = map[int64][2]string{
	1:     {"#D9D9D9", "#999999"},
	10:    {"#A67340", "#734D26"},
	50:    {"#4D99E6", "#3366B3"},
	100:   {"#F2F2F2", "#BFBFBF"},
	500:   {"#E63333", "#991A1A"},
	2500:  {"#33B34D", "#1A8033"},
	10000: {"#1A1A1A", "#4D4D4D"},
}

func main() {
	doc := js.Global().Get("document")
	raw := doc.Call("getElementById", "replayData").Get("textContent").String()

	var snap replay.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		js.Global().Get("console").Call("error", "replay: bad snapshot: "+err.Error())
		select {}
	}

	view := newDOMView(doc, snap)
	pacing := replay.DefaultPacing()
	sched := replay.TimerScheduler{}
	pb := replay.NewPlayback(snap, view, sched, pacing)

	start := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
			args[0].Call("stopPropagation")
		}
		pb.Start()
		return nil
	})
	btn := doc.Call("getElementById", "replayBtn")
	btn.Call("addEventListener", "click", start)
	btn.Call("addEventListener", "touchend", start)

	sched.After(pacing.Autostart, pb.Start)

	select {}
}

// domView implements replay.View over the page markup. Slots index the
// rotated seat order, which is exactly how the seat and bet elements are
// laid out at build time.
type domView struct {
	doc     js.Value
	snap    replay.Snapshot
	rotated []replay.Seat

	seatEls  []js.Value
	betEls   []js.Value
	boardEls []js.Value
}

func newDOMView(doc js.Value, snap replay.Snapshot) *domView {
	v := &domView{doc: doc, snap: snap, rotated: replay.RotateSeats(snap.Seats, snap.HeroSeat)}
	v.build()
	return v
}

// build creates the seat, bet-chip and board-placeholder elements once; every
// later view call only toggles classes and content on them.
func (v *domView) build() {
	table := v.doc.Call("getElementById", "table")
	v.doc.Call("getElementById", "sharerInfo").Set("textContent", "Shared by @"+v.snap.SharerName)

	for i, seat := range v.rotated {
		if i >= len(seatPositions) {
			break
		}
		isHero := seat.SeatIndex == v.snap.HeroSeat

		el := v.doc.Call("createElement", "div")
		cls := "seat"
		if isHero {
			cls += " hero-seat"
		}
		el.Set("className", cls)
		el.Set("id", fmt.Sprintf("seat-%d", seat.SeatIndex))
		el.Get("style").Set("top", fmt.Sprintf("%v%%", seatPositions[i][0]))
		el.Get("style").Set("left", fmt.Sprintf("%v%%", seatPositions[i][1]))
		el.Set("innerHTML", v.seatCardsHTML(seat)+v.seatInfoHTML(seat))
		table.Call("appendChild", el)
		v.seatEls = append(v.seatEls, el)

		chip := v.doc.Call("createElement", "div")
		chip.Set("className", "bet-chip")
		chip.Set("id", fmt.Sprintf("bet-%d", seat.SeatIndex))
		chip.Get("style").Set("top", fmt.Sprintf("%v%%", betPositions[i][0]))
		chip.Get("style").Set("left", fmt.Sprintf("%v%%", betPositions[i][1]))
		table.Call("appendChild", chip)
		v.betEls = append(v.betEls, chip)
	}

	board := v.doc.Call("getElementById", "boardCards")
	for i := 0; i < 5; i++ {
		el := v.doc.Call("createElement", "div")
		el.Set("className", "board-placeholder")
		board.Call("appendChild", el)
		v.boardEls = append(v.boardEls, el)
	}
}

func (v *domView) seatCardsHTML(seat replay.Seat) string {
	isHero := seat.SeatIndex == v.snap.HeroSeat
	if isHero && len(seat.HoleCards) == 2 {
		return cardsContainerHTML(seat.HoleCards, true)
	}
	const back = `<div class="card-back"><img src="https://stackpoker.gg/images/logo.png" alt=""/></div>`
	return `<div class="seat-cards">` +
		`<div class="card-wrapper first">` + back + `</div>` +
		`<div class="card-wrapper second">` + back + `</div>` +
		`</div>`
}

func (v *domView) seatInfoHTML(seat replay.Seat) string {
	isHero := seat.SeatIndex == v.snap.HeroSeat
	emoji := botEmojis[seat.SeatIndex%len(botEmojis)]
	youBadge := ""
	if isHero {
		emoji = "😎"
		youBadge = `<span class="you-badge">YOU</span>`
	}
	dealer := ""
	if seat.SeatIndex == v.snap.ButtonSeat {
		dealer = `<div class="seat-dealer">D</div>`
	}
	pos := replay.PositionLabel(seat.SeatIndex, v.snap.ButtonSeat, len(v.snap.Seats))
	return `<div class="seat-info">` +
		`<span class="seat-emoji">` + emoji + `</span>` +
		`<div class="seat-details">` +
		`<div class="seat-name">` + escapeHTML(seat.DisplayName) + youBadge + `</div>` +
		`<div class="seat-position">` + pos + `</div>` +
		`</div>` +
		`<span class="seat-stack">` + replay.Cents(seat.StartingStack) + `</span>` +
		dealer +
		`</div>`
}

func cardHTML(c replay.Card, cls string) string {
	suitCls, ok := suitClasses[c.Suit]
	if !ok {
		suitCls = "spades"
	}
	return `<div class="` + cls + ` ` + suitCls + `"><span class="rank">` + c.RankLabel() + `</span><span class="suit">` + suitSymbols[c.Suit] + `</span></div>`
}

func cardsContainerHTML(notations []string, hero bool) string {
	cls := "seat-cards"
	if hero {
		cls = "seat-cards hero-cards"
	}
	var b strings.Builder
	b.WriteString(`<div class="` + cls + `">`)
	wrappers := [...]string{"first", "second"}
	n := 0
	for _, notation := range notations {
		c, ok := replay.ParseCard(notation)
		if !ok || n >= len(wrappers) {
			continue
		}
		b.WriteString(`<div class="card-wrapper ` + wrappers[n] + `">` + cardHTML(c, "card") + `</div>`)
		n++
	}
	b.WriteString(`</div>`)
	return b.String()
}

func chipStackHTML(amount int64) string {
	tiers := replay.ChipStack(amount)
	label := `<span class="chip-label">` + replay.Cents(amount) + `</span>`
	if len(tiers) == 0 {
		return label
	}
	var b strings.Builder
	b.WriteString(`<div class="chip-stacks">`)
	for i, t := range tiers {
		colors, ok := chipColors[t.Denom]
		if !ok {
			colors = chipColors[100]
		}
		b.WriteString(fmt.Sprintf(`<div class="chip-column" style="z-index:%d;">`, 2-i))
		for j := 0; j < t.Count; j++ {
			b.WriteString(fmt.Sprintf(
				`<div class="chip-item" style="top:-%dpx;"><div class="chip" style="width:18px;height:18px;background:%s;"><div class="chip-face" style="width:15.84px;height:15.84px;background:%s;"></div></div></div>`,
				j*3, colors[1], colors[0]))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String() + label
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func (v *domView) seatEl(slot replay.Slot) (js.Value, bool) {
	i := int(slot)
	if i < 0 || i >= len(v.seatEls) {
		return js.Value{}, false
	}
	return v.seatEls[i], true
}

func (v *domView) Reset() {
	for i, el := range v.seatEls {
		el.Get("classList").Call("remove", "folded", "winner")
		seat := v.rotated[i]
		cards := el.Call("querySelector", ".seat-cards")
		if !cards.IsNull() {
			cards.Set("outerHTML", v.seatCardsHTML(seat))
		}
		stack := el.Call("querySelector", ".seat-stack")
		if !stack.IsNull() {
			stack.Set("textContent", replay.Cents(seat.StartingStack))
			stack.Get("classList").Call("remove", "stack-updated", "stack-loss")
		}
		ind := el.Call("querySelector", ".action-indicator")
		if !ind.IsNull() {
			ind.Get("classList").Call("remove", "visible")
		}
	}
	for _, el := range v.betEls {
		el.Get("classList").Call("remove", "visible")
	}
	for _, el := range v.boardEls {
		el.Get("classList").Call("remove", "visible")
		el.Set("className", "board-placeholder")
		el.Set("innerHTML", "")
	}

	pot := v.doc.Call("getElementById", "pot")
	pot.Get("classList").Call("remove", "visible")
	amt := pot.Call("querySelector", ".pot-amount")
	if !amt.IsNull() {
		amt.Set("textContent", "$0.00")
	}
	v.doc.Call("getElementById", "ctaOverlay").Get("classList").Call("remove", "visible")
	v.doc.Call("getElementById", "winOverlay").Get("classList").Call("remove", "visible")
	v.doc.Call("getElementById", "replayOverlay").Get("classList").Call("remove", "visible")
}

func (v *domView) ShowBet(slot replay.Slot, amount int64) {
	i := int(slot)
	if i < 0 || i >= len(v.betEls) {
		return
	}
	el := v.betEls[i]
	el.Set("innerHTML", chipStackHTML(amount))
	el.Get("classList").Call("add", "visible")
}

func (v *domView) ClearBets() {
	for _, el := range v.betEls {
		el.Get("classList").Call("remove", "visible")
	}
}

func (v *domView) MarkFolded(slot replay.Slot) {
	if el, ok := v.seatEl(slot); ok {
		el.Get("classList").Call("add", "folded")
	}
}

func (v *domView) SetPot(amount int64) {
	pot := v.doc.Call("getElementById", "pot")
	amt := pot.Call("querySelector", ".pot-amount")
	if !amt.IsNull() {
		amt.Set("textContent", replay.Cents(amount))
	}
	pot.Get("classList").Call("add", "visible")
}

func (v *domView) RevealBoardCard(index int, card replay.Card, delay time.Duration) {
	if index < 0 || index >= len(v.boardEls) {
		return
	}
	el := v.boardEls[index]
	suitCls, ok := suitClasses[card.Suit]
	if !ok {
		suitCls = "spades"
	}
	el.Set("className", "board-card "+suitCls)
	el.Set("innerHTML", `<span class="rank">`+card.RankLabel()+`</span><span class="suit">`+suitSymbols[card.Suit]+`</span>`)
	replay.TimerScheduler{}.After(delay, func() {
		el.Get("classList").Call("add", "visible")
	})
}

func (v *domView) ShowAction(slot replay.Slot, label string, ttl time.Duration) {
	el, ok := v.seatEl(slot)
	if !ok {
		return
	}
	ind := el.Call("querySelector", ".action-indicator")
	if ind.IsNull() {
		ind = v.doc.Call("createElement", "div")
		ind.Set("className", "action-indicator")
		el.Call("insertBefore", ind, el.Get("firstChild"))
	}
	ind.Set("textContent", label)
	ind.Get("classList").Call("add", "visible")
	replay.TimerScheduler{}.After(ttl, func() {
		ind.Get("classList").Call("remove", "visible")
	})
}

func (v *domView) ClearActions() {
	for _, el := range v.seatEls {
		ind := el.Call("querySelector", ".action-indicator")
		if !ind.IsNull() {
			ind.Get("classList").Call("remove", "visible")
		}
	}
}

func (v *domView) MarkWinner(slot replay.Slot) {
	if el, ok := v.seatEl(slot); ok {
		el.Get("classList").Call("add", "winner")
	}
}

func (v *domView) RevealCards(slot replay.Slot, cards []replay.Card, hero bool) {
	el, ok := v.seatEl(slot)
	if !ok {
		return
	}
	container := el.Call("querySelector", ".seat-cards")
	if container.IsNull() {
		return
	}
	notations := make([]string, 0, len(cards))
	for _, c := range cards {
		notations = append(notations, string([]byte{c.Rank, c.Suit}))
	}
	container.Set("outerHTML", cardsContainerHTML(notations, hero))
}

func (v *domView) SetStack(slot replay.Slot, amount int64, change replay.StackChange) {
	el, ok := v.seatEl(slot)
	if !ok {
		return
	}
	stack := el.Call("querySelector", ".seat-stack")
	if stack.IsNull() {
		return
	}
	stack.Set("textContent", replay.Cents(amount))
	if change == replay.StackLoss {
		stack.Get("classList").Call("add", "stack-loss")
	} else {
		stack.Get("classList").Call("add", "stack-updated")
	}
}

func (v *domView) ShowSummary(s replay.Summary) {
	v.doc.Call("getElementById", "winTitle").Set("textContent", s.Title)
	amt := v.doc.Call("getElementById", "winAmount")
	amt.Set("textContent", s.Amount)
	if s.Loss {
		amt.Set("className", "win-amount loss")
	} else {
		amt.Set("className", "win-amount")
	}
	v.doc.Call("getElementById", "winDescription").Set("textContent", s.Description)
	v.doc.Call("getElementById", "winOverlay").Get("classList").Call("add", "visible")
}

func (v *domView) ShowReplayPrompt() {
	v.doc.Call("getElementById", "replayOverlay").Get("classList").Call("add", "visible")
}

func (v *domView) ShowCTA() {
	v.doc.Call("getElementById", "ctaOverlay").Get("classList").Call("add", "visible")
}
