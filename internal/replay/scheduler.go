package replay

import "time"

// Scheduler defers a callback. Playback's only concurrency primitive:
// sequencing lives in data (Pacing) and the scheduler, so tests can drive
// the whole engine with a virtual clock instead of wall-clock sleeps.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler is the production Scheduler backed by the runtime timer.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

// Pacing holds every presentation delay as data. The constants are tunable
// presentation parameters, not correctness requirements.
type Pacing struct {
	Autostart    time.Duration // grace after initial render before playback starts
	PerAction    time.Duration // gap between consecutive actions
	StreetPause  time.Duration // longer pause after a board reveal
	BoardStagger time.Duration // per-card flip stagger within one reveal
	Indicator    time.Duration // how long an action indicator stays visible
	CTADelay     time.Duration // delay between the summary and the CTA panel
}

// DefaultPacing mirrors the reference presentation timing.
func DefaultPacing() Pacing {
	return Pacing{
		Autostart:    1200 * time.Millisecond,
		PerAction:    650 * time.Millisecond,
		StreetPause:  900 * time.Millisecond,
		BoardStagger: 150 * time.Millisecond,
		Indicator:    600 * time.Millisecond,
		CTADelay:     2500 * time.Millisecond,
	}
}
