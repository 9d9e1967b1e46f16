// Package motion implements the Brik scroll-driven animation engines: a
// one-time reveal engine driven by viewport intersections and a continuous
// parallax engine driven by a frame clock.
//
// Both engines are explicit instances rather than process-wide singletons, so
// several independent surfaces can animate on one screen without colliding.
// Element discovery stays with the caller: targets are handed to the engines
// through Register, and the platform-specific concerns (viewport observation,
// frame scheduling, the reduced-motion preference) are small collaborator
// interfaces with default implementations.
//
// Both engines share one lifecycle: uninitialized, active, torn down, with a
// reduced-motion absorbing state reachable from either of the first two. In
// the reduced state the reveal engine force-marks everything visible and the
// parallax engine never starts its loop; neither re-enters active until the
// preference is lifted and Init is called again.
package motion

import (
	"sync"
	"time"
)

type state int

const (
	stateUninitialized state = iota
	stateActive
	stateReduced
	stateTornDown
)

// Preference reports the user's reduced-motion preference. Implementations
// deliver later changes through the subscribed callback.
type Preference interface {
	Reduced() bool
	Subscribe(fn func(reduced bool))
}

// StaticPreference is a Preference fixed at construction time. It never
// notifies subscribers.
type StaticPreference bool

func (p StaticPreference) Reduced() bool        { return bool(p) }
func (p StaticPreference) Subscribe(func(bool)) {}

// SwitchPreference is a mutable Preference for hosts that can detect
// preference changes at runtime.
type SwitchPreference struct {
	mu      sync.Mutex
	reduced bool
	subs    []func(bool)
}

// NewSwitchPreference creates a SwitchPreference with the given initial value.
func NewSwitchPreference(reduced bool) *SwitchPreference {
	return &SwitchPreference{reduced: reduced}
}

func (p *SwitchPreference) Reduced() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reduced
}

func (p *SwitchPreference) Subscribe(fn func(bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// Set updates the preference and notifies subscribers of the new value.
func (p *SwitchPreference) Set(reduced bool) {
	p.mu.Lock()
	if p.reduced == reduced {
		p.mu.Unlock()
		return
	}
	p.reduced = reduced
	subs := make([]func(bool), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(reduced)
	}
}

// FrameClock delivers frame ticks to the parallax loop. The default clock
// approximates a 60Hz display refresh.
type FrameClock interface {
	Tick() <-chan time.Time
	Stop()
}

type tickerClock struct {
	ticker *time.Ticker
}

// NewFrameClock returns a ticker-backed FrameClock at the given interval.
func NewFrameClock(interval time.Duration) FrameClock {
	return &tickerClock{ticker: time.NewTicker(interval)}
}

func (c *tickerClock) Tick() <-chan time.Time { return c.ticker.C }
func (c *tickerClock) Stop()                  { c.ticker.Stop() }

// FrameInterval is the default frame spacing, one tick per 60Hz refresh.
const FrameInterval = time.Second / 60
