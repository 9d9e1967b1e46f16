package motion

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParallaxTarget struct {
	top    float64
	height float64
	offset float64
	writes int
}

func (t *fakeParallaxTarget) SetOffset(offset float64) {
	t.offset = offset
	t.writes++
}

func (t *fakeParallaxTarget) Top() float64    { return t.top }
func (t *fakeParallaxTarget) Height() float64 { return t.height }

type manualClock struct {
	ticks   chan time.Time
	stopped bool
}

func newManualClock() *manualClock {
	return &manualClock{ticks: make(chan time.Time)}
}

func (c *manualClock) Tick() <-chan time.Time { return c.ticks }
func (c *manualClock) Stop()                  { c.stopped = true }

func TestParallaxDefaultTargetMath(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)

	// First frame moves a tenth of the way toward the goal of 50.
	engine.Step()
	assert.InDelta(t, 5.0, target.offset, 1e-9)

	// Convergence approaches 50 asymptotically.
	for i := 0; i < 200; i++ {
		engine.Step()
	}
	assert.InDelta(t, 50.0, target.offset, engine.Config().Epsilon+1e-9)
}

func TestParallaxWritesStopBelowEpsilon(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)

	for i := 0; i < 500; i++ {
		engine.Step()
	}
	writes := target.writes
	require.Greater(t, writes, 0)

	// With the offset settled, further frames issue no writes.
	for i := 0; i < 50; i++ {
		engine.Step()
	}
	assert.Equal(t, writes, target.writes)

	// A scroll change wakes the target up again.
	engine.SetScroll(1000)
	engine.Step()
	assert.Equal(t, writes+1, target.writes)
}

func TestParallaxImageKindIsBounded(t *testing.T) {
	engine := NewParallax(ParallaxOptions{ViewportHeight: 100, Clock: newManualClock()})
	target := &fakeParallaxTarget{top: 300, height: 50}
	engine.Register(target, TargetConfig{Speed: 0.2, Kind: KindImage})

	// Element below the fold: goal stays zero, nothing moves.
	engine.SetScroll(100)
	engine.Step()
	assert.Zero(t, target.writes)

	// Element fully scrolled past: goal is capped at full travel.
	engine.SetScroll(10_000)
	for i := 0; i < 500; i++ {
		engine.Step()
	}
	wantCap := (100.0 + 50.0) * 0.2
	assert.InDelta(t, wantCap, target.offset, engine.Config().Epsilon+1e-9)
}

func TestParallaxSpeedFallback(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{})
	engine.SetScroll(100)

	engine.Step()
	wantFirst := 100 * engine.Config().DefaultSpeed * engine.Config().LerpFactor
	assert.InDelta(t, wantFirst, target.offset, 1e-9)
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"valid", "0.25", 0.25},
		{"empty falls back", "", 0.15},
		{"garbage falls back", "fast", 0.15},
		{"nan falls back", "NaN", 0.15},
		{"inf falls back", "+Inf", 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSpeed(tt.raw, 0.15)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestParallaxRefreshPreservesKnownState(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	known := &fakeParallaxTarget{}
	engine.Register(known, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)
	engine.Step()
	moved := engine.Offset(known)
	require.NotZero(t, moved)

	fresh := &fakeParallaxTarget{}
	engine.Refresh(known, fresh)

	assert.InDelta(t, moved, engine.Offset(known), 1e-9, "refresh must not reset tracked state")
	assert.Zero(t, engine.Offset(fresh))
}

func TestParallaxReducedMotionSkipsLoop(t *testing.T) {
	clock := newManualClock()
	engine := NewParallax(ParallaxOptions{Clock: clock, Preference: StaticPreference(true)})
	engine.Init(context.Background())

	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)
	engine.Step()

	assert.Zero(t, target.writes)
}

func TestParallaxFrameLoop(t *testing.T) {
	clock := newManualClock()
	engine := NewParallax(ParallaxOptions{Clock: clock})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)

	engine.Init(context.Background())
	clock.ticks <- time.Now()

	require.Eventually(t, func() bool {
		return engine.Offset(target) > 0
	}, time.Second, time.Millisecond)

	engine.Destroy()
	assert.True(t, clock.stopped)
}

func TestParallaxDestroyResetsOffsets(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)
	engine.Step()
	require.NotZero(t, target.offset)

	engine.Destroy()
	assert.Zero(t, target.offset)
	assert.Zero(t, engine.Offset(target))

	// Second destroy and post-teardown frames are no-ops.
	engine.Destroy()
	engine.Step()
	assert.Zero(t, target.offset)
}

func TestParallaxPreferenceFlipStopsEngine(t *testing.T) {
	clock := newManualClock()
	pref := NewSwitchPreference(false)
	engine := NewParallax(ParallaxOptions{Clock: clock, Preference: pref})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)
	engine.Init(context.Background())

	pref.Set(true)

	assert.Zero(t, engine.Offset(target))
	engine.Step()
	assert.Zero(t, target.offset)
}

func TestParallaxStepHonoursReducedPreference(t *testing.T) {
	engine := NewParallax(ParallaxOptions{
		Clock:      newManualClock(),
		Preference: StaticPreference(true),
	})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)

	// Host-driven frames without Init must still respect the preference.
	engine.Step()

	assert.Zero(t, target.writes)
	assert.Zero(t, engine.Offset(target))
}

func TestParallaxInitResumesAfterReducedMotionLifted(t *testing.T) {
	clock := newManualClock()
	pref := NewSwitchPreference(true)
	engine := NewParallax(ParallaxOptions{Clock: clock, Preference: pref})
	target := &fakeParallaxTarget{}
	engine.Register(target, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)

	engine.Init(context.Background())
	engine.Step()
	require.Zero(t, target.writes)

	pref.Set(false)
	engine.Init(context.Background())
	engine.Step()

	assert.Equal(t, 1, target.writes)
	assert.InDelta(t, 5.0, target.offset, 1e-9)

	// Flipping back on parks the engine and clears the offset again.
	pref.Set(true)
	assert.Zero(t, target.offset)
	engine.Step()
	assert.Equal(t, 2, target.writes)

	engine.Destroy()
}

func TestParallaxUnregisterResetsOffset(t *testing.T) {
	engine := NewParallax(ParallaxOptions{Clock: newManualClock()})
	a := &fakeParallaxTarget{}
	b := &fakeParallaxTarget{}
	engine.Register(a, TargetConfig{Speed: 0.1})
	engine.Register(b, TargetConfig{Speed: 0.1})
	engine.SetScroll(500)
	engine.Step()
	require.InDelta(t, 5.0, a.offset, 1e-9)

	engine.Unregister(a)
	assert.Zero(t, a.offset, "unregistered target snaps back to neutral")

	// The remaining target keeps animating; the removed one stays untouched.
	writes := a.writes
	engine.Step()
	assert.Equal(t, writes, a.writes)
	assert.Greater(t, b.offset, 5.0)

	// Unknown targets are a no-op.
	engine.Unregister(&fakeParallaxTarget{})
	engine.Unregister(nil)
}
