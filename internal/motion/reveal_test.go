package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	visible int
}

func (t *fakeTarget) SetVisible() { t.visible++ }

type fakeViewport struct {
	cfg          ObserverConfig
	onCross      func(RevealTarget)
	observed     map[RevealTarget]bool
	disconnected bool
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{observed: make(map[RevealTarget]bool)}
}

func (v *fakeViewport) factory() func(ObserverConfig, func(RevealTarget)) Viewport {
	return func(cfg ObserverConfig, onCross func(RevealTarget)) Viewport {
		v.cfg = cfg
		v.onCross = onCross
		return v
	}
}

func (v *fakeViewport) Observe(t RevealTarget)   { v.observed[t] = true }
func (v *fakeViewport) Unobserve(t RevealTarget) { delete(v.observed, t) }
func (v *fakeViewport) Disconnect()              { v.disconnected = true }

// cross simulates the target entering the viewport.
func (v *fakeViewport) cross(t RevealTarget) {
	if v.observed[t] && v.onCross != nil {
		v.onCross(t)
	}
}

func TestRevealReducedMotionAtInit(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{
		NewViewport: viewport.factory(),
		Preference:  StaticPreference(true),
	})

	a, b := &fakeTarget{}, &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Register(b, EffectFade)
	engine.Init()

	assert.Equal(t, 1, a.visible)
	assert.Equal(t, 1, b.visible)
	assert.Nil(t, viewport.onCross, "no watcher may be created under reduced motion")

	// Late registrations reveal immediately as well.
	c := &fakeTarget{}
	engine.Register(c, EffectFade)
	assert.Equal(t, 1, c.visible)
}

func TestRevealOneTimeReveal(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Init()

	require.True(t, viewport.observed[a])
	assert.Equal(t, 0, a.visible)

	viewport.cross(a)
	assert.Equal(t, 1, a.visible)
	assert.False(t, viewport.observed[a], "revealed targets must be unobserved")
	assert.True(t, engine.Revealed(a))

	// A later crossing of the same target does nothing.
	viewport.cross(a)
	assert.Equal(t, 1, a.visible)
}

func TestRevealObserverConfigDefaults(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})
	engine.Init()

	assert.InDelta(t, 0.10, viewport.cfg.Threshold, 1e-9)
	assert.InDelta(t, 0.12, viewport.cfg.BottomInset, 1e-9)
}

func TestRevealInitIsIdempotent(t *testing.T) {
	calls := 0
	engine := NewReveal(RevealOptions{
		NewViewport: func(cfg ObserverConfig, onCross func(RevealTarget)) Viewport {
			calls++
			return newFakeViewport()
		},
	})

	engine.Init()
	engine.Init()
	assert.Equal(t, 1, calls)
}

func TestRevealPreferenceFlipForcesAllVisible(t *testing.T) {
	viewport := newFakeViewport()
	pref := NewSwitchPreference(false)
	engine := NewReveal(RevealOptions{
		NewViewport: viewport.factory(),
		Preference:  pref,
	})

	a, b := &fakeTarget{}, &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Register(b, EffectFade)
	engine.Init()

	pref.Set(true)

	assert.Equal(t, 1, a.visible)
	assert.Equal(t, 1, b.visible)
	assert.True(t, viewport.disconnected, "watcher should be abandoned")
}

func TestRevealInitResumesAfterReducedMotionLifted(t *testing.T) {
	viewport := newFakeViewport()
	pref := NewSwitchPreference(true)
	engine := NewReveal(RevealOptions{
		NewViewport: viewport.factory(),
		Preference:  pref,
	})

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Init()
	require.Equal(t, 1, a.visible)

	pref.Set(false)
	engine.Init()

	b := &fakeTarget{}
	engine.Register(b, EffectFadeUp)
	assert.Zero(t, b.visible, "new targets must wait for a crossing again")
	require.True(t, viewport.observed[b])

	viewport.cross(b)
	assert.Equal(t, 1, b.visible)

	// Flipping the preference back on still reveals everything.
	c := &fakeTarget{}
	engine.Register(c, EffectFade)
	pref.Set(true)
	assert.Equal(t, 1, c.visible)
}

func TestRevealRefreshRegistersOnlyNewTargets(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Init()
	viewport.cross(a)

	b := &fakeTarget{}
	engine.Refresh(a, b)

	assert.Equal(t, 1, a.visible, "refresh must not re-reveal known targets")
	assert.True(t, viewport.observed[b])
}

func TestRevealTrigger(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Init()

	engine.Trigger(a)
	assert.Equal(t, 1, a.visible)
	assert.False(t, viewport.observed[a])

	// Triggering an unregistered target still reveals it.
	b := &fakeTarget{}
	engine.Trigger(b)
	assert.Equal(t, 1, b.visible)
}

func TestRevealWithoutViewportFactoryRevealsOnRegister(t *testing.T) {
	engine := NewReveal(RevealOptions{})
	engine.Init()

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	assert.Equal(t, 1, a.visible)
}

func TestRevealDestroyTwice(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Init()

	engine.Destroy()
	engine.Destroy()

	assert.True(t, viewport.disconnected)
	assert.False(t, engine.Revealed(a))

	// Post-teardown operations are no-ops.
	engine.Register(a, EffectFade)
	engine.Trigger(a)
	assert.Equal(t, 0, a.visible)
}

func TestRevealDestroyBeforeInit(t *testing.T) {
	engine := NewReveal(RevealOptions{})
	engine.Destroy()
	engine.Init()

	a := &fakeTarget{}
	engine.Register(a, EffectFade)
	assert.Equal(t, 0, a.visible)
}

func TestRevealEffectRoundTrip(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})

	a, b := &fakeTarget{}, &fakeTarget{}
	engine.Register(a, EffectSlideLeft)
	engine.Register(b, "")
	engine.Init()

	assert.Equal(t, EffectSlideLeft, engine.Effect(a))
	assert.Equal(t, EffectFade, engine.Effect(b), "empty effect falls back to fade")
	assert.Equal(t, EffectFade, engine.Effect(&fakeTarget{}), "unknown targets read as fade")

	// The effect survives the reveal itself.
	viewport.cross(a)
	require.Equal(t, 1, a.visible)
	assert.Equal(t, EffectSlideLeft, engine.Effect(a))
}

func TestRevealRefreshKeepsRegisteredEffect(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})
	engine.Init()

	a := &fakeTarget{}
	engine.Register(a, EffectScaleIn)
	engine.Refresh(a)

	assert.Equal(t, EffectScaleIn, engine.Effect(a))
}

func TestRevealUnregisterDropsPendingWatch(t *testing.T) {
	viewport := newFakeViewport()
	engine := NewReveal(RevealOptions{NewViewport: viewport.factory()})
	engine.Init()

	a, b := &fakeTarget{}, &fakeTarget{}
	engine.Register(a, EffectFade)
	engine.Register(b, EffectScaleIn)

	engine.Unregister(a)
	viewport.cross(a)
	assert.Zero(t, a.visible, "unregistered targets are no longer watched")

	// Revealed targets keep marker and effect through Unregister.
	viewport.cross(b)
	require.Equal(t, 1, b.visible)
	engine.Unregister(b)
	assert.True(t, engine.Revealed(b))
	assert.Equal(t, EffectScaleIn, engine.Effect(b))
}
