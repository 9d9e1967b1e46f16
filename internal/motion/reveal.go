package motion

import (
	"sync"

	"github.com/brikdesigns/brik/internal/logger"
)

// RevealTarget is an element the reveal engine can mark visible. Marking is
// the class-toggle analogue and must be cheap and idempotent.
type RevealTarget interface {
	SetVisible()
}

// Effect names the reveal presentation a target opts into. The engine never
// interprets it; hosts read it back when drawing a revealed target.
type Effect string

const (
	EffectFade       Effect = "fade"
	EffectFadeUp     Effect = "fade-up"
	EffectFadeDown   Effect = "fade-down"
	EffectSlideLeft  Effect = "slide-left"
	EffectSlideRight Effect = "slide-right"
	EffectScaleIn    Effect = "scale-in"
)

// Viewport watches targets for entry into the visible area and reports
// crossings to the callback passed at construction. Observe and Unobserve
// must tolerate unknown targets. Crossings must not be delivered from inside
// an Observe call; they are events of a later pass over the scene.
type Viewport interface {
	Observe(RevealTarget)
	Unobserve(RevealTarget)
	Disconnect()
}

// ObserverConfig carries the fixed intersection tuning the engine asks its
// viewport for. Targets trigger once roughly a tenth visible, slightly before
// reaching the very bottom edge, so reveals feel responsive rather than
// lagging the scroll.
type ObserverConfig struct {
	// Threshold is the visible fraction required to trigger.
	Threshold float64
	// BottomInset shrinks the bottom edge of the watch area by this fraction
	// of the viewport height.
	BottomInset float64
}

// DefaultObserverConfig returns the standard reveal trigger tuning.
func DefaultObserverConfig() ObserverConfig {
	return ObserverConfig{Threshold: 0.10, BottomInset: 0.12}
}

// RevealOptions configures a Reveal engine.
type RevealOptions struct {
	// NewViewport constructs the intersection watcher. The engine passes its
	// trigger tuning and a crossing callback. A nil factory degrades to
	// revealing every target immediately on registration.
	NewViewport func(cfg ObserverConfig, onCross func(RevealTarget)) Viewport
	Preference  Preference
	Config      ObserverConfig
	Logger      *logger.Logger
}

// Reveal marks registered targets visible the first time they cross into the
// viewport. A reveal is permanent: once visible, a target is unobserved and
// never hidden again.
type Reveal struct {
	mu         sync.Mutex
	opts       RevealOptions
	state      state
	viewport   Viewport
	pending    map[RevealTarget]struct{}
	revealed   map[RevealTarget]struct{}
	effects    map[RevealTarget]Effect
	subscribed bool
	log        *logger.Logger
}

// NewReveal creates an unstarted reveal engine.
func NewReveal(opts RevealOptions) *Reveal {
	if opts.Config == (ObserverConfig{}) {
		opts.Config = DefaultObserverConfig()
	}
	if opts.Preference == nil {
		opts.Preference = StaticPreference(false)
	}
	return &Reveal{
		opts:     opts,
		pending:  make(map[RevealTarget]struct{}),
		revealed: make(map[RevealTarget]struct{}),
		effects:  make(map[RevealTarget]Effect),
		log:      opts.Logger.WithComponent("reveal"),
	}
}

// Init starts the engine. It is idempotent while active and a no-op after
// Destroy. If the reduced-motion preference is set, every registered target
// is revealed immediately and no viewport is created; once the preference is
// lifted, calling Init again resumes watching.
func (r *Reveal) Init() {
	r.mu.Lock()
	if r.state == stateActive || r.state == stateTornDown {
		r.mu.Unlock()
		return
	}

	if r.opts.Preference.Reduced() {
		r.state = stateReduced
		r.revealAllLocked()
		r.mu.Unlock()
		r.log.Debug("reduced motion set, revealing everything")
		return
	}

	r.state = stateActive
	if r.opts.NewViewport != nil {
		r.viewport = r.opts.NewViewport(r.opts.Config, r.onCross)
		for target := range r.pending {
			r.viewport.Observe(target)
		}
	}
	subscribed := r.subscribed
	r.subscribed = true
	r.mu.Unlock()

	if !subscribed {
		r.opts.Preference.Subscribe(func(reduced bool) {
			if reduced {
				r.reduce()
			}
		})
	}
	r.log.Debug("reveal engine watching")
}

// Register adds a target to the engine with the reveal effect it opts into.
// Targets registered before Init are observed once the engine starts; targets
// registered while reduced motion is in effect are revealed immediately.
func (r *Reveal) Register(target RevealTarget, effect Effect) {
	if target == nil {
		return
	}
	if effect == "" {
		effect = EffectFade
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateTornDown {
		r.effects[target] = effect
	}
	if _, done := r.revealed[target]; done {
		return
	}
	if _, known := r.pending[target]; known {
		return
	}

	switch r.state {
	case stateReduced:
		r.revealLocked(target)
	case stateTornDown:
		// Late registration after teardown is dropped.
	default:
		r.pending[target] = struct{}{}
		if r.state == stateActive && r.viewport != nil {
			r.viewport.Observe(target)
		} else if r.state == stateActive && r.viewport == nil {
			r.revealLocked(target)
		}
	}
}

// Refresh registers any not-yet-known targets with the plain fade effect,
// supporting dynamically added content. Already revealed targets are left
// alone.
func (r *Reveal) Refresh(targets ...RevealTarget) {
	for _, target := range targets {
		r.mu.Lock()
		_, pending := r.pending[target]
		_, done := r.revealed[target]
		r.mu.Unlock()
		if pending || done {
			continue
		}
		r.Register(target, EffectFade)
	}
}

// Effect returns the reveal effect a target registered with, EffectFade for
// unknown targets.
func (r *Reveal) Effect(target RevealTarget) Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	if effect, ok := r.effects[target]; ok {
		return effect
	}
	return EffectFade
}

// Unregister stops watching a target without revealing it. Targets already
// revealed keep their marker and their effect; only the pending watch is
// dropped.
func (r *Reveal) Unregister(target RevealTarget) {
	if target == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, known := r.pending[target]; known {
		delete(r.pending, target)
		if r.viewport != nil {
			r.viewport.Unobserve(target)
		}
	}
	if _, done := r.revealed[target]; !done {
		delete(r.effects, target)
	}
}

// Trigger reveals one target programmatically, bypassing the scroll trigger.
func (r *Reveal) Trigger(target RevealTarget) {
	if target == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == stateTornDown {
		return
	}
	r.revealLocked(target)
}

// Revealed reports whether the target has been marked visible.
func (r *Reveal) Revealed(target RevealTarget) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revealed[target]
	return ok
}

// Destroy disconnects the viewport and drops all state. Safe to call from
// any state and any number of times.
func (r *Reveal) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == stateTornDown {
		return
	}
	if r.viewport != nil {
		r.viewport.Disconnect()
		r.viewport = nil
	}
	r.pending = make(map[RevealTarget]struct{})
	r.revealed = make(map[RevealTarget]struct{})
	r.effects = make(map[RevealTarget]Effect)
	r.state = stateTornDown
}

// onCross handles a viewport crossing: reveal once, then stop watching.
func (r *Reveal) onCross(target RevealTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != stateActive {
		return
	}
	r.revealLocked(target)
}

func (r *Reveal) reduce() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != stateActive {
		return
	}
	r.state = stateReduced
	r.revealAllLocked()
	if r.viewport != nil {
		r.viewport.Disconnect()
		r.viewport = nil
	}
}

func (r *Reveal) revealAllLocked() {
	for target := range r.pending {
		r.revealLocked(target)
	}
}

func (r *Reveal) revealLocked(target RevealTarget) {
	if _, done := r.revealed[target]; done {
		return
	}
	target.SetVisible()
	r.revealed[target] = struct{}{}
	if _, known := r.pending[target]; known {
		delete(r.pending, target)
		if r.viewport != nil {
			r.viewport.Unobserve(target)
		}
	}
}
