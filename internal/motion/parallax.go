package motion

import (
	"context"
	"math"
	"strconv"
	"sync"

	"github.com/brikdesigns/brik/internal/logger"
)

// ParallaxTarget is an element the parallax engine can offset. Geometry feeds
// the bounded "image" variant: Top is the target's distance from the top of
// the scrolled content, Height its extent.
type ParallaxTarget interface {
	SetOffset(offset float64)
	Top() float64
	Height() float64
}

// Kind discriminates the two target-offset formulas.
type Kind int

const (
	// KindDefault accumulates offset proportional to total scroll.
	KindDefault Kind = iota
	// KindImage bounds the offset by the target's travel through the viewport.
	KindImage
)

// TargetConfig is the per-target parallax configuration.
type TargetConfig struct {
	// Speed scales scroll distance into offset. Zero or negative values fall
	// back to the engine default.
	Speed float64
	Kind  Kind
}

// ParallaxConfig carries the engine's fixed tuning constants.
type ParallaxConfig struct {
	// DefaultSpeed is used when a target's speed is unset or unparsable.
	DefaultSpeed float64
	// LerpFactor is the fraction of the remaining distance covered per frame.
	LerpFactor float64
	// Epsilon is the offset change below which no write is issued.
	Epsilon float64
}

// DefaultParallaxConfig returns the standard tuning.
func DefaultParallaxConfig() ParallaxConfig {
	return ParallaxConfig{
		DefaultSpeed: 0.15,
		LerpFactor:   0.1,
		Epsilon:      0.05,
	}
}

// ParseSpeed converts a textual speed attribute to a float, returning
// fallback for empty or malformed input.
func ParseSpeed(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fallback
	}
	return speed
}

// ParallaxOptions configures a Parallax engine.
type ParallaxOptions struct {
	Config ParallaxConfig
	// Clock drives the frame loop; nil selects a 60Hz ticker.
	Clock      FrameClock
	Preference Preference
	// ViewportHeight is the visible extent used by KindImage targets.
	ViewportHeight float64
	Logger         *logger.Logger
}

type parallaxEntry struct {
	target  ParallaxTarget
	cfg     TargetConfig
	current float64
	goal    float64
}

// Parallax produces smooth, frame-synchronized offsets on registered targets
// proportional to scroll position and each target's speed. Offsets converge
// toward their goals by linear interpolation each frame, giving an ease-out
// feel instead of a hard snap.
type Parallax struct {
	mu      sync.Mutex
	opts    ParallaxOptions
	state   state
	entries []*parallaxEntry
	index   map[ParallaxTarget]*parallaxEntry
	scrollY    float64
	cancel     context.CancelFunc
	done       chan struct{}
	subscribed bool
	log        *logger.Logger
}

// NewParallax creates an unstarted parallax engine.
func NewParallax(opts ParallaxOptions) *Parallax {
	if opts.Config == (ParallaxConfig{}) {
		opts.Config = DefaultParallaxConfig()
	}
	if opts.Preference == nil {
		opts.Preference = StaticPreference(false)
	}
	return &Parallax{
		opts:  opts,
		index: make(map[ParallaxTarget]*parallaxEntry),
		log:   opts.Logger.WithComponent("parallax"),
	}
}

// Config returns the engine's fixed tuning constants.
func (p *Parallax) Config() ParallaxConfig {
	return p.opts.Config
}

// Register starts tracking a target with the given configuration, seeding a
// neutral offset pair. Re-registering a known target only updates its
// configuration; its interpolation state is preserved.
func (p *Parallax) Register(target ParallaxTarget, cfg TargetConfig) {
	if target == nil {
		return
	}
	if cfg.Speed <= 0 {
		cfg.Speed = p.opts.Config.DefaultSpeed
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == stateTornDown || p.state == stateReduced {
		return
	}
	if entry, known := p.index[target]; known {
		entry.cfg = cfg
		return
	}
	entry := &parallaxEntry{target: target, cfg: cfg}
	p.entries = append(p.entries, entry)
	p.index[target] = entry
}

// Unregister stops animating a target and resets its offset to neutral.
func (p *Parallax) Unregister(target ParallaxTarget) {
	if target == nil {
		return
	}
	p.mu.Lock()
	entry, known := p.index[target]
	if !known {
		p.mu.Unlock()
		return
	}
	delete(p.index, target)
	for i, e := range p.entries {
		if e == entry {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	target.SetOffset(0)
}

// Refresh registers any not-yet-known targets with the default configuration,
// preserving the state of targets already being animated.
func (p *Parallax) Refresh(targets ...ParallaxTarget) {
	for _, target := range targets {
		p.Register(target, TargetConfig{})
	}
}

// Init starts the frame loop. It is idempotent while active and a no-op
// after Destroy. Under reduced motion the engine parks instead of starting;
// once the preference is lifted, calling Init again starts the loop. The
// loop runs until the context is cancelled or the engine is destroyed; it
// reschedules every frame regardless of pending movement because the scroll
// position can change at any time.
func (p *Parallax) Init(ctx context.Context) {
	p.mu.Lock()
	if p.state == stateActive || p.state == stateTornDown {
		p.mu.Unlock()
		return
	}
	if p.opts.Preference.Reduced() {
		p.state = stateReduced
		p.mu.Unlock()
		p.log.Debug("reduced motion set, parallax disabled")
		return
	}
	p.state = stateActive
	clock := p.opts.Clock
	if clock == nil {
		clock = NewFrameClock(FrameInterval)
		p.opts.Clock = clock
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	subscribed := p.subscribed
	p.subscribed = true
	p.mu.Unlock()

	if !subscribed {
		p.opts.Preference.Subscribe(func(reduced bool) {
			if reduced {
				p.reduce()
			}
		})
	}

	go func() {
		defer close(done)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-clock.Tick():
				p.Step()
			}
		}
	}()
	p.log.Debug("parallax frame loop started")
}

// SetScroll reports the current scroll position to the engine. The next
// frame recomputes every goal from it.
func (p *Parallax) SetScroll(y float64) {
	p.mu.Lock()
	p.scrollY = y
	p.mu.Unlock()
}

// SetViewportHeight updates the visible extent used by KindImage targets.
func (p *Parallax) SetViewportHeight(h float64) {
	p.mu.Lock()
	p.opts.ViewportHeight = h
	p.mu.Unlock()
}

// Step advances one frame: recompute goals from the last reported scroll
// position, then move each offset toward its goal by the lerp factor.
// Changes smaller than epsilon are skipped so imperceptible movement causes
// no writes. Hosts that already have a frame pulse (a TUI tick, a test) may
// call Step directly instead of Init's internal loop; the reduced-motion
// preference is honoured either way.
func (p *Parallax) Step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == stateTornDown || p.state == stateReduced {
		return
	}
	if p.opts.Preference.Reduced() {
		return
	}

	for _, entry := range p.entries {
		entry.goal = p.goalLocked(entry)
		diff := entry.goal - entry.current
		if math.Abs(diff) <= p.opts.Config.Epsilon {
			continue
		}
		entry.current += diff * p.opts.Config.LerpFactor
		entry.target.SetOffset(entry.current)
	}
}

func (p *Parallax) goalLocked(entry *parallaxEntry) float64 {
	if entry.cfg.Kind == KindImage {
		// Offset tracks the target's travel through the viewport: zero until
		// its top enters from below, bounded by its full pass out the top.
		entered := p.scrollY + p.opts.ViewportHeight - entry.target.Top()
		if entered < 0 {
			entered = 0
		}
		travel := p.opts.ViewportHeight + entry.target.Height()
		if travel > 0 && entered > travel {
			entered = travel
		}
		return entered * entry.cfg.Speed
	}
	return p.scrollY * entry.cfg.Speed
}

// Offset returns the current interpolated offset for a tracked target.
func (p *Parallax) Offset(target ParallaxTarget) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.index[target]; ok {
		return entry.current
	}
	return 0
}

// reduce parks the engine when the reduced-motion preference flips on: the
// frame loop stops and every offset returns to neutral, but targets stay
// registered so a later Init can resume them. The clock keeps running
// because a stopped ticker cannot be restarted.
func (p *Parallax) reduce() {
	p.mu.Lock()
	if p.state != stateActive {
		p.mu.Unlock()
		return
	}
	p.state = stateReduced
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	entries := make([]*parallaxEntry, len(p.entries))
	copy(entries, p.entries)
	for _, entry := range p.entries {
		entry.current = 0
		entry.goal = 0
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	for _, entry := range entries {
		entry.target.SetOffset(0)
	}
	p.log.Debug("reduced motion set, parallax parked")
}

// Destroy stops the loop, resets every tracked target's offset to neutral
// and clears all state. Safe to call from any state and any number of times.
func (p *Parallax) Destroy() {
	p.mu.Lock()
	if p.state == stateTornDown {
		p.mu.Unlock()
		return
	}
	p.state = stateTornDown
	cancel := p.cancel
	done := p.done
	clock := p.opts.Clock
	entries := p.entries
	p.entries = nil
	p.index = make(map[ParallaxTarget]*parallaxEntry)
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	if clock != nil {
		clock.Stop()
	}
	for _, entry := range entries {
		entry.target.SetOffset(0)
	}
}
