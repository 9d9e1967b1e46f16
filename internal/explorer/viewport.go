package explorer

import (
	"sync"

	"github.com/brikdesigns/brik/internal/motion"
)

// geometry is what the line scanner needs from an observed target.
type geometry interface {
	Top() float64
	Height() float64
}

// lineViewport implements motion.Viewport over terminal line geometry. The
// model calls Scan after every scroll or frame; targets whose visible
// fraction meets the configured threshold inside the inset watch area are
// reported once through the crossing callback.
type lineViewport struct {
	mu       sync.Mutex
	cfg      motion.ObserverConfig
	onCross  func(motion.RevealTarget)
	observed map[motion.RevealTarget]struct{}
	closed   bool
}

func newLineViewport(cfg motion.ObserverConfig, onCross func(motion.RevealTarget)) *lineViewport {
	return &lineViewport{
		cfg:      cfg,
		onCross:  onCross,
		observed: make(map[motion.RevealTarget]struct{}),
	}
}

func (v *lineViewport) Observe(target motion.RevealTarget) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.observed[target] = struct{}{}
}

func (v *lineViewport) Unobserve(target motion.RevealTarget) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.observed, target)
}

func (v *lineViewport) Disconnect() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.observed = make(map[motion.RevealTarget]struct{})
}

// Scan checks every observed target against the visible line range and
// delivers crossings. Callbacks run without the viewport lock held so the
// engine can unobserve from inside them.
func (v *lineViewport) Scan(scrollTop, viewportHeight float64) {
	v.mu.Lock()
	if v.closed || viewportHeight <= 0 {
		v.mu.Unlock()
		return
	}
	bottom := scrollTop + viewportHeight*(1-v.cfg.BottomInset)
	var crossed []motion.RevealTarget
	for target := range v.observed {
		geo, ok := target.(geometry)
		if !ok {
			crossed = append(crossed, target)
			continue
		}
		top, height := geo.Top(), geo.Height()
		if height <= 0 {
			continue
		}
		visibleTop := max(top, scrollTop)
		visibleBottom := min(top+height, bottom)
		if visibleBottom <= visibleTop {
			continue
		}
		if (visibleBottom-visibleTop)/height >= v.cfg.Threshold {
			crossed = append(crossed, target)
		}
	}
	onCross := v.onCross
	v.mu.Unlock()

	for _, target := range crossed {
		onCross(target)
	}
}
