// Package preview tracks the rotation and zoom of the character preview.
package preview

import (
	"fmt"
	"math"
)

type Config struct {
	// Sensitivity is degrees of rotation per unit of horizontal pointer travel.
	Sensitivity float64
	// ZoomStep scales wheel deltas into zoom change.
	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
}

func DefaultConfig() Config {
	return Config{Sensitivity: 0.3, ZoomStep: 0.001, MinZoom: 0.6, MaxZoom: 2.2}
}

func (c Config) Validate() error {
	if c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("zoom bounds [%g, %g] are invalid", c.MinZoom, c.MaxZoom)
	}
	if c.Sensitivity == 0 {
		return fmt.Errorf("sensitivity must be non-zero")
	}
	return nil
}

type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// State is a snapshot of the transform.
type State struct {
	Rotation float64
	Zoom     float64
	Phase    Phase
}

// Engine is the idle/dragging state machine behind the preview surface. Rotation is kept
// unbounded so consecutive drags accumulate smoothly; Heading wraps it for display.
type Engine struct {
	cfg      Config
	rotation float64
	zoom     float64
	phase    Phase
	anchorX  float64
}

func New(cfg Config) *Engine {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg, zoom: clamp(1, cfg.MinZoom, cfg.MaxZoom)}
}

func (e *Engine) BeginDrag(x float64) {
	if !finite(x) {
		return
	}
	e.anchorX = x
	e.phase = Dragging
}

// ContinueDrag rotates by the travel since the last recorded x. Outside a drag it does
// nothing.
func (e *Engine) ContinueDrag(x float64) {
	if e.phase != Dragging || !finite(x) {
		return
	}
	e.rotation += (x - e.anchorX) * e.cfg.Sensitivity
	e.anchorX = x
}

// EndDrag returns to idle. It is also the response to losing pointer capture.
func (e *Engine) EndDrag() {
	e.phase = Idle
}

// ZoomBy applies a wheel delta. Positive deltas zoom out. The result reports whether the
// gesture was consumed, in which case the host must not scroll.
func (e *Engine) ZoomBy(delta float64) bool {
	if !finite(delta) {
		return false
	}
	e.zoom = clamp(e.zoom-delta*e.cfg.ZoomStep, e.cfg.MinZoom, e.cfg.MaxZoom)
	return true
}

// Reset restores rotation 0 and zoom 1. Focus changes do not call it.
func (e *Engine) Reset() {
	e.rotation = 0
	e.zoom = clamp(1, e.cfg.MinZoom, e.cfg.MaxZoom)
	e.phase = Idle
}

func (e *Engine) Rotation() float64 { return e.rotation }

// Heading is the rotation folded into [0, 360).
func (e *Engine) Heading() float64 {
	h := math.Mod(e.rotation, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func (e *Engine) Zoom() float64 { return e.zoom }

func (e *Engine) Dragging() bool { return e.phase == Dragging }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) State() State {
	return State{Rotation: e.rotation, Zoom: e.zoom, Phase: e.phase}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
