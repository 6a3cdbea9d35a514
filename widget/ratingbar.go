// Package widget provides an interactive star rating bar for tcell screens.
//
// RatingBar bridges tcell mouse events to the pure geometry in the rating
// package: a press inside the row is a tap (computed once and committed
// immediately), a horizontal drag produces live value updates and commits
// the last dragged value on release. Indicator and hide-inactive rows are
// display-only.
package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starbar/rating"
)

// Phase is the current pointer interaction state
type Phase uint8

const (
	PhaseIdle     Phase = iota
	PhasePressed        // Button down, no drag motion yet
	PhaseDragging       // Button down with horizontal motion
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhasePressed:
		return "Pressed"
	case PhaseDragging:
		return "Dragging"
	default:
		return "Idle"
	}
}

// RatingBar is a one-row star rating control.
//
// All methods must be called from the event loop goroutine; the bar owns no
// locks. Interaction state (measured width, last dragged value) is ephemeral
// and rebuilt from the latest layout notification on every event.
type RatingBar struct {
	// OnValueChange fires on every live update during an interaction
	OnValueChange func(float64)
	// OnRatingChanged fires once per committed interaction (tap or drag release)
	OnRatingChanged func(float64)

	cfg   rating.Config
	style Style
	dir   rating.Direction

	x, y  int // Screen origin
	width int // Measured row width in cells

	value    float64
	lastDrag float64
	phase    Phase
	prevBtn  tcell.ButtonMask
}

// New creates a rating bar with the given configuration and style
func New(cfg rating.Config, style Style) *RatingBar {
	return &RatingBar{
		cfg:   cfg,
		style: style.normalize(),
		width: cfg.RowWidth(),
	}
}

// Config returns the immutable configuration
func (r *RatingBar) Config() rating.Config {
	return r.cfg
}

// Value returns the current rating value
func (r *RatingBar) Value() float64 {
	return r.value
}

// SetValue sets the rating programmatically, clamped to [0, stars].
// Values off the step grid (e.g. 3.3 with whole-star step) are accepted
// and rendered as a partial fill.
func (r *RatingBar) SetValue(v float64) {
	r.value = rating.ClampValue(v, r.cfg.StarCount())
}

// Fills returns the per-star fill fractions for the current value
func (r *RatingBar) Fills() []float64 {
	return rating.Partition(r.value, r.cfg.StarCount())
}

// Phase returns the current interaction phase
func (r *RatingBar) Phase() Phase {
	return r.phase
}

// Direction returns the layout direction
func (r *RatingBar) Direction() rating.Direction {
	return r.dir
}

// SetDirection sets the layout direction
func (r *RatingBar) SetDirection(d rating.Direction) {
	r.dir = d
}

// SetOrigin positions the bar on screen
func (r *RatingBar) SetOrigin(x, y int) {
	r.x = x
	r.y = y
}

// OriginX returns the left screen column of the row
func (r *RatingBar) OriginX() int {
	return r.x
}

// OriginY returns the screen row
func (r *RatingBar) OriginY() int {
	return r.y
}

// Resize updates the measured row width. Called by the layout owner when
// screen bounds change; geometry is recomputed from the latest width on
// every pointer event, so resizing mid-drag is safe.
func (r *RatingBar) Resize(w int) {
	if w < 0 {
		w = 0
	}
	r.width = w
}

// Width returns the measured row width
func (r *RatingBar) Width() int {
	return r.width
}

// Cancel aborts an in-progress interaction without committing
func (r *RatingBar) Cancel() {
	r.phase = PhaseIdle
	r.prevBtn = tcell.ButtonNone
}

// HandleMouse processes a tcell mouse event, returns true if consumed.
//
// tcell reports a button mask per motion event rather than discrete
// press/release actions, so edges are derived from the previous mask.
func (r *RatingBar) HandleMouse(ev *tcell.EventMouse) bool {
	if ev == nil || !r.cfg.Enabled() {
		return false
	}

	mx, my := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0
	wasHeld := r.prevBtn&tcell.Button1 != 0
	r.prevBtn = ev.Buttons()

	switch {
	case held && !wasHeld:
		// Press: only starts an interaction inside the row
		if !r.contains(mx, my) {
			return false
		}
		v := r.valueAt(mx)
		r.value = v
		r.lastDrag = v
		r.phase = PhasePressed
		// Tap is an atomic commit: live update then committed rating
		r.emitChange(v)
		r.emitCommit(v)
		return true

	case held && wasHeld:
		// Drag: horizontal motion with the button held
		if r.phase != PhasePressed && r.phase != PhaseDragging {
			return false
		}
		r.phase = PhaseDragging
		v := r.valueAt(mx)
		r.value = v
		r.lastDrag = v
		r.emitChange(v)
		return true

	case !held && wasHeld:
		// Release: commits the last dragged value, a plain tap already
		// committed on press
		switch r.phase {
		case PhaseDragging:
			r.phase = PhaseIdle
			r.emitCommit(r.lastDrag)
			return true
		case PhasePressed:
			r.phase = PhaseIdle
			return true
		}
	}
	return false
}

// contains reports whether a screen position is inside the row
func (r *RatingBar) contains(mx, my int) bool {
	return my == r.y && mx >= r.x && mx < r.x+r.width
}

// valueAt converts a screen column into a rating value
func (r *RatingBar) valueAt(mx int) float64 {
	offset := float64(mx - r.x)
	if offset < -1 {
		offset = -1
	}
	if offset > float64(r.width) {
		offset = float64(r.width)
	}

	v := rating.CalculateStars(offset, float64(r.cfg.Gap), float64(r.cfg.StarWidth),
		r.cfg.StarCount(), r.cfg.Step)
	if r.dir == rating.DirRTL {
		v = rating.Mirror(v, r.cfg.StarCount())
	}
	return v
}

func (r *RatingBar) emitChange(v float64) {
	if r.OnValueChange != nil {
		r.OnValueChange(v)
	}
}

func (r *RatingBar) emitCommit(v float64) {
	if r.OnRatingChanged != nil {
		r.OnRatingChanged(v)
	}
}
