// Package rating implements the pure geometry of a star rating row:
// converting a horizontal offset into a rating value and partitioning a
// value into per-star fill fractions.
//
// All functions are stateless and unit-agnostic. The widget package feeds
// terminal cell coordinates; a pixel-based host could feed device pixels.
package rating

import "math"

// Step is the granularity of achievable rating values
type Step uint8

const (
	StepWhole Step = iota // Whole stars only
	StepHalf              // Half-star increments
)

// String returns human-readable step name
func (s Step) String() string {
	switch s {
	case StepHalf:
		return "Half"
	default:
		return "Whole"
	}
}

// Direction is the horizontal layout direction of the star row
type Direction uint8

const (
	DirLTR Direction = iota
	DirRTL
)

// Config describes one rating row. Immutable for the lifetime of a widget
// instance; a changed configuration means a fresh widget.
type Config struct {
	Stars        int  // Number of star slots
	StarWidth    int  // Width of one star in cells
	Gap          int  // Spacing between stars in cells
	Step         Step // Whole or half star granularity
	Indicator    bool // Display-only, no pointer handling
	HideInactive bool // Truncate at first empty star, display-only
}

// StarCount returns the number of star slots, never negative
func (c Config) StarCount() int {
	if c.Stars < 0 {
		return 0
	}
	return c.Stars
}

// SlotWidth returns the span of one star including its share of gap
func (c Config) SlotWidth() int {
	w := c.StarWidth + c.Gap
	if w < 0 {
		return 0
	}
	return w
}

// RowWidth returns the total width of the rendered row in cells
func (c Config) RowWidth() int {
	return c.StarCount() * c.SlotWidth()
}

// Enabled reports whether the row accepts pointer input
func (c Config) Enabled() bool {
	return !c.Indicator && !c.HideInactive
}

// ClampValue clamps a rating value to [0, stars]
func ClampValue(v float64, stars int) float64 {
	if stars < 0 {
		stars = 0
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > float64(stars) {
		return float64(stars)
	}
	return v
}

// CalculateStars converts a horizontal offset into a rating value.
//
// Each star occupies a uniform slot of starSize+gap. The offset selects a
// star index and a fractional position within that star; the fraction is
// then rounded per step: WHOLE promotes any positive fraction to a full
// star, HALF rounds below 0.5 to a half star and at or above 0.5 to a full
// star. Result is clamped to [0, stars]. Monotonic non-decreasing in
// offsetX. Degenerate geometry (no stars, non-positive star size) yields 0.
func CalculateStars(offsetX, gap, starSize float64, stars int, step Step) float64 {
	if stars <= 0 || starSize <= 0 {
		return 0
	}

	slot := starSize + gap
	if slot <= 0 {
		return 0
	}

	index := math.Floor(offsetX / slot)
	if index < 0 {
		index = 0
	}
	if index > float64(stars-1) {
		index = float64(stars - 1)
	}

	frac := (offsetX - index*slot) / starSize
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	var v float64
	switch step {
	case StepHalf:
		if frac < 0.5 {
			v = index + 0.5
		} else {
			v = index + 1.0
		}
	default:
		if frac > 0 {
			v = index + 1.0
		} else {
			v = index
		}
	}

	return ClampValue(v, stars)
}

// Mirror maps a rating value to its right-to-left equivalent
func Mirror(v float64, stars int) float64 {
	return ClampValue(float64(stars)-v, stars)
}

// Partition splits a rating value across star slots.
//
// Fully covered stars get 1.0, the first star with a fractional remainder
// gets that exact fraction, and every later star gets 0.0. The returned
// fills sum to the clamped value and contain at most one fractional entry.
func Partition(value float64, stars int) []float64 {
	if stars < 0 {
		stars = 0
	}
	fills := make([]float64, stars)
	remaining := ClampValue(value, stars)
	for i := range fills {
		if remaining >= 1 {
			fills[i] = 1
			remaining -= 1
		} else if remaining > 0 {
			fills[i] = remaining
			remaining = 0
		}
	}
	return fills
}

// Visible returns the count of stars with non-zero fill, the truncation
// point when inactive stars are hidden
func Visible(fills []float64) int {
	n := 0
	for _, f := range fills {
		if f <= 0 {
			break
		}
		n++
	}
	return n
}
