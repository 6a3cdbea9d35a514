package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starbar/rating"
)

// Right-half block used at the fill edge when the row is mirrored
const fillHalfMirrored = '▐'

// Draw renders the star row at its origin.
//
// Stars one cell wide render as glyphs: full star, empty star, or full star
// in the partial color for a fractional fill. Wider stars render as block
// fill spans, half-block at the fill edge, mirrored fill direction for RTL.
// With HideInactive set, rendering stops at the first empty star.
func (r *RatingBar) Draw(s tcell.Screen) {
	stars := r.cfg.StarCount()
	if stars == 0 {
		return
	}

	fills := rating.Partition(r.value, stars)
	count := stars
	if r.cfg.HideInactive {
		count = rating.Visible(fills)
	}

	slotW := r.cfg.SlotWidth()
	for i := 0; i < count; i++ {
		slotX := r.x + i*slotW
		starX := slotX
		if r.dir == rating.DirRTL {
			// Mirror the whole row: star order reversed, gap on the left of each slot
			slotX = r.x + (stars-1-i)*slotW
			starX = slotX + r.cfg.Gap
		}
		r.drawStar(s, starX, fills[i])
	}
}

// drawStar renders one star span at column x with the given fill fraction
func (r *RatingBar) drawStar(s tcell.Screen, x int, fill float64) {
	w := r.cfg.StarWidth
	if w <= 0 {
		return
	}

	bg := tcell.StyleDefault.Background(r.style.Bg)

	if w == 1 {
		var ch rune
		var fg tcell.Color
		switch {
		case fill >= 1:
			ch, fg = r.style.FullRune, r.style.ActiveFg
		case fill > 0:
			ch, fg = r.style.FullRune, r.style.PartialFg
		default:
			ch, fg = r.style.EmptyRune, r.style.InactiveFg
		}
		s.SetContent(x, r.y, ch, nil, bg.Foreground(fg))
		return
	}

	filled := int(float64(w) * fill)
	remainder := float64(w)*fill - float64(filled)

	half := r.style.HalfFillRune
	if r.dir == rating.DirRTL && half == fillHalf {
		half = fillHalfMirrored
	}

	for i := 0; i < w; i++ {
		// Cell index along the fill direction; RTL fills from the right edge
		pos := i
		if r.dir == rating.DirRTL {
			pos = w - 1 - i
		}

		var ch rune
		var fg tcell.Color
		switch {
		case pos < filled:
			ch, fg = r.style.FillRune, r.style.ActiveFg
		case pos == filled && remainder >= 0.5:
			ch, fg = half, r.style.ActiveFg
		default:
			ch, fg = r.style.EmptyFillRune, r.style.InactiveFg
		}
		s.SetContent(x+i, r.y, ch, nil, bg.Foreground(fg))
	}
}
