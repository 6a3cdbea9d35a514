package widget

import "github.com/gdamore/tcell/v2"

// Default star and fill characters
const (
	starFull  = '★'
	starEmpty = '☆'
	fillFull  = '█'
	fillHalf  = '▌'
	fillEmpty = '░'
)

// Style defines rating bar colors and glyphs
type Style struct {
	ActiveFg   tcell.Color // Filled stars
	InactiveFg tcell.Color // Empty stars
	PartialFg  tcell.Color // Single-cell stars with fractional fill
	Bg         tcell.Color

	FullRune  rune // Filled star glyph (single-cell mode)
	EmptyRune rune // Empty star glyph (single-cell mode)

	FillRune      rune // Filled cell (bar mode)
	HalfFillRune  rune // Half-filled cell at the fill edge (bar mode)
	EmptyFillRune rune // Empty cell (bar mode)
}

// DefaultStyle returns default rating bar colors with dark background
func DefaultStyle() Style {
	return DefaultStyleFrom(tcell.NewRGBColor(20, 20, 30))
}

// DefaultStyleFrom returns default rating bar colors using the given background
func DefaultStyleFrom(bg tcell.Color) Style {
	return Style{
		ActiveFg:      tcell.NewRGBColor(230, 190, 60),
		InactiveFg:    tcell.NewRGBColor(100, 100, 100),
		PartialFg:     tcell.NewRGBColor(170, 140, 50),
		Bg:            bg,
		FullRune:      starFull,
		EmptyRune:     starEmpty,
		FillRune:      fillFull,
		HalfFillRune:  fillHalf,
		EmptyFillRune: fillEmpty,
	}
}

// normalize fills in zero glyphs so a partially specified style still renders
func (s Style) normalize() Style {
	if s.FullRune == 0 {
		s.FullRune = starFull
	}
	if s.EmptyRune == 0 {
		s.EmptyRune = starEmpty
	}
	if s.FillRune == 0 {
		s.FillRune = fillFull
	}
	if s.HalfFillRune == 0 {
		s.HalfFillRune = fillHalf
	}
	if s.EmptyFillRune == 0 {
		s.EmptyFillRune = fillEmpty
	}
	return s
}
