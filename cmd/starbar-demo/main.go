// Command starbar-demo shows interactive rating bars on a tcell screen.
//
// Click or drag horizontally on the enabled bars to set a rating. Keys:
// q/Ctrl+C quit, r toggles layout direction, s toggles sound.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starbar/audio"
	"github.com/lixenwraith/starbar/rating"
	"github.com/lixenwraith/starbar/widget"
)

var (
	starsFlag = flag.Int("stars", 5, "Number of stars per bar")
	widthFlag = flag.Int("width", 4, "Star width in cells for the wide bars")
	soundFlag = flag.Bool("sound", true, "Play feedback tones")
)

// bar pairs a rating widget with its demo label
type bar struct {
	label  string
	widget *widget.RatingBar
}

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\x1b[31mSTARBAR-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()

	feedback, _ := audio.NewFeedback()
	feedback.SetMuted(!*soundFlag)

	stars := *starsFlag
	wide := *widthFlag
	style := widget.DefaultStyle()

	bars := []bar{
		{"Whole step", widget.New(rating.Config{Stars: stars, StarWidth: 1, Gap: 1, Step: rating.StepWhole}, style)},
		{"Half step", widget.New(rating.Config{Stars: stars, StarWidth: wide, Gap: 1, Step: rating.StepHalf}, style)},
		{"Indicator 3.3", widget.New(rating.Config{Stars: stars, StarWidth: wide, Gap: 1, Indicator: true}, style)},
		{"Hide inactive", widget.New(rating.Config{Stars: stars, StarWidth: 1, Gap: 1, HideInactive: true}, style)},
		{"RTL half step", widget.New(rating.Config{Stars: stars, StarWidth: wide, Gap: 1, Step: rating.StepHalf}, style)},
	}
	bars[2].widget.SetValue(3.3)
	bars[3].widget.SetValue(2.0)
	bars[4].widget.SetDirection(rating.DirRTL)

	var live, committed float64
	for _, b := range bars {
		w := b.widget
		w.OnValueChange = func(v float64) {
			live = v
			feedback.Tick()
		}
		w.OnRatingChanged = func(v float64) {
			committed = v
			feedback.Commit()
		}
	}

	rtl := false
	layout := func() {
		w, _ := screen.Size()
		for i, b := range bars {
			b.widget.SetOrigin(20, 2+2*i)
			rowW := b.widget.Config().RowWidth()
			if rowW > w-20 {
				rowW = w - 20
			}
			b.widget.Resize(rowW)
		}
	}
	layout()

	draw := func() {
		screen.Clear()
		drawText(screen, 1, 0, "starbar demo - click/drag on a bar, r: direction, s: sound, q: quit",
			tcell.StyleDefault.Bold(true))
		for _, b := range bars {
			_, y := barOrigin(b.widget)
			drawText(screen, 1, y, b.label, tcell.StyleDefault.Dim(true))
			b.widget.Draw(screen)
		}
		_, h := screen.Size()
		status := fmt.Sprintf("live: %.1f  committed: %.1f  sound: %v", live, committed, feedback.Enabled())
		drawText(screen, 1, h-1, status, tcell.StyleDefault)
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			layout()
			draw()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				rtl = !rtl
				dir := rating.DirLTR
				if rtl {
					dir = rating.DirRTL
				}
				for _, b := range bars {
					// Direction change cancels any in-progress drag
					b.widget.Cancel()
					b.widget.SetDirection(dir)
				}
				draw()
			case ev.Rune() == 's':
				feedback.SetMuted(feedback.Enabled())
				draw()
			}

		case *tcell.EventMouse:
			handled := false
			for _, b := range bars {
				if b.widget.HandleMouse(ev) {
					handled = true
				}
			}
			if handled {
				draw()
			}
		}
	}
}

// barOrigin reads back a widget origin for label placement
func barOrigin(w *widget.RatingBar) (int, int) {
	return w.OriginX(), w.OriginY()
}

// drawText writes a string at the given position
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
