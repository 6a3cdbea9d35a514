package widget

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starbar/rating"
)

// recorder captures callback invocations in order
type recorder struct {
	live    []float64
	commits []float64
}

func (rec *recorder) attach(r *RatingBar) {
	r.OnValueChange = func(v float64) { rec.live = append(rec.live, v) }
	r.OnRatingChanged = func(v float64) { rec.commits = append(rec.commits, v) }
}

// newTestBar builds a 5-star bar, 3 cells per star, 1 cell gap (slot width 4)
func newTestBar() *RatingBar {
	r := New(rating.Config{Stars: 5, StarWidth: 3, Gap: 1, Step: rating.StepWhole}, DefaultStyle())
	r.SetOrigin(0, 0)
	return r
}

func press(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, 0)
}

func drag(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, 0)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, 0)
}

func TestTapCommitsImmediately(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	// Column 9 is inside star index 2 (slot width 4), fraction > 0
	if !r.HandleMouse(press(9, 0)) {
		t.Fatal("Expected press inside row to be consumed")
	}

	if len(rec.live) != 1 || rec.live[0] != 3.0 {
		t.Errorf("Expected one live update of 3.0, got %v", rec.live)
	}
	if len(rec.commits) != 1 || rec.commits[0] != 3.0 {
		t.Errorf("Expected one commit of 3.0, got %v", rec.commits)
	}
	if r.Phase() != PhasePressed {
		t.Errorf("Expected Pressed phase, got %v", r.Phase())
	}

	// Release without motion must not commit a second time
	r.HandleMouse(release(9, 0))
	if len(rec.commits) != 1 {
		t.Errorf("Expected no second commit on plain release, got %v", rec.commits)
	}
	if r.Phase() != PhaseIdle {
		t.Errorf("Expected Idle phase after release, got %v", r.Phase())
	}
}

func TestTapAtSlotBoundary(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	// Column 8 is the start of slot 2, fraction 0: whole step keeps index
	r.HandleMouse(press(8, 0))
	if len(rec.commits) != 1 || rec.commits[0] != 2.0 {
		t.Errorf("Expected commit of 2.0 at slot boundary, got %v", rec.commits)
	}
}

func TestDragLifecycle(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	r.HandleMouse(press(1, 0))  // tap commit at 1.0
	r.HandleMouse(drag(5, 0))   // star 1 -> 2.0
	r.HandleMouse(drag(13, 0))  // star 3 -> 4.0
	r.HandleMouse(drag(200, 0)) // clamped past row end -> 5.0

	if r.Phase() != PhaseDragging {
		t.Errorf("Expected Dragging phase, got %v", r.Phase())
	}

	expectedLive := []float64{1.0, 2.0, 4.0, 5.0}
	if len(rec.live) != len(expectedLive) {
		t.Fatalf("Expected %d live updates, got %v", len(expectedLive), rec.live)
	}
	for i, v := range expectedLive {
		if rec.live[i] != v {
			t.Errorf("Expected live update %d to be %v, got %v", i, v, rec.live[i])
		}
	}

	r.HandleMouse(release(200, 0))
	if r.Phase() != PhaseIdle {
		t.Errorf("Expected Idle phase after release, got %v", r.Phase())
	}
	// Press committed once (tap), release committed the last dragged value
	if len(rec.commits) != 2 || rec.commits[1] != 5.0 {
		t.Errorf("Expected final commit of 5.0, got %v", rec.commits)
	}
	if r.Value() != 5.0 {
		t.Errorf("Expected value 5.0, got %v", r.Value())
	}
}

func TestDragCancelDoesNotCommit(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	r.HandleMouse(press(1, 0))
	r.HandleMouse(drag(13, 0))
	commitsBefore := len(rec.commits)

	r.Cancel()
	if r.Phase() != PhaseIdle {
		t.Errorf("Expected Idle phase after cancel, got %v", r.Phase())
	}
	if len(rec.commits) != commitsBefore {
		t.Errorf("Expected cancel not to commit, got %v", rec.commits)
	}

	// Release after cancel is a no-op
	r.HandleMouse(release(13, 0))
	if len(rec.commits) != commitsBefore {
		t.Errorf("Expected no commit after cancelled drag, got %v", rec.commits)
	}
}

func TestPressOutsideRowIgnored(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	if r.HandleMouse(press(3, 5)) {
		t.Error("Expected press on another row to be ignored")
	}
	if r.HandleMouse(press(50, 0)) {
		t.Error("Expected press past row end to be ignored")
	}
	if len(rec.live) != 0 || len(rec.commits) != 0 {
		t.Errorf("Expected no callbacks, got live=%v commits=%v", rec.live, rec.commits)
	}
	if r.Phase() != PhaseIdle {
		t.Errorf("Expected Idle phase, got %v", r.Phase())
	}
}

func TestIndicatorSuppressesInput(t *testing.T) {
	tests := []struct {
		name string
		cfg  rating.Config
	}{
		{"Indicator", rating.Config{Stars: 5, StarWidth: 3, Gap: 1, Indicator: true}},
		{"Hide inactive", rating.Config{Stars: 5, StarWidth: 3, Gap: 1, HideInactive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.cfg, DefaultStyle())
			rec := &recorder{}
			rec.attach(r)

			if r.HandleMouse(press(1, 0)) {
				t.Error("Expected press to be suppressed")
			}
			r.HandleMouse(drag(9, 0))
			r.HandleMouse(release(9, 0))

			if len(rec.live) != 0 || len(rec.commits) != 0 {
				t.Errorf("Expected no callbacks, got live=%v commits=%v", rec.live, rec.commits)
			}
		})
	}
}

func TestHalfStepDrag(t *testing.T) {
	r := New(rating.Config{Stars: 5, StarWidth: 4, Gap: 0, Step: rating.StepHalf}, DefaultStyle())
	rec := &recorder{}
	rec.attach(r)

	r.HandleMouse(press(0, 0)) // fraction 0 -> 0.5
	r.HandleMouse(drag(2, 0))  // fraction 0.5 -> 1.0
	r.HandleMouse(drag(5, 0))  // star 1, fraction 0.25 -> 1.5

	expected := []float64{0.5, 1.0, 1.5}
	if len(rec.live) != len(expected) {
		t.Fatalf("Expected %d live updates, got %v", len(expected), rec.live)
	}
	for i, v := range expected {
		if rec.live[i] != v {
			t.Errorf("Expected live update %d to be %v, got %v", i, v, rec.live[i])
		}
	}
}

func TestRTLMirrorsValues(t *testing.T) {
	ltr := newTestBar()
	rtl := newTestBar()
	rtl.SetDirection(rating.DirRTL)

	for x := 0; x < ltr.Width(); x++ {
		ltr.HandleMouse(press(x, 0))
		ltr.HandleMouse(release(x, 0))
		rtl.HandleMouse(press(x, 0))
		rtl.HandleMouse(release(x, 0))

		if rtl.Value() != 5-ltr.Value() {
			t.Fatalf("Expected RTL value %v at column %d, got %v", 5-ltr.Value(), x, rtl.Value())
		}
	}
}

func TestSetValueClamps(t *testing.T) {
	r := newTestBar()

	r.SetValue(3.3)
	if r.Value() != 3.3 {
		t.Errorf("Expected off-grid value 3.3 to be accepted, got %v", r.Value())
	}

	r.SetValue(-2)
	if r.Value() != 0 {
		t.Errorf("Expected negative value to clamp to 0, got %v", r.Value())
	}

	r.SetValue(9)
	if r.Value() != 5 {
		t.Errorf("Expected oversized value to clamp to 5, got %v", r.Value())
	}
}

func TestResizeMidDrag(t *testing.T) {
	r := newTestBar()
	rec := &recorder{}
	rec.attach(r)

	r.HandleMouse(press(1, 0))
	r.Resize(8) // Row shrinks to two slots mid-drag
	r.HandleMouse(drag(200, 0))

	// Offset clamps to the new width: column 8 is the start of slot 2
	if r.Value() != 2.0 {
		t.Errorf("Expected value 2.0 after shrink, got %v", r.Value())
	}
}
