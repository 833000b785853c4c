package too

import "testing"

// recordingButton is a stand-in for widgets.Button, tracking just enough
// interaction state to assert the input-routing end-to-end scenarios
// without depending on the widgets package.
type recordingButton struct {
	BaseView
	w, h int

	entered, left    int
	held, clicked    int
	lastState        string
}

func newRecordingButton(sz Pos2) ViewFactory[Pos2, struct{}] {
	return &recordingButton{w: sz.X, h: sz.Y}
}
func (v *recordingButton) Update(sz Pos2) struct{} { v.w, v.h = sz.X, sz.Y; return struct{}{} }
func (v *recordingButton) Interests() Interest     { return InterestMouse }
func (v *recordingButton) Interactive() bool       { return true }
func (v *recordingButton) Layout(ctx *LayoutCtx, space Space) Size {
	return space.Fit(size(float32(v.w), float32(v.h)))
}
func (v *recordingButton) Draw(ctx *RenderCtx) {}

func (v *recordingButton) Event(ev ViewEvent, ctx *EventCtx) Handled {
	switch ev.Kind {
	case EventMouseEntered:
		v.entered++
		v.lastState = "hovered"
	case EventMouseLeave:
		v.left++
		v.lastState = "none"
	case EventMouseHeld:
		if !ev.Inside {
			return Bubble
		}
		v.held++
		v.lastState = "held"
	case EventMouseClicked:
		if !ev.Inside {
			return Bubble
		}
		v.clicked++
		v.lastState = "clicked"
	default:
		return Bubble
	}
	return Sink
}

func beginRecordingButton(ui *Ui, w, h int) ViewId {
	id, _ := BeginView[Pos2, struct{}](ui, (*recordingButton)(nil), newRecordingButton, Pos2{X: w, Y: h})
	ui.EndView(id)
	return id
}

// bubblingArea declares mouse interest but never sinks, used to assert that
// a hit view which bubbles still lets a primary-down clear focus.
type bubblingArea struct {
	BaseView
	w, h int
}

func newBubblingArea(sz Pos2) ViewFactory[Pos2, struct{}] {
	return &bubblingArea{w: sz.X, h: sz.Y}
}
func (v *bubblingArea) Update(sz Pos2) struct{} { v.w, v.h = sz.X, sz.Y; return struct{}{} }
func (v *bubblingArea) Interests() Interest     { return InterestMouse }
func (v *bubblingArea) Interactive() bool       { return true }
func (v *bubblingArea) Layout(ctx *LayoutCtx, space Space) Size {
	return space.Fit(size(float32(v.w), float32(v.h)))
}

func beginBubblingArea(ui *Ui, w, h int) ViewId {
	id, _ := BeginView[Pos2, struct{}](ui, (*bubblingArea)(nil), newBubblingArea, Pos2{X: w, Y: h})
	ui.EndView(id)
	return id
}

// harness wires a ViewNodes/LayoutNodes/InputState triple laid out against
// a fixed rect, the minimal slice of App.Build needed to exercise input
// routing in isolation.
type harness struct {
	vn  *ViewNodes
	lt  *LayoutNodes
	in  *InputState
	ui  *Ui
}

func newHarness() *harness {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	in := NewInputState(vn, lt)
	return &harness{vn: vn, lt: lt, in: in, ui: &Ui{tree: vn}}
}

func (h *harness) layout(rect Rect) {
	h.vn.resetFrame()
	h.lt.ComputeAll(rect)
}

// End-to-end scenario 5: a button at (0,0)..(6,1); hover then click then
// press then release walks hovered -> held -> clicked.
func TestE2EButtonHoverClickSequence(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 6, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 6, 1))

	b := h.vn.View(btn).(*recordingButton)

	h.in.HandleMouseMove(pos2(3, 0))
	if b.lastState != "hovered" {
		t.Fatalf("after hover, state = %q, want hovered", b.lastState)
	}

	h.in.HandleMouseButton(pos2(3, 0), ButtonPrimary, true, 0)
	if b.lastState != "held" {
		t.Fatalf("after button-down inside, state = %q, want held", b.lastState)
	}

	h.in.HandleMouseButton(pos2(3, 0), ButtonPrimary, false, 0)
	h.in.EndDrag(ButtonPrimary)
	if b.lastState != "clicked" {
		t.Fatalf("after button-up inside, state = %q, want clicked", b.lastState)
	}
}

func TestHitTestRespectsClipping(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 10, 10)
	h.lt.ComputeAll(NewRect(Pos2{}, 3, 3)) // root rect smaller than the button's intrinsic size

	hit := h.in.hitTest(pos2(1, 1))
	if !containsID(hit, btn) {
		t.Error("a point inside the clipped root rect should still hit the oversized child")
	}
	hit = h.in.hitTest(pos2(5, 5))
	if containsID(hit, btn) {
		t.Error("a point outside the root rect must not hit anything, even if the child's unclipped size would cover it")
	}
}

func TestMouseEnterLeaveTracking(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 4, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))
	b := h.vn.View(btn).(*recordingButton)

	h.in.HandleMouseMove(pos2(1, 0)) // inside
	h.in.HandleMouseMove(pos2(1, 0)) // still inside: no repeated Entered
	if b.entered != 1 {
		t.Errorf("entered fired %d times, want exactly 1 while staying inside", b.entered)
	}

	h.in.HandleMouseMove(pos2(8, 0)) // now outside
	if b.left != 1 {
		t.Errorf("left fired %d times, want exactly 1 on leaving", b.left)
	}
}

// A click that bubbles past every view clears focus; a click sunk by a
// view does not.
func TestClickBubblePastAllClearsFocus(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 4, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))

	h.vn.SetFocus(btn)
	h.in.Begin()
	if h.vn.Focused() != btn {
		t.Fatal("setup: focus should have been applied")
	}

	h.in.HandleMouseButton(pos2(8, 0), ButtonPrimary, true, 0) // outside every view
	h.in.Begin()                                                // focus changes apply at the next frame's Begin
	if h.vn.Focused().valid() {
		t.Error("a primary-down that bubbles past every view should clear focus")
	}
}

func TestClickSunkByViewDoesNotClearFocus(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 4, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))

	h.vn.SetFocus(btn)
	h.in.Begin()

	h.in.HandleMouseButton(pos2(1, 0), ButtonPrimary, true, 0) // inside: Sink
	if h.vn.Focused() != btn {
		t.Error("a click sunk by a view must not clear focus")
	}
}

// A primary-down that hits a view which returns Bubble (rather than landing
// on empty space) must still clear focus: §8's "bubbles past every view" is
// determined by the Sink/Bubble outcome, not by whether anything was hit.
func TestClickHitButBubbledClearsFocus(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	area := beginBubblingArea(h.ui, 4, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))

	h.vn.SetFocus(area)
	h.in.Begin()
	if h.vn.Focused() != area {
		t.Fatal("setup: focus should have been applied")
	}

	h.in.HandleMouseButton(pos2(1, 0), ButtonPrimary, true, 0) // inside area, but it bubbles
	h.in.Begin()                                                // focus changes apply at the next frame's Begin
	if h.vn.Focused().valid() {
		t.Error("a primary-down hitting a view that bubbles should still clear focus")
	}
}

func TestDragStartStaysFixedAcrossConsecutiveDrags(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	btn := beginRecordingButton(h.ui, 10, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))

	var lastStart, lastCurrent Pos2
	h.in.dispatchFn = func(id ViewId, ev ViewEvent) Handled {
		if ev.Kind == EventMouseDrag {
			lastStart, lastCurrent = ev.DragStart, ev.DragCurrent
		}
		return Bubble
	}
	_ = btn

	h.in.HandleMouseDrag(pos2(2, 0), ButtonPrimary, 0)
	h.in.HandleMouseDrag(pos2(5, 0), ButtonPrimary, 0)
	h.in.HandleMouseDrag(pos2(7, 0), ButtonPrimary, 0)

	if lastStart != pos2(2, 0) {
		t.Errorf("drag_start should stay pinned to the first position, got %v", lastStart)
	}
	if lastCurrent != pos2(7, 0) {
		t.Errorf("drag current should track the latest position, got %v", lastCurrent)
	}

	h.in.EndDrag(ButtonPrimary)
	h.in.HandleMouseDrag(pos2(9, 0), ButtonPrimary, 0)
	if lastStart != pos2(9, 0) {
		t.Errorf("a new drag run after EndDrag should reset drag_start, got %v", lastStart)
	}
}

func TestButtonStateMachineSettle(t *testing.T) {
	in := NewInputState(NewViewNodes(), NewLayoutNodes(NewViewNodes()))
	in.buttons[ButtonPrimary] = btnJustDown
	in.Settle()
	if in.buttons[ButtonPrimary] != btnDown {
		t.Errorf("JustDown should settle to Down, got %v", in.buttons[ButtonPrimary])
	}

	in.buttons[ButtonPrimary] = btnJustUp
	in.Settle()
	if in.buttons[ButtonPrimary] != btnUp {
		t.Errorf("JustUp should settle to Up, got %v", in.buttons[ButtonPrimary])
	}
}

func TestFocusCycleWrapsAndSkipsNonInteractive(t *testing.T) {
	h := newHarness()
	h.vn.resetFrame()
	a := beginRecordingButton(h.ui, 2, 1)
	b := beginRecordingButton(h.ui, 2, 1)
	c := beginRecordingButton(h.ui, 2, 1)
	h.lt.ComputeAll(NewRect(Pos2{}, 10, 1))

	next := func() { h.in.Next(); h.in.Begin() }
	prev := func() { h.in.Prev(); h.in.Begin() }

	next()
	if h.vn.Focused() != a {
		t.Fatalf("first Next() from no focus should land on the first interactive view, got %v want %v", h.vn.Focused(), a)
	}
	next()
	if h.vn.Focused() != b {
		t.Fatalf("second Next() should advance to %v, got %v", b, h.vn.Focused())
	}
	next()
	next() // wraps past c back to a
	if h.vn.Focused() != a {
		t.Fatalf("Next() should wrap around to the first view, got %v", h.vn.Focused())
	}
	prev()
	if h.vn.Focused() != c {
		t.Fatalf("Prev() from the first view should wrap to the last, got %v want %v", h.vn.Focused(), c)
	}
}
