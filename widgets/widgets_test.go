package widgets_test

import (
	"testing"

	"github.com/too-tui/too"
	"github.com/too-tui/too/widgets"
)

// nullWriter discards every call; these tests only care about the view
// arena and input state App.Build produces, never the emitted bytes.
type nullWriter struct{}

func (nullWriter) Begin() error             { return nil }
func (nullWriter) End() error               { return nil }
func (nullWriter) MoveTo(too.Pos2) error    { return nil }
func (nullWriter) WriteStr(string) error    { return nil }
func (nullWriter) SetFg(too.Rgba) error     { return nil }
func (nullWriter) SetBg(too.Rgba) error     { return nil }
func (nullWriter) SetAttr(too.Attr) error   { return nil }
func (nullWriter) ResetFg() error           { return nil }
func (nullWriter) ResetBg() error           { return nil }
func (nullWriter) ResetAttr() error         { return nil }
func (nullWriter) SetTitle(string) error    { return nil }
func (nullWriter) SwitchToAltScreen() error  { return nil }
func (nullWriter) SwitchToMainScreen() error { return nil }
func (nullWriter) HideCursor() error         { return nil }
func (nullWriter) ShowCursor() error         { return nil }
func (nullWriter) Flush() error              { return nil }

func newTestApp(width, height int) *too.App {
	cfg := too.DefaultConfig
	cfg.DebugOverlay = false
	return too.NewApp(cfg, width, height, nullWriter{})
}

// End-to-end scenario 3: toggle_switch(&mut on) flips the bound bool and
// reports Changed on the frame the click lands, settling back to a steady
// read on the next frame.
func TestE2EToggleSwitchClickFlips(t *testing.T) {
	on := false
	var resp widgets.ToggleResponse

	app := newTestApp(4, 1)
	app.SetShow(func(ui *too.Ui) {
		resp = widgets.ToggleSwitch(ui, &on)
	})
	app.Build()
	if resp.Changed {
		t.Fatal("no interaction yet: Changed should be false on the first frame")
	}
	if on {
		t.Fatal("initial value should remain false before any click")
	}

	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, true, 0)
	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, false, 0)
	app.Input().EndDrag(too.ButtonPrimary)
	app.Build()

	if !resp.Changed {
		t.Fatal("a click inside the switch should report Changed on the frame it lands")
	}
	if !on {
		t.Fatal("a click should have flipped the bound bool to true")
	}

	app.Build()
	if resp.Changed {
		t.Error("Changed should settle back to false once the click has been consumed")
	}
}

func TestToggleSwitchDragFlipsTowardDragDirection(t *testing.T) {
	on := false
	app := newTestApp(4, 1)
	app.SetShow(func(ui *too.Ui) {
		widgets.ToggleSwitch(ui, &on)
	})
	app.Build()

	app.Input().HandleMouseDrag(too.Pos2{X: 0, Y: 0}, too.ButtonPrimary, 0)
	app.Input().HandleMouseDrag(too.Pos2{X: 3, Y: 0}, too.ButtonPrimary, 0)
	app.Build()

	if !on {
		t.Error("dragging rightward while off should flip the switch on")
	}
}

// End-to-end scenario 6: a scrollable list of 50 one-row labels with a
// 10-row viewport; KeyInput{PageDown} advances the offset by exactly the
// viewport height.
func TestE2EScrollableListPageDown(t *testing.T) {
	offset := 0
	const viewport = 10
	const rows = 50

	app := newTestApp(20, viewport)
	var listID too.ViewId
	app.SetShow(func(ui *too.Ui) {
		listID = widgets.BeginScrollableList(ui, widgets.ScrollableListArgs{Offset: &offset, Viewport: viewport})
		for i := 0; i < rows; i++ {
			widgets.Label(ui, "row")
		}
		ui.EndView(listID)
	})
	app.Build()

	app.Input().SetFocus(listID)
	app.Build() // applies the pending focus set above

	app.Input().HandleKey(too.Key{Kind: too.KeyPageDown}, 0)
	app.Build()

	if offset != viewport {
		t.Errorf("offset after one PageDown = %d, want %d", offset, viewport)
	}
}

func TestScrollableListClampsAtBottom(t *testing.T) {
	offset := 0
	const viewport = 10
	const rows = 15

	app := newTestApp(20, viewport)
	var listID too.ViewId
	app.SetShow(func(ui *too.Ui) {
		listID = widgets.BeginScrollableList(ui, widgets.ScrollableListArgs{Offset: &offset, Viewport: viewport})
		for i := 0; i < rows; i++ {
			widgets.Label(ui, "row")
		}
		ui.EndView(listID)
	})
	app.Build()
	app.Input().SetFocus(listID)
	app.Build()

	app.Input().HandleKey(too.Key{Kind: too.KeyPageDown}, 0)
	app.Build()
	app.Input().HandleKey(too.Key{Kind: too.KeyPageDown}, 0)
	app.Build()

	if want := rows - viewport; offset != want {
		t.Errorf("offset should clamp at rows-viewport = %d, got %d", want, offset)
	}
}

func TestScrollableListHomeEndKeys(t *testing.T) {
	offset := 5
	const viewport = 10
	const rows = 50

	app := newTestApp(20, viewport)
	var listID too.ViewId
	app.SetShow(func(ui *too.Ui) {
		listID = widgets.BeginScrollableList(ui, widgets.ScrollableListArgs{Offset: &offset, Viewport: viewport})
		for i := 0; i < rows; i++ {
			widgets.Label(ui, "row")
		}
		ui.EndView(listID)
	})
	app.Build()
	app.Input().SetFocus(listID)
	app.Build()

	app.Input().HandleKey(too.Key{Kind: too.KeyEnd}, 0)
	app.Build()
	if want := rows - viewport; offset != want {
		t.Errorf("End should jump to the last full page, offset = %d, want %d", offset, want)
	}

	app.Input().HandleKey(too.Key{Kind: too.KeyHome}, 0)
	app.Build()
	if offset != 0 {
		t.Errorf("Home should jump back to the top, offset = %d, want 0", offset)
	}
}

func TestButtonClickSequenceViaApp(t *testing.T) {
	var resp widgets.ButtonResponse
	app := newTestApp(10, 1)
	app.SetShow(func(ui *too.Ui) {
		resp = widgets.Button(ui, "ok")
	})
	app.Build()
	if resp.Hovered() || resp.Clicked() {
		t.Fatal("no interaction yet: button should report its zero state")
	}

	app.Input().HandleMouseMove(too.Pos2{X: 1, Y: 0})
	app.Build()
	if !resp.Hovered() {
		t.Fatal("moving the pointer over the button should report Hovered")
	}

	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, true, 0)
	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, false, 0)
	app.Input().EndDrag(too.ButtonPrimary)
	app.Build()
	if !resp.Clicked() {
		t.Fatal("a full press-release cycle inside the button should report Clicked")
	}

	app.Build()
	if resp.Clicked() {
		t.Error("Clicked should relax back to Hovered on the following frame")
	}
}

func TestButtonDisabledIgnoresClicks(t *testing.T) {
	var resp widgets.ButtonResponse
	app := newTestApp(10, 1)
	app.SetShow(func(ui *too.Ui) {
		resp = widgets.ButtonDisabled(ui, "ok", true)
	})
	app.Build()

	app.Input().HandleMouseMove(too.Pos2{X: 1, Y: 0})
	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, true, 0)
	app.Input().HandleMouseButton(too.Pos2{X: 1, Y: 0}, too.ButtonPrimary, false, 0)
	app.Build()

	if resp.Clicked() || resp.Hovered() {
		t.Error("a disabled button must not report interaction state")
	}
}
