package too

import (
	"time"
)

// Config is the driver's configuration. It collapses to a single plain
// struct passed to NewApp rather than a builder or functional-options
// API.
type Config struct {
	HideCursor     bool
	MouseCapture   bool
	CtrlCQuits     bool
	CtrlZSwitches  bool
	UseAltScreen   bool
	HookPanics     bool
	Palette        Palette
	FPS            float32
	DebugOverlay   bool // whether Ctrl-L toggles the debug queue overlay
}

// DefaultConfig is a sensible interactive default.
var DefaultConfig = Config{
	HideCursor:    true,
	MouseCapture:  true,
	CtrlCQuits:    true,
	CtrlZSwitches: true,
	UseAltScreen:  true,
	HookPanics:    true,
	Palette:       DarkPalette,
	FPS:           60,
	DebugOverlay:  true,
}

func (c Config) frameInterval() time.Duration {
	fps := c.FPS
	if fps < 1 {
		fps = 1
	}
	return time.Duration(float64(time.Second) / float64(fps))
}

// ShowFunc is the per-frame build closure an application supplies, given a
// Ui handle to issue begin_view/end_view pairs against.
type ShowFunc func(ui *Ui)

// EventSource is the producer-side collaborator the driver consumes events
// from. too/term implements this; it is expressed as an interface here
// rather than a concrete dependency so the core never imports the
// terminal I/O package.
type EventSource interface {
	Events() <-chan Event
}

// App is the application driver: it owns the view arena, layout tree,
// input state, and cell surface, and drives one frame per tick of the
// configured FPS, draining queued events first.
type App struct {
	Config Config

	views  *ViewNodes
	layout *LayoutNodes
	input  *InputState
	surface *Surface
	writer Writer
	debug  *debugQueue

	rect Rect
	show ShowFunc

	focusedDebug bool
}

// NewApp constructs a driver sized to width x height, writing through w.
func NewApp(cfg Config, width, height int, w Writer) *App {
	views := NewViewNodes()
	layout := NewLayoutNodes(views)
	input := NewInputState(views, layout)
	rect := NewRect(Pos2{}, width, height)
	a := &App{
		Config:  cfg,
		views:   views,
		layout:  layout,
		input:   input,
		surface: NewSurface(rect),
		writer:  w,
		debug:   newDebugQueue(),
		rect:    rect,
	}
	return a
}

// SetShow installs the per-frame build closure.
func (a *App) SetShow(show ShowFunc) { a.show = show }

// Views, Layout, and Input expose the driver's internal trees for widgets
// and tests that need direct access (e.g. a ScrollableList reading its own
// LayoutNode, or a test asserting on InputState's focus).
func (a *App) Views() *ViewNodes   { return a.views }
func (a *App) Layout() *LayoutNodes { return a.layout }
func (a *App) Input() *InputState  { return a.input }
func (a *App) Surface() *Surface   { return a.surface }
func (a *App) Rect() Rect          { return a.rect }

// Build drives one full frame: reconciliation, layout, and render, in
// that order. It panics if the show closure leaves the view stack
// non-empty or mismatches a begin_view/end_view pair.
func (a *App) Build() {
	a.views.resetFrame()
	a.input.Begin()

	ui := &Ui{tree: a.views}
	if a.show != nil {
		a.show(ui)
	}
	if !a.views.StackEmpty() {
		panic("too: show closure left the view stack non-empty (missing end_view)")
	}
	// Truncate the root's own children to those opened this frame.
	a.views.cleanup(RootID)

	removed := a.views.Removed()
	a.layout.pruneRemoved(removed)
	a.input.pruneRemoved(removed)

	a.layout.ComputeAll(a.rect)
	a.input.Settle()

	driver := newDrawDriver(a.surface, a.views, a.layout, a.Config.Palette, a.debug, a.focusedDebug)
	driver.Render()
}

// Flush writes the accumulated back-buffer diff to the writer.
func (a *App) Flush() error {
	return a.surface.Render(a.writer)
}

// Resize reallocates the surface and layout-relevant rect to the new size,
// forcing a full redraw on the next Build — the boundary behavior
// "Resizing reallocates both buffers and forces a full redraw."
func (a *App) Resize(width, height int) {
	a.rect = NewRect(Pos2{}, width, height)
	a.surface.Resize(a.rect)
}

// HandleEvent translates one driver Event into the appropriate InputState
// call (or driver-level action for resize/screen-switch/quit). It returns
// true if the event means the application should exit.
func (a *App) HandleEvent(ev Event) (quit bool) {
	switch ev.Kind {
	case EventKeyPressed:
		if a.Config.CtrlCQuits && ev.Key.Kind == KeyChar && ev.Key.Char == 'c' && ev.Modifiers.Has(ModCtrl) {
			return true
		}
		if a.Config.CtrlZSwitches && ev.Key.Kind == KeyChar && ev.Key.Char == 'z' && ev.Modifiers.Has(ModCtrl) {
			a.toggleAltScreen()
			return false
		}
		if a.Config.DebugOverlay && ev.Key.Kind == KeyChar && ev.Key.Char == 'l' && ev.Modifiers.Has(ModCtrl) {
			a.focusedDebug = !a.focusedDebug
			return false
		}
		a.input.HandleKey(ev.Key, ev.Modifiers)

	case EventMouseMoveRaw:
		a.input.HandleMouseMove(ev.Pos)

	case EventMouseButtonChangedRaw:
		a.input.HandleMouseButton(ev.Pos, ev.Button, ev.Down, ev.Modifiers)
		if !ev.Down {
			a.input.EndDrag(ev.Button)
		}

	case EventMouseDragRaw:
		a.input.HandleMouseDrag(ev.Pos, ev.Button, ev.Modifiers)

	case EventMouseScrollRaw:
		a.input.HandleMouseScroll(ev.Pos, ev.Delta, ev.Modifiers)

	case EventPaste:
		a.input.HandlePaste(ev.Paste)

	case EventResize:
		a.Resize(int(ev.Size.X), int(ev.Size.Y))

	case EventSwitchAltScreen:
		a.writer.SwitchToAltScreen()
	case EventSwitchMainScreen:
		a.writer.SwitchToMainScreen()

	case EventQuit:
		return true
	}
	return false
}

func (a *App) toggleAltScreen() {
	if a.Config.UseAltScreen {
		a.writer.SwitchToMainScreen()
	} else {
		a.writer.SwitchToAltScreen()
	}
	a.Config.UseAltScreen = !a.Config.UseAltScreen
}

// begin applies the startup screen/cursor/mouse configuration.
func (a *App) begin() {
	if a.Config.UseAltScreen {
		a.writer.SwitchToAltScreen()
	}
	if a.Config.HideCursor {
		a.writer.HideCursor()
	}
	a.writer.Flush()
}

// end reverses begin, restoring cursor visibility and screen mode.
func (a *App) end() {
	if a.Config.HideCursor {
		a.writer.ShowCursor()
	}
	if a.Config.UseAltScreen {
		a.writer.SwitchToMainScreen()
	}
	a.writer.Flush()
	a.debug.clear()
}

// Run drives the frame loop against source until a Quit-meaning event is
// observed: drain queued events up to half the frame interval, coalescing
// a trailing run of Resize events to the latest one, then build and
// flush exactly one frame, then sleep out the remainder of the tick.
func (a *App) Run(source EventSource) error {
	a.begin()
	defer a.end()

	if a.Config.HookPanics {
		defer func() {
			if r := recover(); r != nil {
				a.end()
				panic(r)
			}
		}()
	}

	frameInterval := a.Config.frameInterval()
	budget := frameInterval / 2
	events := source.Events()

	for {
		tickStart := time.Now()
		deadline := tickStart.Add(budget)

		var pendingResize *Event
		quit := false
	drain:
		for {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				break drain
			}
			timer := time.NewTimer(remaining)
			select {
			case ev, ok := <-events:
				timer.Stop()
				if !ok {
					quit = true
					break drain
				}
				if ev.Kind == EventResize {
					r := ev
					pendingResize = &r
					continue
				}
				if a.HandleEvent(ev) {
					quit = true
					break drain
				}
			case <-timer.C:
				break drain
			}
		}
		if pendingResize != nil {
			a.HandleEvent(*pendingResize)
		}
		if quit {
			return nil
		}

		a.Build()
		if err := a.Flush(); err != nil {
			return err
		}

		if elapsed := time.Since(tickStart); elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
}
