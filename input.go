package too

// MouseButton identifies which physical button a mouse event concerns.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// Modifiers is a bitset over {Shift, Ctrl, Alt}.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// Key is the external key representation produced by a terminal driver.
type Key struct {
	Kind KeyKind
	Char rune // valid when Kind == KeyChar
	Fn   int  // valid when Kind == KeyFunction, 1..=12
}

type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyFunction
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyEnter
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyTab
)

// ViewEventKind enumerates the ViewEvent variants a view's Event method
// may receive.
type ViewEventKind int

const (
	EventMouseEntered ViewEventKind = iota
	EventMouseLeave
	EventMouseMove
	EventMouseHeld
	EventMouseClicked
	EventMouseDrag
	EventMouseScroll
	EventKeyInput
	EventFocusGained
	EventFocusLost
	EventSelectionAdded
	EventSelectionRemoved
	EventPasteText
)

// ViewEvent is the dispatched event payload; fields are populated
// according to Kind, covering every interest category (mouse, keyboard,
// focus, selection) through one flat struct rather than a variant per kind.
type ViewEvent struct {
	Kind   ViewEventKind
	Target ViewId

	Pos       Pos2
	Button    MouseButton
	Inside    bool
	Modifiers Modifiers

	DragStart, DragCurrent Pos2
	DragDelta              Vec2

	ScrollDelta Vec2

	Key Key

	Paste string
}

// buttonState is the per-button state machine: Up -> JustDown ->
// Down -> JustUp -> Up, advanced once per frame by settle().
type buttonState int

const (
	btnUp buttonState = iota
	btnJustDown
	btnDown
	btnJustUp
)

func (s buttonState) isDown() bool { return s == btnDown || s == btnJustDown }

// InputState is the per-frame-derived mouse/keyboard/focus/selection
// router. It reads layout geometry from LayoutNodes and mutates
// focus/selection on ViewNodes.
type InputState struct {
	views  *ViewNodes
	layout *LayoutNodes

	entered map[ViewId]bool
	sunk    map[ViewId]bool

	buttons map[MouseButton]buttonState

	dragStart   map[MouseButton]Pos2
	dragActive  map[MouseButton]bool

	dispatchFn func(id ViewId, ev ViewEvent) Handled
}

func NewInputState(views *ViewNodes, layout *LayoutNodes) *InputState {
	in := &InputState{
		views:      views,
		layout:     layout,
		entered:    map[ViewId]bool{},
		sunk:       map[ViewId]bool{},
		buttons:    map[MouseButton]buttonState{},
		dragStart:  map[MouseButton]Pos2{},
		dragActive: map[MouseButton]bool{},
	}
	in.dispatchFn = in.dispatchTo
	return in
}

// Begin runs the deferred focus/selection notifications queued by the
// previous frame's SetFocus/SetSelected calls, called once at the start of
// each build, before the show closure runs.
func (in *InputState) Begin() {
	in.views.applyPendingFocus(func(id ViewId, ev ViewEvent) { in.dispatchFn(id, ev) })
	in.views.applyPendingSelection(func(ev ViewEvent) {
		for _, e := range in.layersFlat() {
			if e.interest.Has(InterestSelectionChange) {
				ev.Target = e.id
				in.dispatchFn(e.id, ev)
			}
		}
	})
}

// pruneRemoved drops removed ids from every input structure the frame they
// vanish.
func (in *InputState) pruneRemoved(removed []ViewId) {
	for _, id := range removed {
		delete(in.entered, id)
		delete(in.sunk, id)
	}
}

func (in *InputState) dispatchTo(id ViewId, ev ViewEvent) Handled {
	view := in.views.View(id)
	if view == nil {
		return Bubble
	}
	ctx := &EventCtx{Input: in}
	return view.Event(ev, ctx)
}

// layersFlat returns every (id, interest) entry across all layers, ordered
// top-most layer first.
func (in *InputState) layersFlat() []interestEntry {
	var out []interestEntry
	maxLayer := 0
	for l := range in.layout.interestLayers {
		if l > maxLayer {
			maxLayer = l
		}
	}
	for l := maxLayer; l >= 0; l-- {
		out = append(out, in.layout.interestLayers[l]...)
	}
	return out
}

// hitTest returns every id whose clipped rect contains pos, top-most layer
// first.
func (in *InputState) hitTest(pos Pos2) []ViewId {
	var hit []ViewId
	for _, e := range in.layersFlat() {
		n, ok := in.layout.Node(e.id)
		if !ok {
			continue
		}
		if in.layout.clippedRect(n).Contains(pos) {
			hit = append(hit, e.id)
		}
	}
	return hit
}

func containsID(ids []ViewId, id ViewId) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// HandleMouseMove implements hit-testing, enter/leave tracking, and the
// passive MouseMove broadcast.
func (in *InputState) HandleMouseMove(pos Pos2) {
	hit := in.hitTest(pos)

	for _, id := range hit {
		if in.entered[id] {
			continue
		}
		if in.dispatchFn(id, ViewEvent{Kind: EventMouseEntered, Target: id, Pos: pos, Inside: true}) == Sink {
			in.sunk[id] = true
		}
		in.entered[id] = true
	}
	for id := range in.entered {
		if !containsID(hit, id) {
			in.dispatchFn(id, ViewEvent{Kind: EventMouseLeave, Target: id, Pos: pos, Inside: false})
			delete(in.entered, id)
			delete(in.sunk, id)
		}
	}

	for _, e := range in.layersFlat() {
		if e.interest.Has(InterestMouseMove) {
			in.dispatchFn(e.id, ViewEvent{Kind: EventMouseMove, Target: e.id, Pos: pos, Inside: containsID(hit, e.id)})
		}
	}
}

// Settle advances Just-edges to steady states; called once per frame.
func (in *InputState) Settle() {
	for b, s := range in.buttons {
		switch s {
		case btnJustDown:
			in.buttons[b] = btnDown
		case btnJustUp:
			in.buttons[b] = btnUp
		}
	}
}

// HandleMouseButton routes a button press or release to the hit views,
// first Sink wins, and clears focus on an unhandled primary-button press.
func (in *InputState) HandleMouseButton(pos Pos2, button MouseButton, down bool, mods Modifiers) {
	prev := in.buttons[button]
	if down {
		if !prev.isDown() {
			in.buttons[button] = btnJustDown
		}
	} else {
		if prev.isDown() {
			in.buttons[button] = btnJustUp
		}
	}

	hit := in.hitTest(pos)
	kind := EventMouseClicked
	if down {
		kind = EventMouseHeld
	}

	bubbledPastAll := true
	for _, id := range hit {
		if in.dispatchFn(id, ViewEvent{Kind: kind, Target: id, Pos: pos, Button: button, Inside: true, Modifiers: mods}) == Sink {
			bubbledPastAll = false
			break
		}
	}

	for _, e := range in.layersFlat() {
		if e.interest.Has(InterestMouseOutside) && !containsID(hit, e.id) {
			in.dispatchFn(e.id, ViewEvent{Kind: kind, Target: e.id, Pos: pos, Button: button, Inside: false, Modifiers: mods})
		}
	}

	if down && button == ButtonPrimary && bubbledPastAll {
		in.views.ClearFocus()
		for id := range in.views.selected {
			in.views.SetSelected(id, false)
		}
	}
}

// HandleMouseDrag dispatches a drag step: consecutive drag events with the
// same button form one run from drag_start (first position) to current.
func (in *InputState) HandleMouseDrag(pos Pos2, button MouseButton, mods Modifiers) {
	if !in.dragActive[button] {
		in.dragStart[button] = pos
		in.dragActive[button] = true
	}
	start := in.dragStart[button]
	delta := pos.Sub(start)

	hit := in.hitTest(pos)
	for _, id := range hit {
		ev := ViewEvent{Kind: EventMouseDrag, Target: id, DragStart: start, DragCurrent: pos, DragDelta: delta, Inside: true, Button: button, Modifiers: mods}
		if in.dispatchFn(id, ev) == Sink {
			break
		}
	}
	for _, e := range in.layersFlat() {
		if e.interest.Has(InterestMouseOutside) && !containsID(hit, e.id) {
			ev := ViewEvent{Kind: EventMouseDrag, Target: e.id, DragStart: start, DragCurrent: pos, DragDelta: delta, Inside: false, Button: button, Modifiers: mods}
			in.dispatchFn(e.id, ev)
		}
	}
}

// EndDrag clears the active-drag state for button, called when the driver
// observes the corresponding button release.
func (in *InputState) EndDrag(button MouseButton) {
	delete(in.dragActive, button)
	delete(in.dragStart, button)
}

// HandleMouseScroll dispatches a wheel event to the hit views in order,
// first Sink wins.
func (in *InputState) HandleMouseScroll(pos Pos2, delta Vec2, mods Modifiers) {
	hit := in.hitTest(pos)
	for _, id := range hit {
		ev := ViewEvent{Kind: EventMouseScroll, Target: id, Pos: pos, ScrollDelta: delta, Modifiers: mods}
		if in.dispatchFn(id, ev) == Sink {
			break
		}
	}
}

// HandleKey dispatches a key press to the single focused id, if any. An
// unhandled Tab/Shift+Tab (no focused view, or the focused view bubbles
// it) cycles focus through the interactive views in this frame's layout
// order.
func (in *InputState) HandleKey(key Key, mods Modifiers) {
	focused := in.views.Focused()
	handled := Bubble
	if focused.valid() {
		handled = in.dispatchFn(focused, ViewEvent{Kind: EventKeyInput, Target: focused, Key: key, Modifiers: mods})
	}
	if handled == Bubble && key.Kind == KeyTab {
		if mods.Has(ModShift) {
			in.Prev()
		} else {
			in.Next()
		}
	}
}

// HandlePaste delivers a bracketed-paste payload to the focused view; it is
// dispatched exactly like a key event since only the focused view has a
// meaningful place to put it.
func (in *InputState) HandlePaste(text string) {
	focused := in.views.Focused()
	if !focused.valid() {
		return
	}
	in.dispatchFn(focused, ViewEvent{Kind: EventPasteText, Target: focused, Paste: text})
}

// Next focuses the next interactive view after the currently focused one,
// in this frame's layout order, wrapping around. A no-op if no view is
// interactive.
func (in *InputState) Next() { in.cycleFocus(1) }

// Prev is the mirror of Next, cycling backward.
func (in *InputState) Prev() { in.cycleFocus(-1) }

func (in *InputState) cycleFocus(dir int) {
	order := in.layout.interactiveOrder
	if len(order) == 0 {
		return
	}
	idx := indexOfID(order, in.views.Focused())
	if idx < 0 {
		if dir > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	next := (idx + dir + len(order)) % len(order)
	in.SetFocus(order[next])
}

func indexOfID(ids []ViewId, id ViewId) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

// Rect returns id's current absolute, clip-resolved layout rect, letting a
// widget's Event handler (e.g. a slider computing a drag fraction) convert
// a pointer position into a local coordinate without reaching into the
// layout tree directly.
func (in *InputState) Rect(id ViewId) Rect { return in.layout.clippedRect(in.layout.nodes[id]) }

// SetFocus requests focus for id; notification is deferred to the next
// Begin() call.
func (in *InputState) SetFocus(id ViewId) { in.views.SetFocus(id) }

func (in *InputState) ClearFocus() { in.views.ClearFocus() }

func (in *InputState) SetSelected(id ViewId, selected bool) { in.views.SetSelected(id, selected) }
