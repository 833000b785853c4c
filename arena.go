package too

import (
	"fmt"
	"reflect"
)

// ViewId is an opaque, comparable, hashable handle into the view arena.
// A generational index gives cheap-to-compare value semantics while
// catching stale handles after a slot is reused.
type ViewId struct {
	index uint32
	gen   uint32
}

// RootID is the sentinel root view's id, always the arena's first slot.
var RootID = ViewId{index: 0, gen: 1}

func (id ViewId) String() string { return fmt.Sprintf("ViewId(%d#%d)", id.index, id.gen) }

func (id ViewId) valid() bool { return id.gen != 0 }

type rootView struct{ BaseView }

// rootView.Layout computes every top-level child at the full root space
// and pins it to the origin — the root itself carries no offset or sizing
// policy of its own, it only exists to anchor the ids the show closure
// opens directly against the Ui.
func (rootView) Layout(ctx *LayoutCtx, space Space) Size {
	for _, child := range ctx.Children() {
		ctx.Compute(child, space)
		ctx.SetPosition(child, Vec2{})
	}
	return space.Max
}

func (rootView) Draw(ctx *RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// viewSlot is one arena entry. A slot's view is non-nil only while the
// generation is "live"; a freed slot keeps its view nil until reallocated
// at the next generation.
type viewSlot struct {
	gen      uint32
	parent   ViewId
	children []ViewId
	next     int
	view     View
	typ      reflect.Type
	alive    bool

	interests    Interest
	interactive  bool
}

// ViewNodes is the persistent view arena: a slotmap with parent/children
// links, a type check at reconciliation time, and an explicit
// reconciliation stack plus removed-list so slots are reused across
// frames instead of rebuilt from scratch.
type ViewNodes struct {
	slots []viewSlot
	free  []uint32

	stack   []ViewId
	removed []ViewId

	focused      ViewId
	pendingFocus ViewId
	hasPending   bool
	selected     map[ViewId]bool
	pendingSel   map[ViewId]bool
}

// NewViewNodes allocates an arena containing only the sentinel Root view.
func NewViewNodes() *ViewNodes {
	vn := &ViewNodes{selected: map[ViewId]bool{}, pendingSel: map[ViewId]bool{}}
	vn.slots = append(vn.slots, viewSlot{
		gen:   1,
		alive: true,
		view:  rootView{},
		typ:   reflect.TypeOf(rootView{}),
	})
	return vn
}

func (vn *ViewNodes) slot(id ViewId) *viewSlot {
	s := &vn.slots[id.index]
	if s.gen != id.gen || !s.alive {
		panic("too: stale ViewId used after its view was removed")
	}
	return s
}

func (vn *ViewNodes) Parent(id ViewId) (ViewId, bool) {
	s := vn.slot(id)
	return s.parent, id != RootID
}

func (vn *ViewNodes) Children(id ViewId) []ViewId { return vn.slot(id).children }

func (vn *ViewNodes) View(id ViewId) View { return vn.slot(id).view }

func (vn *ViewNodes) Interests(id ViewId) Interest { return vn.slot(id).interests }

func (vn *ViewNodes) SetInteractivity(id ViewId, interests Interest, interactive bool) {
	s := vn.slot(id)
	s.interests = interests
	s.interactive = interactive
}

// resetFrame prepares the arena for a new build pass.
func (vn *ViewNodes) resetFrame() {
	vn.slots[RootID.index].next = 0
	vn.removed = vn.removed[:0]
}

// current returns the top of the open-id stack, or Root if empty.
func (vn *ViewNodes) current() ViewId {
	if len(vn.stack) == 0 {
		return RootID
	}
	return vn.stack[len(vn.stack)-1]
}

// beginViewTyped reuses the parent's next-th child if its runtime type
// equals zero's concrete type, otherwise replace-and-remove-stale then
// create. zero is a nil/zero instance of the concrete widget type V, used
// only to read its reflect.Type — Go generics have no "static
// constructor" a type parameter can carry, so callers (one small wrapper
// per widget, e.g. widgets.Label) supply both the zero value and the
// create/update functions explicitly.
func beginViewTyped[A any, R any](vn *ViewNodes, zero ViewFactory[A, R], create CreateFunc[A, ViewFactory[A, R]], args A) (ViewId, R) {
	parent := vn.current()
	parentSlot := vn.slot(parent)
	wantType := reflect.TypeOf(zero)

	var id ViewId
	var resp R

	if parentSlot.next < len(parentSlot.children) {
		candidate := parentSlot.children[parentSlot.next]
		cslot := vn.slot(candidate)
		if cslot.typ == wantType {
			id = candidate
			resp = cslot.view.(ViewFactory[A, R]).Update(args)
			cslot.next = 0
		} else {
			vn.removeSubtree(candidate)
			id = vn.allocView(parent, create(args))
			parentSlot = vn.slot(parent) // allocView may have grown vn.slots
			parentSlot.children[parentSlot.next] = id
		}
	} else {
		id = vn.allocView(parent, create(args))
		parentSlot = vn.slot(parent) // allocView may have grown vn.slots
		parentSlot.children = append(parentSlot.children, id)
	}

	parentSlot.next++
	vn.stack = append(vn.stack, id)
	return id, resp
}

func (vn *ViewNodes) allocView(parent ViewId, v View) ViewId {
	if len(vn.free) > 0 {
		idx := vn.free[len(vn.free)-1]
		vn.free = vn.free[:len(vn.free)-1]
		s := &vn.slots[idx]
		s.gen++
		s.alive = true
		s.parent = parent
		s.children = nil
		s.next = 0
		s.view = v
		s.typ = reflect.TypeOf(v)
		s.interests = InterestNone
		s.interactive = false
		return ViewId{index: idx, gen: s.gen}
	}
	idx := uint32(len(vn.slots))
	vn.slots = append(vn.slots, viewSlot{
		gen: 1, alive: true, parent: parent, view: v, typ: reflect.TypeOf(v),
	})
	return ViewId{index: idx, gen: 1}
}

// endView pops the stack (asserting id matches) and truncates children to
// next, queuing the tail for removal.
func (vn *ViewNodes) endView(id ViewId) {
	if len(vn.stack) == 0 || vn.stack[len(vn.stack)-1] != id {
		panic("too: end_view id does not match the currently-open view (mismatched begin_view/end_view pair)")
	}
	vn.stack = vn.stack[:len(vn.stack)-1]
	vn.cleanup(id)
}

func (vn *ViewNodes) cleanup(id ViewId) {
	s := vn.slot(id)
	if s.next < len(s.children) {
		stale := s.children[s.next:]
		for _, sid := range stale {
			vn.removeSubtree(sid)
		}
		s.children = s.children[:s.next]
	}
}

func (vn *ViewNodes) removeSubtree(id ViewId) {
	s := vn.slot(id)
	for _, c := range s.children {
		vn.removeSubtree(c)
	}
	s.alive = false
	s.view = nil
	s.typ = nil
	s.children = nil
	vn.free = append(vn.free, id.index)
	vn.removed = append(vn.removed, id)

	if vn.focused == id {
		vn.focused = ViewId{}
	}
	delete(vn.selected, id)
}

// Removed returns the ids evicted during the most recently finished build.
func (vn *ViewNodes) Removed() []ViewId { return vn.removed }

// StackEmpty reports whether every begin_view this frame was matched by an
// end_view — the universal invariant "after any build call, stack is
// empty."
func (vn *ViewNodes) StackEmpty() bool { return len(vn.stack) == 0 }

// scoped temporarily lifts id's view out of its slot so re-entrant calls
// (a view's Update calling back into the Ui to build children) don't alias
// a view that is itself mid-call. Re-entrancy into the same id is
// disallowed — the slot is left vacant for the duration of fn.
func (vn *ViewNodes) scoped(id ViewId, fn func(View)) {
	s := vn.slot(id)
	v := s.view
	s.view = nil
	defer func() { s.view = v }()
	fn(v)
}

// SetFocus records a pending focus change, delivered as FocusLost/
// FocusGained at the next begin().
func (vn *ViewNodes) SetFocus(id ViewId) {
	vn.pendingFocus = id
	vn.hasPending = true
}

func (vn *ViewNodes) ClearFocus() { vn.SetFocus(ViewId{}) }

func (vn *ViewNodes) Focused() ViewId { return vn.focused }

// applyPendingFocus dispatches FocusLost/FocusGained if the pending focus
// differs from the current one, called at the start of build.
func (vn *ViewNodes) applyPendingFocus(dispatch func(id ViewId, ev ViewEvent)) {
	if !vn.hasPending || vn.pendingFocus == vn.focused {
		vn.hasPending = false
		return
	}
	prev, next := vn.focused, vn.pendingFocus
	vn.focused = next
	vn.hasPending = false
	if prev.valid() && vn.slotAlive(prev) {
		dispatch(prev, ViewEvent{Kind: EventFocusLost})
	}
	if next.valid() && vn.slotAlive(next) {
		dispatch(next, ViewEvent{Kind: EventFocusGained})
	}
}

func (vn *ViewNodes) slotAlive(id ViewId) bool {
	if int(id.index) >= len(vn.slots) {
		return false
	}
	s := &vn.slots[id.index]
	return s.gen == id.gen && s.alive
}

// SetSelected adds or removes id from the pending selection set; broadcast
// as SelectionAdded/SelectionRemoved to every view with
// InterestSelectionChange at the next begin(), mirroring the focus
// protocol.
func (vn *ViewNodes) SetSelected(id ViewId, selected bool) {
	if selected {
		vn.pendingSel[id] = true
	} else {
		vn.pendingSel[id] = false
	}
}

func (vn *ViewNodes) applyPendingSelection(dispatch func(ev ViewEvent)) {
	for id, want := range vn.pendingSel {
		have := vn.selected[id]
		if want == have {
			continue
		}
		if want {
			vn.selected[id] = true
			dispatch(ViewEvent{Kind: EventSelectionAdded, Target: id})
		} else {
			delete(vn.selected, id)
			dispatch(ViewEvent{Kind: EventSelectionRemoved, Target: id})
		}
	}
	vn.pendingSel = map[ViewId]bool{}
}

// Ui is the per-frame handle passed to the user's show closure; its
// operations call begin_view/end_view in matched pairs.
type Ui struct {
	tree *ViewNodes
}

// BeginView reconciles a widget of concrete type V against the arena. Widget
// packages wrap this in a named constructor (e.g. widgets.Label(ui, text))
// that supplies zero and create once; see too/widgets for the pattern.
func BeginView[A any, R any](ui *Ui, zero ViewFactory[A, R], create CreateFunc[A, ViewFactory[A, R]], args A) (ViewId, R) {
	return beginViewTyped(ui.tree, zero, create, args)
}

// EndView closes the view id opened by the matching BeginView call.
func (ui *Ui) EndView(id ViewId) { ui.tree.endView(id) }
