package too

// Handled is the sole event-propagation signal: Sink stops dispatch,
// Bubble lets it continue to the next view/ancestor.
type Handled bool

const (
	Bubble Handled = false
	Sink   Handled = true
)

// FlexKind distinguishes a view's fill policy along its parent's main axis.
type FlexKind uint8

const (
	FlexTight FlexKind = iota
	FlexLoose
)

// Flex is a view's fill policy: Tight(f) forces exactly a proportional
// share of the remaining main-axis space, Loose(f) requests up to that
// share but accepts less, and Loose(0) is "no flex, take intrinsic size."
type Flex struct {
	Kind   FlexKind
	Factor float32
}

func Tight(f float32) Flex { return Flex{Kind: FlexTight, Factor: f} }
func Loose(f float32) Flex { return Flex{Kind: FlexLoose, Factor: f} }

var NoFlex = Loose(0)

// Interest is a bitmask of event categories a view wishes to receive,
// ported one-for-one from original_source/src/view/input/interest.rs's
// Interest bitset (MOUSE_INSIDE/MOUSE_OUTSIDE/MOUSE_MOVE/FOCUS/
// FOCUS_INPUT/SELECTION_CHANGE), re-expressed as a typed Go bitmask rather
// than transliterating the Rust tuple-struct + trait-impl boilerplate.
type Interest uint8

const (
	InterestNone Interest = 0

	InterestMouseInside Interest = 1 << iota
	InterestMouseOutside
	InterestMouseMove
	InterestFocus
	InterestFocusInput
	InterestSelectionChange
)

const InterestMouse = InterestMouseInside | InterestMouseOutside | InterestMouseMove

func (i Interest) Has(f Interest) bool  { return i&f != 0 }
func (i Interest) IsNone() bool         { return i == InterestNone }
func (i Interest) IsMouseAny() bool     { return i.Has(InterestMouse) }

// LayoutCtx is passed to View.Layout; it lets a container view lay out,
// position and size its children and declare layering/clipping.
type LayoutCtx struct {
	tree *LayoutNodes
	self ViewId
}

func (c *LayoutCtx) Compute(child ViewId, space Space) Size {
	return c.tree.compute(child, space)
}

func (c *LayoutCtx) SetPosition(child ViewId, pos Vec2) {
	c.tree.setPosition(child, pos)
}

func (c *LayoutCtx) SetSize(child ViewId, s Size) {
	c.tree.setSize(child, s)
}

func (c *LayoutCtx) NewLayer() { c.tree.newLayer(c.self) }

func (c *LayoutCtx) EnableClipping() { c.tree.enableClipping(c.self) }

// Self returns the id of the view currently laying itself out, letting a
// container widget defined outside the core package look up its own
// children (via Children) to drive a bespoke arrangement.
func (c *LayoutCtx) Self() ViewId { return c.self }

// Children returns self's children in their current reconciled order.
func (c *LayoutCtx) Children() []ViewId { return c.tree.views.Children(c.self) }

// Tree exposes the view arena itself, needed by widgets that call the
// reference ListLayout/WrapLayout/DefaultLayout algorithms directly
// instead of walking Children one at a time.
func (c *LayoutCtx) Tree() *ViewNodes { return c.tree.views }

// SizeCtx is passed to View.Size for intrinsic-size queries.
type SizeCtx struct {
	tree *LayoutNodes
}

// EventCtx is passed to View.Event.
type EventCtx struct {
	Input *InputState
}

// View is the capability set every widget implements. too views are
// ordinary typed Go values rather than a dynamic map-based props bag
// interpreted by a string-keyed intrinsic registry; reconciliation keys
// on their concrete Go type instead of an element-name string, so there
// is no registry to maintain.
type View interface {
	Flex() Flex
	PrimaryAxis() Axis
	Interests() Interest
	Interactive() bool
	Size(ctx *SizeCtx, axis Axis, extent float32) float32
	Event(ev ViewEvent, ctx *EventCtx) Handled
	Layout(ctx *LayoutCtx, space Space) Size
	Draw(ctx *RenderCtx)
}

// BaseView supplies the default implementations ("default recurses and
// returns max" / "default recurses into children"); concrete widgets
// embed it and override only what they need; a widget that defines no
// Layout/Draw of its own falls back to DefaultLayout/DefaultDraw.
type BaseView struct{}

func (BaseView) Layout(ctx *LayoutCtx, space Space) Size {
	return DefaultLayout(ctx, ctx.Tree(), ctx.Self(), space)
}
func (BaseView) Draw(ctx *RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

func (BaseView) Flex() Flex                                              { return NoFlex }
func (BaseView) PrimaryAxis() Axis                                       { return Vertical }
func (BaseView) Interests() Interest                                     { return InterestNone }
func (BaseView) Interactive() bool                                       { return false }
func (BaseView) Size(ctx *SizeCtx, axis Axis, extent float32) float32    { return 0 }
func (BaseView) Event(ev ViewEvent, ctx *EventCtx) Handled                { return Bubble }

// DefaultLayout lays out every child of id with the given space and returns
// the max extent on each axis — the "default recurses and returns max"
// behavior. Container views call this directly when they have no bespoke
// arrangement to perform (e.g. a simple "stack" layer view).
func DefaultLayout(ctx *LayoutCtx, tree *ViewNodes, id ViewId, space Space) Size {
	var out Size
	for _, child := range tree.Children(id) {
		s := ctx.Compute(child, space)
		if s.Width > out.Width {
			out.Width = s.Width
		}
		if s.Height > out.Height {
			out.Height = s.Height
		}
	}
	return space.Fit(out)
}

// DefaultDraw recurses draw into every child of id.
func DefaultDraw(ctx *RenderCtx, tree *ViewNodes, id ViewId) {
	for _, child := range tree.Children(id) {
		ctx.Draw(child)
	}
}

// ViewFactory is the generic capability contract reconciliation dispatches
// through: A is the per-frame argument type, R the response type returned
// to the caller. Compile-time type checking replaces a runtime
// `map[string]any` props bag interpreted by a dynamic-dispatch pipeline.
type ViewFactory[A any, R any] interface {
	View
	Update(args A) R
}

// CreateFunc constructs a new V given its first-frame arguments.
type CreateFunc[A any, V any] func(args A) V
