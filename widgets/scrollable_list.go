package widgets

import "github.com/too-tui/too"

// ScrollableListArgs configures a ScrollableList. Offset is the caller-owned
// scroll position in rows from the top; PageDown/PageUp advance it by
// Viewport rows.
type ScrollableListArgs struct {
	Offset   *int
	Viewport int
}

type scrollableListView struct {
	too.BaseView
	offset   *int
	viewport int
	rows     int
}

func newScrollableListView(args ScrollableListArgs) too.ViewFactory[ScrollableListArgs, struct{}] {
	return &scrollableListView{offset: args.Offset, viewport: args.Viewport}
}

func (v *scrollableListView) Update(args ScrollableListArgs) struct{} {
	v.offset = args.Offset
	v.viewport = args.Viewport
	return struct{}{}
}

func (v *scrollableListView) Interests() too.Interest {
	return too.InterestMouse | too.InterestFocusInput
}
func (v *scrollableListView) Interactive() bool { return true }

func (v *scrollableListView) clamp() {
	max := v.rows - v.viewport
	if max < 0 {
		max = 0
	}
	if *v.offset < 0 {
		*v.offset = 0
	}
	if *v.offset > max {
		*v.offset = max
	}
}

// Event scrolls by row, grounded on scrollable.rs's key/scroll-wheel
// handling, simplified to a single integer row offset rather than a pixel
// Vec2 since every item here has the same height.
func (v *scrollableListView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	delta := 0
	switch ev.Kind {
	case too.EventKeyInput:
		switch ev.Key.Kind {
		case too.KeyUp:
			delta = -1
		case too.KeyDown:
			delta = 1
		case too.KeyPageUp:
			delta = -v.viewport
		case too.KeyPageDown:
			delta = v.viewport
		case too.KeyHome:
			*v.offset = 0
			return too.Sink
		case too.KeyEnd:
			*v.offset = v.rows
			v.clamp()
			return too.Sink
		default:
			return too.Bubble
		}
	case too.EventMouseScroll:
		delta = -int(ev.ScrollDelta.Y)
	default:
		return too.Bubble
	}
	*v.offset += delta
	v.clamp()
	return too.Sink
}

// Layout gives every child the full cross extent with an infinite main
// extent, positions child i at row i-offset, clips to the viewport, and
// counts one row per child — grounded on scrollable.rs's layout, simplified from a
// pixel-granularity Vec2 offset to whole-row scrolling since every child
// in a ScrollableList is a single row tall.
func (v *scrollableListView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	ctx.EnableClipping()
	children := ctx.Children()
	v.rows = len(children)
	v.clamp()

	childSpace := too.Space{Min: too.Size{}, Max: too.Size{Width: space.Max.Width, Height: too.FILL}}
	for i, child := range children {
		ctx.Compute(child, childSpace)
		ctx.SetPosition(child, too.Vec2{Y: float32(i - *v.offset)})
	}
	return space.Fit(space.Max)
}

func (v *scrollableListView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
	if v.rows <= v.viewport || v.viewport <= 0 {
		return
	}
	h := ctx.Rect.Height()
	track := float32(h-1) * float32(*v.offset) / float32(v.rows-v.viewport)
	knob := too.NewPixelCell('┃', too.Style{Fg: too.SetColor(ctx.Palette.Contrast), Bg: too.Reuse})
	ctx.Set(too.Pos2{X: ctx.Rect.Width() - 1, Y: int(track)}, knob)
}

// BeginScrollableList opens a vertically scrolling container: every
// child occupies one row, and Offset tracks how many rows have scrolled
// past the top, matching the row-granularity a fixed-height list like a
// label catalog needs.
func BeginScrollableList(ui *too.Ui, args ScrollableListArgs) too.ViewId {
	id, _ := begin[ScrollableListArgs, struct{}](ui, (*scrollableListView)(nil), newScrollableListView, args)
	return id
}
