package widgets

import "github.com/too-tui/too"

// expandSpaceView is grounded on original_source/src/view/views/expander.rs's
// Expander: a tight-flex(1) leaf that claims whatever main-axis budget its
// parent list hands it and draws nothing.
type expandSpaceView struct{ too.BaseView }

func newExpandSpaceView(struct{}) too.ViewFactory[struct{}, struct{}] { return &expandSpaceView{} }

func (v *expandSpaceView) Update(struct{}) struct{} { return struct{}{} }

func (expandSpaceView) Flex() too.Flex { return too.Tight(1) }

func (v *expandSpaceView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(too.Size{})
}

func (v *expandSpaceView) Draw(ctx *too.RenderCtx) {}

// ExpandSpace fills the remaining main-axis space of an enclosing List,
// the idiom used to push trailing siblings to the far edge.
func ExpandSpace(ui *too.Ui) {
	leaf[struct{}, struct{}](ui, (*expandSpaceView)(nil), newExpandSpaceView, struct{}{})
}

// separatorView is Expander.rs's sibling Separator: a loose-flex(1) rule
// drawn across the cross axis.
type separatorView struct {
	too.BaseView
	axis too.Axis
}

func newSeparatorView(axis too.Axis) too.ViewFactory[too.Axis, struct{}] {
	return &separatorView{axis: axis}
}

func (v *separatorView) Update(axis too.Axis) struct{} { v.axis = axis; return struct{}{} }

func (separatorView) Flex() too.Flex { return too.Loose(1) }

func (v *separatorView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	if v.axis == too.Horizontal {
		return space.Fit(too.Size{Width: 1, Height: space.Max.Height})
	}
	return space.Fit(too.Size{Width: space.Max.Width, Height: 1})
}

func (v *separatorView) Draw(ctx *too.RenderCtx) {
	if v.axis == too.Horizontal {
		ctx.VerticalLine(0, 0, ctx.Rect.Height(), '│', too.EmptyStyle)
		return
	}
	ctx.HorizontalLine(0, 0, ctx.Rect.Width(), '─', too.EmptyStyle)
}

// Separator draws a rule perpendicular to axis: one cell thick along axis
// and spanning the full space offered across it, with Loose(1) flex.
func Separator(ui *too.Ui, axis too.Axis) {
	leaf[too.Axis, struct{}](ui, (*separatorView)(nil), newSeparatorView, axis)
}
