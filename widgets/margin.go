package widgets

import "github.com/too-tui/too"

type marginView struct {
	too.BaseView
	margin too.Margin
}

func newMarginView(m too.Margin) too.ViewFactory[too.Margin, struct{}] { return &marginView{margin: m} }

func (v *marginView) Update(m too.Margin) struct{} { v.margin = m; return struct{}{} }

// Layout shrinks space by the margin sum and offsets every child by its
// left/top inset, matching original_source/src/view/views/margin.rs.
func (v *marginView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	sumW := float32(v.margin.Left + v.margin.Right)
	sumH := float32(v.margin.Top + v.margin.Bottom)
	childSpace := space.Shrink(too.Size{Width: sumW, Height: sumH})
	offset := too.Vec2{X: float32(v.margin.Left), Y: float32(v.margin.Top)}

	var size too.Size
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, childSpace)
		size = too.Size{Width: got.Width + sumW, Height: got.Height + sumH}
		ctx.SetPosition(child, offset)
	}
	return size
}

func (v *marginView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Margin shrinks the space available to its child by a uniform-or-per-side
// inset; callers build exactly one child then call ui.EndView(id).
func Margin(ui *too.Ui, m too.Margin) too.ViewId {
	id, _ := begin[too.Margin, struct{}](ui, (*marginView)(nil), newMarginView, m)
	return id
}

// Pad is Margin with a uniform inset on every side.
func Pad(ui *too.Ui, n int) too.ViewId {
	return Margin(ui, too.UniformMargin(n))
}
