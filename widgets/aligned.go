package widgets

import "github.com/too-tui/too"

// Align2 is a two-axis fractional anchor (0.0 = start/min, 1.0 = end/max,
// 0.5 = center), ported from original_source/src/view/views/aligned.rs's
// Align2 struct.
type Align2 struct{ X, Y float32 }

var (
	AlignTopLeft      = Align2{0, 0}
	AlignTopCenter    = Align2{0.5, 0}
	AlignTopRight     = Align2{1, 0}
	AlignCenterLeft   = Align2{0, 0.5}
	AlignCenter2      = Align2{0.5, 0.5}
	AlignCenterRight  = Align2{1, 0.5}
	AlignBottomLeft   = Align2{0, 1}
	AlignBottomCenter = Align2{0.5, 1}
	AlignBottomRight  = Align2{1, 1}
)

type alignedView struct {
	too.BaseView
	align Align2
}

func newAlignedView(align Align2) too.ViewFactory[Align2, struct{}] {
	return &alignedView{align: align}
}

func (v *alignedView) Update(align Align2) struct{} { v.align = align; return struct{}{} }

// Layout positions every child at the fractional anchor within the space
// available, matching aligned.rs's `size * align - child * align` formula
// for each axis independently.
func (v *alignedView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	sz := space.Max.Finite(space.Max)

	for _, child := range ctx.Children() {
		got := ctx.Compute(child, space)
		if got.Width > sz.Width {
			sz.Width = got.Width
		}
		if got.Height > sz.Height {
			sz.Height = got.Height
		}

		pos := too.Vec2{
			X: sz.Width*v.align.X - got.Width*v.align.X,
			Y: sz.Height*v.align.Y - got.Height*v.align.Y,
		}
		ctx.SetPosition(child, pos)
	}
	return space.Fit(sz)
}

func (v *alignedView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Align positions a single child view at a fractional anchor within the
// space its parent grants it.
func Align(ui *too.Ui, align Align2) (too.ViewId, struct{}) {
	return begin[Align2, struct{}](ui, (*alignedView)(nil), newAlignedView, align)
}

// Center is Align(ui, AlignCenter2) — the common case, matching the
// end-to-end scenario `center(label("hello"))`.
func Center(ui *too.Ui) (too.ViewId, struct{}) {
	return Align(ui, AlignCenter2)
}
