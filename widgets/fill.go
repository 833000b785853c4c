package widgets

import "github.com/too-tui/too"

// fillArgs configures a Fill leaf, grounded on
// original_source/src/view/views/fill.rs.
type fillArgs struct {
	bg   too.Rgba
	size too.Size
}

type fillView struct {
	too.BaseView
	args fillArgs
}

func newFillView(args fillArgs) too.ViewFactory[fillArgs, struct{}] { return &fillView{args: args} }

func (v *fillView) Update(args fillArgs) struct{} { v.args = args; return struct{}{} }

func (v *fillView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(v.args.size)
}

func (v *fillView) Draw(ctx *too.RenderCtx) { ctx.FillBg(v.args.bg) }

// Fill paints bg over a fixed-size block.
func Fill(ui *too.Ui, bg too.Rgba, size too.Size) {
	leaf[fillArgs, struct{}](ui, (*fillView)(nil), newFillView, fillArgs{bg: bg, size: size})
}

// FillSpace is Fill(ui, bg, FILL) — the common "paint whatever space I'm
// given" case.
func FillSpace(ui *too.Ui, bg too.Rgba) {
	Fill(ui, bg, too.Size{Width: too.FILL, Height: too.FILL})
}
