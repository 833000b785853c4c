package widgets

import "github.com/too-tui/too"

// BorderStyle is one of the named box-drawing sets from
// original_source/src/view/views/border.rs's Border constants.
type BorderStyle struct {
	LeftTop, Top, RightTop, Right, RightBottom, Bottom, LeftBottom, Left rune
}

var (
	BorderThin = BorderStyle{'┌', '─', '┐', '│', '┘', '─', '└', '│'}

	BorderRounded = BorderStyle{'╭', '─', '╮', '│', '╯', '─', '╰', '│'}

	BorderDouble = BorderStyle{'╔', '═', '╗', '║', '╝', '═', '╚', '║'}

	BorderThick = BorderStyle{'┏', '━', '┓', '┃', '┛', '━', '┗', '┃'}
)

// BorderArgs configures a Border container.
type BorderArgs struct {
	Style BorderStyle
	Title string
}

type borderView struct {
	too.BaseView
	args BorderArgs
}

func newBorderView(args BorderArgs) too.ViewFactory[BorderArgs, struct{}] {
	return &borderView{args: args}
}

func (v *borderView) Update(args BorderArgs) struct{} { v.args = args; return struct{}{} }

func (v *borderView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	inset := too.Size{Width: 2, Height: 2}
	childSpace := space.Shrink(inset)
	offset := too.Vec2{X: 1, Y: 1}

	size := inset
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, childSpace)
		size = too.Size{Width: got.Width + inset.Width, Height: got.Height + inset.Height}
		ctx.SetPosition(child, offset)
	}
	if tw := textSize(v.args.Title); tw.Width+inset.Width > size.Width {
		size.Width = tw.Width + inset.Width
	}
	return space.Fit(size)
}

// Draw paints the box-drawing frame and, if set, the title centered on
// the top edge, then recurses into the child — grounded on border.rs's
// draw, simplified to the too.outline palette role rather than a
// focus-dependent color.
func (v *borderView) Draw(ctx *too.RenderCtx) {
	w, h := ctx.Rect.Width()-1, ctx.Rect.Height()-1
	if w < 0 || h < 0 {
		return
	}
	s := v.args.Style
	style := too.Style{Fg: too.SetColor(ctx.Palette.Outline), Bg: too.Reuse}

	ctx.HorizontalLine(0, 1, w, s.Top, style)
	ctx.HorizontalLine(h, 1, w, s.Bottom, style)
	ctx.VerticalLine(0, 1, h, s.Left, style)
	ctx.VerticalLine(w, 1, h, s.Right, style)
	ctx.Set(too.Pos2{X: 0, Y: 0}, too.NewPixelCell(s.LeftTop, style))
	ctx.Set(too.Pos2{X: w, Y: 0}, too.NewPixelCell(s.RightTop, style))
	ctx.Set(too.Pos2{X: 0, Y: h}, too.NewPixelCell(s.LeftBottom, style))
	ctx.Set(too.Pos2{X: w, Y: h}, too.NewPixelCell(s.RightBottom, style))

	if v.args.Title != "" {
		tw := textSize(v.args.Title)
		x := (float32(w) - tw.Width) / 2
		if x < 1 {
			x = 1
		}
		ctx.Text(too.Pos2{X: int(x), Y: 0}, v.args.Title, too.Style{Fg: too.SetColor(ctx.Palette.Foreground), Bg: too.Reuse})
	}

	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// BeginBorder opens a Border container drawing a box-drawing frame (and
// optional centered title) around a single child.
func BeginBorder(ui *too.Ui, args BorderArgs) too.ViewId {
	id, _ := begin[BorderArgs, struct{}](ui, (*borderView)(nil), newBorderView, args)
	return id
}
