package widgets

import "github.com/too-tui/too"

// constrainView clamps the space passed to its child to a fixed sub-range
// before recursing with the default max-and-recurse behavior, grounded on
// original_source/src/views/constrain.rs.
type constrainView struct {
	too.BaseView
	space too.Space
}

func newConstrainView(space too.Space) too.ViewFactory[too.Space, struct{}] {
	return &constrainView{space: space}
}

func (v *constrainView) Update(space too.Space) struct{} { v.space = space; return struct{}{} }

func (v *constrainView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	constrained := too.Space{Min: v.space.Constrain(space.Min), Max: v.space.Constrain(space.Max)}
	size := too.Size{}
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, constrained)
		if got.Width > size.Width {
			size.Width = got.Width
		}
		if got.Height > size.Height {
			size.Height = got.Height
		}
	}
	return constrained.Fit(size)
}

func (v *constrainView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Constrain opens a container that narrows the space offered to its child
// to an exact size.
func Constrain(ui *too.Ui, size too.Size) too.ViewId {
	id, _ := begin[too.Space, struct{}](ui, (*constrainView)(nil), newConstrainView, too.ExactSpace(size))
	return id
}

// ConstrainMax opens a container that caps its child's size without
// forcing a minimum.
func ConstrainMax(ui *too.Ui, size too.Size) too.ViewId {
	id, _ := begin[too.Space, struct{}](ui, (*constrainView)(nil), newConstrainView, too.LooseSpace(size))
	return id
}

// offsetView positions its child at a fixed displacement from its own
// origin rather than wherever the parent container would have placed it,
// grounded on original_source/src/views/offset.rs.
type offsetView struct {
	too.BaseView
	pos too.Vec2
}

func newOffsetView(pos too.Vec2) too.ViewFactory[too.Vec2, struct{}] {
	return &offsetView{pos: pos}
}

func (v *offsetView) Update(pos too.Vec2) struct{} { v.pos = pos; return struct{}{} }

func (v *offsetView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	size := too.Size{}
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, space)
		ctx.SetPosition(child, v.pos)
		if got.Width > size.Width {
			size.Width = got.Width
		}
		if got.Height > size.Height {
			size.Height = got.Height
		}
	}
	return space.Fit(size)
}

func (v *offsetView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Offset opens a container that displaces its child by (x, y) cells.
func Offset(ui *too.Ui, x, y float32) too.ViewId {
	id, _ := begin[too.Vec2, struct{}](ui, (*offsetView)(nil), newOffsetView, too.Vec2{X: x, Y: y})
	return id
}

// backgroundView fills its rect with bg before recursing into its child,
// grounded on original_source/src/views/background.rs.
type backgroundView struct {
	too.BaseView
	bg too.Rgba
}

func newBackgroundView(bg too.Rgba) too.ViewFactory[too.Rgba, struct{}] { return &backgroundView{bg: bg} }

func (v *backgroundView) Update(bg too.Rgba) struct{} { v.bg = bg; return struct{}{} }

func (v *backgroundView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	size := too.Size{}
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, space)
		ctx.SetPosition(child, too.Vec2{})
		if got.Width > size.Width {
			size.Width = got.Width
		}
		if got.Height > size.Height {
			size.Height = got.Height
		}
	}
	return space.Fit(size)
}

func (v *backgroundView) Draw(ctx *too.RenderCtx) {
	ctx.FillBg(v.bg)
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Background opens a container that paints bg behind its child.
func Background(ui *too.Ui, bg too.Rgba) too.ViewId {
	id, _ := begin[too.Rgba, struct{}](ui, (*backgroundView)(nil), newBackgroundView, bg)
	return id
}

type selectedArgs struct {
	value *bool
	label string
}

// selectedView is a self-contained row: clickable, hover-lightened, filled
// per its bound selected flag — grounded on original_source/src/views/
// selected.rs, flattened from its deferred-class styling (which needed
// Ui::palette() at build time, unavailable outside Draw in this port) down
// to ctx.Palette's fixed roles, resolved at draw time like every other
// stateful widget in this catalog.
type selectedView struct {
	too.BaseView
	args    selectedArgs
	clicked bool
	hovered bool
}

func newSelectedView(args selectedArgs) too.ViewFactory[selectedArgs, bool] {
	return &selectedView{args: args}
}

func (v *selectedView) Update(args selectedArgs) bool {
	v.args = args
	if v.clicked {
		v.clicked = false
		*args.value = !*args.value
	}
	return *args.value
}

func (v *selectedView) Interests() too.Interest { return too.InterestMouse }
func (v *selectedView) Interactive() bool       { return true }

func (v *selectedView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	switch ev.Kind {
	case too.EventMouseClicked:
		if !ev.Inside {
			return too.Bubble
		}
		v.clicked = true
	case too.EventMouseEntered:
		v.hovered = true
		return too.Bubble
	case too.EventMouseLeave:
		v.hovered = false
		return too.Bubble
	default:
		return too.Bubble
	}
	return too.Sink
}

func (v *selectedView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(textSize(v.args.label))
}

func (v *selectedView) Draw(ctx *too.RenderCtx) {
	bg := ctx.Palette.Outline
	fg := ctx.Palette.Foreground
	if *v.args.value {
		bg = ctx.Palette.Primary
	}
	if v.hovered {
		bg = ctx.Palette.Secondary
		fg = ctx.Palette.Surface
	}
	ctx.FillBg(bg)
	ctx.Text(too.Pos2{}, v.args.label, too.Style{Fg: too.SetColor(fg), Bg: too.Reuse})
}

// Selected draws label as a clickable, hover-highlighted row that toggles
// the bound selected flag, returning its resulting value.
func Selected(ui *too.Ui, value *bool, label string) bool {
	return leaf[selectedArgs, bool](ui, (*selectedView)(nil), newSelectedView, selectedArgs{value: value, label: label})
}
