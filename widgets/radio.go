package widgets

import "github.com/too-tui/too"

type radioArgs struct {
	selected *int
	index    int
	label    string
}

type radioItemView struct {
	too.BaseView
	args    radioArgs
	clicked bool
	hovered bool
}

func newRadioItemView(args radioArgs) too.ViewFactory[radioArgs, struct{}] {
	return &radioItemView{args: args}
}

func (v *radioItemView) Update(args radioArgs) struct{} {
	v.args = args
	if v.clicked {
		v.clicked = false
		*args.selected = args.index
	}
	return struct{}{}
}

func (v *radioItemView) Interests() too.Interest { return too.InterestMouse }
func (v *radioItemView) Interactive() bool       { return true }

func (v *radioItemView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
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

func (v *radioItemView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	t := textSize(v.args.label)
	return space.Fit(too.Size{Width: 4 + t.Width, Height: 1})
}

func (v *radioItemView) Draw(ctx *too.RenderCtx) {
	mark := "( )"
	if *v.args.selected == v.args.index {
		mark = "(●)"
	}
	fg := ctx.Palette.Foreground
	if v.hovered {
		fg = ctx.Palette.Contrast
	}
	style := too.Style{Fg: too.SetColor(fg), Bg: too.Reuse}
	ctx.Text(too.Pos2{}, mark, style)
	ctx.Text(too.Pos2{X: 4}, v.args.label, style)
}

// RadioGroup lays out one clickable row per option, vertically, each
// showing whether it equals *selected; clicking a row writes its index
// through the pointer. Grounded on original_source/src/views/radio.rs,
// flattened from the Rust crate's generic `Radio<V>` down to an int-index
// selection, which is all the end-to-end scenarios exercise.
func RadioGroup(ui *too.Ui, selected *int, options []string) {
	id := BeginList(ui, ListArgs{Axis: too.Vertical, Align: too.AlignStart})
	for i, label := range options {
		leaf[radioArgs, struct{}](ui, (*radioItemView)(nil), newRadioItemView, radioArgs{selected: selected, index: i, label: label})
	}
	ui.EndView(id)
}
