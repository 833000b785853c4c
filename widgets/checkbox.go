package widgets

import "github.com/too-tui/too"

type checkboxArgs struct {
	value *bool
	label string
}

type checkboxView struct {
	too.BaseView
	value   bool
	changed bool
	label   string
	hovered bool
}

func newCheckboxView(args checkboxArgs) too.ViewFactory[checkboxArgs, bool] {
	return &checkboxView{value: *args.value, label: args.label}
}

// Update mirrors checkbox.rs's two-way binding via the bound pointer: a
// click this frame writes back through the pointer, otherwise an
// externally-changed pointer value is adopted.
func (v *checkboxView) Update(args checkboxArgs) bool {
	v.label = args.label
	if v.changed {
		v.changed = false
		*args.value = v.value
	} else if v.value != *args.value {
		v.value = *args.value
	}
	return v.value
}

func (v *checkboxView) Interests() too.Interest { return too.InterestMouse }
func (v *checkboxView) Interactive() bool       { return true }

func (v *checkboxView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	switch ev.Kind {
	case too.EventMouseClicked:
		if !ev.Inside {
			return too.Bubble
		}
		v.value = !v.value
		v.changed = true
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

func (v *checkboxView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	t := textSize(v.label)
	return space.Fit(too.Size{Width: 4 + t.Width, Height: 1})
}

func (v *checkboxView) Draw(ctx *too.RenderCtx) {
	box := "☐"
	if v.value {
		box = "🗹"
	}
	fg := ctx.Palette.Foreground
	if v.hovered {
		fg = ctx.Palette.Contrast
	}
	style := too.Style{Fg: too.SetColor(fg), Bg: too.Reuse}
	ctx.Text(too.Pos2{}, box, style)
	ctx.Text(too.Pos2{X: 2}, v.label, style)
}

// Checkbox draws "☐ label" / "🗹 label" bound to value, flipping it on
// click, grounded on original_source/src/views/checkbox.rs.
func Checkbox(ui *too.Ui, value *bool, label string) bool {
	return leaf[checkboxArgs, bool](ui, (*checkboxView)(nil), newCheckboxView, checkboxArgs{value: value, label: label})
}
