package widgets

import "github.com/too-tui/too"

// ToggleResponse reports whether this frame's interaction flipped the
// bound value, mirroring toggle_switch.rs's ToggleResponse.
type ToggleResponse struct{ Changed bool }

type toggleArgs struct{ value *bool }

type toggleSwitchView struct {
	too.BaseView
	value   bool
	changed bool
}

func newToggleSwitchView(args toggleArgs) too.ViewFactory[toggleArgs, ToggleResponse] {
	return &toggleSwitchView{value: *args.value}
}

// Update implements toggle_switch.rs's two-way binding: a click this
// frame writes v.value back through the pointer; otherwise the pointer's
// value (which the caller may have changed directly) is adopted.
func (v *toggleSwitchView) Update(args toggleArgs) ToggleResponse {
	changed := v.changed
	if v.changed {
		v.changed = false
		*args.value = v.value
	} else if v.value != *args.value {
		v.value = *args.value
	}
	return ToggleResponse{Changed: changed}
}

func (v *toggleSwitchView) Interests() too.Interest { return too.InterestMouse }
func (v *toggleSwitchView) Interactive() bool       { return true }

func (v *toggleSwitchView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	switch ev.Kind {
	case too.EventMouseClicked:
		if !ev.Inside {
			return too.Bubble
		}
		v.value = !v.value
		v.changed = true
	case too.EventMouseDrag:
		if !ev.Inside {
			return too.Bubble
		}
		if (v.value && ev.DragDelta.X < 0) || (!v.value && ev.DragDelta.X > 0) {
			v.value = !v.value
			v.changed = true
		}
	default:
		return too.Bubble
	}
	return too.Sink
}

func (v *toggleSwitchView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(too.Size{Width: 4, Height: 1})
}

func (v *toggleSwitchView) Draw(ctx *too.RenderCtx) {
	bg := ctx.Palette.Secondary
	if v.value {
		bg = ctx.Palette.Primary
	}
	ctx.FillWith(too.NewPixelCell('▬', too.Style{Fg: too.SetColor(ctx.Palette.Surface), Bg: too.Reuse}))

	w := ctx.Rect.Width() - 1
	x := 0
	if v.value {
		x = w
	}
	ctx.Set(too.Pos2{X: x, Y: 0}, too.NewPixelCell('●', too.Style{Fg: too.SetColor(bg), Bg: too.Reuse}))
}

// ToggleSwitch draws a 4x1 switch bound to value; a click or an
// appropriately-directed drag flips it. The returned response's Changed
// field reports whether this frame's interaction flipped it, matching
// the end-to-end scenario `toggle_switch(&mut on)`.
func ToggleSwitch(ui *too.Ui, value *bool) ToggleResponse {
	return leaf[toggleArgs, ToggleResponse](ui, (*toggleSwitchView)(nil), newToggleSwitchView, toggleArgs{value: value})
}
