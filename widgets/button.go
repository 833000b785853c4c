package widgets

import "github.com/too-tui/too"

// ButtonState is the transient interaction state a Button reports back to
// its caller, grounded on original_source/src/view/views/button.rs's
// ButtonState enum.
type ButtonState int

const (
	ButtonNone ButtonState = iota
	ButtonHovered
	ButtonHeld
	ButtonClicked
)

// ButtonResponse is returned by Button each frame.
type ButtonResponse struct{ state ButtonState }

func (r ButtonResponse) Clicked() bool { return r.state == ButtonClicked }
func (r ButtonResponse) Hovered() bool { return r.state == ButtonHovered }
func (r ButtonResponse) Held() bool    { return r.state == ButtonHeld }

type buttonArgs struct {
	label    string
	disabled bool
	margin   too.Margin
}

type buttonView struct {
	too.BaseView
	args  buttonArgs
	state ButtonState
}

func newButtonView(args buttonArgs) too.ViewFactory[buttonArgs, ButtonResponse] {
	return &buttonView{args: args}
}

// Update reports this frame's state then, per button.rs's update,
// relaxes a just-Clicked state back to Hovered so the next frame starts
// from steady state rather than re-firing the click.
func (v *buttonView) Update(args buttonArgs) ButtonResponse {
	v.args = args
	state := v.state
	if v.state == ButtonClicked {
		v.state = ButtonHovered
	}
	return ButtonResponse{state: state}
}

func (v *buttonView) Interests() too.Interest  { return too.InterestMouse }
func (v *buttonView) Interactive() bool        { return true }

func (v *buttonView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	if v.args.disabled {
		return too.Bubble
	}
	switch ev.Kind {
	case too.EventMouseClicked:
		if !ev.Inside {
			return too.Bubble
		}
		v.state = ButtonClicked
	case too.EventMouseHeld:
		if !ev.Inside {
			return too.Bubble
		}
		v.state = ButtonHeld
	case too.EventMouseEntered:
		v.state = ButtonHovered
	case too.EventMouseLeave:
		v.state = ButtonNone
	default:
		return too.Bubble
	}
	return too.Sink
}

func (v *buttonView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	sumW := float32(v.args.margin.Left + v.args.margin.Right)
	sumH := float32(v.args.margin.Top + v.args.margin.Bottom)
	t := textSize(v.args.label)
	return space.Fit(too.Size{Width: t.Width + sumW, Height: t.Height + sumH})
}

func (v *buttonView) Draw(ctx *too.RenderCtx) {
	fg := ctx.Palette.Foreground
	if v.args.disabled {
		fg = ctx.Palette.Outline
	}

	bg := ctx.Palette.Surface
	if !v.args.disabled {
		switch v.state {
		case ButtonHovered:
			bg = ctx.Palette.Accent
		case ButtonHeld:
			bg = ctx.Palette.Primary
		case ButtonClicked:
			bg = ctx.Palette.Success
		}
	}
	ctx.FillBg(bg)

	x := v.args.margin.Left
	y := v.args.margin.Top
	ctx.Text(too.Pos2{X: x, Y: y}, v.args.label, too.Style{Fg: too.SetColor(fg), Bg: too.Reuse})
}

// Button draws a clickable label; its response reports the interaction
// state observed this frame (Hovered/Held/Clicked/None).
func Button(ui *too.Ui, label string) ButtonResponse {
	return leaf[buttonArgs, ButtonResponse](ui, (*buttonView)(nil), newButtonView, buttonArgs{label: label})
}

// ButtonDisabled is Button with interaction suppressed.
func ButtonDisabled(ui *too.Ui, label string, disabled bool) ButtonResponse {
	return leaf[buttonArgs, ButtonResponse](ui, (*buttonView)(nil), newButtonView, buttonArgs{label: label, disabled: disabled})
}
