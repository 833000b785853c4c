package widgets

import "github.com/too-tui/too"

// SliderArgs configures a Slider. Range defaults to [0,1] when both Min and
// Max are zero.
type SliderArgs struct {
	Value     *float32
	Min, Max  float32
	Clickable bool
	Axis      too.Axis
}

type sliderView struct {
	too.BaseView
	value     float32
	changed   bool
	min, max  float32
	clickable bool
	axis      too.Axis
	hovered   bool
}

func newSliderView(args SliderArgs) too.ViewFactory[SliderArgs, struct{}] {
	v := &sliderView{value: *args.Value, min: args.Min, max: args.Max, clickable: args.Clickable, axis: args.Axis}
	if v.min == 0 && v.max == 0 {
		v.max = 1
	}
	return v
}

// Update mirrors slider.rs's two-way binding: a drag or click this frame
// writes the resolved value back through the pointer, otherwise an
// externally-changed pointer value is adopted.
func (v *sliderView) Update(args SliderArgs) struct{} {
	v.clickable = args.Clickable
	v.axis = args.Axis
	v.min, v.max = args.Min, args.Max
	if v.min == 0 && v.max == 0 {
		v.max = 1
	}
	if v.changed {
		v.changed = false
		*args.Value = v.value
	} else if v.value != *args.Value {
		v.value = *args.Value
	}
	return struct{}{}
}

func (v *sliderView) Interests() too.Interest { return too.InterestMouse }
func (v *sliderView) Interactive() bool       { return true }

func (v *sliderView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	var pos too.Pos2
	switch ev.Kind {
	case too.EventMouseDrag:
		if !ev.Inside {
			return too.Bubble
		}
		pos = ev.DragCurrent
	case too.EventMouseClicked:
		if !ev.Inside || !v.clickable {
			return too.Bubble
		}
		pos = ev.Pos
	case too.EventMouseEntered:
		v.hovered = true
		return too.Bubble
	case too.EventMouseLeave:
		v.hovered = false
		return too.Bubble
	default:
		return too.Bubble
	}

	rect := ctx.Input.Rect(ev.Target)
	var start, end, at float32
	if v.axis == too.Horizontal {
		start, end, at = float32(rect.Min.X), float32(rect.Max.X-1), float32(pos.X)
	} else {
		start, end, at = float32(rect.Min.Y), float32(rect.Max.Y-1), float32(pos.Y)
	}

	t := float32(0)
	if end != start {
		t = (at - start) / (end - start)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	v.value = v.min + t*(v.max-v.min)
	v.changed = true
	return too.Sink
}

func (v *sliderView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	if v.axis == too.Horizontal {
		return space.Fit(too.Size{Width: 20, Height: 1})
	}
	return space.Fit(too.Size{Width: 1, Height: 10})
}

func (v *sliderView) Draw(ctx *too.RenderCtx) {
	track := '━'
	if v.axis == too.Vertical {
		track = '┃'
	}
	ctx.FillWith(too.NewPixelCell(track, too.Style{Fg: too.SetColor(ctx.Palette.Surface), Bg: too.Reuse}))

	extent := ctx.Rect.Width() - 1
	if v.axis == too.Vertical {
		extent = ctx.Rect.Height() - 1
	}
	span := v.max - v.min
	t := float32(0)
	if span != 0 {
		t = (v.value - v.min) / span
	}
	x := int(t * float32(extent))

	knobColor := ctx.Palette.Primary
	if v.hovered {
		knobColor = ctx.Palette.Secondary
	}
	pos := too.Pos2{X: x}
	if v.axis == too.Vertical {
		pos = too.Pos2{Y: x}
	}
	ctx.Set(pos, too.NewPixelCell('●', too.Style{Fg: too.SetColor(knobColor), Bg: too.Reuse}))
}

// Slider draws a draggable/clickable track bound to value over [min,max],
// grounded on original_source/src/view/views/slider.rs.
func Slider(ui *too.Ui, value *float32, min, max float32) {
	leaf[SliderArgs, struct{}](ui, (*sliderView)(nil), newSliderView, SliderArgs{Value: value, Min: min, Max: max, Clickable: true, Axis: too.Horizontal})
}

// SliderVertical is Slider oriented on the vertical axis.
func SliderVertical(ui *too.Ui, value *float32, min, max float32) {
	leaf[SliderArgs, struct{}](ui, (*sliderView)(nil), newSliderView, SliderArgs{Value: value, Min: min, Max: max, Clickable: true, Axis: too.Vertical})
}
