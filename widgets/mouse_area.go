package widgets

import "github.com/too-tui/too"

// Dragging reports an in-progress drag, mirroring mouse_area.rs's Dragging.
type Dragging struct {
	Start, Current too.Pos2
}

// MouseAreaResponse is returned by MouseArea each frame; fields latch the
// interactions observed since the previous frame, grounded on
// mouse_area.rs's MouseAreaResponse.
type MouseAreaResponse struct {
	Pos      too.Pos2
	Clicked  bool
	Hovered  bool
	Held     bool
	Entered  bool
	Leave    bool
	Dragged  *Dragging
	Scrolled *too.Vec2
}

type mouseAreaView struct {
	too.BaseView
	hovering, held bool
	clicked        bool
	pos            too.Pos2
	entered, leave bool
	scrolled       *too.Vec2
	dragged        *Dragging
}

func newMouseAreaView(struct{}) too.ViewFactory[struct{}, MouseAreaResponse] {
	return &mouseAreaView{}
}

// Update drains the latched per-frame flags into a response and resets
// them, mirroring mouse_area.rs's std::mem::take usage.
func (v *mouseAreaView) Update(struct{}) MouseAreaResponse {
	resp := MouseAreaResponse{
		Pos:      v.pos,
		Clicked:  v.clicked,
		Hovered:  v.hovering,
		Held:     v.held,
		Dragged:  v.dragged,
		Scrolled: v.scrolled,
		Entered:  v.entered,
		Leave:    v.leave,
	}
	v.clicked = false
	v.scrolled = nil
	v.entered = false
	v.leave = false
	return resp
}

func (v *mouseAreaView) Interests() too.Interest { return too.InterestMouse }
func (v *mouseAreaView) Interactive() bool       { return true }

func (v *mouseAreaView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	switch ev.Kind {
	case too.EventMouseMove:
		v.hovering, v.held = false, false
		v.pos = ev.Pos
		v.dragged = nil
	case too.EventMouseDrag:
		v.held = true
		if !ev.Inside {
			v.dragged = nil
			return too.Bubble
		}
		if v.dragged == nil {
			v.dragged = &Dragging{Start: ev.DragStart}
		}
		v.dragged.Current = ev.DragCurrent
	case too.EventMouseClicked:
		if ev.Inside {
			v.clicked = true
			v.held = true
		}
	case too.EventMouseScroll:
		d := ev.ScrollDelta
		v.scrolled = &d
	case too.EventMouseEntered:
		v.entered = true
		v.hovering = true
	case too.EventMouseLeave:
		v.leave = true
		v.hovering, v.held = false, false
	default:
		return too.Bubble
	}
	return too.Sink
}

func (v *mouseAreaView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
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

func (v *mouseAreaView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// BeginMouseArea wraps a single child, reporting its hover/click/drag/
// scroll interactions without drawing anything of its own, grounded on
// original_source/src/view/views/mouse_area.rs.
func BeginMouseArea(ui *too.Ui) (too.ViewId, MouseAreaResponse) {
	return begin[struct{}, MouseAreaResponse](ui, (*mouseAreaView)(nil), newMouseAreaView, struct{}{})
}
