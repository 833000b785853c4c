package widgets

import "github.com/too-tui/too"

// flexibleView declares an explicit Flex for its single child and
// otherwise behaves like the default "recurse and return max" container,
// grounded on original_source/src/view/views/flex.rs (a flex() override
// with no bespoke layout/draw of its own).
type flexibleView struct {
	too.BaseView
	flex too.Flex
}

func newFlexibleView(f too.Flex) too.ViewFactory[too.Flex, struct{}] { return &flexibleView{flex: f} }

func (v *flexibleView) Update(f too.Flex) struct{} { v.flex = f; return struct{}{} }

func (v *flexibleView) Flex() too.Flex { return v.flex }

func (v *flexibleView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	var out too.Size
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, space)
		if got.Width > out.Width {
			out.Width = got.Width
		}
		if got.Height > out.Height {
			out.Height = got.Height
		}
	}
	return space.Fit(out)
}

func (v *flexibleView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// Flexible wraps a single child with an explicit fill policy, letting any
// view request flex inside an enclosing List without each widget
// exposing its own Flex builder method.
func Flexible(ui *too.Ui, f too.Flex) too.ViewId {
	id, _ := begin[too.Flex, struct{}](ui, (*flexibleView)(nil), newFlexibleView, f)
	return id
}
