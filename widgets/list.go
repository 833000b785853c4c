package widgets

import "github.com/too-tui/too"

// ListArgs configures a List container, mirroring
// original_source/src/view/views/list.rs's builder fields.
type ListArgs struct {
	Axis    too.Axis
	Gap     float32
	Justify too.Justify
	Align   too.CrossAlign
	Flex    too.Flex
}

type listView struct {
	too.BaseView
	args ListArgs
}

func newListView(args ListArgs) too.ViewFactory[ListArgs, struct{}] { return &listView{args: args} }

func (v *listView) Update(args ListArgs) struct{} { v.args = args; return struct{}{} }

func (v *listView) Flex() too.Flex        { return v.args.Flex }
func (v *listView) PrimaryAxis() too.Axis { return v.args.Axis }

func (v *listView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return too.ListLayout(ctx, ctx.Tree(), ctx.Self(), v.args.Axis, space, v.args.Gap, v.args.Justify, v.args.Align)
}

func (v *listView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// BeginList opens a List container laid out along axis with the reference
// three-phase flex algorithm; callers build children then call
// ui.EndView(id).
func BeginList(ui *too.Ui, args ListArgs) too.ViewId {
	id, _ := begin[ListArgs, struct{}](ui, (*listView)(nil), newListView, args)
	return id
}

// Horizontal and Vertical are the two common List shapes, matching the
// teacher's ui.horizontal/ui.vertical convenience constructors.
func Horizontal(ui *too.Ui, gap float32) too.ViewId {
	return BeginList(ui, ListArgs{Axis: too.Horizontal, Gap: gap, Align: too.AlignStart})
}

func Vertical(ui *too.Ui, gap float32) too.ViewId {
	return BeginList(ui, ListArgs{Axis: too.Vertical, Gap: gap, Align: too.AlignStart})
}

// WrapArgs configures a Wrap container, mirroring
// original_source/src/view/views/wrap.rs's builder fields.
type WrapArgs struct {
	Axis       too.Axis
	MainGap    float32
	CrossGap   float32
	RunJustify too.Justify
	ItemAlign  too.CrossAlign
}

type wrapView struct {
	too.BaseView
	args WrapArgs
}

func newWrapView(args WrapArgs) too.ViewFactory[WrapArgs, struct{}] { return &wrapView{args: args} }

func (v *wrapView) Update(args WrapArgs) struct{} { v.args = args; return struct{}{} }

func (v *wrapView) PrimaryAxis() too.Axis { return v.args.Axis }

func (v *wrapView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return too.WrapLayout(ctx, ctx.Tree(), ctx.Self(), v.args.Axis, space, v.args.MainGap, v.args.CrossGap, v.args.RunJustify, v.args.ItemAlign)
}

func (v *wrapView) Draw(ctx *too.RenderCtx) {
	for _, child := range ctx.Children() {
		ctx.Draw(child)
	}
}

// BeginWrap opens a Wrap container performing greedy line-breaking along
// axis; callers build children then call ui.EndView(id).
func BeginWrap(ui *too.Ui, args WrapArgs) too.ViewId {
	id, _ := begin[WrapArgs, struct{}](ui, (*wrapView)(nil), newWrapView, args)
	return id
}
