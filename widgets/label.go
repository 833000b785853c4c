package widgets

import "github.com/too-tui/too"

// LabelStyle names a label text color; grounded on
// original_source/src/view/views/label.rs's LabelStyle/LabelClass pair.
// The label widgets themselves take a bare too.Class rather than a
// LabelStyle, since too's Style already carries attributes.
type LabelStyle struct {
	Foreground too.Rgba
}

// DefaultLabelClass resolves to the palette's plain foreground.
func DefaultLabelClass(p too.Palette, _ too.WidgetState) too.Style {
	return too.Style{Fg: too.SetColor(p.Foreground), Bg: too.Reuse}
}

// InfoLabelClass, WarningLabelClass and DangerLabelClass mirror the
// teacher palette's semantic roles, the label.rs LabelStyle::{info,warning,danger} presets.
func InfoLabelClass(p too.Palette, _ too.WidgetState) too.Style {
	return too.Style{Fg: too.SetColor(p.Info), Bg: too.Reuse}
}

func WarningLabelClass(p too.Palette, _ too.WidgetState) too.Style {
	return too.Style{Fg: too.SetColor(p.Warning), Bg: too.Reuse}
}

func DangerLabelClass(p too.Palette, _ too.WidgetState) too.Style {
	return too.Style{Fg: too.SetColor(p.Danger), Bg: too.Reuse}
}

type labelArgs struct {
	text  string
	class too.Class
	attr  too.Attr
}

type labelView struct {
	too.BaseView
	args labelArgs
}

func newLabelView(args labelArgs) too.ViewFactory[labelArgs, struct{}] {
	return &labelView{args: args}
}

func (v *labelView) Update(args labelArgs) struct{} {
	v.args = args
	return struct{}{}
}

func (v *labelView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(textSize(v.args.text))
}

func (v *labelView) Draw(ctx *too.RenderCtx) {
	style := v.args.class(ctx.Palette, too.WidgetState{})
	style.Attr |= v.args.attr
	ctx.Text(too.Pos2{}, v.args.text, style)
}

// Label draws a single line of text at its intrinsic width, styled by the
// palette's default foreground.
func Label(ui *too.Ui, text string) {
	LabelClass(ui, text, DefaultLabelClass)
}

// LabelClass draws text styled by a caller-supplied class, the
// label.rs `.class(...)` builder collapsed into an explicit parameter
// since too has no method-chaining builder story.
func LabelClass(ui *too.Ui, text string, class too.Class) {
	leaf[labelArgs, struct{}](ui, (*labelView)(nil), newLabelView, labelArgs{text: text, class: class})
}

// LabelAttr draws text with additional attributes (bold, italic, ...)
// layered on top of the resolved class style.
func LabelAttr(ui *too.Ui, text string, attr too.Attr) {
	leaf[labelArgs, struct{}](ui, (*labelView)(nil), newLabelView, labelArgs{text: text, class: DefaultLabelClass, attr: attr})
}
