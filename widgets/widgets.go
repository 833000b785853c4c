// Package widgets is the concrete widget catalog clients build screens
// from: Label, Button, ToggleSwitch, Checkbox, RadioGroup, Slider,
// List/Wrap containers, layout wrappers (Center/Align/Margin/Flexible/
// Fill/Border/Constrain/Offset/Background), ExpandSpace, MouseArea,
// ScrollableList, TextInput and Selected. Every widget is an ordinary
// too.ViewFactory; this package owns no state the core doesn't already
// expose.
package widgets

import "github.com/too-tui/too"

// leaf runs begin_view/end_view back to back for a widget with no
// children, mirroring the teacher's single-call intrinsic constructors
// (label(), spacer()) rather than exposing the raw Begin/End pair.
func leaf[A any, R any](ui *too.Ui, zero too.ViewFactory[A, R], create too.CreateFunc[A, too.ViewFactory[A, R]], args A) R {
	id, resp := too.BeginView(ui, zero, create, args)
	ui.EndView(id)
	return resp
}

// begin opens a container widget; the caller builds its children and
// must close it with ui.EndView(id).
func begin[A any, R any](ui *too.Ui, zero too.ViewFactory[A, R], create too.CreateFunc[A, too.ViewFactory[A, R]], args A) (too.ViewId, R) {
	return too.BeginView(ui, zero, create, args)
}
