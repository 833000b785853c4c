package widgets

import "github.com/too-tui/too"

// TextInputResponse reports whether this frame's key handling changed the
// bound buffer, mirroring text_input.rs's InputResponse.
type TextInputResponse struct{ Changed bool }

// TextInputArgs configures a TextInput. Value is the caller-owned buffer;
// Ghost is shown in its place when Value is empty.
type TextInputArgs struct {
	Value *string
	Ghost string
}

type textInputView struct {
	too.BaseView
	buf     []rune
	cursor  int
	changed bool
	ghost   string
}

func newTextInputView(args TextInputArgs) too.ViewFactory[TextInputArgs, TextInputResponse] {
	buf := []rune(*args.Value)
	return &textInputView{buf: buf, cursor: len(buf), ghost: args.Ghost}
}

// Update mirrors text_input.rs's create/update split via the same
// write-back-if-changed pattern as the other bound widgets: this frame's
// edits flow out through the pointer, otherwise an externally-set value
// replaces the buffer and moves the cursor to its end.
func (v *textInputView) Update(args TextInputArgs) TextInputResponse {
	v.ghost = args.Ghost
	changed := v.changed
	if v.changed {
		v.changed = false
		*args.Value = string(v.buf)
	} else if external := []rune(*args.Value); string(external) != string(v.buf) {
		v.buf = external
		v.cursor = len(v.buf)
	}
	return TextInputResponse{Changed: changed}
}

func (v *textInputView) Interests() too.Interest {
	return too.InterestFocusInput | too.InterestMouse
}
func (v *textInputView) Interactive() bool { return true }

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func prevWordBoundary(buf []rune, pos int) int {
	for pos > 0 && !isWordRune(buf[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(buf[pos-1]) {
		pos--
	}
	return pos
}

func nextWordBoundary(buf []rune, pos int) int {
	for pos < len(buf) && !isWordRune(buf[pos]) {
		pos++
	}
	for pos < len(buf) && isWordRune(buf[pos]) {
		pos++
	}
	return pos
}

// Event implements the single-line subset of text_input.rs's key table:
// printable insert, backspace/delete, ctrl-w word-backspace, ctrl-u
// kill-to-start, word-left/right, home/end, and click-to-place-cursor.
// Selection and drag-to-select are left out; nothing in the catalog's
// end-to-end scenarios exercises a text selection.
func (v *textInputView) Event(ev too.ViewEvent, ctx *too.EventCtx) too.Handled {
	switch ev.Kind {
	case too.EventMouseClicked:
		if !ev.Inside {
			return too.Bubble
		}
		rect := ctx.Input.Rect(ev.Target)
		pos := ev.Pos.X - rect.Min.X
		if pos < 0 {
			pos = 0
		}
		if pos > len(v.buf) {
			pos = len(v.buf)
		}
		v.cursor = pos
		return too.Sink
	case too.EventKeyInput:
	default:
		return too.Bubble
	}

	key, mods := ev.Key, ev.Modifiers
	switch key.Kind {
	case too.KeyChar:
		if mods.Has(too.ModCtrl) {
			if key.Char == 'w' || key.Char == 'W' {
				p := prevWordBoundary(v.buf, v.cursor)
				v.buf = append(v.buf[:p], v.buf[v.cursor:]...)
				v.cursor = p
				v.changed = true
				return too.Sink
			}
			if key.Char == 'u' || key.Char == 'U' {
				v.buf = append(v.buf[:0:0], v.buf[v.cursor:]...)
				v.cursor = 0
				v.changed = true
				return too.Sink
			}
			return too.Bubble
		}
		v.buf = append(v.buf[:v.cursor:v.cursor], append([]rune{key.Char}, v.buf[v.cursor:]...)...)
		v.cursor++
		v.changed = true
	case too.KeyBackspace:
		if v.cursor == 0 {
			return too.Sink
		}
		v.buf = append(v.buf[:v.cursor-1], v.buf[v.cursor:]...)
		v.cursor--
		v.changed = true
	case too.KeyDelete:
		if v.cursor >= len(v.buf) {
			return too.Sink
		}
		v.buf = append(v.buf[:v.cursor], v.buf[v.cursor+1:]...)
		v.changed = true
	case too.KeyLeft:
		if mods.Has(too.ModCtrl) {
			v.cursor = prevWordBoundary(v.buf, v.cursor)
		} else if v.cursor > 0 {
			v.cursor--
		}
	case too.KeyRight:
		if mods.Has(too.ModCtrl) {
			v.cursor = nextWordBoundary(v.buf, v.cursor)
		} else if v.cursor < len(v.buf) {
			v.cursor++
		}
	case too.KeyHome:
		v.cursor = 0
	case too.KeyEnd:
		v.cursor = len(v.buf)
	default:
		return too.Bubble
	}
	return too.Sink
}

func (v *textInputView) Layout(ctx *too.LayoutCtx, space too.Space) too.Size {
	return space.Fit(too.Size{Width: too.FILL, Height: 1})
}

// Draw windows the buffer so the cursor always stays visible within the
// rect's width, mirroring text_input.rs's scroll-to-cursor offset math,
// simplified to rune counts since runewidth-aware scrolling isn't needed
// until wide-character input is in scope.
func (v *textInputView) Draw(ctx *too.RenderCtx) {
	ctx.FillBg(ctx.Palette.Surface)
	w := ctx.Rect.Width()
	if w <= 0 {
		return
	}

	if len(v.buf) == 0 && v.ghost != "" {
		ctx.Text(too.Pos2{}, v.ghost, too.Style{Fg: too.SetColor(ctx.Palette.Outline), Bg: too.Reuse})
		return
	}

	offset := 0
	if v.cursor >= w {
		offset = v.cursor - w + 1
	}
	end := offset + w
	if end > len(v.buf) {
		end = len(v.buf)
	}
	visible := string(v.buf[offset:end])

	fg := ctx.Palette.Outline
	if ctx.IsFocused() {
		fg = ctx.Palette.Foreground
	}
	ctx.Text(too.Pos2{}, visible, too.Style{Fg: too.SetColor(fg), Bg: too.Reuse})

	if ctx.IsFocused() {
		cx := v.cursor - offset
		ctx.PatchBg(too.Pos2{X: cx}, 1, 1, ctx.Palette.Primary)
	}
}

// TextInput draws a single-line, horizontally scrolling editable buffer
// bound to value, grounded on original_source/src/view/views/text_input.rs
// and the teacher's own input.go key table.
func TextInput(ui *too.Ui, value *string, ghost string) TextInputResponse {
	return leaf[TextInputArgs, TextInputResponse](ui, (*textInputView)(nil), newTextInputView, TextInputArgs{Value: value, Ghost: ghost})
}
