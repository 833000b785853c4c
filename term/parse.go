package term

import (
	"unicode/utf8"

	"github.com/too-tui/too"
)

// parser turns a byte stream into too.Event values. Grounded on the
// teacher's ansi_parse.go (byte-at-a-time CSI scanning with a
// paramStart/finalByte loop) but consuming a live stream instead of a
// complete string, since the driver's bytes arrive in arbitrary read-sized
// chunks. CSI sequences split across reads are buffered in pending until
// a final byte (or an unambiguous timeout-free giveup) completes them.
type parser struct {
	pending []byte
}

func newParser() *parser { return &parser{} }

// feed appends data to any buffered partial sequence and returns every
// complete event recognized so far.
func (p *parser) feed(data []byte) []too.Event {
	p.pending = append(p.pending, data...)
	var out []too.Event
	for len(p.pending) > 0 {
		ev, n, ok := p.next(p.pending)
		if !ok {
			break // incomplete sequence at the tail; wait for more bytes
		}
		p.pending = p.pending[n:]
		if ev != nil {
			out = append(out, *ev)
		}
	}
	return out
}

// next attempts to decode one event from the front of buf, returning the
// event (nil if the bytes were consumed but produced no event, e.g. an
// unmapped C0 control byte), the number of bytes consumed, and whether
// decoding succeeded (false means "need more bytes", as for a bare ESC
// with nothing after it yet).
func (p *parser) next(buf []byte) (*too.Event, int, bool) {
	b0 := buf[0]

	switch b0 {
	case 0x1b: // ESC
		if len(buf) < 2 {
			return nil, 0, false
		}
		if buf[1] == '[' {
			return p.parseCSI(buf)
		}
		if buf[1] == 0x1b {
			// Esc-Esc: treat the first as a standalone Escape key.
			return keyEvent(too.Key{Kind: too.KeyEscape}, 0), 1, true
		}
		// Unrecognized escape: treat as a standalone Escape key.
		return keyEvent(too.Key{Kind: too.KeyEscape}, 0), 1, true

	case 0x03: // Ctrl-C
		return keyEvent(too.Key{Kind: too.KeyChar, Char: 'c'}, too.ModCtrl), 1, true
	case 0x09:
		return keyEvent(too.Key{Kind: too.KeyTab}, 0), 1, true
	case 0x0d, 0x0a:
		return keyEvent(too.Key{Kind: too.KeyEnter}, 0), 1, true
	case 0x7f, 0x08:
		return keyEvent(too.Key{Kind: too.KeyBackspace}, 0), 1, true
	}

	if b0 < 0x20 {
		// Other C0 control codes: Ctrl-A..Ctrl-Z map to their letter with ModCtrl.
		if b0 >= 1 && b0 <= 26 {
			return keyEvent(too.Key{Kind: too.KeyChar, Char: rune('a' + b0 - 1)}, too.ModCtrl), 1, true
		}
		return nil, 1, true
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(buf) {
			return nil, 0, false
		}
		return nil, 1, true
	}
	return keyEvent(too.Key{Kind: too.KeyChar, Char: r}, 0), size, true
}

func keyEvent(k too.Key, mods too.Modifiers) *too.Event {
	return &too.Event{Kind: too.EventKeyPressed, Key: k, Modifiers: mods}
}

// parseCSI decodes an ESC [ ... sequence. buf[0]==ESC, buf[1]=='['.
func (p *parser) parseCSI(buf []byte) (*too.Event, int, bool) {
	i := 2
	for i < len(buf) && !isFinalByte(buf[i]) {
		i++
	}
	if i >= len(buf) {
		return nil, 0, false // incomplete: no final byte yet
	}
	params := string(buf[2:i])
	final := buf[i]
	n := i + 1

	switch final {
	case 'A':
		return keyEvent(too.Key{Kind: too.KeyUp}, 0), n, true
	case 'B':
		return keyEvent(too.Key{Kind: too.KeyDown}, 0), n, true
	case 'C':
		return keyEvent(too.Key{Kind: too.KeyRight}, 0), n, true
	case 'D':
		return keyEvent(too.Key{Kind: too.KeyLeft}, 0), n, true
	case 'H':
		return keyEvent(too.Key{Kind: too.KeyHome}, 0), n, true
	case 'F':
		return keyEvent(too.Key{Kind: too.KeyEnd}, 0), n, true
	case 'Z':
		return keyEvent(too.Key{Kind: too.KeyTab}, too.ModShift), n, true
	case 'I':
		return &too.Event{Kind: too.EventFocusGainedRaw}, n, true
	case 'O':
		return &too.Event{Kind: too.EventFocusLostRaw}, n, true
	case 'M', 'm':
		if len(params) == 0 || params[0] != '<' {
			// legacy (non-SGR) mouse reporting, not emitted; ESC [ M is
			// followed by three raw bytes (button, x, y) consumed with it.
			if final == 'M' && len(params) == 0 {
				if len(buf) < n+3 {
					return nil, 0, false
				}
				return nil, n + 3, true
			}
			return nil, n, true
		}
		ev := parseSGRMouse(params[1:], final == 'M')
		return ev, n, true
	case '~':
		return parseTilde(params, buf, n)
	}
	return nil, n, true
}

func isFinalByte(b byte) bool { return b >= 0x40 && b <= 0x7e }

// parseTilde handles ESC[<n>~ function/navigation keys and the bracketed
// paste sequences ESC[200~...ESC[201~.
func parseTilde(params string, buf []byte, consumed int) (*too.Event, int, bool) {
	switch params {
	case "1", "7":
		return keyEvent(too.Key{Kind: too.KeyHome}, 0), consumed, true
	case "2":
		return keyEvent(too.Key{Kind: too.KeyInsert}, 0), consumed, true
	case "3":
		return keyEvent(too.Key{Kind: too.KeyDelete}, 0), consumed, true
	case "4", "8":
		return keyEvent(too.Key{Kind: too.KeyEnd}, 0), consumed, true
	case "5":
		return keyEvent(too.Key{Kind: too.KeyPageUp}, 0), consumed, true
	case "6":
		return keyEvent(too.Key{Kind: too.KeyPageDown}, 0), consumed, true
	case "11":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 1}, 0), consumed, true
	case "12":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 2}, 0), consumed, true
	case "13":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 3}, 0), consumed, true
	case "14":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 4}, 0), consumed, true
	case "15":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 5}, 0), consumed, true
	case "17":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 6}, 0), consumed, true
	case "18":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 7}, 0), consumed, true
	case "19":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 8}, 0), consumed, true
	case "20":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 9}, 0), consumed, true
	case "21":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 10}, 0), consumed, true
	case "23":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 11}, 0), consumed, true
	case "24":
		return keyEvent(too.Key{Kind: too.KeyFunction, Fn: 12}, 0), consumed, true
	case "200":
		end := indexOf(buf[consumed:], "\x1b[201~")
		if end < 0 {
			return nil, 0, false // paste body not fully buffered yet
		}
		text := string(buf[consumed : consumed+end])
		return &too.Event{Kind: too.EventPaste, Paste: text}, consumed + end + len("\x1b[201~"), true
	}
	return nil, consumed, true
}

func indexOf(haystack []byte, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(haystack); i++ {
		if string(haystack[i:i+n]) == needle {
			return i
		}
	}
	return -1
}

// parseSGRMouse decodes the SGR mouse protocol body "Cb;Cx;Cy" (the M/m
// final byte distinguishes press from release). Bit layout of Cb: bits
// 0-1 select the button (0/1/2 = primary/middle/secondary, 3 = none),
// bit 5 (0x20) marks motion, bit 6 (0x40) marks a wheel event, bits 2-4
// carry modifiers (shift/alt/ctrl).
func parseSGRMouse(params string, press bool) *too.Event {
	cb, x, y, ok := parseSGRTriplet(params)
	if !ok {
		return nil
	}
	pos := too.Pos2{X: x - 1, Y: y - 1}
	mods := sgrModifiers(cb)

	if cb&0x40 != 0 {
		delta := too.Vec2{Y: 1}
		if cb&1 != 0 {
			delta.Y = -1
		}
		return &too.Event{Kind: too.EventMouseScrollRaw, Pos: pos, Delta: delta, Modifiers: mods}
	}

	button := sgrButton(cb)
	if cb&0x20 != 0 {
		return &too.Event{Kind: too.EventMouseDragRaw, Pos: pos, Button: button, Modifiers: mods}
	}
	return &too.Event{Kind: too.EventMouseButtonChangedRaw, Pos: pos, Button: button, Down: press, Modifiers: mods}
}

func sgrButton(cb int) too.MouseButton {
	switch cb & 0x3 {
	case 1:
		return too.ButtonMiddle
	case 2:
		return too.ButtonSecondary
	default:
		return too.ButtonPrimary
	}
}

func sgrModifiers(cb int) too.Modifiers {
	var m too.Modifiers
	if cb&0x04 != 0 {
		m |= too.ModShift
	}
	if cb&0x08 != 0 {
		m |= too.ModAlt
	}
	if cb&0x10 != 0 {
		m |= too.ModCtrl
	}
	return m
}

func parseSGRTriplet(params string) (cb, x, y int, ok bool) {
	a, b, c := -1, -1, -1
	cur, field := 0, 0
	have := false
	for i := 0; i <= len(params); i++ {
		if i == len(params) || params[i] == ';' {
			if !have {
				return 0, 0, 0, false
			}
			switch field {
			case 0:
				a = cur
			case 1:
				b = cur
			case 2:
				c = cur
			}
			field++
			cur, have = 0, false
			continue
		}
		d := params[i]
		if d < '0' || d > '9' {
			return 0, 0, 0, false
		}
		cur = cur*10 + int(d-'0')
		have = true
	}
	if field != 3 {
		return 0, 0, 0, false
	}
	return a, b, c, true
}
