package term

import (
	"testing"

	"github.com/too-tui/too"
)

func TestParserPlainAsciiChar(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("a"))
	if len(evs) != 1 || evs[0].Kind != too.EventKeyPressed || evs[0].Key.Char != 'a' {
		t.Fatalf("feed(\"a\") = %v, want a single KeyPressed('a')", evs)
	}
}

func TestParserUtf8Rune(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("日"))
	if len(evs) != 1 || evs[0].Key.Char != '日' {
		t.Fatalf("feed(multibyte utf8) = %v, want a single KeyPressed('日')", evs)
	}
}

func TestParserSplitUtf8RuneAcrossReads(t *testing.T) {
	p := newParser()
	full := []byte("日")
	evs := p.feed(full[:1])
	if len(evs) != 0 {
		t.Fatalf("a partial utf8 rune should yield no events yet, got %v", evs)
	}
	evs = p.feed(full[1:])
	if len(evs) != 1 || evs[0].Key.Char != '日' {
		t.Fatalf("completing the rune should yield KeyPressed('日'), got %v", evs)
	}
}

func TestParserCtrlLetterMapping(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte{0x01}) // Ctrl-A
	if len(evs) != 1 || evs[0].Key.Char != 'a' || evs[0].Modifiers&too.ModCtrl == 0 {
		t.Fatalf("Ctrl-A = %v, want KeyChar 'a' with ModCtrl", evs)
	}
}

func TestParserCtrlCIsSpecialCased(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte{0x03})
	if len(evs) != 1 || evs[0].Key.Char != 'c' || evs[0].Modifiers&too.ModCtrl == 0 {
		t.Fatalf("Ctrl-C = %v, want KeyChar 'c' with ModCtrl", evs)
	}
}

func TestParserEnterTabBackspace(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte{0x0d})
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyEnter {
		t.Fatalf("CR = %v, want KeyEnter", evs)
	}
	evs = p.feed([]byte{0x09})
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyTab {
		t.Fatalf("Tab = %v, want KeyTab", evs)
	}
	evs = p.feed([]byte{0x7f})
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyBackspace {
		t.Fatalf("DEL = %v, want KeyBackspace", evs)
	}
}

func TestParserArrowKeys(t *testing.T) {
	cases := map[string]too.KeyKind{
		"\x1b[A": too.KeyUp,
		"\x1b[B": too.KeyDown,
		"\x1b[C": too.KeyRight,
		"\x1b[D": too.KeyLeft,
		"\x1b[H": too.KeyHome,
		"\x1b[F": too.KeyEnd,
	}
	for seq, want := range cases {
		p := newParser()
		evs := p.feed([]byte(seq))
		if len(evs) != 1 || evs[0].Key.Kind != want {
			t.Errorf("feed(%q) = %v, want %v", seq, evs, want)
		}
	}
}

func TestParserCSISplitAcrossReads(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b["))
	if len(evs) != 0 {
		t.Fatalf("an incomplete CSI prefix should produce no events yet, got %v", evs)
	}
	evs = p.feed([]byte("A"))
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyUp {
		t.Fatalf("completing the CSI sequence should yield KeyUp, got %v", evs)
	}
}

func TestParserTildeFunctionKeys(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[5~"))
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyPageUp {
		t.Fatalf("ESC[5~ = %v, want KeyPageUp", evs)
	}
	p = newParser()
	evs = p.feed([]byte("\x1b[6~"))
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyPageDown {
		t.Fatalf("ESC[6~ = %v, want KeyPageDown", evs)
	}
}

func TestParserBracketedPaste(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[200~hello\x1b[201~"))
	if len(evs) != 1 || evs[0].Kind != too.EventPaste || evs[0].Paste != "hello" {
		t.Fatalf("bracketed paste = %v, want EventPaste{\"hello\"}", evs)
	}
}

func TestParserBracketedPasteIncompleteWaitsForEndMarker(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[200~hello"))
	if len(evs) != 0 {
		t.Fatalf("a paste body without its end marker should produce no events yet, got %v", evs)
	}
	evs = p.feed([]byte(" world\x1b[201~"))
	if len(evs) != 1 || evs[0].Paste != "hello world" {
		t.Fatalf("completing the paste should yield the full body, got %v", evs)
	}
}

func TestParserFocusEvents(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[I"))
	if len(evs) != 1 || evs[0].Kind != too.EventFocusGainedRaw {
		t.Fatalf("ESC[I = %v, want EventFocusGainedRaw", evs)
	}
	p = newParser()
	evs = p.feed([]byte("\x1b[O"))
	if len(evs) != 1 || evs[0].Kind != too.EventFocusLostRaw {
		t.Fatalf("ESC[O = %v, want EventFocusLostRaw", evs)
	}
}

func TestParserSGRMousePressAndRelease(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[<0;6;4M"))
	if len(evs) != 1 || evs[0].Kind != too.EventMouseButtonChangedRaw || !evs[0].Down {
		t.Fatalf("SGR mouse press = %v, want a Down button-changed event", evs)
	}
	if evs[0].Pos != (too.Pos2{X: 5, Y: 3}) {
		t.Errorf("SGR mouse coords are 1-indexed on the wire; (6,4) should decode to Pos2(5,3), got %v", evs[0].Pos)
	}

	p = newParser()
	evs = p.feed([]byte("\x1b[<0;6;4m"))
	if len(evs) != 1 || evs[0].Kind != too.EventMouseButtonChangedRaw || evs[0].Down {
		t.Fatalf("SGR mouse release (final 'm') = %v, want an Up button-changed event", evs)
	}
}

func TestParserSGRMouseDragBit(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[<32;2;2M")) // bit 0x20 set: motion/drag
	if len(evs) != 1 || evs[0].Kind != too.EventMouseDragRaw {
		t.Fatalf("SGR drag = %v, want EventMouseDragRaw", evs)
	}
}

func TestParserSGRMouseWheel(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[<64;2;2M")) // bit 0x40 set: wheel up
	if len(evs) != 1 || evs[0].Kind != too.EventMouseScrollRaw || evs[0].Delta.Y != 1 {
		t.Fatalf("SGR wheel up = %v, want EventMouseScrollRaw{Delta.Y:1}", evs)
	}
	p = newParser()
	evs = p.feed([]byte("\x1b[<65;2;2M")) // wheel down: bit 0 also set
	if len(evs) != 1 || evs[0].Delta.Y != -1 {
		t.Fatalf("SGR wheel down = %v, want Delta.Y:-1", evs)
	}
}

func TestParserLegacyMouseReportingIgnored(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("\x1b[M !!"))
	if len(evs) != 0 {
		t.Errorf("legacy (non-SGR) mouse reports should not be emitted, got %v", evs)
	}
}

func TestParserEscEscIsStandaloneEscape(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte{0x1b, 0x1b})
	if len(evs) != 1 || evs[0].Key.Kind != too.KeyEscape {
		t.Fatalf("ESC ESC = %v, want the first ESC to decode as a standalone Escape key", evs)
	}
}

func TestParserMultipleEventsInOneChunk(t *testing.T) {
	p := newParser()
	evs := p.feed([]byte("ab\x1b[A"))
	if len(evs) != 3 {
		t.Fatalf("feed(\"ab\"+up) = %v, want 3 events", evs)
	}
	if evs[0].Key.Char != 'a' || evs[1].Key.Char != 'b' || evs[2].Key.Kind != too.KeyUp {
		t.Errorf("events decoded out of order: %v", evs)
	}
}
