package widgets

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/too-tui/too"
)

// textSize measures a single line of text in terminal columns, the
// layout-time counterpart of too.RenderCtx.Text's grapheme walk.
func textSize(s string) too.Size {
	return too.Size{Width: float32(runewidth.StringWidth(s)), Height: 1}
}
