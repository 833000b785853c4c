package too

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	runewidth "github.com/mattn/go-runewidth"
)

// CellKind discriminates the Cell tagged union. The teacher's Cell was a
// plain (rune, Style) pair; too's rasterizer needs to distinguish wide
// glyphs from their trailing continuation columns and from genuinely empty
// cells, so the union grows two more variants.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellGrapheme
	CellPixel
	CellContinuation
)

// Cell is a single renderable unit of the Surface grid.
type Cell struct {
	Kind    CellKind
	Cluster string // valid when Kind == CellGrapheme
	Char    rune   // valid when Kind == CellPixel
	Fg, Bg  ColorValue
	Attr    Attr
}

// EmptyCellValue is the zero value cells are initialized to, always
// Reuse/Reuse so merging over an untouched cell has no paint to contribute.
var EmptyCellValue = Cell{Kind: CellEmpty, Fg: Reuse, Bg: Reuse}

// NewPixelCell builds a single-codepoint cell.
func NewPixelCell(r rune, style Style) Cell {
	return Cell{Kind: CellPixel, Char: r, Fg: style.Fg, Bg: style.Bg, Attr: style.Attr}
}

// NewGraphemeCell builds a cell from an already-segmented grapheme cluster.
func NewGraphemeCell(cluster string, style Style) Cell {
	return Cell{Kind: CellGrapheme, Cluster: cluster, Fg: style.Fg, Bg: style.Bg, Attr: style.Attr}
}

// Width returns the number of terminal columns this cell occupies: 0 for
// Empty/Continuation, 1-2 for Pixel/Grapheme per Unicode East-Asian width.
func (c Cell) Width() int {
	switch c.Kind {
	case CellPixel:
		return runewidth.RuneWidth(c.Char)
	case CellGrapheme:
		return runewidth.StringWidth(c.Cluster)
	default:
		return 0
	}
}

func (c Cell) glyph() string {
	switch c.Kind {
	case CellPixel:
		return string(c.Char)
	case CellGrapheme:
		return c.Cluster
	default:
		return ""
	}
}

// sameGlyph reports whether c and other paint the identical scalar,
// independent of the Grapheme/Pixel distinction — a single-codepoint
// grapheme cluster and the matching Pixel are the same glyph.
func (c Cell) sameGlyph(other Cell) bool {
	if c.Kind == other.Kind {
		if c.Kind == CellPixel {
			return c.Char == other.Char
		}
		if c.Kind == CellGrapheme {
			return c.Cluster == other.Cluster
		}
		return true
	}
	// Pixel vs single-rune Grapheme, per spec §4.5 "Grapheme equivalence".
	px, gr := c, other
	if gr.Kind == CellPixel {
		px, gr = gr, px
	}
	if px.Kind != CellPixel || gr.Kind != CellGrapheme {
		return false
	}
	runes := []rune(gr.Cluster)
	return len(runes) == 1 && runes[0] == px.Char
}

// Equal implements the diffing equivalence from §4.5: same glyph+style, or
// (per the Grapheme equivalence rule) a Pixel/single-rune-Grapheme pair that
// both carry Reuse fg/bg policies.
func (c Cell) Equal(other Cell) bool {
	if c.Kind == CellEmpty || other.Kind == CellEmpty {
		return c.Kind == other.Kind
	}
	if c.Kind == CellContinuation || other.Kind == CellContinuation {
		return c.Kind == other.Kind
	}
	if !c.sameGlyph(other) {
		return false
	}
	if c.Attr != other.Attr {
		return false
	}
	if c.Fg == other.Fg && c.Bg == other.Bg {
		return true
	}
	return c.Fg.IsReuse() && other.Fg.IsReuse() && c.Bg.IsReuse() && other.Bg.IsReuse()
}

// Merge layers incoming on top of c, per §4.5 step 3: fg/bg each resolve
// Reuse (keep existing)/Reset (force reset)/Set(color); when both sides are
// Set for bg, the result alpha-blends. fg has no such blending — an
// intentional, documented asymmetry (spec §9, open question 2).
func (c Cell) Merge(incoming Cell) Cell {
	if incoming.Kind == CellEmpty {
		return c
	}
	out := incoming
	out.Fg = mergeFg(c.Fg, incoming.Fg)
	out.Bg = mergeBg(c.Bg, incoming.Bg)
	return out
}

func mergeFg(base, incoming ColorValue) ColorValue {
	switch incoming.kind {
	case colorReuse:
		return base
	case colorReset:
		return ResetColor
	default:
		return incoming
	}
}

func mergeBg(base, incoming ColorValue) ColorValue {
	switch incoming.kind {
	case colorReuse:
		return base
	case colorReset:
		return ResetColor
	default:
		if baseColor, ok := base.Get(); ok {
			blended := incoming.rgba.blendAlpha(baseColor)
			return SetColor(blended)
		}
		return incoming
	}
}

// segmentGraphemes splits s into grapheme cluster cells carrying style,
// used by Surface.WriteText. Grounded on the teacher's go-runewidth-based
// rune iteration (render.go's RenderToBuffer), generalized to cluster
// boundaries via uax29 so multi-codepoint emoji/combining sequences occupy
// one cell instead of one per codepoint.
func segmentGraphemes(s string) []string {
	var out []string
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		out = append(out, tokens.Value())
	}
	return out
}
