package too

// Surface is the double-buffered cell grid: front holds what was last
// written to the terminal, back is what the current frame's render pass is
// building. Grounded on the teacher's CellBuffer (buffer.go), generalized
// from a single fixed grid to the spec's front/back pair plus the tagged
// Cell union.
type Surface struct {
	front, back []Cell
	rect        Rect
}

// NewSurface allocates a surface sized to rect, with both buffers fully
// Empty.
func NewSurface(rect Rect) *Surface {
	n := rect.Width() * rect.Height()
	s := &Surface{
		front: make([]Cell, n),
		back:  make([]Cell, n),
		rect:  rect,
	}
	s.fillEmpty(s.front)
	s.fillEmpty(s.back)
	return s
}

func (s *Surface) fillEmpty(buf []Cell) {
	for i := range buf {
		buf[i] = EmptyCellValue
	}
}

func (s *Surface) Rect() Rect { return s.rect }

func (s *Surface) index(x, y int) int { return y*s.rect.Width() + x }

// Resize reallocates both buffers to the new rect and forces a full redraw
// on the next frame (front is reset to Empty so every back cell differs),
// matching the boundary behavior "Resizing reallocates both buffers and
// forces a full redraw on the next frame."
func (s *Surface) Resize(rect Rect) {
	n := rect.Width() * rect.Height()
	s.rect = rect
	s.front = make([]Cell, n)
	s.back = make([]Cell, n)
	s.fillEmpty(s.front)
	s.fillEmpty(s.back)
}

// Set writes cell at pos into the back buffer, per §4.5's "Set operation".
func (s *Surface) Set(pos Pos2, cell Cell) {
	if !s.rect.Contains(pos) {
		return
	}
	x, y := pos.X-s.rect.Min.X, pos.Y-s.rect.Min.Y
	idx := s.index(x, y)
	existing := s.back[idx]

	// Step 2: clear any continuation columns of a previously-wide cell here.
	if w := existing.Width(); w >= 2 {
		for i := 1; i < w && x+i < s.rect.Width(); i++ {
			s.back[s.index(x+i, y)] = EmptyCellValue
		}
	}

	merged := existing.Merge(cell)
	s.back[idx] = merged

	// Step 4: wide cells claim their trailing columns as Continuation.
	if w := merged.Width(); w >= 2 {
		for i := 1; i < w; i++ {
			if x+i >= s.rect.Width() {
				break // clipped: the glyph itself was already rejected by callers that check width.
			}
			s.back[s.index(x+i, y)] = Cell{Kind: CellContinuation}
		}
	}
}

// Get reads the back-buffer cell at pos (used by tests and hit-adjacent
// drawing helpers that need to inspect what was already painted this
// frame).
func (s *Surface) Get(pos Pos2) (Cell, bool) {
	if !s.rect.Contains(pos) {
		return Cell{}, false
	}
	return s.back[s.index(pos.X-s.rect.Min.X, pos.Y-s.rect.Min.Y)], true
}

// FillWith sets every cell in target to pixel, per §4.5's "Fill" operation.
func (s *Surface) FillWith(target Rect, pixel Cell) {
	r := target.Intersect(s.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.Set(pos2(x, y), pixel)
		}
	}
}

// WriteText writes s's grapheme clusters starting at pos with the given
// style, clipped to the surface's rect; a wide cell that would overflow the
// row is clipped rather than wrapped (the "clipping at x = width-1"
// boundary behavior).
func (sf *Surface) WriteText(pos Pos2, text string, style Style) {
	x, y := pos.X, pos.Y
	for _, cluster := range segmentGraphemes(text) {
		cell := NewGraphemeCell(cluster, style)
		w := cell.Width()
		if w == 0 {
			continue
		}
		if x+w > sf.rect.Max.X {
			break
		}
		sf.Set(pos2(x, y), cell)
		x += w
	}
}

// cellsEqual reports whether front and back already agree at index i —
// the basis for the round-trip property "calling render when front == back
// emits no bytes."
func (s *Surface) cellsEqual(i int) bool { return s.front[i].Equal(s.back[i]) }

// Render walks front/back in parallel and emits the minimal ANSI diff to w,
// per §4.5's "Diff+emit" algorithm. It copies back into front as it scans,
// so after Render, front == the back buffer that was rendered (the "for
// every frame, surface.front after render equals surface.back before
// render" invariant).
func (s *Surface) Render(w Writer) error {
	width := s.rect.Width()
	n := len(s.back)

	emitted := false
	cache := newAttrCache()
	lastRow, lastEndCol := -1, -1

	for i := 0; i < n; i++ {
		if s.cellsEqual(i) {
			continue
		}
		x, y := i%width, i/width

		if !emitted {
			if err := w.Begin(); err != nil {
				return err
			}
			emitted = true
		}

		cell := s.back[i]
		if cell.Kind == CellContinuation {
			s.front[i] = cell
			continue
		}

		if y != lastRow || x != lastEndCol {
			if err := w.MoveTo(pos2(s.rect.Min.X+x, s.rect.Min.Y+y)); err != nil {
				return err
			}
		}

		if err := cache.apply(w, cell); err != nil {
			return err
		}

		glyph := cell.glyph()
		maxCols := width - x
		if cell.Width() > maxCols {
			glyph = "" // clipped: Set keeps a wide glyph in the last column, but it would overflow the row here.
		}
		if glyph != "" {
			if err := w.WriteStr(glyph); err != nil {
				return err
			}
		}

		s.front[i] = cell
		lastRow = y
		lastEndCol = x + cell.Width()
	}

	if emitted {
		if err := w.ResetFg(); err != nil {
			return err
		}
		if err := w.ResetBg(); err != nil {
			return err
		}
		if err := w.ResetAttr(); err != nil {
			return err
		}
		if err := w.End(); err != nil {
			return err
		}
	}
	return nil
}

// attrCache tracks the writer's last-emitted fg/bg/attr so Render only
// writes changes, per §4.5's "emit ... only on actual change" rules,
// including the rule that writing RESET clears the cache so the next
// fg/bg is re-emitted even if nominally unchanged.
type attrCache struct {
	haveFg, haveBg bool
	fg, bg         Rgba
	fgReset, bgReset bool
	attr           Attr
	haveAttr       bool
}

func newAttrCache() *attrCache {
	return &attrCache{fgReset: true, bgReset: true, haveAttr: true, attr: 0}
}

func (c *attrCache) apply(w Writer, cell Cell) error {
	if cell.Attr != c.attr || !c.haveAttr {
		if cell.Attr == 0 {
			if err := w.ResetAttr(); err != nil {
				return err
			}
			// RESET clears the color cache too (writer contract: "0m" resets everything).
			c.haveFg, c.haveBg = false, false
			c.fgReset, c.bgReset = true, true
		} else {
			if err := w.SetAttr(cell.Attr); err != nil {
				return err
			}
		}
		c.attr = cell.Attr
		c.haveAttr = true
	}

	if !cell.Fg.IsReuse() {
		if rgba, ok := cell.Fg.Get(); ok {
			if !c.haveFg || c.fg != rgba {
				if err := w.SetFg(rgba); err != nil {
					return err
				}
				c.fg, c.haveFg, c.fgReset = rgba, true, false
			}
		} else { // Reset
			if !c.fgReset {
				if err := w.ResetFg(); err != nil {
					return err
				}
				c.fgReset, c.haveFg = true, false
			}
		}
	}

	if !cell.Bg.IsReuse() {
		if rgba, ok := cell.Bg.Get(); ok {
			if !c.haveBg || c.bg != rgba {
				if err := w.SetBg(rgba); err != nil {
					return err
				}
				c.bg, c.haveBg, c.bgReset = rgba, true, false
			}
		} else {
			if !c.bgReset {
				if err := w.ResetBg(); err != nil {
					return err
				}
				c.bgReset, c.haveBg = true, false
			}
		}
	}
	return nil
}
