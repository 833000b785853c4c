package too

// RenderCtx is the handle a view's Draw method receives, scoped to its
// own id and absolute (clip-resolved) rect. Built around a layer-deferred
// draw queue rather than a single recursive walk, so a view that opens a
// higher layer (a popover, a tooltip) draws after everything below it.
type RenderCtx struct {
	driver  *drawDriver
	Id      ViewId
	Rect    Rect
	Palette Palette
}

// drawDriver owns the surface and layer-deferred queue shared by every
// RenderCtx created during one frame's render pass.
type drawDriver struct {
	surface *Surface
	views   *ViewNodes
	layout  *LayoutNodes
	palette Palette
	debug   *debugQueue

	currentLayer int
	pending      map[int][]ViewId // views whose layer is higher than the walk's current layer

	showDebug bool // whether the debug overlay is currently toggled on
}

func newDrawDriver(surface *Surface, views *ViewNodes, layout *LayoutNodes, palette Palette, debug *debugQueue, showDebug bool) *drawDriver {
	return &drawDriver{surface: surface, views: views, layout: layout, palette: palette, debug: debug, pending: map[int][]ViewId{}, showDebug: showDebug}
}

// Render walks the view arena from root in layer order and writes into the
// surface's back buffer.
func (d *drawDriver) Render() {
	d.currentLayer = 0
	d.drawSubtree(RootID)

	for {
		layer := d.nextPendingLayer()
		if layer == -1 {
			break
		}
		d.currentLayer = layer
		ids := d.pending[layer]
		delete(d.pending, layer)
		for _, id := range ids {
			d.drawSubtree(id)
		}
	}

	if d.showDebug {
		d.debug.drainInto(d)
	} else {
		d.debug.clear()
	}
}

func (d *drawDriver) nextPendingLayer() int {
	best := -1
	for l := range d.pending {
		if best == -1 || l < best {
			best = l
		}
	}
	return best
}

func (d *drawDriver) drawSubtree(id ViewId) {
	n, ok := d.layout.Node(id)
	if !ok {
		return
	}
	if n.layer > d.currentLayer {
		d.pending[n.layer] = append(d.pending[n.layer], id)
		return
	}
	ctx := &RenderCtx{driver: d, Id: id, Rect: d.layout.clippedRect(n), Palette: d.palette}
	d.views.View(id).Draw(ctx)
}

// Draw recurses into child, deferring it to the pending queue if child
// opened a new layer above the current walk's layer.
func (c *RenderCtx) Draw(child ViewId) {
	n, ok := c.driver.layout.Node(child)
	if !ok {
		return
	}
	if n.layer > c.driver.currentLayer {
		c.driver.pending[n.layer] = append(c.driver.pending[n.layer], child)
		return
	}
	ctx := &RenderCtx{driver: c.driver, Id: child, Rect: c.driver.layout.clippedRect(n), Palette: c.Palette}
	c.driver.views.View(child).Draw(ctx)
}

// Children returns the current view's children, letting a container
// widget defined outside the core package recurse with DefaultDraw's same
// behavior (or a bespoke variant of it).
func (c *RenderCtx) Children() []ViewId { return c.driver.views.Children(c.Id) }

// IsFocused reports whether this view currently holds input focus, letting
// Draw style itself (e.g. a text cursor) without reaching into the view
// tree directly.
func (c *RenderCtx) IsFocused() bool { return c.driver.views.Focused() == c.Id }

// Set writes a single cell at pos, given relative to the view's own layout
// origin (0,0 is the view's top-left corner), clipped to c.Rect.
func (c *RenderCtx) Set(pos Pos2, cell Cell) {
	origin := c.driver.layout.Rect(c.Id).Min
	abs := pos2(origin.X+pos.X, origin.Y+pos.Y)
	if !c.Rect.Contains(abs) {
		return
	}
	c.driver.surface.Set(abs, cell)
}

// FillBg paints the background color over c.Rect by filling it with a
// space Pixel cell whose fg is Reuse and bg is Set; glyphs already there
// are replaced by the space.
func (c *RenderCtx) FillBg(color Rgba) {
	blank := Cell{Kind: CellPixel, Char: ' ', Fg: Reuse, Bg: SetColor(color)}
	c.driver.surface.FillWith(c.Rect, blank)
}

// FillWith fills c.Rect with the given cell, the "fill_with" primitive.
func (c *RenderCtx) FillWith(cell Cell) { c.driver.surface.FillWith(c.Rect, cell) }

// Text draws s at pos with style, the "text" primitive.
func (c *RenderCtx) Text(pos Pos2, s string, style Style) {
	x := pos.X
	originX := c.driver.layout.Rect(c.Id).Min.X
	for _, cluster := range segmentGraphemes(s) {
		cell := NewGraphemeCell(cluster, style)
		w := cell.Width()
		if w == 0 {
			continue
		}
		if originX+x+w > c.Rect.Max.X {
			break
		}
		c.Set(pos2(x, pos.Y), cell)
		x += w
	}
}

// HorizontalLine draws a repeated rune across [x, x+n) at row y — the
// "horizontal_line" primitive.
func (c *RenderCtx) HorizontalLine(y, x, n int, r rune, style Style) {
	for i := 0; i < n; i++ {
		c.Set(pos2(x+i, y), NewPixelCell(r, style))
	}
}

// VerticalLine draws a repeated rune down [y, y+n) at column x — the
// "vertical_line" primitive.
func (c *RenderCtx) VerticalLine(x, y, n int, r rune, style Style) {
	for i := 0; i < n; i++ {
		c.Set(pos2(x, y+i), NewPixelCell(r, style))
	}
}

// Line draws a straight horizontal or vertical rule depending on which
// delta component is nonzero — the "line" primitive.
func (c *RenderCtx) Line(from, to Pos2, r rune, style Style) {
	if from.Y == to.Y {
		n := to.X - from.X
		if n < 0 {
			from, n = to, -n
		}
		c.HorizontalLine(from.Y, from.X, n+1, r, style)
		return
	}
	n := to.Y - from.Y
	if n < 0 {
		from, n = to, -n
	}
	c.VerticalLine(from.X, from.Y, n+1, r, style)
}

// Patch overwrites a sub-rect with cells from a row-major slice — the
// "patch" primitive, used by widgets that pre-render a block (e.g. a
// button's corner glyphs) and blit it in one call.
func (c *RenderCtx) Patch(topLeft Pos2, width int, cells []Cell) {
	for i, cell := range cells {
		x, y := topLeft.X+i%width, topLeft.Y+i/width
		c.Set(pos2(x, y), cell)
	}
}

// PatchBg overwrites only the background of a sub-rect, leaving glyphs
// untouched — the "patch_bg" primitive.
func (c *RenderCtx) PatchBg(topLeft Pos2, width, height int, color Rgba) {
	origin := c.driver.layout.Rect(c.Id).Min
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := pos2(topLeft.X+x, topLeft.Y+y)
			cell := Cell{Kind: CellPixel, Char: ' ', Fg: Reuse, Bg: SetColor(color)}
			existing, ok := c.driver.surface.Get(pos2(origin.X+pos.X, origin.Y+pos.Y))
			if ok && (existing.Kind == CellPixel || existing.Kind == CellGrapheme) {
				cell = existing
				cell.Fg, cell.Bg = Reuse, SetColor(color)
			}
			c.Set(pos, cell)
		}
	}
}

// SetRect fills an explicit absolute rect (intersected with c.Rect) with
// cell — the "set_rect" primitive.
func (c *RenderCtx) SetRect(r Rect, cell Cell) {
	target := r.Intersect(c.Rect)
	c.driver.surface.FillWith(target, cell)
}

// Debug pushes a diagnostic string onto the owning App's debug queue,
// drained as the render pass's last layer.
func (c *RenderCtx) Debug(s string) { c.driver.debug.push(s) }
