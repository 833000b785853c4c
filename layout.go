package too

// LayoutNode holds one view's computed geometry and layering state for
// the current frame: local-coordinate size/position before resolve(),
// absolute screen coordinates after, plus the layer/clip/interest
// bookkeeping input dispatch and rendering need. Stored in a ViewId-keyed
// map — a secondary arena parallel to ViewNodes — rather than its own
// owned tree, since it is fully rebuilt every frame.
type LayoutNode struct {
	id ViewId

	local Rectf // position/size in parent-local coordinates, pre-resolve
	rect  Rect  // absolute screen coordinates, set by resolve()

	layer       int
	clipping    bool
	clippedBy   []ViewId // ancestor chain whose clip rects bound this node
	interests   Interest
	interactive bool
}

// LayoutNodes is the secondary, per-frame-overwritten map from ViewId to
// LayoutNode, plus the axis stack and the layered event-interest
// structure input dispatch walks.
type LayoutNodes struct {
	views *ViewNodes
	nodes map[ViewId]*LayoutNode

	axisStack  []Axis
	layerStack []int
	nextLayer  int

	// interestLayers[layer] collects (id, interest) pairs declared while
	// that layer was open, so input dispatch can walk layers top-most
	// first.
	interestLayers map[int][]interestEntry

	// interactiveOrder records every Interactive() view in the order its
	// layout ran this frame, the order Tab-cycling advances through.
	interactiveOrder []ViewId

	root Rect
}

type interestEntry struct {
	id       ViewId
	interest Interest
}

func NewLayoutNodes(views *ViewNodes) *LayoutNodes {
	return &LayoutNodes{
		views:          views,
		nodes:          map[ViewId]*LayoutNode{},
		interestLayers: map[int][]interestEntry{},
	}
}

func (t *LayoutNodes) Node(id ViewId) (*LayoutNode, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

func (t *LayoutNodes) Rect(id ViewId) Rect {
	if n, ok := t.nodes[id]; ok {
		return n.rect
	}
	return Rect{}
}

// pruneRemoved drops layout nodes for views evicted this frame.
func (t *LayoutNodes) pruneRemoved(removed []ViewId) {
	for _, id := range removed {
		delete(t.nodes, id)
	}
}

// ComputeAll drives layout from the root.
func (t *LayoutNodes) ComputeAll(rect Rect) {
	t.root = rect
	t.nextLayer = 0
	t.layerStack = []int{0}
	t.axisStack = nil
	t.interestLayers = map[int][]interestEntry{}
	t.interactiveOrder = nil

	space := Space{Min: size(0, 0), Max: rect.Size()}.Loosen()
	t.compute(RootID, space)
	t.nodes[RootID].local = rectfFromSize(rect.Size())
	t.resolve(RootID, Vec2{})
}

// compute installs a fresh LayoutNode for id, pushes its primary axis, runs
// the view's Layout implementation, and records its declared interests.
func (t *LayoutNodes) compute(id ViewId, space Space) Size {
	v := t.views.View(id)

	parentLayer := 0
	if len(t.layerStack) > 0 {
		parentLayer = t.layerStack[len(t.layerStack)-1]
	}
	node := &LayoutNode{id: id, layer: parentLayer}
	t.nodes[id] = node

	t.axisStack = append(t.axisStack, v.PrimaryAxis())
	defer func() { t.axisStack = t.axisStack[:len(t.axisStack)-1] }()
	// A layer opened by this view (newLayer) closes when its layout ends.
	depth := len(t.layerStack)
	defer func() { t.layerStack = t.layerStack[:depth] }()

	ctx := &LayoutCtx{tree: t, self: id}
	got := v.Layout(ctx, space)
	node.local = Rectf{Min: Vec2{}, Max: Vec2{X: got.Width, Y: got.Height}}

	interests := v.Interests()
	interactive := v.Interactive()
	node.interests = interests
	node.interactive = interactive
	t.views.SetInteractivity(id, interests, interactive)
	if interactive {
		t.interactiveOrder = append(t.interactiveOrder, id)
	}
	if !interests.IsNone() {
		layerRoot := node.layer
		t.interestLayers[layerRoot] = append(t.interestLayers[layerRoot], interestEntry{id: id, interest: interests})
	}

	return got
}

func (t *LayoutNodes) setPosition(child ViewId, pos Vec2) {
	n := t.nodes[child]
	sz := n.local.Size()
	n.local = Rectf{Min: pos, Max: Vec2{X: pos.X + sz.Width, Y: pos.Y + sz.Height}}
}

func (t *LayoutNodes) setSize(child ViewId, s Size) {
	n := t.nodes[child]
	n.local = Rectf{Min: n.local.Min, Max: Vec2{X: n.local.Min.X + s.Width, Y: n.local.Min.Y + s.Height}}
}

func (t *LayoutNodes) newLayer(id ViewId) {
	t.nextLayer++
	layer := t.nextLayer
	t.nodes[id].layer = layer
	t.layerStack = append(t.layerStack, layer)
}

func (t *LayoutNodes) enableClipping(id ViewId) {
	t.nodes[id].clipping = true
}

// resolve performs the BFS translation from local to absolute coordinates,
// tracking the clip ancestor chain so input hit-testing can intersect
// against it.
func (t *LayoutNodes) resolve(id ViewId, parentAbsMin Vec2) {
	n := t.nodes[id]
	absMin := Vec2{X: parentAbsMin.X + n.local.Min.X, Y: parentAbsMin.Y + n.local.Min.Y}
	abs := Rectf{Min: absMin, Max: Vec2{X: absMin.X + n.local.Size().Width, Y: absMin.Y + n.local.Size().Height}}
	n.rect = fromRectf(abs, t.root)

	var childClip []ViewId
	if parent, ok := t.views.Parent(id); ok {
		if pn, ok2 := t.nodes[parent]; ok2 {
			childClip = append(childClip, pn.clippedBy...)
		}
	}
	if n.clipping {
		childClip = append(childClip, id)
	}

	for _, child := range t.views.Children(id) {
		cn, ok := t.nodes[child]
		if !ok {
			continue
		}
		cn.clippedBy = childClip
		t.resolve(child, absMin)
	}
}

// clippedRect intersects n.rect with every ancestor rect it is clipped by,
// used by both hit-testing and the renderer's absolute-rect computation.
func (t *LayoutNodes) clippedRect(n *LayoutNode) Rect {
	r := n.rect
	for _, anc := range n.clippedBy {
		if an, ok := t.nodes[anc]; ok {
			r = r.Intersect(an.rect)
		}
	}
	return r
}

// --- List container: the three-phase flex algorithm. ---

// Justify controls gap distribution along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// CrossAlign controls placement along the cross axis.
type CrossAlign int

const (
	AlignStart CrossAlign = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignFill
)

// ListLayout computes a flex row/column layout in three passes
// (inflexible children first, then loose flex, then tight flex sharing
// whatever budget remains), distributing leftover space against a
// Space{min,max} constraint.
func ListLayout(ctx *LayoutCtx, tree *ViewNodes, id ViewId, axis Axis, space Space, gap float32, justify Justify, align CrossAlign) Size {
	children := tree.Children(id)
	if len(children) == 0 {
		return space.Fit(size(0, 0))
	}

	minCross, maxCross := space.Min.Get(axis.Cross()), space.Max.Get(axis.Cross())
	maxMain := space.Max.Get(axis)

	type childResult struct {
		id         ViewId
		main, cross float32
		flex       Flex
	}
	results := make([]childResult, len(children))

	// Phase 1: inflexible (Loose(0)) children.
	totalGap := gap * float32(maxInt(len(children)-1, 0))
	var inflexibleMain float32
	for i, c := range children {
		f := tree.View(c).Flex()
		results[i].id, results[i].flex = c, f
		if f.Kind == FlexLoose && f.Factor == 0 {
			sp := pack(axis, 0, FILL, minCross, maxCross)
			got := ctx.Compute(c, sp)
			results[i].main, results[i].cross = got.Get(axis), got.Get(axis.Cross())
			inflexibleMain += results[i].main
		}
	}

	remaining := maxMain - totalGap - inflexibleMain
	if remaining < 0 {
		remaining = 0
	}

	// Phase 2: loose flex.
	var looseFactorSum float32
	for _, r := range results {
		if r.flex.Kind == FlexLoose && r.flex.Factor > 0 {
			looseFactorSum += r.flex.Factor
		}
	}
	var usedLoose float32
	if looseFactorSum > 0 {
		for i, r := range results {
			if r.flex.Kind == FlexLoose && r.flex.Factor > 0 {
				budget := remaining * r.flex.Factor / looseFactorSum
				sp := pack(axis, 0, budget, minCross, maxCross)
				got := ctx.Compute(r.id, sp)
				results[i].main, results[i].cross = got.Get(axis), got.Get(axis.Cross())
				usedLoose += results[i].main
			}
		}
	}

	// Phase 3: tight flex, forcing full expansion of the remaining budget.
	remainingTight := remaining - usedLoose
	if remainingTight < 0 {
		remainingTight = 0
	}
	var tightFactorSum float32
	for _, r := range results {
		if r.flex.Kind == FlexTight {
			tightFactorSum += r.flex.Factor
		}
	}
	if tightFactorSum > 0 {
		for i, r := range results {
			if r.flex.Kind == FlexTight {
				budget := remainingTight * r.flex.Factor / tightFactorSum
				sp := pack(axis, budget, budget, minCross, maxCross)
				got := ctx.Compute(r.id, sp)
				results[i].main, results[i].cross = got.Get(axis), got.Get(axis.Cross())
			}
		}
	}

	maxChildCross := float32(0)
	var totalMain float32
	for _, r := range results {
		totalMain += r.main
		if r.cross > maxChildCross {
			maxChildCross = r.cross
		}
	}
	totalMain += totalGap

	// Cross-align, including the Stretch second pass.
	if align == AlignStretch {
		for i, r := range results {
			if r.cross < maxChildCross {
				sp := pack(axis, r.main, r.main, maxChildCross, maxChildCross)
				got := ctx.Compute(r.id, sp)
				results[i].cross = got.Get(axis.Cross())
			}
		}
	}

	// Position along main axis per Justify.
	n := len(results)
	startOffset, betweenGap := float32(0), gap
	freeSpace := maxMain - totalMain
	if freeSpace < 0 {
		freeSpace = 0
	}
	switch justify {
	case JustifyEnd:
		startOffset = freeSpace
	case JustifyCenter:
		startOffset = freeSpace / 2
	case JustifySpaceBetween:
		if n > 1 {
			betweenGap = gap + freeSpace/float32(n-1)
		}
	case JustifySpaceAround:
		if n > 0 {
			pad := freeSpace / float32(n)
			startOffset = pad / 2
			betweenGap = gap + pad
		}
	case JustifySpaceEvenly:
		if n >= 0 {
			pad := freeSpace / float32(n+1)
			startOffset = pad
			betweenGap = gap + pad
		}
	}

	cursor := startOffset
	for _, r := range results {
		crossPos := crossAlignOffset(align, maxCross, maxChildCross, r.cross)
		var pos Vec2
		if axis == Horizontal {
			pos = Vec2{X: cursor, Y: crossPos}
		} else {
			pos = Vec2{X: crossPos, Y: cursor}
		}
		ctx.SetPosition(r.id, pos)
		if align == AlignFill {
			ctx.SetSize(r.id, size(r.main, maxChildCross).Set(axis, r.main))
		}
		cursor += r.main + betweenGap
	}

	outMain := totalMain
	if justify != JustifyStart && justify != JustifyEnd && justify != JustifyCenter {
		outMain = maxMain
	}
	outCross := maxChildCross
	if align == AlignFill || align == AlignStretch {
		outCross = maxCross
	}
	return space.Fit(size(0, 0).Set(axis, outMain).Set(axis.Cross(), outCross))
}

func crossAlignOffset(align CrossAlign, maxCross, childrenCross, childCross float32) float32 {
	switch align {
	case AlignEnd:
		return maxCross - childCross
	case AlignCenter:
		return (maxCross - childCross) / 2
	default:
		return 0
	}
}

// WrapLayout performs greedy line-breaking along axis: children are
// packed onto "runs" (line ranges); each run's cross-extent is tracked;
// runs are stacked from the start of the cross axis crossGap apart, within
// a run children are packed from the start of the main axis mainGap apart,
// and each child is aligned within its run's cross-extent by itemAlign.
// runJustify is accepted but not applied: neither runs nor the children
// inside a run are justified.
//
// The number of children considered is bounded by width*height of the
// available space as a guard against infinite producers.
func WrapLayout(ctx *LayoutCtx, tree *ViewNodes, id ViewId, axis Axis, space Space, mainGap, crossGap float32, runJustify Justify, itemAlign CrossAlign) Size {
	children := tree.Children(id)
	maxMain := space.Max.Get(axis)
	maxCross := space.Max.Get(axis.Cross())

	guard := int(space.Max.Width) * int(space.Max.Height)
	if guard <= 0 {
		guard = 1 << 20
	}

	type item struct {
		id          ViewId
		main, cross float32
	}
	type run struct {
		items []item
		cross float32
	}

	var runs []run
	var cur run
	var curMain float32

	for i, c := range children {
		if i >= guard {
			break
		}
		sp := pack(axis, 0, FILL, 0, maxCross)
		got := ctx.Compute(c, sp)
		m, cr := got.Get(axis), got.Get(axis.Cross())

		if len(cur.items) > 0 && curMain+mainGap+m > maxMain {
			runs = append(runs, cur)
			cur = run{}
			curMain = 0
		}
		if len(cur.items) > 0 {
			curMain += mainGap
		}
		cur.items = append(cur.items, item{id: c, main: m, cross: cr})
		curMain += m
		if cr > cur.cross {
			cur.cross = cr
		}
	}
	if len(cur.items) > 0 {
		runs = append(runs, cur)
	}

	var totalCross float32
	for i, r := range runs {
		if i > 0 {
			totalCross += crossGap
		}
		totalCross += r.cross
	}

	crossCursor := float32(0)
	var outMain float32
	for _, r := range runs {
		var runMain float32
		for i, it := range r.items {
			if i > 0 {
				runMain += mainGap
			}
			runMain += it.main
		}
		if runMain > outMain {
			outMain = runMain
		}
		mainCursor := float32(0)
		for _, it := range r.items {
			crossOffset := crossAlignOffset(itemAlign, r.cross, r.cross, it.cross)
			var pos Vec2
			if axis == Horizontal {
				pos = Vec2{X: mainCursor, Y: crossCursor + crossOffset}
			} else {
				pos = Vec2{X: crossCursor + crossOffset, Y: mainCursor}
			}
			ctx.SetPosition(it.id, pos)
			mainCursor += it.main + mainGap
		}
		crossCursor += r.cross + crossGap
	}

	return space.Fit(size(0, 0).Set(axis, outMain).Set(axis.Cross(), totalCross))
}
