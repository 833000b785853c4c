package too

import "testing"

// tightFlexLeaf stands in for widgets.ExpandSpace: a zero-intrinsic-size
// leaf that claims a proportional share of its parent's main axis.
type tightFlexLeaf struct{ BaseView }

func newTightFlexLeaf(struct{}) ViewFactory[struct{}, struct{}] { return &tightFlexLeaf{} }
func (v *tightFlexLeaf) Update(struct{}) struct{}               { return struct{}{} }
func (v *tightFlexLeaf) Flex() Flex                             { return Tight(1) }
func (v *tightFlexLeaf) Layout(ctx *LayoutCtx, space Space) Size { return space.Fit(Size{}) }
func (v *tightFlexLeaf) Draw(ctx *RenderCtx)                     {}

func beginTightFlexLeaf(ui *Ui) ViewId {
	id, _ := BeginView[struct{}, struct{}](ui, (*tightFlexLeaf)(nil), newTightFlexLeaf, struct{}{})
	ui.EndView(id)
	return id
}

// fixedLeaf reports a caller-supplied intrinsic size, standing in for a
// widget like Label whose intrinsic size does not depend on the space
// offered.
type fixedLeaf struct {
	BaseView
	w, h float32
}

func newFixedLeaf(sz Size) ViewFactory[Size, struct{}] { return &fixedLeaf{w: sz.Width, h: sz.Height} }
func (v *fixedLeaf) Update(sz Size) struct{}           { v.w, v.h = sz.Width, sz.Height; return struct{}{} }
func (v *fixedLeaf) Layout(ctx *LayoutCtx, space Space) Size {
	return space.Fit(size(v.w, v.h))
}
func (v *fixedLeaf) Draw(ctx *RenderCtx) {}

func beginFixedLeaf(ui *Ui, w, h float32) ViewId {
	id, _ := BeginView[Size, struct{}](ui, (*fixedLeaf)(nil), newFixedLeaf, size(w, h))
	ui.EndView(id)
	return id
}

// listContainer wraps ListLayout as a container view, the minimal stand-in
// for widgets.List used to test the reference flex algorithm in isolation.
type listContainer struct {
	BaseView
	axis    Axis
	gap     float32
	justify Justify
	align   CrossAlign
}

func newListContainer(args listContainer) ViewFactory[listContainer, struct{}] {
	c := args
	return &c
}
func (v *listContainer) Update(args listContainer) struct{} { *v = args; return struct{}{} }
func (v *listContainer) PrimaryAxis() Axis                  { return v.axis }
func (v *listContainer) Layout(ctx *LayoutCtx, space Space) Size {
	return ListLayout(ctx, ctx.Tree(), ctx.Self(), v.axis, space, v.gap, v.justify, v.align)
}
func (v *listContainer) Draw(ctx *RenderCtx) {}

func beginListContainer(ui *Ui, args listContainer) ViewId {
	id, _ := BeginView[listContainer, struct{}](ui, (*listContainer)(nil), newListContainer, args)
	return id
}

// End-to-end scenario 2: a horizontal list of three expand_space() children
// in a 30x1 rect yields widths 10,10,10 at x=0,10,20.
func TestE2EHorizontalListOfExpandSpace(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	list := beginListContainer(ui, listContainer{axis: Horizontal, align: AlignStart})
	var children []ViewId
	for i := 0; i < 3; i++ {
		children = append(children, beginTightFlexLeaf(ui))
	}
	ui.EndView(list)

	rect := NewRect(Pos2{}, 30, 1)
	lt.ComputeAll(rect)

	wantX := []int{0, 10, 20}
	for i, c := range children {
		r := lt.Rect(c)
		if r.Width() != 10 {
			t.Errorf("child %d width = %d, want 10", i, r.Width())
		}
		if r.Min.X != wantX[i] {
			t.Errorf("child %d x = %d, want %d", i, r.Min.X, wantX[i])
		}
	}
}

// End-to-end scenario 1 (core half): a single fixed-size child centered
// within an 80x25 rect lands at the spec's Rect{min:(37,12), max:(42,13)}
// for a 5x1 intrinsic size ("hello" is 5 columns wide).
type centerContainer struct{ BaseView }

func newCenterContainer(struct{}) ViewFactory[struct{}, struct{}] { return &centerContainer{} }
func (v *centerContainer) Update(struct{}) struct{}               { return struct{}{} }
func (v *centerContainer) Layout(ctx *LayoutCtx, space Space) Size {
	sz := space.Max.Finite(space.Max)
	for _, child := range ctx.Children() {
		got := ctx.Compute(child, space)
		pos := Vec2{X: (sz.Width - got.Width) / 2, Y: (sz.Height - got.Height) / 2}
		ctx.SetPosition(child, pos)
	}
	return space.Fit(sz)
}
func (v *centerContainer) Draw(ctx *RenderCtx) {}

func beginCenterContainer(ui *Ui) ViewId {
	id, _ := BeginView[struct{}, struct{}](ui, (*centerContainer)(nil), newCenterContainer, struct{}{})
	return id
}

func TestE2ECenterLabel(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	center := beginCenterContainer(ui)
	label := beginFixedLeaf(ui, 5, 1)
	ui.EndView(center)

	rect := NewRect(Pos2{}, 80, 25)
	lt.ComputeAll(rect)

	got := lt.Rect(label)
	want := Rect{Min: pos2(37, 12), Max: pos2(42, 13)}
	if got != want {
		t.Errorf("centered label rect = %v, want %v", got, want)
	}
}

func TestListLayoutJustifySpaceBetween(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	list := beginListContainer(ui, listContainer{axis: Horizontal, justify: JustifySpaceBetween})
	a := beginFixedLeaf(ui, 2, 1)
	b := beginFixedLeaf(ui, 2, 1)
	c := beginFixedLeaf(ui, 2, 1)
	ui.EndView(list)

	lt.ComputeAll(NewRect(Pos2{}, 20, 1))

	if x := lt.Rect(a).Min.X; x != 0 {
		t.Errorf("first child x = %d, want 0", x)
	}
	if x := lt.Rect(c).Min.X; x != 18 {
		t.Errorf("last child x = %d, want 18 (flush to the far edge)", x)
	}
	if lt.Rect(b).Min.X <= lt.Rect(a).Min.X || lt.Rect(b).Min.X >= lt.Rect(c).Min.X {
		t.Errorf("middle child should sit strictly between the ends, got %d", lt.Rect(b).Min.X)
	}
}

func TestListLayoutTightFlexSharesRemainingSpace(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	list := beginListContainer(ui, listContainer{axis: Horizontal})
	fixed := beginFixedLeaf(ui, 10, 1)
	flexA := beginTightFlexLeaf(ui) // equal Tight(1) factors split the remaining budget evenly
	flexB := beginTightFlexLeaf(ui)
	ui.EndView(list)

	lt.ComputeAll(NewRect(Pos2{}, 30, 1))

	if w := lt.Rect(fixed).Width(); w != 10 {
		t.Errorf("inflexible child width = %d, want 10", w)
	}
	wa, wb := lt.Rect(flexA).Width(), lt.Rect(flexB).Width()
	if wa != 10 || wb != 10 {
		t.Errorf("equal-factor tight children should split the remaining 20 columns evenly, got %d and %d", wa, wb)
	}
}

func TestWrapLayoutBreaksLines(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	parent, _ := BeginView[struct{}, struct{}](ui, (*wrapContainerT)(nil), newWrapContainerT, struct{}{})
	var children []ViewId
	for i := 0; i < 5; i++ {
		children = append(children, beginFixedLeaf(ui, 4, 1))
	}
	ui.EndView(parent)

	lt.ComputeAll(NewRect(Pos2{}, 10, 10))

	// Each item is 4 wide; 10-wide rows fit 2 per row (4+4=8, a third would
	// need 12). Five items should form three runs: [0,1] [2,3] [4].
	if lt.Rect(children[0]).Min.Y != lt.Rect(children[1]).Min.Y {
		t.Error("first two items should share the first run's row")
	}
	if lt.Rect(children[2]).Min.Y == lt.Rect(children[0]).Min.Y {
		t.Error("the third item should have wrapped onto a new run")
	}
	if lt.Rect(children[4]).Min.Y <= lt.Rect(children[2]).Min.Y {
		t.Error("the fifth item should be on a later run than the third")
	}
}

type wrapContainerT struct{ BaseView }

func newWrapContainerT(struct{}) ViewFactory[struct{}, struct{}] { return &wrapContainerT{} }
func (v *wrapContainerT) Update(struct{}) struct{}               { return struct{}{} }
func (v *wrapContainerT) Layout(ctx *LayoutCtx, space Space) Size {
	return WrapLayout(ctx, ctx.Tree(), ctx.Self(), Horizontal, space, 0, 0, JustifyStart, AlignStart)
}
func (v *wrapContainerT) Draw(ctx *RenderCtx) {}

// Universal invariant: after compute_all, every non-empty layout rect is
// contained in the root rect.
func TestComputeAllRectsContainedInRoot(t *testing.T) {
	vn := NewViewNodes()
	lt := NewLayoutNodes(vn)
	ui := &Ui{tree: vn}

	vn.resetFrame()
	list := beginListContainer(ui, listContainer{axis: Vertical})
	var kids []ViewId
	for i := 0; i < 4; i++ {
		kids = append(kids, beginFixedLeaf(ui, 100, 3)) // deliberately oversized
	}
	ui.EndView(list)

	root := NewRect(Pos2{}, 20, 10)
	lt.ComputeAll(root)

	for _, k := range kids {
		r := lt.Rect(k)
		if r.IsEmpty() {
			continue
		}
		if r.Min.X < root.Min.X || r.Min.Y < root.Min.Y || r.Max.X > root.Max.X || r.Max.Y > root.Max.Y {
			t.Errorf("child rect %v escapes root rect %v", r, root)
		}
	}
}
