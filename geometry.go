package too

import "math"

// Axis is the orientation a container lays its children along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the axis perpendicular to a.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Pos2 is an integer screen position.
type Pos2 struct {
	X, Y int
}

func pos2(x, y int) Pos2 { return Pos2{X: x, Y: y} }

func (p Pos2) Add(v Vec2) Pos2 { return Pos2{X: p.X + int(v.X), Y: p.Y + int(v.Y)} }
func (p Pos2) Sub(q Pos2) Vec2 { return Vec2{X: float32(p.X - q.X), Y: float32(p.Y - q.Y)} }

// Vec2 is a floating displacement, used during layout before rects are
// truncated to integer screen coordinates.
type Vec2 struct {
	X, Y float32
}

func vec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// FILL marks an unbounded extent along an axis.
const FILL = float32(math.MaxFloat32)

// Size is a floating width/height pair, as produced during layout.
type Size struct {
	Width, Height float32
}

func size(w, h float32) Size { return Size{Width: w, Height: h} }

// Get returns the extent of s along the given axis.
func (s Size) Get(axis Axis) float32 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the extent along axis replaced.
func (s Size) Set(axis Axis, v float32) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Finite clamps FILL-valued components to a concrete upper bound, used when
// converting a laid-out Size into an integer Rect.
func (s Size) Finite(max Size) Size {
	w, h := s.Width, s.Height
	if w == FILL {
		w = max.Width
	}
	if h == FILL {
		h = max.Height
	}
	return Size{Width: w, Height: h}
}

// Rectf is a floating-point rectangle used internally during layout, before
// coordinates are resolved to integer screen positions.
type Rectf struct {
	Min, Max Vec2
}

func rectfFromSize(s Size) Rectf {
	return Rectf{Min: vec2(0, 0), Max: vec2(s.Width, s.Height)}
}

func (r Rectf) Size() Size { return size(r.Max.X-r.Min.X, r.Max.Y-r.Min.Y) }

func (r Rectf) Translate(v Vec2) Rectf {
	return Rectf{Min: vec2(r.Min.X+v.X, r.Min.Y+v.Y), Max: vec2(r.Max.X+v.X, r.Max.Y+v.Y)}
}

// Rect is an integer-valued rectangle in the final rendering coordinate
// space: [Min, Max).
type Rect struct {
	Min, Max Pos2
}

// NewRect builds a rect from a position and an integer size in
// columns/rows.
func NewRect(min Pos2, w, h int) Rect {
	return Rect{Min: min, Max: Pos2{X: min.X + w, Y: min.Y + h}}
}

func (r Rect) Width() int  { return r.Max.X - r.Min.X }
func (r Rect) Height() int { return r.Max.Y - r.Min.Y }

func (r Rect) Size() Size { return size(float32(r.Width()), float32(r.Height())) }

func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether p lies within r.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the largest rect contained in both r and other.
func (r Rect) Intersect(other Rect) Rect {
	min := Pos2{X: maxInt(r.Min.X, other.Min.X), Y: maxInt(r.Min.Y, other.Min.Y)}
	max := Pos2{X: minInt(r.Max.X, other.Max.X), Y: minInt(r.Max.Y, other.Max.Y)}
	if max.X < min.X {
		max.X = min.X
	}
	if max.Y < min.Y {
		max.Y = min.Y
	}
	return Rect{Min: min, Max: max}
}

// Translate shifts r by d.
func (r Rect) Translate(d Pos2) Rect {
	return Rect{
		Min: Pos2{X: r.Min.X + d.X, Y: r.Min.Y + d.Y},
		Max: Pos2{X: r.Max.X + d.X, Y: r.Max.Y + d.Y},
	}
}

// fromRectf truncates a floating layout rect into integer screen space,
// clamping to bound (typically the root rect).
func fromRectf(rf Rectf, bound Rect) Rect {
	r := Rect{
		Min: Pos2{X: int(rf.Min.X), Y: int(rf.Min.Y)},
		Max: Pos2{X: int(rf.Max.X), Y: int(rf.Max.Y)},
	}
	return r.Intersect(bound)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Margin is a uniform-or-per-side inset, used by containers like Border and
// Margin views.
type Margin struct {
	Left, Right, Top, Bottom int
}

func UniformMargin(n int) Margin { return Margin{Left: n, Right: n, Top: n, Bottom: n} }

func (m Margin) SumAxis(axis Axis) int {
	if axis == Horizontal {
		return m.Left + m.Right
	}
	return m.Top + m.Bottom
}

// Space is the constraint pair passed down during layout: every child's
// resolved Size must lie within [Min, Max].
type Space struct {
	Min, Max Size
}

func ExactSpace(s Size) Space   { return Space{Min: s, Max: s} }
func LooseSpace(max Size) Space { return Space{Min: size(0, 0), Max: max} }

// constrain clamps s to lie within the Space's bounds.
func (sp Space) Constrain(s Size) Size {
	return size(
		clampF(s.Width, sp.Min.Width, sp.Max.Width),
		clampF(s.Height, sp.Min.Height, sp.Max.Height),
	)
}

// shrink lowers Max by d along each axis, never going below Min.
func (sp Space) Shrink(d Size) Space {
	return Space{
		Min: sp.Min,
		Max: size(
			clampF(sp.Max.Width-d.Width, sp.Min.Width, FILL),
			clampF(sp.Max.Height-d.Height, sp.Min.Height, FILL),
		),
	}
}

// loosen drops the minimum bound to zero, keeping Max.
func (sp Space) Loosen() Space {
	return Space{Min: size(0, 0), Max: sp.Max}
}

// fit reports the size that best satisfies sp for a candidate intrinsic
// size, clamping each axis independently.
func (sp Space) Fit(s Size) Size { return sp.Constrain(s) }

// pack builds a Space from independent main/cross bound pairs, used by the
// list container when distributing budget along the main axis while
// keeping the cross-axis bounds fixed.
func pack(axis Axis, minMain, maxMain, minCross, maxCross float32) Space {
	if axis == Horizontal {
		return Space{Min: size(minMain, minCross), Max: size(maxMain, maxCross)}
	}
	return Space{Min: size(minCross, minMain), Max: size(maxCross, maxMain)}
}
