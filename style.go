package too

// Attr is a bitset of text attributes (Bold/Dim/Italic/Underline/Inverse/
// Strikethrough), packed as flags so it can be compared/merged cheaply in
// the cell buffer's diff pass.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrInverse
	AttrStrikethrough
)

func (a Attr) Has(f Attr) bool { return a&f != 0 }

// ColorValue is the fg/bg policy a Cell or Style carries: an explicit
// color, "reuse whatever is already there", or "force the terminal
// default" — a Set/Reuse/Reset tri-state, since truecolor has no sentinel
// "unset" value.
type ColorValue struct {
	kind colorKind
	rgba Rgba
}

type colorKind uint8

const (
	colorReuse colorKind = iota
	colorReset
	colorSet
)

var (
	Reuse      = ColorValue{kind: colorReuse}
	ResetColor = ColorValue{kind: colorReset}
)

func SetColor(c Rgba) ColorValue { return ColorValue{kind: colorSet, rgba: c} }

func (c ColorValue) IsReuse() bool        { return c.kind == colorReuse }
func (c ColorValue) IsReset() bool        { return c.kind == colorReset }
func (c ColorValue) Get() (Rgba, bool)    { return c.rgba, c.kind == colorSet }

// Style is the resolved paint applied to a cell: a foreground/background
// policy plus an attribute bitset.
type Style struct {
	Fg, Bg ColorValue
	Attr   Attr
}

var EmptyStyle = Style{Fg: Reuse, Bg: Reuse}

// Merge layers other on top of s: explicit fields in other win, Reuse
// fields fall through to s. Attributes OR together.
func (s Style) Merge(other Style) Style {
	out := s
	if !other.Fg.IsReuse() {
		out.Fg = other.Fg
	}
	if !other.Bg.IsReuse() {
		out.Bg = other.Bg
	}
	out.Attr |= other.Attr
	return out
}

// Palette holds the semantic color roles a Class resolves against, per the
// spec's "~12 named semantic colors" data model entry.
type Palette struct {
	Background Rgba
	Foreground Rgba
	Surface    Rgba
	Outline    Rgba
	Contrast   Rgba
	Primary    Rgba
	Secondary  Rgba
	Accent     Rgba
	Danger     Rgba
	Success    Rgba
	Warning    Rgba
	Info       Rgba
}

// DarkPalette is the default palette used when none is configured, chosen
// to keep Fg/Bg near (not at) the classic black/white extremes.
var DarkPalette = Palette{
	Background: RGB(0x10, 0x10, 0x18),
	Foreground: RGB(0xE8, 0xE8, 0xEC),
	Surface:    RGB(0x20, 0x20, 0x28),
	Outline:    RGB(0x50, 0x50, 0x58),
	Contrast:   RGB(0xFF, 0xFF, 0xFF),
	Primary:    RGB(0x5C, 0x9E, 0xFF),
	Secondary:  RGB(0x9E, 0x5C, 0xFF),
	Accent:     RGB(0xFF, 0xC1, 0x4E),
	Danger:     RGB(0xE5, 0x4B, 0x4B),
	Success:    RGB(0x4B, 0xC8, 0x7A),
	Warning:    RGB(0xE8, 0xA3, 0x3D),
	Info:       RGB(0x4E, 0xB8, 0xE8),
}

// WidgetState is the set of interaction flags a Class function may key its
// resolved Style on (hovered, focused, pressed, disabled).
type WidgetState struct {
	Hovered, Focused, Pressed, Disabled bool
}

// Class is a lazily-resolved style: a function of the current palette and a
// view's interaction state, allowing theme changes to apply without each
// view caching a stale Style.
type Class func(p Palette, state WidgetState) Style

// StyleKind is a tagged union choosing between a directly-supplied Style
// and a deferred Class, mirroring the data model's "StyleKind picks a
// deferred class or a directly-supplied style."
type StyleKind struct {
	style Style
	class Class
	isClass bool
}

func StaticStyle(s Style) StyleKind { return StyleKind{style: s} }
func ClassStyle(c Class) StyleKind  { return StyleKind{class: c, isClass: true} }

// Resolve computes the concrete Style for the current palette/state.
func (k StyleKind) Resolve(p Palette, state WidgetState) Style {
	if k.isClass {
		return k.class(p, state)
	}
	return k.style
}
