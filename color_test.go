package too

import "testing"

func TestParseColorHexForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Rgba
	}{
		{"short rgb", "#F00", RGB(0xFF, 0x00, 0x00)},
		{"short rgba", "#F00F", RGBA(0xFF, 0x00, 0x00, 0xFF)},
		{"long rgb", "#FF8000", RGB(0xFF, 0x80, 0x00)},
		{"long rgba lowercase", "#ff800080", RGBA(0xFF, 0x80, 0x00, 0x80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorRgbFunc(t *testing.T) {
	got, err := ParseColor("rgb(10,20,30)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Rgba{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("ParseColor(rgb(...)) = %v, want %v", got, want)
	}

	got, err = ParseColor("rgb(10, 20, 30, 128)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = Rgba{R: 10, G: 20, B: 30, A: 128}
	if got != want {
		t.Errorf("ParseColor(rgb(...,a)) = %v, want %v", got, want)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"blue", "#12", "#1234567", "rgb(1,2)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error, got none", in)
		}
	}
}

// Round-trip: parsing #RRGGBBAA then formatting {:08X} (here String())
// reproduces the original string, uppercase-normalized.
func TestParseColorRoundTrip(t *testing.T) {
	in := "#1a2b3cff"
	c, err := ParseColor(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "#1A2B3CFF"
	if got := c.String(); got != want {
		t.Errorf("round-trip String() = %q, want %q", got, want)
	}
}

func TestRgbaBlendAlpha(t *testing.T) {
	opaque := RGB(255, 0, 0)
	if got := opaque.blendAlpha(RGB(0, 255, 0)); got != opaque.WithAlpha(255) {
		t.Errorf("fully opaque blend should return the top color unchanged, got %v", got)
	}

	transparent := RGBA(255, 0, 0, 0)
	bottom := RGB(0, 255, 0)
	if got := transparent.blendAlpha(bottom); got != bottom {
		t.Errorf("fully transparent blend should return the bottom color, got %v", got)
	}
}
