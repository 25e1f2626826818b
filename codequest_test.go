package codequest

import (
	"math/rand/v2"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"9EE493", Color{0x9E / 255.0, 0xE4 / 255.0, 0x93 / 255.0, 1}},
		{"#B6F6C1", Color{0xB6 / 255.0, 0xF6 / 255.0, 0xC1 / 255.0, 1}},
		{" #000000 ", Color{0, 0, 0, 1}},
		{"#fff", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || got.A != 1 {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "zzzzzz", "#12345"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on bad input")
		}
	}()
	MustHex("nope")
}

func TestColorRGBAPremultiplied(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.RGBA()
	if c.A != 128 || c.R != 128 || c.G != 64 || c.B != 0 {
		t.Errorf("RGBA = %+v", c)
	}
	if white := ColorWhite.RGBA(); white.R != 255 || white.A != 255 {
		t.Errorf("white = %+v", white)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 1}.WithAlpha(0.25)
	if c.A != 0.25 || c.R != 0.1 {
		t.Errorf("WithAlpha = %+v", c)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 30, true},
		{9.9, 30, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := Range{-10, 10}
	for i := 0; i < 1000; i++ {
		if v := r.Random(rng); !r.Contains(v) {
			t.Fatalf("sample %v outside %v", v, r)
		}
		if v := r.Random(nil); !r.Contains(v) {
			t.Fatalf("global sample %v outside %v", v, r)
		}
	}
	if v := (Range{3, 3}).Random(rng); v != 3 {
		t.Errorf("degenerate range = %v, want 3", v)
	}
}

func TestWhitePixel(t *testing.T) {
	if WhitePixel == nil {
		t.Fatal("WhitePixel is nil")
	}
	b := WhitePixel.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("WhitePixel size = %dx%d", b.Dx(), b.Dy())
	}
}
