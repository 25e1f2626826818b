package codequest

import (
	"math"
	"strings"
	"testing"
)

func checkStreak(t *testing.T, s streak) {
	t.Helper()
	if !streakSpeed.Contains(s.speed) {
		t.Errorf("speed = %v, want in %v", s.speed, streakSpeed)
	}
	if s.length < 6 || s.length > 16 {
		t.Errorf("length = %d, want 6..16", s.length)
	}
	if !streakAlpha.Contains(s.alpha) {
		t.Errorf("alpha = %v, want in %v", s.alpha, streakAlpha)
	}
	if len(s.content) != s.length {
		t.Errorf("content %q has %d chars, want %d", s.content, len(s.content), s.length)
	}
	for _, r := range s.content {
		if !strings.ContainsRune(glyphPool, r) {
			t.Errorf("content %q has %q, not in glyph pool", s.content, r)
		}
	}
}

func TestGlyphRainFieldSpawn(t *testing.T) {
	f := NewGlyphRainField(800, 480, DefaultStreakCount, ColorWhite, seeded(11))
	if f.Len() != 60 {
		t.Fatalf("Len = %d, want 60", f.Len())
	}
	for _, s := range f.streaks {
		if s.x < 0 || s.x > 800 {
			t.Errorf("x = %v, want in [0, 800]", s.x)
		}
		if s.y < 480 || s.y > 960 {
			t.Errorf("y = %v, want in [480, 960]", s.y)
		}
		checkStreak(t, s)
	}
}

func TestGlyphRainFieldFalls(t *testing.T) {
	f := NewGlyphRainField(800, 480, 1, ColorWhite)
	f.streaks[0] = streak{x: 10, y: 300, speed: 100, length: 3, content: "int", alpha: 0.1}
	f.Advance(0.5)
	if s := f.streaks[0]; math.Abs(s.y-250) > 1e-9 || s.content != "int" {
		t.Errorf("streak = %+v, want y=250 with content kept", s)
	}
	if f.Respawns() != 0 {
		t.Errorf("Respawns = %d, want 0", f.Respawns())
	}
}

func TestGlyphRainFieldRecyclesBelowFloor(t *testing.T) {
	f := NewGlyphRainField(800, 480, 1, ColorWhite, seeded(12))
	f.streaks[0] = streak{x: 10, y: -19, speed: 60, length: 3, content: "int", alpha: 0.1}
	f.Advance(0.01)
	if f.Respawns() != 0 {
		t.Fatalf("recycled at y=%v, floor is %v", f.streaks[0].y, streakFloor)
	}
	f.Advance(0.1)
	if f.Respawns() != 1 {
		t.Fatalf("Respawns = %d, want 1", f.Respawns())
	}
	s := f.streaks[0]
	if s.y < 480 || s.y > 960 {
		t.Errorf("respawned y = %v, want in [480, 960]", s.y)
	}
	checkStreak(t, s)
}

func TestGlyphRainFieldLongRun(t *testing.T) {
	f := NewGlyphRainField(800, 480, DefaultStreakCount, ColorWhite, seeded(13))
	for i := 0; i < 3000; i++ {
		f.Advance(1.0 / 60)
		for _, s := range f.streaks {
			if s.y < streakFloor {
				t.Fatalf("frame %d: streak below floor at %v", i, s.y)
			}
		}
	}
	if f.Len() != DefaultStreakCount {
		t.Errorf("Len = %d, want %d", f.Len(), DefaultStreakCount)
	}
	if f.Respawns() == 0 {
		t.Error("expected streaks to recycle")
	}
	for _, s := range f.streaks {
		checkStreak(t, s)
	}
}

func TestGlyphRainFieldRender(t *testing.T) {
	tint := Color{1, 0.4, 0.4, 1}
	f := NewGlyphRainField(800, 480, 5, tint, seeded(14))
	var b recordBatch
	f.Draw(&b, 0.25)
	if len(b.runs) != 5 || len(b.quads) != 0 {
		t.Fatalf("runs=%d quads=%d, want 5 and 0", len(b.runs), len(b.quads))
	}
	for i, g := range b.runs {
		s := f.streaks[i]
		if g.Text != s.content || g.X != s.x || g.Y != s.y {
			t.Errorf("run %d = %+v, streak %+v", i, g, s)
		}
		if math.Abs(g.Color.A-s.alpha*0.25) > 1e-12 {
			t.Errorf("run %d alpha = %v, want %v", i, g.Color.A, s.alpha*0.25)
		}
		if g.Color.G != tint.G {
			t.Errorf("run %d tint = %+v", i, g.Color)
		}
	}
}
