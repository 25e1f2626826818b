package codequest

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testSkinJSON = `{
  "fonts": {
    "default": {"source": "bitmap"},
    "title": {"source": "goregular", "size": 32},
    "mono": {"source": "gomono", "size": 12}
  },
  "colors": {
    "menu-title": "#9EE493",
    "intro-prompt": "F2C0C0"
  },
  "button": {"width": 200, "height": 40, "pad": 8, "font": "title", "up": "102010", "focused": "40A040", "text": "FFFFFF"}
}`

// testResources returns resources backed by a map file system holding the
// test skin and no art.
func testResources(t *testing.T) *Resources {
	t.Helper()
	loader := NewAssetLoader(fstest.MapFS{"ui/skin.json": {Data: []byte(testSkinJSON)}})
	skin, err := LoadSkin(loader, DefaultSkinPath)
	if err != nil {
		t.Fatal(err)
	}
	return &Resources{Assets: loader, Skin: skin, Width: ScreenWidth, Height: ScreenHeight}
}

func TestLoadSkin(t *testing.T) {
	res := testResources(t)
	s := res.Skin
	if s.Button.Width != 200 || s.Button.Height != 40 || s.Button.Pad != 8 {
		t.Errorf("button = %+v", s.Button)
	}
	for _, name := range []string{"default", "title", "mono"} {
		if !s.HasFace(name) || s.Face(name) == nil {
			t.Errorf("face %q missing", name)
		}
	}
	if s.HasFace("label") {
		t.Error("label was not defined")
	}
	if s.Face("label") != s.Face("default") {
		t.Error("unknown face should fall back to default")
	}
	c := s.Color("menu-title", Color{})
	if !near(c.R, 0x9E/255.0) || c.A != 1 {
		t.Errorf("menu-title = %+v", c)
	}
	fallback := Color{0.1, 0.2, 0.3, 1}
	if got := s.Color("nope", fallback); got != fallback {
		t.Errorf("fallback = %+v", got)
	}
	up, focused, label := s.ButtonColors()
	if !near(up.G, 0x20/255.0) || !near(focused.G, 0xA0/255.0) || label != ColorWhite {
		t.Errorf("button colors = %+v %+v %+v", up, focused, label)
	}
}

func TestParseSkinDefaults(t *testing.T) {
	s, err := ParseSkin([]byte(`{}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Button.Width != 220 || s.Button.Height != 44 {
		t.Errorf("button defaults = %+v", s.Button)
	}
	if s.Face("default") == nil {
		t.Error("default face missing")
	}
	up, focused, _ := s.ButtonColors()
	if up == focused {
		t.Error("default palette should distinguish focus")
	}
}

func TestLoadSkinMissing(t *testing.T) {
	loader := NewAssetLoader(fstest.MapFS{})
	_, err := LoadSkin(loader, DefaultSkinPath)
	if !errors.Is(err, ErrMissingRequiredAsset) {
		t.Errorf("err = %v, want ErrMissingRequiredAsset", err)
	}
}

func TestLoadSkinInvalid(t *testing.T) {
	tests := map[string]string{
		"bad json":  `{"fonts":`,
		"bad color": `{"colors": {"x": "not-a-color"}}`,
		"bad font":  `{"fonts": {"x": {"source": "ui/fonts/missing.ttf", "size": 12}}}`,
		"bad ttf":   `{"fonts": {"x": {"source": "ui/fonts/junk.ttf", "size": 12}}}`,
	}
	for name, data := range tests {
		loader := NewAssetLoader(fstest.MapFS{
			"ui/skin.json":      {Data: []byte(data)},
			"ui/fonts/junk.ttf": {Data: []byte("junk")},
		})
		_, err := LoadSkin(loader, DefaultSkinPath)
		if !errors.Is(err, ErrMissingRequiredAsset) {
			t.Errorf("%s: err = %v, want ErrMissingRequiredAsset", name, err)
		}
	}
}
