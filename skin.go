package codequest

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DefaultSkinPath is where the UI skin lives inside the asset directory.
const DefaultSkinPath = "ui/skin.json"

// fontSourceBitmap selects the built-in bitmap face.
const fontSourceBitmap = "bitmap"

// FontSpec names a face in the skin. Source is "bitmap", a built-in TTF
// ("goregular", "gomono") or a TTF path inside the asset directory.
type FontSpec struct {
	Source string  `json:"source"`
	Size   float64 `json:"size,omitempty"`
}

// ButtonStyle sizes and colors menu buttons.
type ButtonStyle struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Pad     float64 `json:"pad"`
	Font    string  `json:"font,omitempty"`
	Up      string  `json:"up"`
	Focused string  `json:"focused"`
	Text    string  `json:"text"`
}

// skinFile is the JSON layout of the skin resource.
type skinFile struct {
	Fonts  map[string]FontSpec `json:"fonts"`
	Colors map[string]string   `json:"colors"`
	Button ButtonStyle         `json:"button"`
}

// Skin is the UI look shared by all screens: named faces, named colors and
// button metrics. It is the one asset the game refuses to start without.
type Skin struct {
	Button ButtonStyle

	faces  map[string]text.Face
	colors map[string]Color
}

// defaultButton fills unset button metrics.
var defaultButton = ButtonStyle{Width: 220, Height: 44, Pad: 10}

// LoadSkin reads and parses the skin at path. Every failure, including a
// malformed file or an unloadable font, matches ErrMissingRequiredAsset.
func LoadSkin(loader *AssetLoader, path string) (*Skin, error) {
	data, err := loader.ReadRequired(path)
	if err != nil {
		return nil, err
	}
	skin, err := ParseSkin(data, loader)
	if err != nil {
		return nil, &AssetError{Path: path, Required: true, Err: err}
	}
	return skin, nil
}

// ParseSkin builds a Skin from JSON. loader resolves TTF paths and may be nil
// when the skin only uses built-in fonts.
func ParseSkin(data []byte, loader *AssetLoader) (*Skin, error) {
	var f skinFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse skin: %w", err)
	}
	s := &Skin{
		Button: f.Button,
		faces:  make(map[string]text.Face, len(f.Fonts)+1),
		colors: make(map[string]Color, len(f.Colors)),
	}
	if s.Button.Width <= 0 {
		s.Button.Width = defaultButton.Width
	}
	if s.Button.Height <= 0 {
		s.Button.Height = defaultButton.Height
	}
	if s.Button.Pad < 0 {
		s.Button.Pad = defaultButton.Pad
	}
	for name, spec := range f.Fonts {
		face, err := loadFace(spec, loader)
		if err != nil {
			return nil, fmt.Errorf("parse skin: font %q: %w", name, err)
		}
		s.faces[name] = face
	}
	// Screens always ask for "default"; make sure it resolves.
	if _, ok := s.faces["default"]; !ok {
		s.faces["default"] = BitmapFace()
	}
	for name, hex := range f.Colors {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("parse skin: color %q: %w", name, err)
		}
		s.colors[name] = c
	}
	return s, nil
}

func loadFace(spec FontSpec, loader *AssetLoader) (text.Face, error) {
	switch spec.Source {
	case "", fontSourceBitmap:
		return BitmapFace(), nil
	}
	if data, ok := builtinFonts[spec.Source]; ok {
		return LoadTTFFace(data, spec.Size)
	}
	data, err := loader.ReadRequired(spec.Source)
	if err != nil {
		return nil, err
	}
	return LoadTTFFace(data, spec.Size)
}

// Face returns the named face, or the default face when name is unknown.
func (s *Skin) Face(name string) text.Face {
	if f, ok := s.faces[name]; ok {
		return f
	}
	return s.faces["default"]
}

// HasFace reports whether the skin defines name.
func (s *Skin) HasFace(name string) bool {
	_, ok := s.faces[name]
	return ok
}

// Color returns the named color, or fallback when the skin does not define it.
func (s *Skin) Color(name string, fallback Color) Color {
	if c, ok := s.colors[name]; ok {
		return c
	}
	return fallback
}

// ButtonColors resolves the button palette.
func (s *Skin) ButtonColors() (up, focused, label Color) {
	up = s.hexOr(s.Button.Up, Color{0.12, 0.17, 0.14, 0.9})
	focused = s.hexOr(s.Button.Focused, Color{0.24, 0.43, 0.28, 1})
	label = s.hexOr(s.Button.Text, ColorWhite)
	return up, focused, label
}

func (s *Skin) hexOr(hex string, fallback Color) Color {
	if hex == "" {
		return fallback
	}
	c, err := ParseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}
