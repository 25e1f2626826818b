package codequest

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// AssetLoader reads game assets from a file system rooted at the asset
// directory (paths look like "ui/backgrounds/green_valley.png").
type AssetLoader struct {
	fsys  fs.FS
	debug bool
}

// NewAssetLoader returns a loader over fsys.
func NewAssetLoader(fsys fs.FS) *AssetLoader {
	return &AssetLoader{fsys: fsys}
}

// SetDebugMode enables stderr logging of placeholder substitutions.
func (l *AssetLoader) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// Exists reports whether path names a readable file.
func (l *AssetLoader) Exists(path string) bool {
	if l == nil || l.fsys == nil {
		return false
	}
	info, err := fs.Stat(l.fsys, path)
	return err == nil && !info.IsDir()
}

// LoadTexture decodes the image at path. A missing or undecodable file
// yields a nil image and an *AssetError matching ErrMissingOptionalAsset.
func (l *AssetLoader) LoadTexture(path string) (*ebiten.Image, error) {
	if !l.Exists(path) {
		return nil, &AssetError{Path: path, Err: fs.ErrNotExist}
	}
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, &AssetError{Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return ebiten.NewImageFromImage(img), nil
}

// ReadRequired returns the contents of a file the game cannot run without.
// Any failure is an *AssetError matching ErrMissingRequiredAsset.
func (l *AssetLoader) ReadRequired(path string) ([]byte, error) {
	if l == nil || l.fsys == nil {
		return nil, &AssetError{Path: path, Required: true, Err: errors.New("no asset file system")}
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, &AssetError{Path: path, Required: true, Err: err}
	}
	return data, nil
}

// SolidPlaceholder creates a w×h image filled with c. Non-positive sizes are
// clamped to 1.
func SolidPlaceholder(c Color, w, h int) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c.RGBA())
	return img
}

// TextureSet loads textures for one screen and releases all of them together.
type TextureSet struct {
	loader   *AssetLoader
	owned    []*ebiten.Image
	released bool
}

// NewTextureSet returns an empty set loading through loader.
func NewTextureSet(loader *AssetLoader) *TextureSet {
	return &TextureSet{loader: loader}
}

// Optional loads path, returning nil when the asset is missing.
func (s *TextureSet) Optional(path string) *ebiten.Image {
	img, err := s.loader.LoadTexture(path)
	if err != nil {
		if s.loader != nil && s.loader.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[codequest] %v\n", err)
		}
		return nil
	}
	return s.track(img)
}

// OrPlaceholder loads path, substituting a w×h image of color c when the
// asset is missing.
func (s *TextureSet) OrPlaceholder(path string, c Color, w, h int) *ebiten.Image {
	if img := s.Optional(path); img != nil {
		return img
	}
	return s.Placeholder(c, w, h)
}

// Placeholder creates a solid w×h image owned by the set.
func (s *TextureSet) Placeholder(c Color, w, h int) *ebiten.Image {
	return s.track(SolidPlaceholder(c, w, h))
}

func (s *TextureSet) track(img *ebiten.Image) *ebiten.Image {
	s.owned = append(s.owned, img)
	return img
}

// Len returns the number of textures the set owns.
func (s *TextureSet) Len() int {
	return len(s.owned)
}

// Release deallocates every owned texture. Subsequent calls are no-ops.
func (s *TextureSet) Release() {
	if s.released {
		return
	}
	s.released = true
	for i, img := range s.owned {
		img.Deallocate()
		s.owned[i] = nil
	}
	s.owned = nil
}

// Released reports whether Release has run.
func (s *TextureSet) Released() bool {
	return s.released
}
