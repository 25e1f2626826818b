package codequest

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"ui/skin.json":  {Data: []byte(testSkinJSON)},
		PathBug:         {Data: pngBytes(t, 12, 8)},
		"ui/broken.png": {Data: []byte("not a png")},
	}
}

func TestLoadTextureMissing(t *testing.T) {
	l := NewAssetLoader(testAssets(t))
	img, err := l.LoadTexture(PathGreenValley)
	if img != nil {
		t.Error("expected nil image for missing asset")
	}
	if !errors.Is(err, ErrMissingOptionalAsset) {
		t.Errorf("err = %v, want ErrMissingOptionalAsset", err)
	}
	if errors.Is(err, ErrMissingRequiredAsset) {
		t.Error("optional miss should not match ErrMissingRequiredAsset")
	}
	var ae *AssetError
	if !errors.As(err, &ae) || ae.Path != PathGreenValley {
		t.Errorf("err = %#v, want *AssetError for %s", err, PathGreenValley)
	}
}

func TestLoadTextureDecodeFailure(t *testing.T) {
	l := NewAssetLoader(testAssets(t))
	if _, err := l.LoadTexture("ui/broken.png"); !errors.Is(err, ErrMissingOptionalAsset) {
		t.Errorf("err = %v, want ErrMissingOptionalAsset", err)
	}
}

func TestLoadTexture(t *testing.T) {
	l := NewAssetLoader(testAssets(t))
	img, err := l.LoadTexture(PathBug)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("size = %dx%d, want 12x8", b.Dx(), b.Dy())
	}
}

func TestAssetLoaderNilFS(t *testing.T) {
	l := NewAssetLoader(nil)
	if l.Exists("ui/skin.json") {
		t.Error("nil FS should hold nothing")
	}
	if _, err := l.ReadRequired("ui/skin.json"); !errors.Is(err, ErrMissingRequiredAsset) {
		t.Errorf("err = %v, want ErrMissingRequiredAsset", err)
	}
	var nilLoader *AssetLoader
	if nilLoader.Exists("x") {
		t.Error("nil loader should hold nothing")
	}
}

func TestReadRequired(t *testing.T) {
	l := NewAssetLoader(testAssets(t))
	data, err := l.ReadRequired("ui/skin.json")
	if err != nil || len(data) == 0 {
		t.Fatalf("ReadRequired = %d bytes, %v", len(data), err)
	}
	_, err = l.ReadRequired("ui/other.json")
	if !errors.Is(err, ErrMissingRequiredAsset) {
		t.Errorf("err = %v, want ErrMissingRequiredAsset", err)
	}
}

func TestSolidPlaceholder(t *testing.T) {
	img := SolidPlaceholder(Color{0.15, 0.18, 0.15, 1}, 96, 128)
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 128 {
		t.Errorf("size = %dx%d, want 96x128", b.Dx(), b.Dy())
	}
	tiny := SolidPlaceholder(ColorWhite, 0, -4)
	if b := tiny.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("clamped size = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestTextureSet(t *testing.T) {
	set := NewTextureSet(NewAssetLoader(testAssets(t)))
	if img := set.Optional(PathLogo); img != nil {
		t.Error("missing optional texture should be nil")
	}
	bug := set.OrPlaceholder(PathBug, ColorWhite, 1, 1)
	if b := bug.Bounds(); b.Dx() != 12 {
		t.Errorf("loaded texture width = %d, want 12", b.Dx())
	}
	ph := set.OrPlaceholder(PathAvatarMale, ColorWhite, 96, 128)
	if b := ph.Bounds(); b.Dx() != 96 || b.Dy() != 128 {
		t.Errorf("placeholder size = %dx%d", b.Dx(), b.Dy())
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}

	set.Release()
	set.Release()
	if !set.Released() || set.Len() != 0 {
		t.Errorf("released=%v len=%d", set.Released(), set.Len())
	}
}

func TestAssetErrorMessage(t *testing.T) {
	e := &AssetError{Path: "ui/a.png"}
	if e.Error() != "optional asset ui/a.png: not found" {
		t.Errorf("Error = %q", e.Error())
	}
	e = &AssetError{Path: "ui/skin.json", Required: true, Err: errors.New("gone")}
	if e.Error() != "required asset ui/skin.json: gone" {
		t.Errorf("Error = %q", e.Error())
	}
}
