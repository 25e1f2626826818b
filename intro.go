package codequest

import (
	"github.com/tanema/gween/ease"
)

const (
	introHolo     = "Welcome to the Digital Realm. The system is infected.\nOnly your Java skills can save it."
	introContinue = "Press Enter to continue..."

	introFadeIn      = 0.6
	introFadeOut     = 0.4
	introPulseLeg    = 0.6
	introBlinkLeg    = 0.6
	introGroundWidth = 400.0
	introGround      = 30.0
)

var (
	introClear            = Color{0, 0, 0, 1}
	introBackground       = Color{0.05, 0, 0.02, 1}
	introRainTint         = Color{1, 0.4, 0.4, 1}
	introAvatarFill       = Color{0.18, 0.18, 0.18, 1}
	introBugFill          = Color{0.6, 0.1, 0.1, 1}
	introHoloColor        = Color{0.8, 1, 1, 0.88}
	introContinueColor    = MustHex("F2C0C0")
	introGroundNatural    = Color{0.12, 0.22, 0.12, 1}
	introGroundCorrupted  = Color{0.8, 0.1, 0.1, 1}
	introGroundFillNature = Color{0.1, 0.2, 0.1, 1}
	introGroundFillBug    = Color{0.6, 0.1, 0.1, 1}
)

// IntroScreen is the story card shown after Start: a corrupted biome, the
// chosen avatar facing a bug and a prompt to continue.
type IntroScreen struct {
	screenBase

	rain   *GlyphRainField
	female bool
	holo   *Node
	prompt *Node
}

// IntroFactory returns a factory for the intro with the given avatar.
func IntroFactory(female bool) ScreenFactory {
	return func(res *Resources) (Screen, error) {
		s, err := NewIntroScreen(res, female)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// NewIntroScreen lays out the intro for res.
func NewIntroScreen(res *Resources, female bool, opts ...FieldOption) (*IntroScreen, error) {
	if res == nil || res.Skin == nil {
		return nil, ErrNoSkin
	}
	w, h := screenSize(res)
	skin := res.Skin
	s := &IntroScreen{
		screenBase: newScreenBase("intro", res, NewInputRouter(ModeIntro, 0), introFadeIn, introFadeOut, skin.Color("intro-clear", introClear)),
		female:     female,
	}
	root := s.root
	root.Width, root.Height = w, h

	root.AddChild(NewSprite("background", s.textures.OrPlaceholder(PathCorruptedBiome, introBackground, 8, 8), w, h))

	s.rain = NewGlyphRainField(w, h, DefaultStreakCount, skin.Color("intro-rain", introRainTint), opts...)
	root.AddChild(NewFieldLayer("rain", s.rain, skin.Face("default"), w, h))

	s.holo = NewText("holo", introHolo, skin.Face("label"))
	s.holo.Y, s.holo.Width = 40, w
	s.holo.Text.Align = TextAlignCenter
	s.holo.Text.WrapWidth = w - 80
	s.holo.Text.Color = introHoloColor
	root.AddChild(s.holo)
	s.anims.Add(PulseAlpha(s.holo, 0.7, 0.9, introPulseLeg))

	avatarPath := PathAvatarMale
	if female {
		avatarPath = PathAvatarFemale
	}
	avatar := NewSprite("avatar", s.textures.OrPlaceholder(avatarPath, introAvatarFill, 96, 128), 140, 160)
	avatar.X, avatar.Y = w/2-30-140, 170
	root.AddChild(avatar)

	bug := NewSprite("bug", s.textures.OrPlaceholder(PathBug, introBugFill, 96, 96), 120, 120)
	bug.X, bug.Y = w/2+30, 210
	root.AddChild(bug)

	groundY := h - 10 - introGround - LineHeight(skin.Face("default")) - 20
	nature := NewSprite("ground-nature", s.textures.Placeholder(introGroundFillNature, 8, 8), introGroundWidth, introGround)
	nature.X, nature.Y = w/2-introGroundWidth, groundY
	nature.Color = introGroundNatural
	root.AddChild(nature)
	corrupted := NewSprite("ground-corrupted", s.textures.Placeholder(introGroundFillBug, 8, 8), introGroundWidth, introGround)
	corrupted.X, corrupted.Y = w/2, groundY
	corrupted.Color = introGroundCorrupted
	root.AddChild(corrupted)

	s.prompt = NewText("prompt", introContinue, skin.Face("default"))
	s.prompt.Y, s.prompt.Width = groundY+introGround+10, w
	s.prompt.Text.Align = TextAlignCenter
	s.prompt.Text.Color = skin.Color("intro-prompt", introContinueColor)
	root.AddChild(s.prompt)
	s.anims.Add(newBlink(s.prompt, introBlinkLeg))

	return s, nil
}

// Female reports which avatar the intro shows.
func (s *IntroScreen) Female() bool {
	return s.female
}

// Rain returns the backdrop glyph rain.
func (s *IntroScreen) Rain() *GlyphRainField {
	return s.rain
}

// HandleAction implements Screen. Any confirm returns to the menu; cancel
// is ignored.
func (s *IntroScreen) HandleAction(a Action) Outcome {
	if a.Kind == ActionContinue {
		return Outcome{Next: MenuFactory}
	}
	return Outcome{}
}

// blink fades a node out and back in forever with linear legs.
type blink struct {
	target *Node
	leg    float32
	cur    *Chain
}

func newBlink(n *Node, leg float32) *blink {
	b := &blink{target: n, leg: leg}
	b.restart()
	return b
}

func (b *blink) restart() {
	b.cur = NewChain(
		TweenAlpha(b.target, 0, b.leg, ease.Linear),
		TweenAlpha(b.target, 1, b.leg, ease.Linear),
	)
}

func (b *blink) Update(dt float32) {
	if b.target.IsDisposed() {
		return
	}
	b.cur.Update(dt)
	if b.cur.Finished() {
		b.restart()
	}
}

func (b *blink) Finished() bool {
	return b.target.IsDisposed()
}
