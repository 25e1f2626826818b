package codequest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
)

// Optional art. Missing files fall back to flat placeholders.
const (
	PathGreenValley    = "ui/backgrounds/green_valley.png"
	PathLogo           = "ui/logo-codequest.png"
	PathAvatarMale     = "ui/avatars/male.png"
	PathAvatarFemale   = "ui/avatars/female.png"
	PathCorruptedBiome = "ui/backgrounds/corrupted_biome.png"
	PathBug            = "ui/enemies/bug.png"
)

// Menu controls in focus order. The gender toggles can only be tapped.
const (
	MenuStart = iota
	MenuLoad
	MenuSettings
	MenuExit
	MenuMale
	MenuFemale
)

const menuFocusable = 4

const (
	menuTitle       = "CodeQuest"
	menuSubtitle    = "Green Valley - a warm digital meadow. Faint glitches drift in the wind..."
	menuLoadMsg     = "Load feature coming soon. Prepare your save slots!"
	menuSettingsMsg = "Settings incoming: keybinds, audio, pixel scaling, and more."

	menuFadeIn       = 0.5
	menuFadeOut      = 0.5
	menuParticles    = 30
	menuLeftColumn   = 220.0
	menuRightColumn  = 260.0
	menuTitleScale   = 2.2
	menuGlowSize     = 110.0
	menuGlowPeak     = 1.08
	menuGlowLeg      = 1.0
	menuToggleWidth  = 90.0
	menuToggleHeight = 32.0
)

var (
	menuClear             = Color{0, 0, 0.05, 1}
	menuBackground        = Color{0.07, 0.12, 0.06, 1}
	menuRainTint          = Color{0.8, 1, 0.8, 1}
	menuParticleTint      = Color{0.8, 1, 0.8, 1}
	menuAvatarPlaceholder = Color{0.15, 0.18, 0.15, 1}
	menuGlow              = Color{1, 1, 1, 0.14}
	menuTitleColor        = MustHex("9EE493")
	menuSubtitleColor     = MustHex("B6F6C1")
)

// button is a solid backdrop with a centered label.
type button struct {
	node  *Node
	bg    *Node
	label *Node
}

func newButton(name, label string, r Rect, face text.Face, bg, fg Color) *button {
	n := NewContainer(name)
	n.X, n.Y, n.Width, n.Height = r.X, r.Y, r.Width, r.Height
	back := NewSolid(name+"-bg", bg, r.Width, r.Height)
	txt := NewText(name+"-label", label, face)
	txt.Width = r.Width
	txt.Text.Align = TextAlignCenter
	txt.Text.Color = fg
	txt.Y = (r.Height - LineHeight(face)) / 2
	n.AddChild(back)
	n.AddChild(txt)
	return &button{node: n, bg: back, label: txt}
}

// MenuScreen is the title screen: animated meadow backdrop, avatar picker
// and the Start / Load Game / Settings / Exit column.
type MenuScreen struct {
	screenBase

	rain      *GlyphRainField
	particles *ParticleField

	avatar       *Node
	avatarMale   *ebiten.Image
	avatarFemale *ebiten.Image
	subtitle     *Node
	buttons      []*button
	toggles      []*button
	female       bool

	btnUp, btnFocused Color
}

// MenuFactory builds a fresh menu with the male avatar selected.
func MenuFactory(res *Resources) (Screen, error) {
	s, err := NewMenuScreen(res)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewMenuScreen lays out the menu for res. It fails only when res carries
// no skin.
func NewMenuScreen(res *Resources, opts ...FieldOption) (*MenuScreen, error) {
	if res == nil || res.Skin == nil {
		return nil, ErrNoSkin
	}
	w, h := screenSize(res)
	skin := res.Skin
	m := &MenuScreen{
		screenBase: newScreenBase("menu", res, NewInputRouter(ModeMenu, menuFocusable), menuFadeIn, menuFadeOut, skin.Color("menu-clear", menuClear)),
	}
	root := m.root
	root.Width, root.Height = w, h

	bg := NewSprite("background", m.textures.OrPlaceholder(PathGreenValley, menuBackground, 8, 8), w, h)
	root.AddChild(bg)

	m.rain = NewGlyphRainField(w, h, DefaultStreakCount, skin.Color("menu-rain", menuRainTint), opts...)
	root.AddChild(NewFieldLayer("rain", m.rain, skin.Face("default"), w, h))
	m.particles = NewParticleField(w, h, menuParticles, skin.Color("menu-particles", menuParticleTint), opts...)
	root.AddChild(NewFieldLayer("particles", m.particles, nil, w, h))

	m.layoutAvatar(res)
	m.layoutTitle(w)
	m.layoutButtons(w, h)

	targets := make([]Rect, 0, len(m.buttons)+len(m.toggles))
	for _, b := range m.buttons {
		targets = append(targets, b.node.Bounds())
	}
	for _, b := range m.toggles {
		targets = append(targets, b.node.Bounds())
	}
	m.router.SetTargets(targets)
	m.refresh()
	return m, nil
}

func (m *MenuScreen) layoutAvatar(res *Resources) {
	col := NewContainer("avatar-column")
	col.Width = menuLeftColumn
	m.root.AddChild(col)

	glow := NewSprite("glow", m.textures.Placeholder(ColorWhite.WithAlpha(0.12), 64, 64), menuGlowSize, menuGlowSize)
	glow.X = (menuLeftColumn - menuGlowSize) / 2
	glow.Y = 110
	glow.Color = menuGlow
	col.AddChild(glow)
	m.anims.Add(PulseScale(glow, 1, menuGlowPeak, menuGlowLeg))

	m.avatarMale = m.textures.OrPlaceholder(PathAvatarMale, menuAvatarPlaceholder, 96, 128)
	m.avatarFemale = m.textures.Optional(PathAvatarFemale)
	m.avatar = NewSprite("avatar", m.avatarMale, 96, 128)
	m.avatar.X = (menuLeftColumn - 96) / 2
	m.avatar.Y = 100
	col.AddChild(m.avatar)

	face := res.Skin.Face(res.Skin.Button.Font)
	_, _, fg := res.Skin.ButtonColors()
	y := m.avatar.Y + m.avatar.Height + 30
	x := (menuLeftColumn - 2*menuToggleWidth - 10) / 2
	for i, label := range []string{"Male", "Female"} {
		r := Rect{X: x + float64(i)*(menuToggleWidth+10), Y: y, Width: menuToggleWidth, Height: menuToggleHeight}
		b := newButton(label, label, r, face, Color{}, fg)
		col.AddChild(b.node)
		m.toggles = append(m.toggles, b)
	}
}

func (m *MenuScreen) layoutTitle(w float64) {
	skin := m.skin()
	centerW := w - menuLeftColumn - menuRightColumn
	if logo := m.textures.Optional(PathLogo); logo != nil {
		lw, lh := 420.0, 120.0
		n := NewSprite("logo", logo, lw, lh)
		n.X = menuLeftColumn + (centerW-lw)/2
		n.Y = 40
		m.root.AddChild(n)
	} else {
		n := NewText("logo", menuTitle, skin.Face("title"))
		n.X, n.Y, n.Width = menuLeftColumn, 60, centerW
		n.Text.Align = TextAlignCenter
		n.Text.Color = skin.Color("menu-title", menuTitleColor)
		if !skin.HasFace("title") {
			n.Text.Scale = menuTitleScale
		}
		m.root.AddChild(n)
	}

	m.subtitle = NewText("subtitle", menuSubtitle, skin.Face("label"))
	m.subtitle.X, m.subtitle.Y, m.subtitle.Width = menuLeftColumn+10, 180, centerW-20
	m.subtitle.Text.Align = TextAlignCenter
	m.subtitle.Text.WrapWidth = centerW - 20
	m.subtitle.Text.Color = skin.Color("menu-subtitle", menuSubtitleColor)
	m.root.AddChild(m.subtitle)
}

func (m *MenuScreen) layoutButtons(w, h float64) {
	skin := m.skin()
	st := skin.Button
	m.btnUp, m.btnFocused, _ = skin.ButtonColors()
	_, _, fg := skin.ButtonColors()
	face := skin.Face(st.Font)

	labels := []string{"Start", "Load Game", "Settings", "Exit"}
	step := st.Height + 2*st.Pad
	x := w - menuRightColumn + (menuRightColumn-st.Width)/2
	y := (h-step*float64(len(labels)))/2 + st.Pad
	for i, label := range labels {
		r := Rect{X: x, Y: y + float64(i)*step, Width: st.Width, Height: st.Height}
		b := newButton(label, label, r, face, m.btnUp, fg)
		m.root.AddChild(b.node)
		m.buttons = append(m.buttons, b)
	}
}

func (m *MenuScreen) skin() *Skin {
	return m.res.Skin
}

// refresh recolors buttons for the router's focus and toggles for the
// current avatar selection.
func (m *MenuScreen) refresh() {
	focus := m.router.Focused()
	for i, b := range m.buttons {
		if i == focus {
			b.bg.Color = m.btnFocused
		} else {
			b.bg.Color = m.btnUp
		}
	}
	for i, b := range m.toggles {
		if (i == 1) == m.female {
			b.bg.Color = m.btnFocused
		} else {
			b.bg.Color = m.btnUp
		}
	}
}

// Female reports whether the female avatar is selected.
func (m *MenuScreen) Female() bool {
	return m.female
}

// Subtitle returns the text under the title.
func (m *MenuScreen) Subtitle() string {
	return m.subtitle.Text.Content
}

// Rain returns the backdrop glyph rain.
func (m *MenuScreen) Rain() *GlyphRainField {
	return m.rain
}

// Particles returns the drifting glitch particles.
func (m *MenuScreen) Particles() *ParticleField {
	return m.particles
}

// HandleAction implements Screen.
func (m *MenuScreen) HandleAction(a Action) Outcome {
	switch a.Kind {
	case ActionNavigateUp, ActionNavigateDown:
		m.refresh()
	case ActionCancel:
		return Outcome{Quit: true}
	case ActionActivate:
		m.refresh()
		return m.activate(a.Index)
	}
	return Outcome{}
}

func (m *MenuScreen) activate(i int) Outcome {
	switch i {
	case MenuStart:
		return Outcome{Next: IntroFactory(m.female)}
	case MenuLoad:
		m.announce(menuLoadMsg)
	case MenuSettings:
		m.announce(menuSettingsMsg)
	case MenuExit:
		return Outcome{Quit: true}
	case MenuMale:
		m.selectAvatar(false)
	case MenuFemale:
		m.selectAvatar(true)
	}
	return Outcome{}
}

// announce swaps the subtitle text and blinks it.
func (m *MenuScreen) announce(msg string) {
	m.subtitle.Text.SetContent(msg)
	m.anims.Add(NewChain(
		TweenAlpha(m.subtitle, 0.6, 0.15, ease.Linear),
		TweenAlpha(m.subtitle, 1, 0.35, ease.Linear),
	))
}

func (m *MenuScreen) selectAvatar(female bool) {
	m.female = female
	img := m.avatarMale
	if female && m.avatarFemale != nil {
		img = m.avatarFemale
	}
	m.avatar.Image = img
	m.refresh()
}

func screenSize(res *Resources) (w, h float64) {
	w, h = res.Width, res.Height
	if w <= 0 {
		w = ScreenWidth
	}
	if h <= 0 {
		h = ScreenHeight
	}
	return w, h
}
