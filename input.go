package codequest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a device-independent key the router understands.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyEscape
	KeyBack
)

var keyNames = map[string]Key{
	"enter":  KeyEnter,
	"space":  KeySpace,
	"up":     KeyUp,
	"down":   KeyDown,
	"escape": KeyEscape,
	"back":   KeyBack,
}

// ParseKey returns the key with the given lower-case name, or KeyUnknown.
func ParseKey(name string) Key {
	return keyNames[name]
}

// ebitenKeys maps physical keys to router keys.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyEnter:       KeyEnter,
	ebiten.KeyNumpadEnter: KeyEnter,
	ebiten.KeySpace:       KeySpace,
	ebiten.KeyArrowUp:     KeyUp,
	ebiten.KeyArrowDown:   KeyDown,
	ebiten.KeyEscape:      KeyEscape,
	ebiten.KeyBackspace:   KeyBack,
}

// InputEventKind identifies a raw input event.
type InputEventKind uint8

const (
	InputKey InputEventKind = iota // a key went down this frame
	InputTap                       // the primary pointer was pressed this frame
)

// InputEvent is one discrete raw input. X and Y are logical screen
// coordinates for taps.
type InputEvent struct {
	Kind InputEventKind
	Key  Key
	X, Y float64
}

// KeyEvent returns a key-press event.
func KeyEvent(k Key) InputEvent {
	return InputEvent{Kind: InputKey, Key: k}
}

// TapEvent returns a primary-pointer tap at (x, y).
func TapEvent(x, y float64) InputEvent {
	return InputEvent{Kind: InputTap, X: x, Y: y}
}

// ActionKind is the tagged result of routing an input event.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionContinue
	ActionNavigateUp
	ActionNavigateDown
	ActionActivate
	ActionCancel
)

func (k ActionKind) String() string {
	switch k {
	case ActionContinue:
		return "continue"
	case ActionNavigateUp:
		return "navigate-up"
	case ActionNavigateDown:
		return "navigate-down"
	case ActionActivate:
		return "activate"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Action is what a screen receives from its router. Index is the focused
// control after navigation, or the activated control for ActionActivate.
type Action struct {
	Kind  ActionKind
	Index int
}

// InputMode selects how the confirm key is interpreted.
type InputMode uint8

const (
	// ModeMenu activates the focused control on confirm.
	ModeMenu InputMode = iota
	// ModeIntro turns any confirm or tap into Continue.
	ModeIntro
)

// InputRouter turns raw events into actions for one screen and owns that
// screen's keyboard focus.
type InputRouter struct {
	mode      InputMode
	focusable int
	focus     int
	targets   []Rect
}

// NewInputRouter returns a router with focusable keyboard-navigable controls.
// Focus starts on control 0.
func NewInputRouter(mode InputMode, focusable int) *InputRouter {
	return &InputRouter{mode: mode, focusable: max(focusable, 0)}
}

// SetTargets registers the screen rectangles of the controls, in control
// order. The first focusable entries take part in keyboard navigation; any
// further entries can only be tapped.
func (r *InputRouter) SetTargets(rects []Rect) {
	r.targets = append(r.targets[:0], rects...)
}

// Focused returns the index of the focused control.
func (r *InputRouter) Focused() int {
	return r.focus
}

// Focusable returns the number of keyboard-navigable controls.
func (r *InputRouter) Focusable() int {
	return r.focusable
}

// SetFocus moves focus to i, wrapping into range.
func (r *InputRouter) SetFocus(i int) {
	if r.focusable == 0 {
		r.focus = 0
		return
	}
	r.focus = ((i % r.focusable) + r.focusable) % r.focusable
}

// Route maps one raw event to an action. Events the screen has no use for
// map to ActionNone.
func (r *InputRouter) Route(ev InputEvent) Action {
	switch ev.Kind {
	case InputKey:
		return r.routeKey(ev.Key)
	case InputTap:
		return r.routeTap(ev.X, ev.Y)
	}
	return Action{}
}

func (r *InputRouter) routeKey(k Key) Action {
	switch k {
	case KeyEscape, KeyBack:
		return Action{Kind: ActionCancel, Index: r.focus}
	case KeyEnter, KeySpace:
		if r.mode == ModeIntro {
			return Action{Kind: ActionContinue}
		}
		if r.focusable == 0 {
			return Action{}
		}
		return Action{Kind: ActionActivate, Index: r.focus}
	case KeyUp:
		if r.focusable == 0 {
			return Action{}
		}
		r.SetFocus(r.focus - 1)
		return Action{Kind: ActionNavigateUp, Index: r.focus}
	case KeyDown:
		if r.focusable == 0 {
			return Action{}
		}
		r.SetFocus(r.focus + 1)
		return Action{Kind: ActionNavigateDown, Index: r.focus}
	}
	return Action{}
}

func (r *InputRouter) routeTap(x, y float64) Action {
	if r.mode == ModeIntro {
		return Action{Kind: ActionContinue}
	}
	if len(r.targets) == 0 {
		if r.focusable == 0 {
			return Action{}
		}
		return Action{Kind: ActionActivate, Index: r.focus}
	}
	for i, t := range r.targets {
		if !t.Contains(x, y) {
			continue
		}
		if i < r.focusable {
			r.focus = i
		}
		return Action{Kind: ActionActivate, Index: i}
	}
	return Action{}
}

// InputSource supplies the raw events of one frame.
type InputSource interface {
	// Poll appends this frame's events to dst and returns the result.
	Poll(dst []InputEvent) []InputEvent
}

// EbitenInput polls Ebitengine's keyboard, mouse and touch state. Call Poll
// from Game.Update only.
type EbitenInput struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// Poll implements InputSource.
func (in *EbitenInput) Poll(dst []InputEvent) []InputEvent {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if key, ok := ebitenKeys[k]; ok {
			dst = append(dst, KeyEvent(key))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, TapEvent(float64(x), float64(y)))
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, TapEvent(float64(x), float64(y)))
	}
	return dst
}
