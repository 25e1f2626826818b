package codequest

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Screen is one full-viewport application mode. A screen exclusively owns
// its node tree, textures, fields and router, and releases them in Dispose.
type Screen interface {
	Name() string
	// Root is the node whose alpha the controller fades.
	Root() *Node
	Router() *InputRouter
	// Fades returns the fade-in and fade-out durations in seconds.
	Fades() (in, out float64)
	ClearColor() Color
	Update(dt float64)
	// HandleAction reacts to a routed action and tells the controller what
	// to do next.
	HandleAction(a Action) Outcome
	Dispose()
}

// Outcome is a screen's answer to an action.
type Outcome struct {
	// Next, when set, requests a transition to the screen it builds.
	Next ScreenFactory
	// Quit asks the game to terminate.
	Quit bool
}

// ScreenFactory builds a screen. It runs at swap time, after the outgoing
// screen has been disposed.
type ScreenFactory func(res *Resources) (Screen, error)

// Resources is what factories build screens from.
type Resources struct {
	Assets *AssetLoader
	Skin   *Skin
	Width  float64
	Height float64
}

// ErrNoSkin is returned by factories handed resources without a skin.
var ErrNoSkin = &AssetError{Path: DefaultSkinPath, Required: true, Err: errors.New("skin not loaded")}

// ScreenEventType identifies a ScreenEvent.
type ScreenEventType uint8

const (
	EventTransitionStarted   ScreenEventType = iota // a fade-out began
	EventScreenSwapped                              // the outgoing screen was replaced
	EventTransitionCompleted                        // the fade-in finished
	EventActionRouted                               // an action reached the active screen
	EventQuitRequested                              // a screen asked to terminate
)

func (t ScreenEventType) String() string {
	switch t {
	case EventTransitionStarted:
		return "transition-started"
	case EventScreenSwapped:
		return "screen-swapped"
	case EventTransitionCompleted:
		return "transition-completed"
	case EventActionRouted:
		return "action-routed"
	case EventQuitRequested:
		return "quit-requested"
	default:
		return "unknown"
	}
}

// ScreenEvent reports controller activity to an EventSink.
type ScreenEvent struct {
	Type   ScreenEventType
	From   string
	To     string
	Action Action
}

// EventSink is the interface for optional observers such as the ECS bridge.
type EventSink interface {
	EmitScreenEvent(event ScreenEvent)
}

// TransitionPhase is the stage of an in-flight transition.
type TransitionPhase uint8

const (
	PhaseFadingOut TransitionPhase = iota + 1
	PhaseSwapping
	PhaseFadingIn
)

func (p TransitionPhase) String() string {
	switch p {
	case PhaseFadingOut:
		return "fading-out"
	case PhaseSwapping:
		return "swapping"
	case PhaseFadingIn:
		return "fading-in"
	default:
		return "idle"
	}
}

// TransitionState is a snapshot of the in-flight transition.
type TransitionState struct {
	Phase    TransitionPhase
	Elapsed  float64
	Duration float64
	From     string
}

// transition is the record of one fade-out, swap, fade-in sequence.
type transition struct {
	from     Screen
	to       ScreenFactory
	phase    TransitionPhase
	elapsed  float64
	duration float64
	fade     *gween.Tween
}

// ScreenController owns the active screen, routes input to it, and runs
// transitions between screens. At most one transition is in flight; requests
// made meanwhile are ignored.
type ScreenController struct {
	res    *Resources
	active Screen
	trans  *transition
	reveal *gween.Tween

	source   InputSource
	injected []InputEvent
	events   []InputEvent

	sink   EventSink
	quit   bool
	closed bool
	debug  bool
}

// NewScreenController returns an idle controller. source may be nil, in
// which case only injected events are routed.
func NewScreenController(res *Resources, source InputSource) *ScreenController {
	return &ScreenController{res: res, source: source}
}

// SetEventSink sets the optional event observer.
func (c *ScreenController) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetDebugMode enables stderr logging of transitions and routed actions.
func (c *ScreenController) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Start builds the first screen and fades it in. Any screen that is already
// active is disposed first.
func (c *ScreenController) Start(f ScreenFactory) error {
	s, err := f(c.res)
	if err != nil {
		return fmt.Errorf("start screen: %w", err)
	}
	if s == nil {
		return errors.New("start screen: factory returned nil")
	}
	if c.active != nil {
		c.active.Dispose()
	}
	c.trans = nil
	c.active = s
	in, _ := s.Fades()
	s.Root().Alpha = 0
	c.reveal = newFade(0, 1, in)
	c.logf("start %s", s.Name())
	return nil
}

// Active returns the active screen, or nil before Start and after Close.
func (c *ScreenController) Active() Screen {
	return c.active
}

// InTransition reports whether a transition is in flight.
func (c *ScreenController) InTransition() bool {
	return c.trans != nil
}

// Transition returns the in-flight transition, if any.
func (c *ScreenController) Transition() (TransitionState, bool) {
	if c.trans == nil {
		return TransitionState{}, false
	}
	st := TransitionState{
		Phase:    c.trans.phase,
		Elapsed:  c.trans.elapsed,
		Duration: c.trans.duration,
	}
	if c.trans.from != nil {
		st.From = c.trans.from.Name()
	}
	return st, true
}

// RequestTransition starts fading out the active screen toward the screen
// built by to. It returns false, changing nothing, when a transition is
// already in flight or the controller is closed.
func (c *ScreenController) RequestTransition(to ScreenFactory) bool {
	if c.trans != nil || c.closed || to == nil {
		return false
	}
	c.reveal = nil
	t := &transition{from: c.active, to: to}
	if c.active == nil {
		t.phase = PhaseSwapping
	} else {
		_, out := c.active.Fades()
		t.phase = PhaseFadingOut
		t.duration = out
		t.fade = newFade(c.active.Root().Alpha, 0, out)
	}
	c.trans = t
	c.emit(ScreenEvent{Type: EventTransitionStarted, From: c.activeName()})
	c.logf("transition from %s (%s)", c.activeName(), t.phase)
	return true
}

// QuitRequested reports whether a screen asked to terminate.
func (c *ScreenController) QuitRequested() bool {
	return c.quit
}

// RequestQuit marks the controller for termination.
func (c *ScreenController) RequestQuit() {
	if c.quit {
		return
	}
	c.quit = true
	c.emit(ScreenEvent{Type: EventQuitRequested, From: c.activeName()})
	c.logf("quit requested by %s", c.activeName())
}

// Update routes this frame's input, advances any transition and then the
// active screen. A screen factory failure aborts the transition and is
// returned; the controller is left without an active screen.
func (c *ScreenController) Update(dt float64) error {
	if c.closed {
		return nil
	}
	c.routeInput()

	if c.trans != nil {
		if err := c.advanceTransition(dt); err != nil {
			return err
		}
	} else if c.reveal != nil && c.active != nil {
		v, done := stepFade(c.reveal, dt)
		c.active.Root().Alpha = v
		if done {
			c.reveal = nil
		}
	}

	if c.active != nil {
		c.active.Update(dt)
	}
	return nil
}

// routeInput drains injected and polled events into the active screen.
// Events arriving during a transition are dropped.
func (c *ScreenController) routeInput() {
	c.events = append(c.events[:0], c.injected...)
	clear(c.injected)
	c.injected = c.injected[:0]
	if c.source != nil {
		c.events = c.source.Poll(c.events)
	}
	for _, ev := range c.events {
		if c.trans != nil || c.active == nil || c.quit {
			break
		}
		a := c.active.Router().Route(ev)
		if a.Kind == ActionNone {
			continue
		}
		c.emit(ScreenEvent{Type: EventActionRouted, From: c.activeName(), Action: a})
		c.logf("%s: %s %d", c.activeName(), a.Kind, a.Index)
		out := c.active.HandleAction(a)
		if out.Quit {
			c.RequestQuit()
		}
		if out.Next != nil {
			c.RequestTransition(out.Next)
		}
	}
}

func (c *ScreenController) advanceTransition(dt float64) error {
	t := c.trans
	switch t.phase {
	case PhaseFadingOut:
		t.elapsed += dt
		v, done := stepFade(t.fade, dt)
		t.from.Root().Alpha = v
		if !done {
			return nil
		}
		t.phase = PhaseSwapping
		return c.swap()
	case PhaseSwapping:
		return c.swap()
	case PhaseFadingIn:
		t.elapsed += dt
		v, done := stepFade(t.fade, dt)
		c.active.Root().Alpha = v
		if done {
			c.trans = nil
			c.emit(ScreenEvent{Type: EventTransitionCompleted, To: c.activeName()})
			c.logf("transition complete: %s", c.activeName())
		}
	}
	return nil
}

// swap disposes the outgoing screen and installs the incoming one at zero
// opacity.
func (c *ScreenController) swap() error {
	t := c.trans
	fromName := c.activeName()
	if t.from != nil {
		t.from.Dispose()
	}
	c.active = nil

	next, err := t.to(c.res)
	if err == nil && next == nil {
		err = errors.New("factory returned nil")
	}
	if err != nil {
		c.trans = nil
		return fmt.Errorf("transition from %s: construct screen: %w", fromName, err)
	}
	c.active = next
	next.Root().Alpha = 0

	in, _ := next.Fades()
	t.phase = PhaseFadingIn
	t.elapsed = 0
	t.duration = in
	t.fade = newFade(0, 1, in)
	c.emit(ScreenEvent{Type: EventScreenSwapped, From: fromName, To: next.Name()})
	c.logf("swapped %s -> %s", fromName, next.Name())
	return nil
}

// Draw renders the active screen onto target.
func (c *ScreenController) Draw(target *ebiten.Image) {
	c.draw(target, nil)
}

func (c *ScreenController) draw(target *ebiten.Image, stats *batchStats) {
	if c.active == nil {
		return
	}
	drawTree(target, c.active.Root(), 0, 0, 1, stats)
}

// Inject queues a synthetic input event for the next Update.
func (c *ScreenController) Inject(ev InputEvent) {
	c.injected = append(c.injected, ev)
}

// Close disposes the active screen. The controller ignores further updates
// and transition requests. Calling Close twice is a no-op.
func (c *ScreenController) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.active != nil {
		c.active.Dispose()
		c.active = nil
	}
	c.trans = nil
	c.reveal = nil
}

func (c *ScreenController) activeName() string {
	if c.active == nil {
		return ""
	}
	return c.active.Name()
}

func (c *ScreenController) emit(ev ScreenEvent) {
	if c.sink != nil {
		c.sink.EmitScreenEvent(ev)
	}
}

func (c *ScreenController) logf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[codequest] "+format+"\n", args...)
}

// newFade returns a linear tween from -> to over d seconds. When d is not
// positive the fade lands on its end value at the first step.
func newFade(from, to, d float64) *gween.Tween {
	if d <= 0 {
		return gween.New(float32(to), float32(to), 1e-6, ease.Linear)
	}
	return gween.New(float32(from), float32(to), float32(d), ease.Linear)
}

// stepFade advances tw by dt seconds.
func stepFade(tw *gween.Tween, dt float64) (float64, bool) {
	v, done := tw.Update(float32(dt))
	return float64(v), done
}

// screenBase carries what every concrete screen owns.
type screenBase struct {
	res      *Resources
	name     string
	root     *Node
	router   *InputRouter
	textures *TextureSet
	anims    AnimationSet
	fadeIn   float64
	fadeOut  float64
	clear    Color
	disposed bool
}

func newScreenBase(name string, res *Resources, router *InputRouter, fadeIn, fadeOut float64, clear Color) screenBase {
	return screenBase{
		res:      res,
		name:     name,
		root:     NewContainer(name),
		router:   router,
		textures: NewTextureSet(res.Assets),
		fadeIn:   fadeIn,
		fadeOut:  fadeOut,
		clear:    clear,
	}
}

func (s *screenBase) Name() string             { return s.name }
func (s *screenBase) Root() *Node              { return s.root }
func (s *screenBase) Router() *InputRouter     { return s.router }
func (s *screenBase) Fades() (in, out float64) { return s.fadeIn, s.fadeOut }
func (s *screenBase) ClearColor() Color        { return s.clear }

// Update advances the screen's tweens, fields and node hooks.
func (s *screenBase) Update(dt float64) {
	if s.disposed {
		return
	}
	s.anims.Update(float32(dt))
	updateTree(s.root, dt)
}

// Dispose releases the node tree and every texture the screen loaded.
func (s *screenBase) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.anims.Clear()
	s.root.Dispose()
	s.textures.Release()
}

// Disposed reports whether Dispose has run.
func (s *screenBase) Disposed() bool {
	return s.disposed
}
