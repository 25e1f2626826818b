package codequest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the logical screen size. Zero uses
	// ScreenWidth×ScreenHeight.
	Width, Height int
	// ShowFPS overlays the FPS/TPS readout.
	ShowFPS bool
	// Debug logs transitions, placeholder substitutions and frame stats
	// to stderr.
	Debug bool
	// Assets is the asset directory. The skin at SkinPath must exist in it.
	Assets fs.FS
	// SkinPath overrides DefaultSkinPath.
	SkinPath string
	// ScreenshotDir is where script screenshots are written. Empty uses
	// "screenshots".
	ScreenshotDir string
	// Script is an optional JSON test script driven one step per frame.
	Script []byte
	// Input replaces the Ebitengine keyboard, mouse and touch source.
	Input InputSource
	// Events receives screen lifecycle events.
	Events EventSink
}

// Game implements ebiten.Game over a ScreenController.
type Game struct {
	res   *Resources
	ctrl  *ScreenController
	fps   *Node
	debug bool

	width, height int

	injectQueue     []InputEvent
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	testRunner    *TestRunner

	frame int
	stats debugStats
}

// NewGame loads the skin and opens the menu. A missing or malformed skin
// is an error matching ErrMissingRequiredAsset.
func NewGame(cfg RunConfig) (*Game, error) {
	if cfg.Width <= 0 {
		cfg.Width = ScreenWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = ScreenHeight
	}
	if cfg.SkinPath == "" {
		cfg.SkinPath = DefaultSkinPath
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	loader := NewAssetLoader(cfg.Assets)
	loader.SetDebugMode(cfg.Debug)
	skin, err := LoadSkin(loader, cfg.SkinPath)
	if err != nil {
		return nil, fmt.Errorf("load skin: %w", err)
	}

	g := &Game{
		res:           &Resources{Assets: loader, Skin: skin, Width: float64(cfg.Width), Height: float64(cfg.Height)},
		debug:         cfg.Debug,
		width:         cfg.Width,
		height:        cfg.Height,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if len(cfg.Script) > 0 {
		runner, err := LoadTestScript(cfg.Script)
		if err != nil {
			return nil, err
		}
		g.testRunner = runner
	}

	source := cfg.Input
	if source == nil {
		source = &EbitenInput{}
	}
	g.ctrl = NewScreenController(g.res, source)
	g.ctrl.SetDebugMode(cfg.Debug)
	g.ctrl.SetEventSink(cfg.Events)
	if cfg.ShowFPS {
		g.fps = NewFPSWidget()
	}
	if err := g.ctrl.Start(MenuFactory); err != nil {
		return nil, err
	}
	return g, nil
}

// Controller returns the game's screen controller.
func (g *Game) Controller() *ScreenController {
	return g.ctrl
}

// Resources returns what the game's screens are built from.
func (g *Game) Resources() *Resources {
	return g.res
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// frameDelta is the fixed step for one tick.
func frameDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Update implements ebiten.Game. It returns ebiten.Termination once a
// screen asks to quit, and any screen construction failure as-is.
func (g *Game) Update() error {
	var start time.Time
	if g.debug {
		start = time.Now()
	}
	dt := frameDelta()

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInjectedInput()
	if err := g.ctrl.Update(dt); err != nil {
		return err
	}
	if g.fps != nil {
		updateTree(g.fps, dt)
	}
	if g.ctrl.QuitRequested() {
		return ebiten.Termination
	}
	if g.debug {
		g.stats.updateTime = time.Since(start)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var start time.Time
	if g.debug {
		start = time.Now()
		g.stats.batch = batchStats{}
	}
	bg := Color{A: 1}
	if s := g.ctrl.Active(); s != nil {
		bg = s.ClearColor()
	}
	screen.Fill(bg.RGBA())

	if g.debug {
		g.ctrl.draw(screen, &g.stats.batch)
	} else {
		g.ctrl.draw(screen, nil)
	}
	if g.fps != nil {
		drawTree(screen, g.fps, 0, 0, 1, nil)
	}
	g.flushScreenshots(screen)

	if g.debug {
		g.stats.drawTime = time.Since(start)
		g.frame++
		if g.frame%debugLogInterval == 0 {
			if s := g.ctrl.Active(); s != nil {
				g.stats.nodes = countNodes(s.Root())
				debugLog(s.Name(), g.stats)
			}
		}
	}
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Close disposes the active screen.
func (g *Game) Close() {
	g.ctrl.Close()
}

// Run opens a window and runs the game until a screen quits or the window
// is closed. Quitting is not an error.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil && g.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[codequest] run: %v\n", err)
	}
	return err
}
