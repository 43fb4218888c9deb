package ebitenbackend

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/bramble"
)

// RunConfig holds backend options for Run.
type RunConfig struct {
	// TPS is the update rate. Zero uses ebiten.DefaultTPS.
	TPS int
	// Debug logs dispatch and frame statistics to stderr.
	Debug bool
	// ShowFPS draws the current FPS and TPS in the top-left corner. It
	// forces a redraw every frame.
	ShowFPS bool
	// ConfigPath, if set, names a TOML or YAML window config applied to the
	// window's attributes before it opens.
	ConfigPath string
	// ScriptPath, if set, names a JSON test script to run against the
	// window.
	ScriptPath string
	// ScreenshotDir is where script snapshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Logger overrides the logger. Debug is ignored when set.
	Logger *slog.Logger
	// Fonts is the font registry to draw with. nil uses the Go fonts only.
	Fonts *Fonts
}

// Run opens a window for win and runs the Ebitengine game loop until the
// window is closed. It blocks and must be called from the main goroutine.
func Run(win *bramble.Window, cfg RunConfig) error {
	g, err := newGame(win, cfg)
	if err != nil {
		return err
	}

	win.Size() // negotiate before the window opens
	attrs := win.Attributes()
	applyAttributes(attrs, nil)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: attrs.Transparent,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func newGame(win *bramble.Window, cfg RunConfig) (*game, error) {
	debug := cfg.Debug
	if cfg.ConfigPath != "" {
		wc, err := bramble.LoadWindowConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := wc.Apply(win.Attributes()); err != nil {
			return nil, err
		}
		win.Negotiate()
		debug = debug || wc.Debug
	}

	logger := cfg.Logger
	if logger == nil && debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if logger != nil {
		win.SetLogger(logger)
	}

	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	g := &game{
		win:      win,
		renderer: NewRenderer(cfg.Fonts),
		shots:    &screenshots{dir: dir},
		logger:   win.Logger(),
		showFPS:  cfg.ShowFPS,
		applied:  *win.Attributes(),
	}

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", cfg.ScriptPath, err)
		}
		runner, err := bramble.LoadTestScript(data)
		if err != nil {
			return nil, err
		}
		runner.OnSnapshot = g.shots.request
		win.SetTestRunner(runner)
	}
	return g, nil
}

// game adapts a bramble.Window to ebiten.Game.
type game struct {
	win      *bramble.Window
	renderer *Renderer
	in       input
	shots    *screenshots
	logger   *slog.Logger
	showFPS  bool

	applied bramble.WindowAttributes
	created bool
	frames  uint64
	err     error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.created {
		g.created = true
		g.win.HandleEvent(bramble.CreatedEvent{})
	}

	for _, e := range g.in.poll() {
		g.win.HandleEvent(e)
	}
	g.win.Tick(1 / float32(ebiten.TPS()))

	if g.win.CloseRequested() {
		g.win.HandleEvent(bramble.DestroyedEvent{})
		return ebiten.Termination
	}

	attrs := g.win.Attributes()
	applyAttributes(attrs, &g.applied)
	g.applied = *attrs
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil || !g.shouldRender() {
		return
	}

	start := time.Now()
	q, err := g.win.Draw()
	if err != nil {
		g.err = err
		return
	}
	built := time.Now()
	if err := g.renderer.Render(screen, q); err != nil {
		g.err = err
		return
	}
	stats := g.renderer.stats
	stats.buildTime = built.Sub(start)
	stats.submitTime = time.Since(built)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if err := g.shots.flush(screen); err != nil {
		g.logger.Warn("screenshot failed", "err", err)
	}

	if g.frames%debugStatsInterval == 0 {
		debugLog(g.logger, g.frames, stats)
	}
	g.frames++
}

// shouldRender reports whether Draw has to rebuild the frame. A queued
// screenshot counts, so script snapshots of a static UI still get written.
func (g *game) shouldRender() bool {
	return g.frames == 0 || g.showFPS || g.win.NeedsRedraw() || g.shots.pending()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.in.resize(bramble.Sz(uint32(outsideWidth), uint32(outsideHeight)))
	return outsideWidth, outsideHeight
}

// applyAttributes pushes attributes to the Ebitengine window. With a previous
// state only changed values are applied.
func applyAttributes(a *bramble.WindowAttributes, prev *bramble.WindowAttributes) {
	changed := func(f func(*bramble.WindowAttributes) any) bool {
		return prev == nil || f(a) != f(prev)
	}

	if changed(func(w *bramble.WindowAttributes) any { return w.Title }) {
		if t, ok := a.Title.Get(); ok {
			ebiten.SetWindowTitle(t)
		}
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.Size }) {
		if sz, ok := a.Size.Get(); ok && !sz.Empty() {
			ebiten.SetWindowSize(int(sz.W), int(sz.H))
		}
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.Position }) {
		if p, ok := a.Position.Get(); ok {
			ebiten.SetWindowPosition(int(p.X), int(p.Y))
		}
	}
	if changed(func(w *bramble.WindowAttributes) any { return [2]bramble.Opt[bramble.Size]{w.MinSize, w.MaxSize} }) {
		minW, minH, maxW, maxH := sizeLimits(a)
		ebiten.SetWindowSizeLimits(minW, minH, maxW, maxH)
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.Resizable }) {
		mode := ebiten.WindowResizingModeDisabled
		if a.Resizable {
			mode = ebiten.WindowResizingModeEnabled
		}
		ebiten.SetWindowResizingMode(mode)
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.Decorated }) {
		ebiten.SetWindowDecorated(a.Decorated)
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.AlwaysOnTop }) {
		ebiten.SetWindowFloating(a.AlwaysOnTop)
	}
	if changed(func(w *bramble.WindowAttributes) any { return w.Maximized }) {
		if a.Maximized {
			ebiten.MaximizeWindow()
		} else if prev != nil {
			ebiten.RestoreWindow()
		}
	}
}

// sizeLimits converts MinSize and MaxSize to ebiten.SetWindowSizeLimits
// arguments, where -1 means no limit.
func sizeLimits(a *bramble.WindowAttributes) (minW, minH, maxW, maxH int) {
	minW, minH, maxW, maxH = -1, -1, -1, -1
	if s, ok := a.MinSize.Get(); ok {
		minW, minH = limit(s.W), limit(s.H)
	}
	if s, ok := a.MaxSize.Get(); ok {
		maxW, maxH = limit(s.W), limit(s.H)
	}
	return
}

func limit(v uint32) int {
	if v == 0 {
		return -1
	}
	return int(v)
}
