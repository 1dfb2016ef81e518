package hexglow

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameObserver receives one sample per animation tick. Implemented by
// telemetry.Collector; hosts may supply their own.
type FrameObserver interface {
	ObserveFrame(tick int, rendered bool, duration time.Duration)
}

// Engine drives one reactive background: it owns the render surface, the
// tessellation grid, the eased pointer, and the dirty-frame scheduler.
// All state is per-instance; engines never share mutable state, so several
// can run in one process without interfering.
//
// The lifecycle is Stopped -> Running and back, driven by Start and Stop.
// Both are idempotent, as is Destroy, and all three are safe in any order.
type Engine struct {
	cfg     Config
	tracker Tracker
	grid    *HexGrid
	sched   *frameScheduler
	rend    *renderer
	adapter pointerAdapter
	fader   *Fader
	surface renderSurface

	// shader is non-nil when the shader backend won the mode resolution.
	shader *ebiten.Shader

	resizeGate *throttle
	phase      float64 // animation time in seconds, advanced while running

	running    bool
	destroyed  bool
	stopOnFade bool

	// paintFrame is the render pass body; swapped in tests to simulate a
	// failing draw.
	paintFrame func()

	observer FrameObserver
	debug    debugState
}

// New creates an engine from the given configuration. Zero fields fall back
// to defaults, out-of-range values are clamped, and the rendering backend is
// resolved here: RenderModeShader falls back to the canvas path (with a log
// line) when the shader does not compile, and RenderModeAuto picks the
// shader path only when the grid layer is off, since the shader cannot draw
// hexagons.
func New(cfg Config) *Engine {
	cfg = cfg.normalize()

	e := &Engine{
		cfg:        cfg,
		grid:       newHexGrid(cfg.CellSize, cfg.CellSpacing, cfg.RebuildThreshold),
		sched:      newFrameScheduler(cfg.MotionEpsilon, cfg.HeartbeatInterval),
		fader:      newFader(0),
		resizeGate: newThrottle(cfg.resizeThrottle()),
	}
	e.tracker.Factor = cfg.EasingFactor
	e.rend = newRenderer(&e.cfg)
	e.paintFrame = e.renderFrame

	wantShader := cfg.RenderMode == RenderModeShader ||
		(cfg.RenderMode == RenderModeAuto && !cfg.EnableGrid)
	if wantShader {
		s, err := compileBackgroundShader()
		if err != nil {
			if cfg.RenderMode == RenderModeShader {
				log.Printf("hexglow: shader backend unavailable, using canvas: %v", err)
			}
		} else {
			e.shader = s
		}
	}
	return e
}

// Start begins animating. Idempotent: calling Start on a running engine is a
// no-op. Starting a destroyed engine logs and does nothing.
func (e *Engine) Start() {
	if e.destroyed {
		log.Printf("hexglow: Start called on destroyed engine")
		return
	}
	if e.running {
		return
	}
	e.running = true
	e.stopOnFade = false
	e.fader.FadeTo(1, fadeSeconds(e.cfg.FadeInMillis))
	e.sched.Force()
}

// Stop halts animation immediately. The pending frame work is abandoned and
// Update/Draw become no-ops until the next Start. Idempotent.
func (e *Engine) Stop() {
	e.running = false
	e.stopOnFade = false
}

// FadeOut ramps the background to transparent over the given duration and
// then stops the engine. A non-positive duration stops immediately.
func (e *Engine) FadeOut(d time.Duration) {
	if !e.running {
		return
	}
	if d <= 0 {
		e.Stop()
		return
	}
	e.stopOnFade = true
	e.fader.FadeTo(0, float32(d.Seconds()))
}

// Destroy stops the engine and releases every owned resource. Safe without a
// prior Start and safe to call repeatedly; a destroyed engine cannot be
// restarted.
func (e *Engine) Destroy() {
	e.Stop()
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.surface.dispose()
	e.rend.dispose()
	e.grid = nil
}

// Update advances one animation tick: fade ramp, pointer target read, easing
// step. Call from the host's ebiten.Game Update. Does nothing while stopped.
func (e *Engine) Update() error {
	if !e.running || e.destroyed {
		return nil
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		// ebiten.SyncWithFPS reports -1.
		tps = 60
	}
	dt := 1.0 / float64(tps)
	e.phase += dt
	if e.fader.Update(float32(dt)) && e.stopOnFade && e.fader.Alpha() == 0 {
		e.Stop()
		return nil
	}

	// The surface may not exist before the first Draw; until it does there
	// is no coordinate space to track the pointer in.
	if e.surface.img != nil {
		e.tracker.Target = e.adapter.target(e.surface.bounds())
		e.tracker.Step()
	}
	return nil
}

// Draw composites the background onto screen. The expensive layered paint
// runs only on ticks the scheduler marks dirty; every other frame reuses the
// committed surface. Call first in the host's Draw so the background sits
// under everything else.
func (e *Engine) Draw(screen *ebiten.Image) {
	if !e.running || e.destroyed {
		return
	}

	e.observeSize(screen)
	if e.surface.img == nil {
		return
	}

	start := time.Now()
	rendered := false
	if e.sched.ShouldRender(e.tracker.Current) {
		rendered = e.paint()
	}
	e.blit(screen)

	elapsed := time.Since(start)
	if e.observer != nil {
		e.observer.ObserveFrame(e.sched.Tick(), rendered, elapsed)
	}
	e.debug.note(rendered, elapsed, e)
}

// Layout passes the host's logical size through unchanged. Provided so an
// Engine can serve directly as an ebiten.Game via Run.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// observeSize recreates the owned surface when the screen's logical size or
// the device scale changed. Same-size frames exit on a cheap comparison; an
// actual resize storm is additionally throttled, since surface reallocation
// and grid rebuilds only need eventual consistency.
func (e *Engine) observeSize(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	first := e.surface.img == nil
	if !first && w == e.surface.width && h == e.surface.height {
		return
	}
	if !first && !e.resizeGate.Allow() {
		return
	}

	scale := math.Min(monitorDeviceScale(), e.cfg.MaxDeviceScale)
	if e.surface.ensure(w, h, scale) {
		if e.cfg.EnableGrid {
			e.grid.Ensure(w, h)
		}
		e.sched.Force()
	}
	if first {
		// Start the glow at rest in the middle rather than sweeping in
		// from the origin.
		e.tracker.Target = e.surface.bounds().Center()
		e.tracker.Snap()
	}
}

// paint runs one full render pass into the owned surface and commits it to
// the scheduler. A panicking draw call is logged and skipped; the loop keeps
// going and retries next tick, because a dropped frame is cosmetic but a
// dead background is a visible regression.
func (e *Engine) paint() (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("hexglow: render pass failed, skipping frame: %v", rec)
			ok = false
		}
	}()

	e.paintFrame()

	e.sched.MarkRendered(e.tracker.Current)
	return true
}

// renderFrame draws the full layered pass into the owned surface.
func (e *Engine) renderFrame() {
	scale := e.surface.scale
	view := Rect{Width: e.surface.width * scale, Height: e.surface.height * scale}
	pointer := Vec2{X: e.tracker.Current.X * scale, Y: e.tracker.Current.Y * scale}

	if e.shader != nil {
		e.rend.drawShader(e.surface.img, e.shader, view, pointer, e.phase, 1, scale)
	} else {
		e.rend.draw(e.surface.img, view, pointer, e.grid.Cells(), e.phase, 1, scale)
	}
}

// blit scales the surface back to logical size and applies the fade alpha.
// Fading happens here, not in the paint, so a fade ramp never dirties the
// scheduler.
func (e *Engine) blit(screen *ebiten.Image) {
	a := float32(e.fader.Alpha())
	if a <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	if s := e.surface.scale; s != 1 {
		op.GeoM.Scale(1/s, 1/s)
	}
	op.ColorScale.Scale(a, a, a, a)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(e.surface.img, &op)
}

// InjectPointer overrides the real cursor with a synthetic position in
// logical surface coordinates, until ClearPointer. Useful for tests and for
// hosts that drive the pointer themselves.
func (e *Engine) InjectPointer(x, y float64) {
	e.adapter.inject(x, y)
}

// ClearPointer removes a synthetic pointer set by InjectPointer.
func (e *Engine) ClearPointer() {
	e.adapter.clear()
}

// SetFrameObserver wires per-tick frame samples to an observer, typically a
// telemetry.Collector. Pass nil to detach.
func (e *Engine) SetFrameObserver(o FrameObserver) {
	e.observer = o
}

// IsRunning reports whether the engine is animating.
func (e *Engine) IsRunning() bool {
	return e.running
}

// Pointer returns the current eased pointer position in logical units.
func (e *Engine) Pointer() Vec2 {
	return e.tracker.Current
}

// Alpha returns the current fade alpha in [0, 1].
func (e *Engine) Alpha() float64 {
	return e.fader.Alpha()
}

// Config returns a copy of the normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// UsingShader reports whether the shader backend is active.
func (e *Engine) UsingShader() bool {
	return e.shader != nil
}

// fadeSeconds converts a fade duration in milliseconds to seconds; negative
// values mean "no fade".
func fadeSeconds(ms int) float32 {
	if ms <= 0 {
		return 0
	}
	return float32(ms) / 1000
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool
}

// Run creates a resizable window and drives the engine as a standalone
// ebiten.Game. Blocks until the window closes.
func Run(engine *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	return ebiten.RunGame(&runGame{engine: engine})
}

// runGame adapts an Engine to ebiten.Game for Run.
type runGame struct {
	engine *Engine
}

func (g *runGame) Update() error              { return g.engine.Update() }
func (g *runGame) Draw(screen *ebiten.Image)  { g.engine.Draw(screen) }
func (g *runGame) Layout(w, h int) (int, int) { return g.engine.Layout(w, h) }
