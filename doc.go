// Package hexglow renders decorative, pointer-reactive backgrounds for
// [Ebitengine] applications: a diagonal base gradient, a hexagon tessellation
// that fades in around the cursor, a soft eased highlight that trails the
// pointer, and an optional low-amplitude noise overlay.
//
// The engine is built for hero sections and menu screens where the background
// should react to the mouse without ever competing with the foreground for
// frame budget: a dirty-frame scheduler repaints the owned surface only when
// the eased pointer has actually moved (or on a periodic heartbeat), so a
// static scene costs a single texture blit per frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := hexglow.New(hexglow.DefaultConfig())
//	engine.Start()
//	hexglow.Run(engine, hexglow.RunConfig{
//		Title: "My Site", Width: 1280, Height: 720,
//	})
//
// For full control, embed the engine in your own [ebiten.Game] and call
// [Engine.Update] and [Engine.Draw] before drawing your foreground:
//
//	type Game struct{ bg *hexglow.Engine }
//
//	func (g *Game) Update() error        { return g.bg.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.bg.Draw(s); drawUI(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return g.bg.Layout(w, h) }
//
// # Configuration
//
// [Config] controls colors, the easing factor, cell geometry, fade radii,
// and feature toggles. Zero numeric fields fall back to documented defaults
// at [New] time. Named profiles (default, reduced-motion, low-power) can be
// loaded with [LoadProfile] or picked from measured capabilities with
// [DetectProfile]; profiles are plain YAML and can be overridden from disk.
//
// # Lifecycle
//
// [Engine.Start], [Engine.Stop], and [Engine.Destroy] are idempotent and
// safe to call in any order. A stopped engine draws nothing and does no
// per-frame work. Rendering failures are logged and skipped, never fatal:
// a dropped frame is cosmetic, a dead background loop is a regression.
//
// Multiple engines may coexist in one process; each owns its surface, grid,
// and pointer state outright.
//
// [Ebitengine]: https://ebitengine.org
package hexglow
