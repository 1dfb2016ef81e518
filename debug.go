package hexglow

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugState accumulates per-frame stats for debug-mode logging.
// Only populated when debug mode is on.
type debugState struct {
	enabled   bool
	rendered  int
	skipped   int
	paintTime time.Duration
	last      time.Time

	now func() time.Time // replaced in tests
	out io.Writer        // replaced in tests
}

// note records one frame and, once per second, logs the paint/skip ratio and
// cumulative paint time to stderr.
func (d *debugState) note(rendered bool, elapsed time.Duration, e *Engine) {
	if !d.enabled {
		return
	}
	if rendered {
		d.rendered++
		d.paintTime += elapsed
	} else {
		d.skipped++
	}

	if d.now == nil {
		d.now = time.Now
	}
	if d.out == nil {
		d.out = os.Stderr
	}
	now := d.now()
	if d.last.IsZero() {
		d.last = now
		return
	}
	if now.Sub(d.last) < time.Second {
		return
	}
	total := d.rendered + d.skipped
	_, _ = fmt.Fprintf(d.out,
		"[hexglow] frames: %d | painted: %d | skipped: %d | paint time: %v | cells: %d\n",
		total, d.rendered, d.skipped, d.paintTime, len(e.grid.Cells()))
	d.rendered, d.skipped, d.paintTime = 0, 0, 0
	d.last = now
}

// SetDebugMode enables or disables per-second frame stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug.enabled = enabled
}

// DrawDebugInfo prints FPS/TPS and the eased pointer position onto screen.
// Call after Draw so the overlay isn't painted over.
func (e *Engine) DrawDebugInfo(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\npointer: (%.0f, %.0f)\nalpha: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		e.tracker.Current.X, e.tracker.Current.Y,
		e.fader.Alpha()))
}
