// Package telemetry collects frame timing for hexglow engines: how often the
// dirty-frame scheduler actually paints, and what a paint costs. Attach a
// Collector with Engine.SetFrameObserver; read aggregates with Stats or dump
// the raw window with WriteCSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameSample is one animation tick's record.
type FrameSample struct {
	Tick    int   `csv:"tick"`
	Painted bool  `csv:"painted"`
	DrawNS  int64 `csv:"draw_ns"`
}

// Collector keeps frame samples over a rolling window. Not safe for
// concurrent use; the engine calls it from its single animation tick.
type Collector struct {
	window []FrameSample
	write  int
	count  int
	total  int
}

// NewCollector creates a collector averaging over windowSize ticks
// (e.g. 120 for two seconds at 60 TPS). Sizes below 1 use 120.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &Collector{window: make([]FrameSample, windowSize)}
}

// ObserveFrame records one tick. Implements hexglow.FrameObserver.
func (c *Collector) ObserveFrame(tick int, painted bool, duration time.Duration) {
	c.window[c.write] = FrameSample{
		Tick:    tick,
		Painted: painted,
		DrawNS:  duration.Nanoseconds(),
	}
	c.write = (c.write + 1) % len(c.window)
	if c.count < len(c.window) {
		c.count++
	}
	c.total++
}

// Total returns the number of ticks ever observed.
func (c *Collector) Total() int {
	return c.total
}

// Samples returns the window's samples in chronological order.
func (c *Collector) Samples() []FrameSample {
	out := make([]FrameSample, 0, c.count)
	start := c.write - c.count
	if start < 0 {
		start += len(c.window)
	}
	for i := 0; i < c.count; i++ {
		out = append(out, c.window[(start+i)%len(c.window)])
	}
	return out
}

// WindowStats aggregates the current window.
type WindowStats struct {
	Frames     int
	Painted    int
	PaintRatio float64
	MeanDraw   time.Duration
	P95Draw    time.Duration
}

// Stats computes aggregates over the current window. Draw statistics cover
// painted frames only; skipped frames cost nothing worth averaging.
func (c *Collector) Stats() WindowStats {
	samples := c.Samples()
	s := WindowStats{Frames: len(samples)}
	if s.Frames == 0 {
		return s
	}

	durations := make([]float64, 0, len(samples))
	for _, sample := range samples {
		if sample.Painted {
			s.Painted++
			durations = append(durations, float64(sample.DrawNS))
		}
	}
	s.PaintRatio = float64(s.Painted) / float64(s.Frames)

	if len(durations) > 0 {
		sort.Float64s(durations)
		s.MeanDraw = time.Duration(stat.Mean(durations, nil))
		s.P95Draw = time.Duration(stat.Quantile(0.95, stat.Empirical, durations, nil))
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Int("painted", s.Painted),
		slog.Float64("paint_ratio", s.PaintRatio),
		slog.Duration("mean_draw", s.MeanDraw),
		slog.Duration("p95_draw", s.P95Draw),
	)
}
