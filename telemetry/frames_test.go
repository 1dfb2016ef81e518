package telemetry

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fill(c *Collector, n int, painted func(i int) bool, cost func(i int) time.Duration) {
	for i := 1; i <= n; i++ {
		c.ObserveFrame(i, painted(i), cost(i))
	}
}

func TestCollectorWindowChronology(t *testing.T) {
	c := NewCollector(4)
	fill(c, 6, func(int) bool { return true }, func(i int) time.Duration {
		return time.Duration(i) * time.Millisecond
	})

	if c.Total() != 6 {
		t.Errorf("Total() = %d, want 6", c.Total())
	}
	samples := c.Samples()
	if len(samples) != 4 {
		t.Fatalf("len(Samples()) = %d, want window size 4", len(samples))
	}
	// The window holds the most recent ticks, oldest first.
	for i, want := range []int{3, 4, 5, 6} {
		if samples[i].Tick != want {
			t.Errorf("samples[%d].Tick = %d, want %d", i, samples[i].Tick, want)
		}
	}
}

func TestCollectorPartialWindow(t *testing.T) {
	c := NewCollector(100)
	fill(c, 3, func(int) bool { return true }, func(int) time.Duration { return time.Millisecond })
	if got := len(c.Samples()); got != 3 {
		t.Errorf("len(Samples()) = %d, want 3", got)
	}
}

func TestCollectorDefaultWindow(t *testing.T) {
	c := NewCollector(0)
	if got := len(c.window); got != 120 {
		t.Errorf("default window = %d, want 120", got)
	}
}

func TestStats(t *testing.T) {
	c := NewCollector(10)
	// Every third tick paints, at a flat 2ms.
	fill(c, 9,
		func(i int) bool { return i%3 == 0 },
		func(i int) time.Duration {
			if i%3 == 0 {
				return 2 * time.Millisecond
			}
			return 10 * time.Microsecond
		})

	s := c.Stats()
	if s.Frames != 9 {
		t.Errorf("Frames = %d, want 9", s.Frames)
	}
	if s.Painted != 3 {
		t.Errorf("Painted = %d, want 3", s.Painted)
	}
	if want := 3.0 / 9.0; s.PaintRatio != want {
		t.Errorf("PaintRatio = %f, want %f", s.PaintRatio, want)
	}
	if s.MeanDraw != 2*time.Millisecond {
		t.Errorf("MeanDraw = %v, want 2ms", s.MeanDraw)
	}
	if s.P95Draw != 2*time.Millisecond {
		t.Errorf("P95Draw = %v, want 2ms", s.P95Draw)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := NewCollector(10).Stats()
	if s.Frames != 0 || s.Painted != 0 || s.PaintRatio != 0 || s.MeanDraw != 0 {
		t.Errorf("empty collector stats = %+v, want zero", s)
	}
}

func TestStatsNoPaints(t *testing.T) {
	c := NewCollector(10)
	fill(c, 5, func(int) bool { return false }, func(int) time.Duration { return time.Microsecond })
	s := c.Stats()
	if s.PaintRatio != 0 || s.MeanDraw != 0 || s.P95Draw != 0 {
		t.Errorf("stats with no paints = %+v, want zero draw aggregates", s)
	}
}

func TestWriteCSV(t *testing.T) {
	c := NewCollector(8)
	fill(c, 3, func(i int) bool { return i == 2 }, func(i int) time.Duration {
		return time.Duration(i*100) * time.Microsecond
	})

	var buf bytes.Buffer
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("CSV has %d lines, want header + 3 samples:\n%s", len(lines), buf.String())
	}
	if got := strings.TrimSpace(lines[0]); got != "tick,painted,draw_ns" {
		t.Errorf("header = %q", got)
	}
	if got := strings.TrimSpace(lines[2]); got != "2,true,200000" {
		t.Errorf("second sample = %q, want \"2,true,200000\"", got)
	}
}
