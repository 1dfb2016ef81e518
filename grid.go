package hexglow

import "math"

// Cell is one tessellation cell: a hexagon center and its circumradius in
// surface coordinates. Cells are generated in bulk and consumed read-only by
// the renderer; the whole set is discarded and rebuilt on significant surface
// resizes, never mutated in place.
type Cell struct {
	X, Y, Size float64
}

// HexGrid owns the tessellation cell set for one engine. Hexagons are
// pointy-top, laid out with a horizontal pitch of size*sqrt(3)*spacing and a
// vertical pitch of size*1.5*spacing, with alternate rows offset by half the
// horizontal pitch so the cells interlock.
//
// The grid overshoots every edge by at least one row and column so panning or
// sub-threshold resizes never expose an ungenerated strip.
type HexGrid struct {
	cells    []Cell
	cellSize float64
	spacing  float64
	// threshold is the width/height delta that forces a rebuild. Rebuilding
	// hundreds of cells on every sub-pixel resize would thrash; below the
	// threshold the current set is kept as-is.
	threshold      float64
	builtW, builtH float64
	built          bool
}

// newHexGrid creates an empty grid. Call Ensure (or Rebuild) with the surface
// size before reading Cells.
func newHexGrid(cellSize, spacing, threshold float64) *HexGrid {
	return &HexGrid{
		cellSize:  cellSize,
		spacing:   spacing,
		threshold: threshold,
	}
}

// Cells returns the current cell set. The returned slice MUST NOT be mutated.
func (g *HexGrid) Cells() []Cell {
	return g.cells
}

// NeedsRebuild reports whether the given surface size differs enough from
// the size the grid was last built for. An unbuilt grid always needs one.
func (g *HexGrid) NeedsRebuild(w, h float64) bool {
	if !g.built {
		return true
	}
	return math.Abs(w-g.builtW) > g.threshold || math.Abs(h-g.builtH) > g.threshold
}

// Ensure rebuilds the grid if the surface size crossed the rebuild threshold
// and reports whether a rebuild happened.
func (g *HexGrid) Ensure(w, h float64) bool {
	if !g.NeedsRebuild(w, h) {
		return false
	}
	g.Rebuild(w, h)
	return true
}

// Rebuild unconditionally regenerates the cell set for a w x h surface,
// replacing the previous set.
func (g *HexGrid) Rebuild(w, h float64) {
	hPitch := g.cellSize * math.Sqrt(3) * g.spacing
	vPitch := g.cellSize * 1.5 * g.spacing

	cols := int(math.Ceil(w / hPitch))
	rows := int(math.Ceil(h / vPitch))

	// One extra row/column beyond each edge.
	cells := make([]Cell, 0, (rows+3)*(cols+3))
	for row := -1; row <= rows+1; row++ {
		offset := 0.0
		if row&1 == 1 {
			offset = hPitch / 2
		}
		for col := -1; col <= cols+1; col++ {
			cells = append(cells, Cell{
				X:    float64(col)*hPitch + offset,
				Y:    float64(row) * vPitch,
				Size: g.cellSize,
			})
		}
	}

	g.cells = cells
	g.builtW, g.builtH = w, h
	g.built = true
}

// hexPoints writes the six vertices of a pointy-top hexagon centered on the
// cell into buf and returns buf[:6]. buf must have capacity for 6 points.
func hexPoints(c Cell, buf []Vec2) []Vec2 {
	buf = buf[:6]
	for i := 0; i < 6; i++ {
		// Vertices at 30 + k*60 degrees: pointy-top orientation.
		angle := math.Pi/6 + float64(i)*math.Pi/3
		buf[i] = Vec2{
			X: c.X + c.Size*math.Cos(angle),
			Y: c.Y + c.Size*math.Sin(angle),
		}
	}
	return buf
}
