package hexglow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// cullFactor scales FadeRadius to the outer visibility radius: cells farther
// than cullFactor*FadeRadius from the pointer are skipped before any work.
const cullFactor = 1.5

// cellAlpha returns the outline opacity of a cell at the given distance from
// the pointer. Cubic falloff: near-full next to the cursor, a soft edge at
// FadeRadius, zero beyond it.
func cellAlpha(dist, fadeRadius, maxOpacity float64) float64 {
	if dist >= fadeRadius {
		return 0
	}
	f := 1 - dist/fadeRadius
	return maxOpacity * f * f * f
}

// cellCulled reports whether a cell is beyond the outer visibility radius.
// Works on squared distances so the common (culled) case never pays for a
// square root.
func cellCulled(distSq, fadeRadius float64) bool {
	outer := cullFactor * fadeRadius
	return distSq > outer*outer
}

// cellInView reports whether a cell touches the view rectangle expanded by
// margin. Independent of pointer distance; keeps huge surfaces cheap.
func cellInView(c Cell, view Rect, margin float64) bool {
	v := view.Inset(-margin)
	return c.X+c.Size >= v.X && c.X-c.Size <= v.X+v.Width &&
		c.Y+c.Size >= v.Y && c.Y-c.Size <= v.Y+v.Height
}

// renderer paints the layered background in fixed z-order:
//
//  1. clear
//  2. diagonal two-color gradient (pointer-independent)
//  3. hexagon outlines faded around the pointer
//  4. pointer glow, additive blending
//  5. coarse-grid noise overlay
//
// All mesh geometry is rebuilt into reused buffers each paint; the only
// retained GPU resources are the glow texture cache and the shared white
// pixel.
type renderer struct {
	cfg   *Config
	glow  highlightCache
	noise NoiseSource
	scale float64 // device pixel ratio of the current paint

	verts []ebiten.Vertex
	inds  []uint16
	ptsA  [6]Vec2
	imgOp ebiten.DrawImageOptions
	triOp ebiten.DrawTrianglesOptions
}

func newRenderer(cfg *Config) *renderer {
	return &renderer{
		cfg:   cfg,
		noise: newNoiseSource(cfg.NoiseMode, cfg.NoiseSeed),
	}
}

// draw runs the full layered pass. view is the visible window in device
// pixels, pointer the eased position in device pixels, scale the device
// pixel ratio (grid cells and config distances are in logical units and are
// scaled here), phase the animation time in seconds, and alpha the
// engine-wide fade multiplier.
func (r *renderer) draw(dst *ebiten.Image, view Rect, pointer Vec2, cells []Cell, phase, alpha, scale float64) {
	dst.Clear()
	if alpha <= 0 {
		return
	}
	if scale < 1 {
		scale = 1
	}
	r.scale = scale

	r.drawGradient(dst, view, alpha)
	if r.cfg.EnableGrid {
		r.drawCells(dst, view, pointer, cells, alpha)
	}
	r.drawGlow(dst, pointer, alpha)
	if r.cfg.EnableNoise {
		r.drawNoise(dst, view, phase, alpha)
	}
}

// drawGradient paints the base gradient as a vertex-colored quad spanning the
// view corners diagonally: TopColor at the top-left, BottomColor at the
// bottom-right, and the halfway blend on the other two corners.
func (r *renderer) drawGradient(dst *ebiten.Image, view Rect, alpha float64) {
	top := r.cfg.TopColor
	bottom := r.cfg.BottomColor
	mid := lerpColor(top, bottom, 0.5)

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	corners := [4]struct {
		x, y float64
		c    Color
	}{
		{view.X, view.Y, top},
		{view.X + view.Width, view.Y, mid},
		{view.X + view.Width, view.Y + view.Height, bottom},
		{view.X, view.Y + view.Height, mid},
	}
	for _, corner := range corners {
		a := float32(corner.c.A * alpha)
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(corner.x), DstY: float32(corner.y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(corner.c.R) * a,
			ColorG: float32(corner.c.G) * a,
			ColorB: float32(corner.c.B) * a,
			ColorA: a,
		})
	}
	r.inds = append(r.inds, 0, 1, 2, 0, 2, 3)

	r.triOp.Blend = BlendNormal.EbitenBlend()
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.triOp)
}

// drawCells strokes every visible hexagon into one mesh and submits it in a
// single DrawTriangles call. Cells are culled twice before any geometry is
// built: against the view window (with margin) and against the outer
// visibility radius around the pointer, both on squared distance.
func (r *renderer) drawCells(dst *ebiten.Image, view Rect, pointer Vec2, cells []Cell, alpha float64) {
	cfg := r.cfg
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	fade := cfg.FadeRadius * r.scale
	margin := cfg.ViewportMargin * r.scale
	for _, c := range cells {
		// Grid cells are generated in logical units; scale into pixels.
		c = Cell{X: c.X * r.scale, Y: c.Y * r.scale, Size: c.Size * r.scale}
		if !cellInView(c, view, margin) {
			continue
		}
		dx := c.X - pointer.X
		dy := c.Y - pointer.Y
		distSq := dx*dx + dy*dy
		if cellCulled(distSq, fade) {
			continue
		}
		a := cellAlpha(math.Sqrt(distSq), fade, cfg.CellOpacity) * alpha
		if a <= 0 {
			continue
		}
		r.appendHexOutline(c, a)
	}

	if len(r.inds) == 0 {
		return
	}
	r.triOp.Blend = BlendNormal.EbitenBlend()
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.triOp)
}

// appendHexOutline appends six stroked edge quads for one hexagon.
func (r *renderer) appendHexOutline(c Cell, alpha float64) {
	pts := hexPoints(c, r.ptsA[:])
	half := r.cfg.CellLineWidth * r.scale / 2
	col := r.cfg.CellColor
	a := float32(col.A * alpha)
	cr := float32(col.R) * a
	cg := float32(col.G) * a
	cb := float32(col.B) * a

	for i := 0; i < 6; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%6]

		ex := p1.X - p0.X
		ey := p1.Y - p0.Y
		length := math.Hypot(ex, ey)
		if length == 0 {
			continue
		}
		ex /= length
		ey /= length
		// Extend each end by the half width so adjacent quads overlap at the
		// corners instead of leaving notches.
		sx := p0.X - ex*half
		sy := p0.Y - ey*half
		tx := p1.X + ex*half
		ty := p1.Y + ey*half
		// Perpendicular offset.
		nx := -ey * half
		ny := ex * half

		base := uint16(len(r.verts))
		quad := [4]Vec2{
			{sx + nx, sy + ny},
			{tx + nx, ty + ny},
			{tx - nx, ty - ny},
			{sx - nx, sy - ny},
		}
		for _, p := range quad {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
			})
		}
		r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
	}
}

// drawGlow composites the pointer highlight with additive blending so it
// brightens whatever is underneath instead of painting over it.
func (r *renderer) drawGlow(dst *ebiten.Image, pointer Vec2, alpha float64) {
	cfg := r.cfg
	a := cfg.HighlightOpacity * cfg.HighlightColor.A * alpha
	if a <= 0 {
		return
	}
	img := r.glow.image(cfg.HighlightRadius * r.scale)
	sz := float64(img.Bounds().Dx())

	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Translate(pointer.X-sz/2, pointer.Y-sz/2)
	op.ColorScale.Reset()
	op.ColorScale.Scale(
		float32(cfg.HighlightColor.R*a),
		float32(cfg.HighlightColor.G*a),
		float32(cfg.HighlightColor.B*a),
		float32(a),
	)
	op.Blend = BlendAdd.EbitenBlend()
	dst.DrawImage(img, op)
}

// drawNoise overlays band-limited noise sampled on a coarse tile grid.
// Fixed-function blending cannot express a true overlay blend, so bright
// samples composite with screen blending and dark samples with multiply;
// at the configured low intensity the result reads the same.
func (r *renderer) drawNoise(dst *ebiten.Image, view Rect, phase, alpha float64) {
	cfg := r.cfg
	step := cfg.NoiseStep * r.scale
	strength := cfg.NoiseIntensity * alpha
	if strength <= 0 {
		return
	}

	white := ensureWhitePixel()
	op := &r.imgOp

	x0 := math.Floor(view.X/step) * step
	y0 := math.Floor(view.Y/step) * step
	for y := y0; y < view.Y+view.Height; y += step {
		for x := x0; x < view.X+view.Width; x += step {
			v := r.noise.Sample(x+step/2, y+step/2, phase)

			op.GeoM.Reset()
			op.GeoM.Scale(step, step)
			op.GeoM.Translate(x, y)
			op.ColorScale.Reset()
			if v >= 0 {
				g := float32(v * strength)
				op.ColorScale.Scale(g, g, g, 0)
				op.Blend = BlendScreen.EbitenBlend()
			} else {
				m := float32(1 + v*strength) // v < 0 darkens
				op.ColorScale.Scale(m, m, m, 1)
				op.Blend = BlendMultiply.EbitenBlend()
			}
			dst.DrawImage(white, op)
		}
	}
}

// dispose releases the renderer's GPU resources.
func (r *renderer) dispose() {
	r.glow.dispose()
	r.verts = nil
	r.inds = nil
}
