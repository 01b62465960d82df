package widgets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/piwi3910/ShapeBoard/internal/model"
)

// spriteScale renders sprites at twice their logical size so they stay
// crisp on HiDPI displays.
const spriteScale = 2

var outlineColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}

// renderSprite rasterizes the shape's outline, filled with its kind color
// and stroked with a thin dark border.
func renderSprite(s *model.Shape) (image.Image, error) {
	size := s.Size()
	w := int(math.Ceil(size.Width * spriteScale))
	h := int(math.Ceil(size.Height * spriteScale))
	if w <= 0 || h <= 0 || len(s.Outline) < 3 {
		return nil, fmt.Errorf("sprite for %s: empty shape %.1fx%.1f", s.Kind, size.Width, size.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(s.Fill)
	tracePolygon(filler, s.Outline)
	filler.Draw()

	// Inset by half the stroke so the border is not clipped at the edges.
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.I(spriteScale), fixed.I(4), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter)
	stroker.SetColor(outlineColor)
	tracePolygon(stroker, insetOutline(s.Outline, size, spriteScale/2.0))
	stroker.Draw()

	return img, nil
}

type pathAdder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	Stop(closeLoop bool)
}

func tracePolygon(p pathAdder, outline []model.Point) {
	for i, pt := range outline {
		fp := rasterx.ToFixedP(pt.X*spriteScale, pt.Y*spriteScale)
		if i == 0 {
			p.Start(fp)
			continue
		}
		p.Line(fp)
	}
	p.Stop(true)
}

// insetOutline pulls every point toward the box center by d pixels
// (in sprite space) on each axis.
func insetOutline(outline []model.Point, size model.Size, d float64) []model.Point {
	cx, cy := size.Width/2, size.Height/2
	step := d / spriteScale
	out := make([]model.Point, len(outline))
	for i, p := range outline {
		out[i] = model.Point{X: towards(p.X, cx, step), Y: towards(p.Y, cy, step)}
	}
	return out
}

func towards(v, center, step float64) float64 {
	switch {
	case v < center:
		return v + step
	case v > center:
		return v - step
	default:
		return v
	}
}
