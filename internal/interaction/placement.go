package interaction

import (
	"math/rand"

	"github.com/piwi3910/ShapeBoard/internal/model"
)

// RandomPosition samples a top-left offset uniformly so a box of shapeSize
// fits inside surface. An axis where the surface is smaller than the shape
// yields 0.
func RandomPosition(shapeSize, surface model.Size, rng *rand.Rand) model.Point {
	return model.Point{
		X: sampleAxis(surface.Width-shapeSize.Width, rng),
		Y: sampleAxis(surface.Height-shapeSize.Height, rng),
	}
}

func sampleAxis(span float64, rng *rand.Rand) float64 {
	if span <= 0 {
		return 0
	}
	return rng.Float64() * span
}

// CenteredPosition returns the offset that centers a box of shapeSize on
// surface, clamped to 0 on axes where it does not fit.
func CenteredPosition(shapeSize, surface model.Size) model.Point {
	return model.ClampPosition(model.Point{
		X: (surface.Width - shapeSize.Width) / 2,
		Y: (surface.Height - shapeSize.Height) / 2,
	}, shapeSize, surface)
}
