package planning

import (
	"github.com/golang/geo/r3"

	"github.com/autoware-viz/sceneconv/spatialmath"
)

// FadeAlphas returns one alpha per position. With a positive fadeOutDistance the last position
// gets alpha 0 and the positions within fadeOutDistance of the end, measured along the path,
// ramp linearly up to baseAlpha. Everything else keeps baseAlpha.
func FadeAlphas(positions []r3.Vector, baseAlpha, fadeOutDistance float64) []float64 {
	alphas := make([]float64, len(positions))
	for i := range alphas {
		alphas[i] = baseAlpha
	}
	if fadeOutDistance <= 0 || len(positions) == 0 {
		return alphas
	}

	alphas[len(alphas)-1] = 0
	cumulative := 0.0
	for i := len(positions) - 1; i > 0; i-- {
		cumulative += spatialmath.Distance(positions[i-1], positions[i])
		if cumulative > fadeOutDistance {
			break
		}
		alphas[i-1] = baseAlpha * cumulative / fadeOutDistance
	}
	return alphas
}
