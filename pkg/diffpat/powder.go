package diffpat

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// AzimuthalAverage reduces a pattern to a 1D radial intensity
// profile: pixels are binned by their rounded distance from center,
// and each bin reports the mean of its valid pixels. Powder
// diffraction rings collapse to peaks in this profile.
//
// The returned slices have equal length, radii[i] == float64(i).
// A bin with no valid pixels reports NaN, so gaps (a beam block
// spanning a whole annulus, a center far off-grid) are visible rather
// than silently zero.
func AzimuthalAverage(img *dmath.FloatGrid, center dmath.Vec2, mask *dmath.BitGrid) ([]float64, []float64, error) {
	if err := checkInputs(img, center, mask); err != nil {
		return nil, nil, fmt.Errorf("azimuthal average: %w", err)
	}

	w, h := img.Dx(), img.Dy()

	// Furthest corner sets the bin count
	rmax := 0.0
	for _, c := range []dmath.Vec2{{0, 0}, {float64(w-1), 0}, {0, float64(h-1)}, {float64(w-1), float64(h-1)}} {
		if r := math.Hypot(c[0]-center[0], c[1]-center[1]); r > rmax {
			rmax = r
		}
	}
	nBins := int(rmax + 0.5) + 1

	bins := make([][]float64, nBins)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			if mask != nil && !mask.Get(x, y) {
				continue
			}
			r := math.Hypot(float64(x)-center[0], float64(y)-center[1])
			b := int(r + 0.5)
			bins[b] = append(bins[b], img.Get(x, y))
		}
	}

	radii := make([]float64, nBins)
	intensities := make([]float64, nBins)
	for i:=0; i<nBins; i++ {
		radii[i] = float64(i)
		if len(bins[i]) == 0 {
			intensities[i] = math.NaN()
			continue
		}
		intensities[i] = stat.Mean(bins[i], nil)
	}

	return radii, intensities, nil
}
