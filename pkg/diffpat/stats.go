package diffpat

import(
	"math"

	"github.com/skypies/util/histogram"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// IntensityHistogram builds a log2-binned histogram of the positive
// intensities in a grid - diffraction intensities span many decades,
// so linear binning would pile everything into one bucket. Pixels the
// mask marks invalid (and non-positive pixels) are skipped. Handy for
// a quick sanity check of dynamic range at higher verbosity levels.
func IntensityHistogram(img *dmath.FloatGrid, mask *dmath.BitGrid) histogram.Histogram {
	hist := histogram.Histogram{NumBuckets: 64, ValMin: 0, ValMax: 32}

	for y:=0; y<img.Dy(); y++ {
		for x:=0; x<img.Dx(); x++ {
			if mask != nil && !mask.Get(x, y) {
				continue
			}
			v := img.Get(x, y)
			if v < 1 {
				continue // sub-count noise, and log2 goes negative
			}
			hist.Add(histogram.ScalarVal(int(math.Log2(v))))
		}
	}

	return hist
}
