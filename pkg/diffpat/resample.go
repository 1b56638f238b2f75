package diffpat

import(
	"github.com/uedlab/diffproc/pkg/dmath"
)

// sampleMasked does a mask-aware bilinear lookup at the real-valued
// source location (u, v). The sample is rejected (bool false) when any
// source pixel with nonzero interpolation weight is out of bounds or
// mask-invalid - a fractionally-covered pixel never blends in excluded
// data. mask may be nil, meaning every in-bounds pixel is valid.
func sampleMasked(img *dmath.FloatGrid, mask *dmath.BitGrid, u, v float64) (float64, bool) {
	x0, y0, fx, fy := dmath.SplitSample(u, v)

	acc := 0.0
	for _, c := range dmath.BilinearCorners(fx, fy) {
		x, y := x0 + c.DX, y0 + c.DY
		if !img.In(x, y) {
			return 0, false
		}
		if mask != nil && !mask.Get(x, y) {
			return 0, false
		}
		acc += c.Weight * img.Get(x, y)
	}
	return acc, true
}

// accumulateXForm resamples img under the output-to-source map m and
// adds each accepted sample into sum, bumping the matching count.
func accumulateXForm(img *dmath.FloatGrid, mask *dmath.BitGrid, m dmath.Aff3, sum *dmath.FloatGrid, cnt *dmath.IntGrid) {
	for y:=0; y<img.Dy(); y++ {
		for x:=0; x<img.Dx(); x++ {
			u, v := m.Apply(float64(x), float64(y))
			if val, ok := sampleMasked(img, mask, u, v); ok {
				sum.Add(x, y, val)
				cnt.Incr(x, y)
			}
		}
	}
}

// accumulateIdentity is the exact pass-through for the k=0 copy; no
// resampling, so the untransformed input survives bit-for-bit.
func accumulateIdentity(img *dmath.FloatGrid, mask *dmath.BitGrid, sum *dmath.FloatGrid, cnt *dmath.IntGrid) {
	for y:=0; y<img.Dy(); y++ {
		for x:=0; x<img.Dx(); x++ {
			if mask != nil && !mask.Get(x, y) {
				continue
			}
			sum.Add(x, y, img.Get(x, y))
			cnt.Incr(x, y)
		}
	}
}
