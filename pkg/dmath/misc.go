package dmath

import "math"

// Scalar helpers shared by the grid types.

// SnapEps is how close a sample coordinate must be to an integer
// before we treat it as exactly that integer. Rotation by multiples
// of 90 degrees produces coordinates that are integral up to float
// rounding; snapping keeps those lookups exact instead of smearing
// them across a 1e-16-weighted neighbour.
const SnapEps = 1e-9

func Snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < SnapEps {
		return r
	}
	return v
}

// SplitSample snaps (u, v) and splits each into an integer base and a
// fractional part in [0, 1).
func SplitSample(u, v float64) (int, int, float64, float64) {
	u, v = Snap(u), Snap(v)
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	return x0, y0, u - float64(x0), v - float64(y0)
}

// A BilinearCorner is one source pixel of a bilinear lookup: an
// offset from the base pixel plus its interpolation weight.
type BilinearCorner struct {
	DX, DY int
	Weight float64
}

// BilinearCorners returns the corners with nonzero weight for the
// fractional offsets (fx, fy). A zero fractional part collapses that
// axis to a single pixel, so a lookup at a grid point touches exactly
// one pixel. The caller decides what in-bounds / validity means.
func BilinearCorners(fx, fy float64) []BilinearCorner {
	corners := make([]BilinearCorner, 0, 4)
	corners = append(corners, BilinearCorner{0, 0, (1 - fx) * (1 - fy)})
	if fx > 0 {
		corners = append(corners, BilinearCorner{1, 0, fx * (1 - fy)})
	}
	if fy > 0 {
		corners = append(corners, BilinearCorner{0, 1, (1 - fx) * fy})
	}
	if fx > 0 && fy > 0 {
		corners = append(corners, BilinearCorner{1, 1, fx * fy})
	}
	return corners
}

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// `f` is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}
