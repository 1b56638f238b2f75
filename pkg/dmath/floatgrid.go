package dmath

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// A FloatGrid is a 2D grid of float64 intensity samples, addressed by
// (x, y) with the origin top-left. It is the in-memory form for every
// diffraction pattern we touch.
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (g1 *FloatGrid)NewFromThis() FloatGrid   { return NewFloatGrid(g1.Dx(), g1.Dy()) }
func (fg *FloatGrid)Set(x, y int, v float64)  { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64     { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Add(x, y int, v float64)  { fg.values[fg.stride*y + x] += v }
func (fg *FloatGrid)Dx() int                  { return fg.stride }

func (fg *FloatGrid)Dy() int {
	if fg.stride == 0 { return 0 } // zero-width grid has no rows either
	return len(fg.values) / fg.stride
}
func (fg *FloatGrid)In(x, y int) bool         { return x >= 0 && y >= 0 && x < fg.Dx() && y < fg.Dy() }

func (g1 *FloatGrid)Copy() *FloatGrid {
	g2 := FloatGrid{stride: g1.stride, values: make([]float64, len(g1.values))}
	copy(g2.values, g1.values)
	return &g2
}

func (g1 *FloatGrid)AddGrid(g2 *FloatGrid) {
	for i:=0; i<len(g1.values); i++ {
		g1.values[i] += g2.values[i]
	}
}

func (fg *FloatGrid)Fill(v float64) {
	for i:=0; i<len(fg.values); i++ {
		fg.values[i] = v
	}
}

func (fg *FloatGrid)Scale(k float64) {
	for i:=0; i<len(fg.values); i++ {
		fg.values[i] *= k
	}
}

func (fg *FloatGrid)Sum() float64 {
	tot := 0.0
	for i:=0; i<len(fg.values); i++ {
		tot += fg.values[i]
	}
	return tot
}

func (fg *FloatGrid)MinMax() (float64, float64) {
	min := math.MaxFloat64
	max := -1.0 * min
	for i:=0 ; i<len(fg.values) ; i++ {
		if fg.values[i] > max { max = fg.values[i] }
		if fg.values[i] < min { min = fg.values[i] }
	}
	return min, max
}

// Bilinear samples the grid at a real-valued location. The bool is
// false when any pixel that would contribute to the interpolation
// falls outside the grid. Coordinates within SnapEps of an integer
// are snapped to it, so lookups at grid points are exact.
func (fg *FloatGrid)Bilinear(u, v float64) (float64, bool) {
	x0, y0, fx, fy := SplitSample(u, v)

	acc := 0.0
	for _, c := range BilinearCorners(fx, fy) {
		x, y := x0 + c.DX, y0 + c.DY
		if !fg.In(x, y) {
			return 0, false
		}
		acc += c.Weight * fg.Get(x, y)
	}
	return acc, true
}

func (fg *FloatGrid)Stats() string {
	min, max := fg.MinMax()
	return fmt.Sprintf("grid[%dx%d, vals{%f,%f}, sum %.1f]", fg.Dx(), fg.Dy(), min, max, fg.Sum())
}

// ToImg saves a simple grayscale rendering, scaled to the range of
// values in the grid and gamma expanded to look normal for human
// vision. Intended for eyeballing results, not for measurement.
func (fg *FloatGrid)ToImg(title, filename string) error {
	min, max := fg.MinMax()
	if max <= min { max = min + 1 }

	img := image.NewRGBA64(image.Rectangle{Max: image.Point{fg.Dx(), fg.Dy()}})
	for x:=0; x<fg.Dx(); x++ {
		for y:=0; y<fg.Dy(); y++ {
			gray := GammaExpand_F64((fg.Get(x,y) - min) / (max - min))
			if gray < 0 { gray = 0 }
			if gray > 1 { gray = 1 }
			col := color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
			img.Set(x, y, col)
		}
	}

	dc := gg.NewContextForImage(img)
	if title != "" {
		dc.SetRGB(1, 1, 1)
		dc.DrawString(title, 12, 16)
	}
	return dc.SavePNG(filename)
}
