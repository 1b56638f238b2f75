package diffpat

import(
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// A Pattern is one diffraction frame: the intensity grid plus
// whatever acquisition context the decoder could supply. Implements
// image.Image and hdr.Image, so the float intensities can go straight
// into a Radiance HDR encoder without quantization.
type Pattern struct {
	Name        string          // usually the source filename
	Grid        dmath.FloatGrid
	ExposureSec float64         // 0 when the file carried no exposure metadata
}

// Implement image.Image
func (p Pattern)ColorModel() color.Model { return hdrcolor.RGBModel }
func (p Pattern)Bounds() image.Rectangle { return image.Rect(0, 0, p.Grid.Dx(), p.Grid.Dy()) }
func (p Pattern)At(x, y int) color.Color { return p.HDRAt(x, y) }

// Implement hdr.Image
func (p Pattern)HDRAt(x, y int) hdrcolor.Color {
	v := p.Grid.Get(x, y)
	return hdrcolor.RGB{R: v, G: v, B: v}
}
func (p Pattern)Size() int { return p.Grid.Dx() * p.Grid.Dy() }

func (p Pattern)String() string {
	str := fmt.Sprintf("Pattern[%s %s", p.Name, p.Grid.Stats())
	if p.ExposureSec > 0 {
		str += fmt.Sprintf(", %0.4fs exposure", p.ExposureSec)
	}
	return str + "]"
}
