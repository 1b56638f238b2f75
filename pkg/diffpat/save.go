package diffpat

import(
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	"github.com/mdouchement/hdr/codec/rgbe"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// WriteHDR outputs the pattern as a Radiance HDR image, keeping the
// full float dynamic range. You can load this into HDR-aware tools.
func WriteHDR(p Pattern, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("WriteHDR, open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	if err := rgbe.Encode(writer, p); err != nil {
		return fmt.Errorf("WriteHDR, encoding RGBE '%s': %v", filename, err)
	}
	return nil
}

func WritePNG(img image.Image, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()
	return png.Encode(writer, img)
}

// WriteMaskPNG renders a validity mask as a black and white image,
// white = valid.
func WriteMaskPNG(mask *dmath.BitGrid, filename string) error {
	img := image.NewGray(image.Rect(0, 0, mask.Dx(), mask.Dy()))
	for y:=0; y<mask.Dy(); y++ {
		for x:=0; x<mask.Dx(); x++ {
			if mask.Get(x, y) {
				img.SetGray(x, y, color.Gray{0xFF})
			}
		}
	}
	return WritePNG(img, filename)
}

// WriteProfileCSV writes a radial profile as two-column CSV. Bins
// with no valid pixels come out as NaN, same as the profile itself.
func WriteProfileCSV(radii, intensities []float64, filename string) error {
	if len(radii) != len(intensities) {
		return fmt.Errorf("profile csv: %d radii vs %d intensities: %w",
			len(radii), len(intensities), ErrShapeMismatch)
	}

	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	cw := csv.NewWriter(writer)
	if err := cw.Write([]string{"radius_px", "intensity"}); err != nil {
		return err
	}
	for i:=0; i<len(radii); i++ {
		row := []string{
			strconv.FormatFloat(radii[i], 'f', 1, 64),
			strconv.FormatFloat(intensities[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
