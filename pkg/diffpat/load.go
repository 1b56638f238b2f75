package diffpat

import(
	"fmt"
	"image"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/tiff" // register TIFF with image.Decode
	_ "image/png"               // register PNG with image.Decode

	"github.com/uedlab/diffproc/pkg/dmath"
)

// LoadPatterns loads every recognized image file in the given files
// and directories (recursing into directories), in the role of the
// "image decoder" collaborator: exotic detector formats are expected
// to have been converted to TIFF/PNG upstream. Files with other
// extensions are skipped.
func LoadPatterns(cfg Config, args ...string) ([]Pattern, error) {
	patterns := []Pattern{}

	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return nil, fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return nil, fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				sub, err := LoadPatterns(cfg, filepath.Join(arg, content.Name()))
				if err != nil {
					return nil, err
				}
				patterns = append(patterns, sub...)
			}

		default: // is a file, load it
			ext := strings.ToLower(filepath.Ext(arg))
			if ext != ".tif" && ext != ".tiff" && ext != ".png" {
				continue
			}
			p, err := loadPatternFile(cfg, arg)
			if err != nil {
				return nil, fmt.Errorf("loadfile %s: %v", arg, err)
			}
			patterns = append(patterns, p)
		}
	}

	return patterns, nil
}

func loadPatternFile(cfg Config, filename string) (Pattern, error) {
	p := Pattern{Name: filename}

	reader, err := os.Open(filename)
	if err != nil {
		return p, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, _, err := image.Decode(reader)
	if err != nil {
		return p, fmt.Errorf("decoding '%s': %v", filename, err)
	}
	p.Grid = gridFromImage(img)

	// Exposure metadata is optional; most detector exports carry none.
	p.ExposureSec = exposureSeconds(filename)
	if cfg.NormalizeExposure && p.ExposureSec > 0 {
		p.Grid.Scale(1.0 / p.ExposureSec)
	}

	return p, nil
}

// exposureSeconds makes a best-effort attempt to read an EXIF
// ExposureTime from the file. Returns 0 when there is no EXIF block
// or no usable tag; that is not an error.
func exposureSeconds(filename string) float64 {
	reader, err := os.Open(filename)
	if err != nil {
		return 0
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return 0
	}

	tag, err := ex.Get(exif.ExposureTime)
	if err != nil {
		return 0
	}
	num, denom, err := tag.Rat2(0)
	if err != nil || denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

// gridFromImage flattens a decoded image to a single intensity
// channel. Gray16 (the usual 16-bit detector export) passes through
// losslessly; anything else gets the standard luma weighting on the
// [0, 0xFFFF] channel range.
func gridFromImage(img image.Image) dmath.FloatGrid {
	bounds := img.Bounds()
	fg := dmath.NewFloatGrid(bounds.Dx(), bounds.Dy())

	if gray, ok := img.(*image.Gray16); ok {
		for y:=0; y<bounds.Dy(); y++ {
			for x:=0; x<bounds.Dx(); x++ {
				fg.Set(x, y, float64(gray.Gray16At(x + bounds.Min.X, y + bounds.Min.Y).Y))
			}
		}
		return fg
	}

	for y:=0; y<bounds.Dy(); y++ {
		for x:=0; x<bounds.Dx(); x++ {
			r, g, b, _ := img.At(x + bounds.Min.X, y + bounds.Min.Y).RGBA()
			fg.Set(x, y, float64(r) * 0.2989 + float64(g) * 0.5870 + float64(b) * 0.1140)
		}
	}
	return fg
}

// LoadMask reads a grayscale image as a validity mask: pixels at or
// above thresh (on the [0, 0xFFFF] channel range) are valid. Beam
// block and defect maps are usually drawn black-on-white this way.
func LoadMask(filename string, thresh uint16) (dmath.BitGrid, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return dmath.BitGrid{}, fmt.Errorf("open+r mask '%s': %v", filename, err)
	}
	defer reader.Close()

	img, _, err := image.Decode(reader)
	if err != nil {
		return dmath.BitGrid{}, fmt.Errorf("decoding mask '%s': %v", filename, err)
	}

	grid := gridFromImage(img)
	mask := dmath.NewBitGrid(grid.Dx(), grid.Dy())
	for y:=0; y<grid.Dy(); y++ {
		for x:=0; x<grid.Dx(); x++ {
			mask.Set(x, y, grid.Get(x, y) >= float64(thresh))
		}
	}
	return mask, nil
}
