package diffpat

import(
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedlab/diffproc/pkg/dmath"
)

func TestWriteHDR(t *testing.T) {
	grid := dmath.NewFloatGrid(8, 8)
	for y:=0; y<8; y++ {
		for x:=0; x<8; x++ {
			grid.Set(x, y, float64(x*y)*100.0)
		}
	}
	p := Pattern{Name: "test", Grid: grid}

	filename := filepath.Join(t.TempDir(), "out.hdr")
	require.NoError(t, WriteHDR(p, filename))

	contents, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.NotEmpty(t, contents)
	// Radiance files open with the #?RADIANCE magic
	assert.True(t, strings.HasPrefix(string(contents), "#?"))
}

func TestWriteMaskPNG(t *testing.T) {
	mask := dmath.NewBitGrid(4, 3)
	mask.Set(1, 1, true)
	mask.Set(3, 2, true)

	filename := filepath.Join(t.TempDir(), "mask.png")
	require.NoError(t, WriteMaskPNG(&mask, filename))

	reader, err := os.Open(filename)
	require.NoError(t, err)
	defer reader.Close()
	img, err := png.Decode(reader)
	require.NoError(t, err)

	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	r, _, _, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestWriteProfileCSV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "profile.csv")
	require.NoError(t, WriteProfileCSV([]float64{0, 1, 2}, []float64{10.5, 20.25, 0}, filename))

	contents, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "radius_px,intensity", lines[0])
	assert.Equal(t, "0.0,10.5", lines[1])
	assert.Equal(t, "1.0,20.25", lines[2])
	assert.Equal(t, "2.0,0", lines[3])
}

func TestWriteProfileCSVLengthMismatch(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "profile.csv")
	err := WriteProfileCSV([]float64{0, 1}, []float64{1}, filename)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestPatternImplementsImage(t *testing.T) {
	grid := dmath.NewFloatGrid(3, 2)
	grid.Set(2, 1, 1234.5)
	p := Pattern{Name: "x", Grid: grid}

	assert.Equal(t, 3, p.Bounds().Dx())
	assert.Equal(t, 2, p.Bounds().Dy())
	assert.Equal(t, 6, p.Size())

	c := p.HDRAt(2, 1)
	rf, gf, bf, _ := c.HDRRGBA()
	assert.Equal(t, 1234.5, rf)
	assert.Equal(t, 1234.5, gf)
	assert.Equal(t, 1234.5, bf)
}

func TestToImgWritesPNG(t *testing.T) {
	grid := dmath.NewFloatGrid(16, 16)
	for i:=0; i<16; i++ {
		grid.Set(i, i, float64(i))
	}

	filename := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, grid.ToImg("test grid", filename))

	reader, err := os.Open(filename)
	require.NoError(t, err)
	defer reader.Close()
	img, err := png.Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}
