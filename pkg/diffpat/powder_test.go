package diffpat

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedlab/diffproc/pkg/dmath"
)

func TestAzimuthalAverageFlatField(t *testing.T) {
	img := dmath.NewFloatGrid(11, 11)
	img.Fill(3.0)

	radii, intensities, err := AzimuthalAverage(&img, dmath.Vec2{5.0, 5.0}, nil)
	require.NoError(t, err)
	require.Equal(t, len(radii), len(intensities))

	sawBin := false
	for i := range radii {
		assert.Equal(t, float64(i), radii[i])
		if math.IsNaN(intensities[i]) {
			continue // annulus with no pixels on this small grid
		}
		sawBin = true
		assert.InDelta(t, 3.0, intensities[i], 1e-12)
	}
	assert.True(t, sawBin)
}

func TestAzimuthalAverageRingPeaks(t *testing.T) {
	center := dmath.Vec2{20.0, 20.0}
	img := dmath.NewFloatGrid(41, 41)
	for y:=0; y<41; y++ {
		for x:=0; x<41; x++ {
			r := math.Hypot(float64(x)-center[0], float64(y)-center[1])
			img.Set(x, y, 100.0*math.Exp(-(r-8.0)*(r-8.0)/2.0))
		}
	}

	_, intensities, err := AzimuthalAverage(&img, center, nil)
	require.NoError(t, err)

	// The profile must peak in the ring's radial bin
	peak := 0
	for i := range intensities {
		if !math.IsNaN(intensities[i]) && intensities[i] > intensities[peak] {
			peak = i
		}
	}
	assert.Equal(t, 8, peak)
	assert.Greater(t, intensities[8], intensities[2])
	assert.Greater(t, intensities[8], intensities[14])
}

func TestAzimuthalAverageMasking(t *testing.T) {
	img := dmath.NewFloatGrid(11, 11)
	img.Fill(2.0)
	img.Set(5, 5, 9999.0) // saturated center pixel

	mask := dmath.NewBitGridFilled(11, 11, true)
	mask.Set(5, 5, false)

	_, intensities, err := AzimuthalAverage(&img, dmath.Vec2{5.0, 5.0}, &mask)
	require.NoError(t, err)

	// Bin 0 only contained the masked pixel, so it reports NaN rather
	// than the saturated value; every populated bin is clean.
	assert.True(t, math.IsNaN(intensities[0]))
	for i:=1; i<len(intensities); i++ {
		if !math.IsNaN(intensities[i]) {
			assert.InDelta(t, 2.0, intensities[i], 1e-12)
		}
	}
}

func TestAzimuthalAverageOffGridCenter(t *testing.T) {
	img := dmath.NewFloatGrid(8, 8)
	img.Fill(1.0)

	radii, intensities, err := AzimuthalAverage(&img, dmath.Vec2{-10.0, -10.0}, nil)
	require.NoError(t, err)
	require.Equal(t, len(radii), len(intensities))

	// Near bins are empty (no pixels that close to the center), far
	// bins hold the flat field.
	assert.True(t, math.IsNaN(intensities[0]))
	n := 0
	for i := range intensities {
		if !math.IsNaN(intensities[i]) {
			assert.Equal(t, 1.0, intensities[i])
			n++
		}
	}
	assert.Greater(t, n, 0)
}

func TestAzimuthalAverageInputValidation(t *testing.T) {
	img := dmath.NewFloatGrid(4, 4)

	_, _, err := AzimuthalAverage(&img, dmath.Vec2{math.NaN(), 0}, nil)
	assert.ErrorIs(t, err, ErrBadParameter)

	mask := dmath.NewBitGrid(3, 3)
	_, _, err = AzimuthalAverage(&img, dmath.Vec2{1, 1}, &mask)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
