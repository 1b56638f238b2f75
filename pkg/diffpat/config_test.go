package diffpat

import(
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedlab/diffproc/pkg/dmath"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 1, c.Mod)
	assert.Equal(t, "zero", c.Fill)
	assert.Equal(t, uint16(0x7FFF), c.MaskThreshold)
	assert.Equal(t, FillZero, c.GetFill())
}

func TestConfigYamlRoundTrip(t *testing.T) {
	c := NewConfig()
	c.Mod = 6
	c.CenterX = 511.5
	c.CenterY = 480.25
	c.Fill = "original"
	c.Workers = 3
	c.MaskPath = "beamblock.png"
	c.NormalizeExposure = true

	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(c.AsYaml()), 0644))

	c2, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, c, c2)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigCenter(t *testing.T) {
	c := NewConfig()
	c.CenterX = 12.5
	c.CenterY = 8.0
	assert.Equal(t, dmath.Vec2{12.5, 8.0}, c.Center())
}

func TestGetFill(t *testing.T) {
	cases := map[string]FillPolicy{
		"":         FillZero,
		"zero":     FillZero,
		"original": FillOriginal,
		"nan":      FillNaN,
	}
	for name, want := range cases {
		c := NewConfig()
		c.Fill = name
		assert.Equal(t, want, c.GetFill(), "fill '%s'", name)
	}
}
