package diffpat

import(
	"fmt"
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"

	"github.com/uedlab/diffproc/pkg/dmath"
)

type Config struct {
	Verbosity         int

	Mod               int     // rotational order; 1 = no symmetrization
	CenterX           float64 // beam center, pixel coords; may be fractional
	CenterY           float64
	Fill              string  // "zero", "original", or "nan"
	Workers           int     // 0 = one per CPU

	MaskPath          string  // grayscale image, bright = valid; "" = no mask
	MaskThreshold     uint16

	NormalizeExposure bool    // divide counts by EXIF exposure time when present
}

func NewConfig() Config {
	return Config{
		Mod:           1,
		Fill:          "zero",
		MaskThreshold: 0x7FFF,
	}
}

func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}
	return newConfigFromYaml(contents)
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)Center() dmath.Vec2 {
	return dmath.Vec2{c.CenterX, c.CenterY}
}

func (c Config)GetFill() FillPolicy {
	switch c.Fill {
	case "zero", "":  return FillZero
	case "original":  return FillOriginal
	case "nan":       return FillNaN
	default:
		log.Fatalf("no fill policy named '%s'", c.Fill)
		return FillZero
	}
}
