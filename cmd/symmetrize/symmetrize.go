package main

import(
	"flag"
	"fmt"
	"log"

	"github.com/uedlab/diffproc/pkg/diffpat"
	"github.com/uedlab/diffproc/pkg/dmath"
)

var(
	fVerbosity int
	fConfig string
	fMod int
	fCenter string
	fFill string
	fMask string
	fWorkers int
	fNormalizeExposure bool
	fOutPrefix string
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fConfig, "config", "", "YAML config file (flags override it)")

	flag.IntVar(&fMod, "mod", 0, "rotational order to average over (e.g. 6 for hexagonal)")
	flag.StringVar(&fCenter, "center", "", "beam center as 'x,y' in pixels; default is the image centroid")
	flag.StringVar(&fFill, "fill", "", "value for pixels with no valid contribution: zero|original|nan")
	flag.StringVar(&fMask, "mask", "", "validity mask image, bright = valid")
	flag.IntVar(&fWorkers, "workers", 0, "goroutines for the rotated copies, 0 = one per CPU")
	flag.BoolVar(&fNormalizeExposure, "persecond", false, "normalize counts by EXIF exposure time when present")

	flag.StringVar(&fOutPrefix, "o", "sym", "prefix for output files (<prefix>.hdr, <prefix>.png, <prefix>-valid.png)")
	flag.Parse()

	log.Printf("symmetrize starting\n")
}

func main() {
	cfg := diffpat.NewConfig()
	if fConfig != "" {
		var err error
		if cfg, err = diffpat.LoadConfig(fConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded base configuration from %s\n", fConfig)
	}

	// Override the config file with command line args, if relevant
	if fMod > 0 { cfg.Mod = fMod }
	if fFill != "" { cfg.Fill = fFill }
	if fMask != "" { cfg.MaskPath = fMask }
	if fWorkers > 0 { cfg.Workers = fWorkers }
	if fNormalizeExposure { cfg.NormalizeExposure = true }
	cfg.Verbosity = fVerbosity

	haveCenter := cfg.CenterX != 0 || cfg.CenterY != 0
	if fCenter != "" {
		if _, err := fmt.Sscanf(fCenter, "%f,%f", &cfg.CenterX, &cfg.CenterY); err != nil {
			log.Fatalf("can't parse -center '%s': %v", fCenter, err)
		}
		haveCenter = true
	}

	patterns, err := diffpat.LoadPatterns(cfg, flag.Args()...)
	if err != nil {
		log.Fatal(err)
	}
	if len(patterns) == 0 {
		log.Fatal("no input frames given")
	}

	var mask *dmath.BitGrid
	if cfg.MaskPath != "" {
		m, err := diffpat.LoadMask(cfg.MaskPath, cfg.MaskThreshold)
		if err != nil {
			log.Fatal(err)
		}
		mask = &m
	}

	if !haveCenter {
		cfg.CenterX = float64(patterns[0].Grid.Dx()-1) / 2.0
		cfg.CenterY = float64(patterns[0].Grid.Dy()-1) / 2.0
		log.Printf("No beam center given, using centroid (%.1f,%.1f)\n", cfg.CenterX, cfg.CenterY)
	}

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	// Fold the frames into one averaged pattern
	avg := diffpat.NewAverager()
	for _, p := range patterns {
		log.Printf("Loaded %s\n", p)
		if err := avg.Push(&p.Grid, mask); err != nil {
			log.Fatal(err)
		}
	}
	stacked, err := avg.Result()
	if err != nil {
		log.Fatal(err)
	}

	result, err := diffpat.NFold(&stacked.Image, cfg.Mod, cfg.Center(), diffpat.Opts{
		Mask:    &stacked.Valid,
		Fill:    cfg.GetFill(),
		Workers: cfg.Workers,
	})
	if err != nil {
		log.Fatal(err)
	}

	if result.Valid.CountTrue() == 0 {
		log.Printf("WARNING: no output pixel had any valid contribution (is the center way off-grid, or the mask empty?)\n")
	}

	if cfg.Verbosity > 0 {
		log.Printf("Symmetrized %s\n", result.Image.Stats())
		log.Printf("Intensity histogram (log2 buckets): %s\n", diffpat.IntensityHistogram(&result.Image, &result.Valid))
	}

	out := diffpat.Pattern{Name: fOutPrefix, Grid: result.Image}
	if err := diffpat.WriteHDR(out, fOutPrefix + ".hdr"); err != nil {
		log.Fatal(err)
	}
	title := fmt.Sprintf("%s mod=%d center=(%.1f,%.1f)", fOutPrefix, cfg.Mod, cfg.CenterX, cfg.CenterY)
	if err := result.Image.ToImg(title, fOutPrefix + ".png"); err != nil {
		log.Fatal(err)
	}
	if err := diffpat.WriteMaskPNG(&result.Valid, fOutPrefix + "-valid.png"); err != nil {
		log.Fatal(err)
	}

	log.Printf("Wrote %s.hdr, %s.png, %s-valid.png\n", fOutPrefix, fOutPrefix, fOutPrefix)
}
