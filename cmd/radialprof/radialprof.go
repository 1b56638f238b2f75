package main

import(
	"flag"
	"fmt"
	"log"

	"github.com/uedlab/diffproc/pkg/diffpat"
	"github.com/uedlab/diffproc/pkg/dmath"
)

var(
	fCenter string
	fMask string
	fMaskThreshold int
	fOutput string
)

func init() {
	flag.StringVar(&fCenter, "center", "", "beam center as 'x,y' in pixels; default is the image centroid")
	flag.StringVar(&fMask, "mask", "", "validity mask image, bright = valid")
	flag.IntVar(&fMaskThreshold, "maskthresh", 0x7FFF, "mask pixels at/above this are valid")
	flag.StringVar(&fOutput, "o", "profile.csv", "name of output CSV file")
	flag.Parse()

	log.Printf("radialprof starting\n")
}

func main() {
	cfg := diffpat.NewConfig()
	patterns, err := diffpat.LoadPatterns(cfg, flag.Args()...)
	if err != nil {
		log.Fatal(err)
	}
	if len(patterns) != 1 {
		log.Fatalf("need exactly one input frame, got %d", len(patterns))
	}
	p := patterns[0]
	log.Printf("Loaded %s\n", p)

	var mask *dmath.BitGrid
	if fMask != "" {
		m, err := diffpat.LoadMask(fMask, uint16(fMaskThreshold))
		if err != nil {
			log.Fatal(err)
		}
		mask = &m
	}

	center := dmath.Vec2{float64(p.Grid.Dx()-1) / 2.0, float64(p.Grid.Dy()-1) / 2.0}
	if fCenter != "" {
		if _, err := fmt.Sscanf(fCenter, "%f,%f", &center[0], &center[1]); err != nil {
			log.Fatalf("can't parse -center '%s': %v", fCenter, err)
		}
	}

	radii, intensities, err := diffpat.AzimuthalAverage(&p.Grid, center, mask)
	if err != nil {
		log.Fatal(err)
	}

	if err := diffpat.WriteProfileCSV(radii, intensities, fOutput); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %d radial bins to %s\n", len(radii), fOutput)
}
