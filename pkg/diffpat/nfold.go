package diffpat

import(
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// FillPolicy says what value an output pixel gets when none of the
// rotated copies had a valid sample there. Whatever the policy, the
// pixel is flagged false in the derived validity mask.
type FillPolicy int

const(
	FillZero     FillPolicy = iota // emit 0.0
	FillOriginal                   // pass through the untransformed input value
	FillNaN                        // emit NaN
)

// Opts are the optional knobs for the symmetrization operations.
// The zero value means: no mask, fill with zero, pick a worker count
// automatically.
type Opts struct {
	Mask    *dmath.BitGrid // nil = every pixel valid
	Fill    FillPolicy
	Workers int            // <= 0 picks one per CPU, capped at the copy count
}

// A Result is the output of a symmetrization: the averaged image, the
// derived validity mask (true where at least one copy contributed),
// and the per-pixel count of valid contributions that went into the
// division.
type Result struct {
	Image  dmath.FloatGrid
	Valid  dmath.BitGrid
	Counts dmath.IntGrid
}

// NFold averages an image under mod-fold rotation about center,
// excluding invalid pixels at each location. The k'th copy is the
// input rotated by k*360/mod degrees; a rotated sample is only used
// where every contributing source pixel is in bounds and mask-valid.
// mod == 1 is the exact identity. The inputs are never modified.
//
// center is (x, y) in pixel coordinates and need not be integral, nor
// inside the image. A pattern whose zero-order beam sits at center
// and which genuinely has mod-fold symmetry comes back unchanged up
// to interpolation error, with the noise averaged down.
func NFold(img *dmath.FloatGrid, mod int, center dmath.Vec2, opts Opts) (Result, error) {
	if mod < 1 {
		return Result{}, fmt.Errorf("nfold: mod %d: %w", mod, ErrBadParameter)
	}
	if err := checkInputs(img, center, opts.Mask); err != nil {
		return Result{}, fmt.Errorf("nfold: %w", err)
	}

	// The k'th output pixel set is the input rotated by +k*360/mod, so
	// each output pixel reads its source through the inverse rotation.
	xforms := make([]dmath.Aff3, mod)
	for k:=1; k<mod; k++ {
		xforms[k] = dmath.RotateAbout(-1*float64(k)*360.0/float64(mod), center[0], center[1])
	}

	return symAverage(img, xforms, opts), nil
}

func checkInputs(img *dmath.FloatGrid, center dmath.Vec2, mask *dmath.BitGrid) error {
	if math.IsNaN(center[0]) || math.IsInf(center[0], 0) ||
		math.IsNaN(center[1]) || math.IsInf(center[1], 0) {
		return fmt.Errorf("center (%v,%v) not finite: %w", center[0], center[1], ErrBadParameter)
	}
	if mask != nil && (mask.Dx() != img.Dx() || mask.Dy() != img.Dy()) {
		return fmt.Errorf("mask %dx%d vs image %dx%d: %w",
			mask.Dx(), mask.Dy(), img.Dx(), img.Dy(), ErrShapeMismatch)
	}
	return nil
}

// symAverage accumulates the identity copy plus one resampled copy
// per transform in xforms[1:], then divides by the per-pixel count.
// xforms[0] is ignored; slot zero is always the exact pass-through.
func symAverage(img *dmath.FloatGrid, xforms []dmath.Aff3, opts Opts) Result {
	w, h := img.Dx(), img.Dy()

	sum := dmath.NewFloatGrid(w, h)
	cnt := dmath.NewIntGrid(w, h)
	accumulateIdentity(img, opts.Mask, &sum, &cnt)

	if len(xforms) > 1 {
		accumulateConcurrently(img, opts, xforms[1:], &sum, &cnt)
	}

	out := dmath.NewFloatGrid(w, h)
	valid := dmath.NewBitGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			if c := cnt.Get(x, y); c > 0 {
				out.Set(x, y, sum.Get(x, y) / float64(c))
				valid.Set(x, y, true)
				continue
			}
			switch opts.Fill {
			case FillOriginal: out.Set(x, y, img.Get(x, y))
			case FillNaN:      out.Set(x, y, math.NaN())
			}
		}
	}

	return Result{Image: out, Valid: valid, Counts: cnt}
}

type symJob struct {
	// Input for the job
	XForm dmath.Aff3

	// Outputs: this job's private accumulators
	Sum dmath.FloatGrid
	Cnt dmath.IntGrid
}

// accumulateConcurrently runs the resampled copies on a pool of
// goroutines. Each worker only reads the shared input and writes into
// the job's own partial sum/count grids, which are merged at the end,
// so the result is identical to a serial pass.
func accumulateConcurrently(img *dmath.FloatGrid, opts Opts, xforms []dmath.Aff3, sum *dmath.FloatGrid, cnt *dmath.IntGrid) {
	var wg sync.WaitGroup
	jobsChan    := make(chan *symJob, len(xforms))
	resultsChan := make(chan *symJob, len(xforms))

	nWorkers := opts.Workers
	if nWorkers <= 0 { nWorkers = runtime.NumCPU() }
	if nWorkers > len(xforms) { nWorkers = len(xforms) }

	for i:=0; i<nWorkers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			for job := range jobsChan {
				accumulateXForm(img, opts.Mask, job.XForm, &job.Sum, &job.Cnt)
				resultsChan<- job
			}
		}()
	}

	for _, m := range xforms {
		jobsChan<- &symJob{
			XForm: m,
			Sum:   dmath.NewFloatGrid(img.Dx(), img.Dy()),
			Cnt:   dmath.NewIntGrid(img.Dx(), img.Dy()),
		}
	}

	close(jobsChan)
	wg.Wait()
	close(resultsChan)

	for job := range resultsChan {
		sum.AddGrid(&job.Sum)
		cnt.AddGrid(&job.Cnt)
	}
}
