package diffpat

import(
	"fmt"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// An Averager folds a lazily-supplied sequence of same-shaped frames
// into a masked per-pixel mean. It only holds the running sum and
// count grids, so arbitrarily long acquisition series stream through
// in constant memory. Not safe for concurrent Push.
type Averager struct {
	sum    dmath.FloatGrid
	cnt    dmath.IntGrid
	frames int
}

func NewAverager() *Averager {
	return &Averager{}
}

// Push folds one frame in. mask may be nil (all pixels valid); masked
// pixels simply don't contribute to the mean at their location. The
// first frame fixes the shape; later frames must match it.
func (a *Averager)Push(img *dmath.FloatGrid, mask *dmath.BitGrid) error {
	if a.frames == 0 {
		a.sum = dmath.NewFloatGrid(img.Dx(), img.Dy())
		a.cnt = dmath.NewIntGrid(img.Dx(), img.Dy())
	} else if img.Dx() != a.sum.Dx() || img.Dy() != a.sum.Dy() {
		return fmt.Errorf("averager: frame %dx%d vs stack %dx%d: %w",
			img.Dx(), img.Dy(), a.sum.Dx(), a.sum.Dy(), ErrShapeMismatch)
	}
	if mask != nil && (mask.Dx() != img.Dx() || mask.Dy() != img.Dy()) {
		return fmt.Errorf("averager: mask %dx%d vs frame %dx%d: %w",
			mask.Dx(), mask.Dy(), img.Dx(), img.Dy(), ErrShapeMismatch)
	}

	for y:=0; y<img.Dy(); y++ {
		for x:=0; x<img.Dx(); x++ {
			if mask != nil && !mask.Get(x, y) {
				continue
			}
			a.sum.Add(x, y, img.Get(x, y))
			a.cnt.Incr(x, y)
		}
	}

	a.frames++
	return nil
}

func (a *Averager)Frames() int { return a.frames }

// Result returns the running mean. Pixels that never saw a valid
// sample are zero and flagged false in the validity mask. Errors if
// nothing was pushed.
func (a *Averager)Result() (Result, error) {
	if a.frames == 0 {
		return Result{}, fmt.Errorf("averager: no frames pushed: %w", ErrBadParameter)
	}

	w, h := a.sum.Dx(), a.sum.Dy()
	out := dmath.NewFloatGrid(w, h)
	valid := dmath.NewBitGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			if c := a.cnt.Get(x, y); c > 0 {
				out.Set(x, y, a.sum.Get(x, y) / float64(c))
				valid.Set(x, y, true)
			}
		}
	}

	cnt := dmath.NewIntGrid(w, h)
	cnt.AddGrid(&a.cnt)
	return Result{Image: out, Valid: valid, Counts: cnt}, nil
}
