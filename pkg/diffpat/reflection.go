package diffpat

import(
	"fmt"

	"github.com/uedlab/diffproc/pkg/dmath"
)

// Reflection averages an image with its mirror about the axis through
// center at angleDeg from horizontal. Mask, fill, and validity
// semantics are the same as NFold with two copies: the untransformed
// input, and the reflection (which, being its own inverse, doubles as
// the output-to-source map).
func Reflection(img *dmath.FloatGrid, angleDeg float64, center dmath.Vec2, opts Opts) (Result, error) {
	if err := checkInputs(img, center, opts.Mask); err != nil {
		return Result{}, fmt.Errorf("reflection: %w", err)
	}

	xforms := []dmath.Aff3{
		dmath.Identity(), // slot zero, handled as exact pass-through
		dmath.ReflectAbout(angleDeg, center[0], center[1]),
	}
	return symAverage(img, xforms, opts), nil
}
