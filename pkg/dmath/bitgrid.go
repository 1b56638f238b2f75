package dmath

// A BitGrid is a 2D grid of validity flags, same addressing as
// FloatGrid. true = the pixel is usable, false = excluded (beam
// block, dead detector region, saturated pixel, off-grid sample).
type BitGrid struct {
	stride int
	bits   []bool
}

func NewBitGrid(w, h int) BitGrid {
	return BitGrid{
		stride: w,
		bits:   make([]bool, w*h),
	}
}

// NewBitGridFilled returns a grid with every flag set to v.
func NewBitGridFilled(w, h int, v bool) BitGrid {
	bg := NewBitGrid(w, h)
	if v {
		for i:=0; i<len(bg.bits); i++ {
			bg.bits[i] = true
		}
	}
	return bg
}

func (bg *BitGrid)Set(x, y int, v bool) { bg.bits[bg.stride*y + x] = v }
func (bg *BitGrid)Get(x, y int) bool    { return bg.bits[bg.stride*y + x] }
func (bg *BitGrid)Dx() int              { return bg.stride }

func (bg *BitGrid)Dy() int {
	if bg.stride == 0 { return 0 }
	return len(bg.bits) / bg.stride
}

func (b1 *BitGrid)Copy() *BitGrid {
	b2 := BitGrid{stride: b1.stride, bits: make([]bool, len(b1.bits))}
	copy(b2.bits, b1.bits)
	return &b2
}

func (bg *BitGrid)CountTrue() int {
	n := 0
	for i:=0; i<len(bg.bits); i++ {
		if bg.bits[i] { n++ }
	}
	return n
}

// And intersects another mask into this one, in place. Combining a
// beam-block mask with per-frame defect masks is the usual case.
func (bg *BitGrid)And(other *BitGrid) {
	for i:=0; i<len(bg.bits); i++ {
		bg.bits[i] = bg.bits[i] && other.bits[i]
	}
}

// Or unions another mask into this one, in place.
func (bg *BitGrid)Or(other *BitGrid) {
	for i:=0; i<len(bg.bits); i++ {
		bg.bits[i] = bg.bits[i] || other.bits[i]
	}
}
