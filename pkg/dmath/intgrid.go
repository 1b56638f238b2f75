package dmath

// An IntGrid is a 2D grid of counters, same addressing as FloatGrid.
// Used to track how many valid contributions landed on each pixel.
type IntGrid struct {
	stride int
	values []int
}

func NewIntGrid(w, h int) IntGrid {
	return IntGrid{
		stride: w,
		values: make([]int, w*h),
	}
}

func (ig *IntGrid)Set(x, y int, v int) { ig.values[ig.stride*y + x] = v }
func (ig *IntGrid)Get(x, y int) int    { return ig.values[ig.stride*y + x] }
func (ig *IntGrid)Incr(x, y int)       { ig.values[ig.stride*y + x]++ }
func (ig *IntGrid)Dx() int             { return ig.stride }

func (ig *IntGrid)Dy() int {
	if ig.stride == 0 { return 0 }
	return len(ig.values) / ig.stride
}

func (i1 *IntGrid)AddGrid(i2 *IntGrid) {
	for i:=0; i<len(i1.values); i++ {
		i1.values[i] += i2.values[i]
	}
}
