package dmath

import(
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateAboutFixedPoint(t *testing.T) {
	m := RotateAbout(37.0, 4.5, 2.25)
	x, y := m.Apply(4.5, 2.25)
	assert.InDelta(t, 4.5, x, 1e-12)
	assert.InDelta(t, 2.25, y, 1e-12)
}

func TestRotateAboutQuarterTurn(t *testing.T) {
	m := RotateAbout(90.0, 1.5, 1.5)
	x, y := m.Apply(0, 0)
	assert.InDelta(t, 3.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
}

func TestRotateAboutComposesToIdentity(t *testing.T) {
	// Six 60-degree turns about an awkward center must come back home
	m := Identity()
	for i:=0; i<6; i++ {
		m = RotateAbout(60.0, 3.7, -1.2).Mult(m)
	}
	x, y := m.Apply(10.0, 4.0)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 4.0, y, 1e-9)
}

func TestReflectAboutHorizontalAxis(t *testing.T) {
	// Axis at angle 0 through (0, 2): y -> 4 - y
	m := ReflectAbout(0.0, 0.0, 2.0)
	x, y := m.Apply(5.0, 1.0)
	assert.InDelta(t, 5.0, x, 1e-12)
	assert.InDelta(t, 3.0, y, 1e-12)
}

func TestReflectAboutVerticalAxis(t *testing.T) {
	// Axis at angle 90 through (3.5, anything): x -> 7 - x
	m := ReflectAbout(90.0, 3.5, 2.5)
	x, y := m.Apply(1.0, 4.0)
	assert.InDelta(t, 6.0, x, 1e-9)
	assert.InDelta(t, 4.0, y, 1e-9)
}

func TestReflectAboutIsInvolution(t *testing.T) {
	m := ReflectAbout(33.0, 2.0, 5.0)
	x, y := m.Apply(7.5, -2.0)
	x, y = m.Apply(x, y)
	assert.InDelta(t, 7.5, x, 1e-9)
	assert.InDelta(t, -2.0, y, 1e-9)
}

func TestTranslate(t *testing.T) {
	m := Identity().Translate(2.0, -3.0)
	x, y := m.Apply(1.0, 1.0)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, -2.0, y)
}

func TestApplyVec2(t *testing.T) {
	m := Identity().Translate(1.0, 1.0)
	v := m.ApplyVec2(Vec2{2.0, 3.0})
	assert.Equal(t, Vec2{3.0, 4.0}, v)
}
