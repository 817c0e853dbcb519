package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectRelativePointRoundTrip(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	p := r.RelativePoint(0.5, 0.5)
	assert.Equal(t, r.Center(), p)

	n := r.Normalize(p)
	assert.InDelta(t, 0.5, n.X, 1e-12)
	assert.InDelta(t, 0.5, n.Y, 1e-12)
}

func TestUVRectToRect(t *testing.T) {
	uv := UVRect{U1: 0.25, V1: 0.5, U2: 0.75, V2: 1.0}
	r := uv.ToRect(1024, 1024)

	assert.Equal(t, 256.0, r.X)
	assert.Equal(t, 512.0, r.Y)
	assert.Equal(t, 512.0, r.Width)
	assert.Equal(t, 512.0, r.Height)
}

func TestAffineInverseUndoesApply(t *testing.T) {
	tf := Translation(5, -3).Compose(Rotation(0.7)).Compose(Scale(2, 0.5))
	inv, ok := tf.Inverse()
	assert.True(t, ok)

	p := Point2D{X: 3.5, Y: -1.25}
	q := inv.Apply(tf.Apply(p))
	assert.InDelta(t, p.X, q.X, 1e-9)
	assert.InDelta(t, p.Y, q.Y, 1e-9)
}

func TestWrapDegrees(t *testing.T) {
	assert.Equal(t, 10.0, WrapDegrees(370))
	assert.Equal(t, 350.0, WrapDegrees(-10))
	assert.Equal(t, 0.0, WrapDegrees(720))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.1, Clamp(0.05, 0.1, 3.0))
	assert.Equal(t, 3.0, Clamp(12, 0.1, 3.0))
	assert.Equal(t, 1.5, Clamp(1.5, 0.1, 3.0))
}
