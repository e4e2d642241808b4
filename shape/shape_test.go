package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quartzengine/rigid2d/math2"
)

func TestNewConvexPolygon_RejectsTooFewVertices(t *testing.T) {
	_, err := NewConvexPolygon([]math2.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.ErrorIs(t, err, ErrDegenerateShape)
}

func TestNewConvexPolygon_RejectsNonConvex(t *testing.T) {
	// A non-convex (reflex) quad.
	_, err := NewConvexPolygon([]math2.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 1},
	})
	assert.ErrorIs(t, err, ErrDegenerateShape)
}

func TestNewConvexPolygon_RejectsOriginOutsideHull(t *testing.T) {
	_, err := NewConvexPolygon([]math2.Vec2{
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11},
	})
	assert.ErrorIs(t, err, ErrDegenerateShape)
}

func TestNewConvexPolygon_AcceptsUnitSquare(t *testing.T) {
	p, err := NewConvexPolygon([]math2.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, KindConvexPolygon, p.Kind())
}

func TestBox_Support(t *testing.T) {
	b := NewBox(math2.Vec2{X: 2, Y: 1})
	got := b.Support(math2.Vec2{X: 1, Y: 1})
	assert.Equal(t, math2.Vec2{X: 2, Y: 1}, got)

	got = b.Support(math2.Vec2{X: -1, Y: 1})
	assert.Equal(t, math2.Vec2{X: -2, Y: 1}, got)
}

func TestCircle_SupportIsOnBoundary(t *testing.T) {
	c := NewCircle(3)
	got := c.Support(math2.Vec2{X: 1, Y: 0})
	assert.InDelta(t, 3.0, float64(got.X), 1e-5)
	assert.InDelta(t, 0.0, float64(got.Y), 1e-5)
}
