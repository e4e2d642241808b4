package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/shape"
)

func TestNew_StaticBodyHasZeroInverseMass(t *testing.T) {
	b := New(0, Static, math2.Vec2{}, 0, 10, 10, shape.NewCircle(1))
	assert.Equal(t, math2.Real(0), b.InvMass)
	assert.Equal(t, math2.Real(0), b.InvInertia)
}

func TestNew_DynamicBodyDerivesInverseMass(t *testing.T) {
	b := New(0, Dynamic, math2.Vec2{}, 0, 2, 4, shape.NewCircle(1))
	assert.InDelta(t, 0.5, float64(b.InvMass), 1e-6)
	assert.InDelta(t, 0.25, float64(b.InvInertia), 1e-6)
}

func TestSetMotionType_RederivesInverseMass(t *testing.T) {
	b := New(0, Dynamic, math2.Vec2{}, 0, 2, 4, shape.NewCircle(1))
	b.SetMotionType(Static)
	assert.Equal(t, math2.Real(0), b.InvMass)
	assert.Equal(t, math2.Real(0), b.InvInertia)
}

func TestIntegrate_StaticBodyNeverMoves(t *testing.T) {
	b := New(0, Static, math2.Vec2{X: 1, Y: 2}, 0, 0, 0, shape.NewCircle(1))
	b.LinearVelocity = math2.Vec2{X: 100, Y: 100}
	b.AngularVelocity = 100
	b.Integrate(1.0 / 60)
	assert.Equal(t, math2.Vec2{X: 1, Y: 2}, b.Position)
	assert.Equal(t, math2.Real(0), b.Orientation)
}

func TestIntegrate_DynamicBodyAdvances(t *testing.T) {
	b := New(0, Dynamic, math2.Vec2{}, 0, 1, 1, shape.NewCircle(1))
	b.LinearVelocity = math2.Vec2{X: 1, Y: 0}
	b.Integrate(0.5)
	assert.InDelta(t, 0.5, float64(b.Position.X), 1e-6)
}

func TestPointToWorldAndBack(t *testing.T) {
	b := New(0, Dynamic, math2.Vec2{X: 5, Y: -3}, math2.Pi/6, 1, 1, shape.NewBox(math2.Vec2{X: 1, Y: 1}))
	local := math2.Vec2{X: 0.5, Y: 0.25}
	world := b.PointToWorld(local)
	back, err := b.PointToLocal(world)
	assert.NoError(t, err)
	assert.InDelta(t, float64(local.X), float64(back.X), 1e-4)
	assert.InDelta(t, float64(local.Y), float64(back.Y), 1e-4)
}
