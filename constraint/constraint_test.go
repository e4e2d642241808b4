// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
	"github.com/quartzengine/rigid2d/shape"
)

func dynamicBody(id object.BodyId, pos math2.Vec2) *object.Body {
	return object.New(id, object.Dynamic, pos, 0, 1, 1, shape.NewCircle(1))
}

func TestNew_EffectiveMassOfTwoUnitMassBodies(t *testing.T) {
	a := dynamicBody(0, math2.Vec2{X: -1, Y: 0})
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})

	var accum math2.Real
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, 0, math2.Infinity, &accum)

	// No angular lever arm (rA=rB=0), so effective mass is just
	// 1/(invMassA+invMassB) = 1/(1+1) = 0.5.
	assert.InDelta(t, 0.5, float64(row.effectiveMass), 1e-6)
}

func TestNew_StaticBodyContributesNoInverseMass(t *testing.T) {
	a := object.New(0, object.Static, math2.Vec2{X: -1, Y: 0}, 0, 1, 1, shape.NewCircle(1))
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})

	var accum math2.Real
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, 0, math2.Infinity, &accum)

	assert.InDelta(t, 1.0, float64(row.effectiveMass), 1e-6)
}

func TestIterate_ClampsContactImpulseToNonNegative(t *testing.T) {
	a := dynamicBody(0, math2.Vec2{X: -1, Y: 0})
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})
	// Bodies separating: no impulse should be applied since the
	// contact row's min impulse is 0 and it cannot pull.
	a.LinearVelocity = math2.Vec2{X: -1, Y: 0}
	b.LinearVelocity = math2.Vec2{X: 1, Y: 0}

	var accum math2.Real
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, 0, math2.Infinity, &accum)
	row.Iterate()

	assert.Equal(t, math2.Real(0), accum)
	assert.InDelta(t, -1.0, float64(a.LinearVelocity.X), 1e-6)
	assert.InDelta(t, 1.0, float64(b.LinearVelocity.X), 1e-6)
}

func TestIterate_ResolvesApproachingVelocityToZero(t *testing.T) {
	a := dynamicBody(0, math2.Vec2{X: -1, Y: 0})
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})
	// Bodies approaching along +X axis: B moving left into A's space.
	b.LinearVelocity = math2.Vec2{X: -2, Y: 0}

	var accum math2.Real
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, 0, math2.Infinity, &accum)
	row.Iterate()

	assert.Greater(t, float64(accum), 0.0)
	assert.InDelta(t, 0.0, float64(row.relativeVelocity()), 1e-6)
}

func TestIterate_JointRowIsUnclamped(t *testing.T) {
	a := dynamicBody(0, math2.Vec2{X: -1, Y: 0})
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})
	a.LinearVelocity = math2.Vec2{X: -1, Y: 0}
	b.LinearVelocity = math2.Vec2{X: 1, Y: 0}

	var accum math2.Real
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, -math2.Infinity, math2.Infinity, &accum)
	row.Iterate()

	// Unlike the contact row, a joint row may apply a negative (pulling)
	// impulse to bring the bodies back together.
	assert.Less(t, float64(accum), 0.0)
}

func TestWarmStart_AppliesAccumulatedImpulseOnce(t *testing.T) {
	a := dynamicBody(0, math2.Vec2{X: -1, Y: 0})
	b := dynamicBody(1, math2.Vec2{X: 1, Y: 0})

	accum := math2.Real(1)
	row := New(a, b, math2.Vec2{}, math2.Vec2{}, math2.Vec2{X: 1, Y: 0}, 0, 0, math2.Infinity, &accum)
	row.WarmStart()

	assert.InDelta(t, -1.0, float64(a.LinearVelocity.X), 1e-6)
	assert.InDelta(t, 1.0, float64(b.LinearVelocity.X), 1e-6)
	assert.Equal(t, math2.Real(1), accum)
}
