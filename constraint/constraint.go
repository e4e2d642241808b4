// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint assembles velocity constraint rows from cached
// contacts and joints, and the iterative Gauss-Seidel solver walks
// them to produce per-body velocity deltas. Grounded on the teacher's
// physics/equation (Jacobian rows, SPOOK bias, effective mass) and
// physics/solver/gs.go (the sequential-impulse iteration itself),
// adapted from spatial 3D equations to a single scalar row per 2D
// contact/joint axis.
package constraint

import (
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
)

// Constraint is one scalar velocity constraint row between two bodies:
// the Jacobian is [-axis, -(rA x axis), axis, (rB x axis)] against the
// body velocity vector [vA, wA, vB, wB]. Contacts produce rows clamped
// to [0, +Inf); joints produce unclamped rows (spec.md §4.9).
type Constraint struct {
	BodyA, BodyB *object.Body

	// rA, rB are the contact/anchor offsets from each body's center of
	// mass, in world space.
	RA, RB math2.Vec2

	// Axis is this row's world-space direction (the contact normal, or
	// one of a joint's two world axes).
	Axis math2.Vec2

	// Bias is the Baumgarte stabilization term added to the relative
	// velocity along Axis in Iterate, which drives that velocity to
	// -Bias: a negative Bias pushes the bodies apart along Axis
	// (spec.md §4.9).
	Bias math2.Real

	MinImpulse math2.Real
	MaxImpulse math2.Real

	// AccumImpulse carries the impulse applied so far this step; it is
	// seeded from the cached contact's warm-start value and updated in
	// place by every solver iteration (spec.md §4.10).
	AccumImpulse *math2.Real

	effectiveMass math2.Real
	angA, angB    math2.Real // rA x axis, rB x axis
}

// New builds a Constraint row and precomputes its effective mass. The
// accumImpulse pointer is shared with the caller so warm-started and
// freshly-solved impulses are visible to whoever owns the underlying
// storage (a contact.ContactPoint or a Joint row).
func New(bodyA, bodyB *object.Body, rA, rB, axis math2.Vec2, bias, minImpulse, maxImpulse math2.Real, accumImpulse *math2.Real) *Constraint {

	c := &Constraint{
		BodyA:        bodyA,
		BodyB:        bodyB,
		RA:           rA,
		RB:           rB,
		Axis:         axis,
		Bias:         bias,
		MinImpulse:   minImpulse,
		MaxImpulse:   maxImpulse,
		AccumImpulse: accumImpulse,
	}
	c.angA = rA.Cross(axis)
	c.angB = rB.Cross(axis)

	k := bodyA.InvMass + bodyB.InvMass +
		bodyA.InvInertia*c.angA*c.angA +
		bodyB.InvInertia*c.angB*c.angB
	if k > math2.Epsilon {
		c.effectiveMass = 1 / k
	}
	return c
}

// relativeVelocity returns the bodies' relative velocity along Axis:
// (vB + wB x rB) . axis - (vA + wA x rA) . axis.
func (c *Constraint) relativeVelocity() math2.Real {

	vA := c.BodyA.VelocityAtWorldPoint(add(c.BodyA.Position, c.RA))
	vB := c.BodyB.VelocityAtWorldPoint(add(c.BodyB.Position, c.RB))
	var rel math2.Vec2
	rel.SubVectors(vB, vA)
	return rel.Dot(c.Axis)
}

func add(p, r math2.Vec2) math2.Vec2 {
	p.Add(r)
	return p
}

// Iterate runs one Gauss-Seidel pass on this row: compute the impulse
// needed to drive the relative velocity to -Bias, clamp the
// accumulated impulse to [MinImpulse, MaxImpulse], and apply the delta
// to both bodies' velocities immediately so subsequent rows in the
// same pass see it (spec.md §4.10).
func (c *Constraint) Iterate() {

	if c.effectiveMass == 0 {
		return
	}

	lambda := -c.effectiveMass * (c.relativeVelocity() + c.Bias)

	old := *c.AccumImpulse
	next := math2.Clamp(old+lambda, c.MinImpulse, c.MaxImpulse)
	delta := next - old
	*c.AccumImpulse = next

	impulse := c.Axis
	impulse.MultiplyScalar(delta)

	c.BodyA.LinearVelocity.X -= impulse.X * c.BodyA.InvMass
	c.BodyA.LinearVelocity.Y -= impulse.Y * c.BodyA.InvMass
	c.BodyA.AngularVelocity -= c.angA * delta * c.BodyA.InvInertia

	c.BodyB.LinearVelocity.X += impulse.X * c.BodyB.InvMass
	c.BodyB.LinearVelocity.Y += impulse.Y * c.BodyB.InvMass
	c.BodyB.AngularVelocity += c.angB * delta * c.BodyB.InvInertia
}

// WarmStart applies the row's current AccumImpulse once, before the
// first Gauss-Seidel pass, so the previous step's solution biases this
// step's starting velocities (spec.md §4.8, §4.10).
func (c *Constraint) WarmStart() {

	impulse := c.Axis
	impulse.MultiplyScalar(*c.AccumImpulse)

	c.BodyA.LinearVelocity.X -= impulse.X * c.BodyA.InvMass
	c.BodyA.LinearVelocity.Y -= impulse.Y * c.BodyA.InvMass
	c.BodyA.AngularVelocity -= c.angA * (*c.AccumImpulse) * c.BodyA.InvInertia

	c.BodyB.LinearVelocity.X += impulse.X * c.BodyB.InvMass
	c.BodyB.LinearVelocity.Y += impulse.Y * c.BodyB.InvMass
	c.BodyB.AngularVelocity += c.angB * (*c.AccumImpulse) * c.BodyB.InvInertia
}
