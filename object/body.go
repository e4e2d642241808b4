// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object implements the simulated rigid Body and its motion
// type, grounded on the teacher's physics/body.go and
// experimental/physics/object/body.go.
package object

import (
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/shape"
)

// BodyId is a stable identifier for a body, valid for the body's
// lifetime in its World. Freed ids are reused via a free-list
// (spec.md §3).
type BodyId int

// InvalidBodyId is never issued by a World and can be used as a
// "no body" sentinel.
const InvalidBodyId BodyId = -1

// MotionType is one of {Static, Keyframed, Dynamic}, spec.md §3.
type MotionType int

const (
	// Static bodies have infinite mass and never move; a step() call
	// never changes their pose.
	Static MotionType = iota

	// Keyframed bodies ignore forces but integrate externally-set
	// velocity; like Static, they have infinite mass.
	Keyframed

	// Dynamic bodies integrate forces, velocities and collision
	// response normally.
	Dynamic
)

func (m MotionType) String() string {
	switch m {
	case Static:
		return "static"
	case Keyframed:
		return "keyframed"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Body is a simulated rigid body (spec.md §3).
type Body struct {
	Id         BodyId
	MotionType MotionType

	// Pose
	Position    math2.Vec2
	Orientation math2.Real // radians, normalized into (-Pi, Pi]

	// Velocities
	LinearVelocity  math2.Vec2
	AngularVelocity math2.Real

	// Mass properties. InvMass/InvInertia are the canonical forms used
	// by the solver; they are zero for Static and Keyframed bodies
	// regardless of Mass/Inertia (spec.md §3 invariant).
	Mass           math2.Real
	Inertia        math2.Real
	InvMass        math2.Real
	InvInertia     math2.Real

	// Shape is shared by reference; multiple bodies may point to the
	// same immutable shape (spec.md §3, §9).
	Shape shape.Shape
}

// New creates a Body with the given id and mass properties, deriving
// InvMass/InvInertia from MotionType per spec.md §3's invariant.
func New(id BodyId, motionType MotionType, position math2.Vec2, orientation math2.Real, mass, inertia math2.Real, s shape.Shape) *Body {

	b := &Body{
		Id:          id,
		MotionType:  motionType,
		Position:    position,
		Orientation: math2.NormalizeAngle(orientation),
		Mass:        mass,
		Inertia:     inertia,
		Shape:       s,
	}
	b.UpdateMassProperties()
	return b
}

// UpdateMassProperties recomputes InvMass/InvInertia from Mass/Inertia
// and MotionType. Call after changing Mass, Inertia, or MotionType.
func (b *Body) UpdateMassProperties() {

	if b.MotionType != Dynamic {
		b.InvMass = 0
		b.InvInertia = 0
		return
	}
	if b.Mass > 0 {
		b.InvMass = 1 / b.Mass
	} else {
		b.InvMass = 0
	}
	if b.Inertia > 0 {
		b.InvInertia = 1 / b.Inertia
	} else {
		b.InvInertia = 0
	}
}

// SetMotionType updates the motion type and re-derives mass properties,
// per spec.md §6 world.setMotionType.
func (b *Body) SetMotionType(motionType MotionType) {

	b.MotionType = motionType
	b.UpdateMassProperties()
}

// WorldTransform returns the Transform mapping this body's local frame
// to world space, used by narrow-phase and constraint assembly.
func (b *Body) WorldTransform() math2.Transform {
	return math2.NewTransform(b.Orientation, b.Position)
}

// PointToWorld converts a local-frame point to world space.
func (b *Body) PointToWorld(local math2.Vec2) math2.Vec2 {
	t := b.WorldTransform()
	return t.TransformPoint(math2.Position(local))
}

// PointToLocal converts a world-space point to this body's local frame.
// Returns an error if the body's world transform is singular; a valid
// rotation+translation transform always has determinant 1, so this is
// unreachable in practice, but the failure is still reported rather
// than assumed away (spec.md §3.2).
func (b *Body) PointToLocal(world math2.Vec2) (math2.Vec2, error) {
	t := b.WorldTransform()
	return t.TransformPointInverse(math2.Position(world))
}

// VectorToWorld converts a local-frame direction to world space.
func (b *Body) VectorToWorld(local math2.Vec2) math2.Vec2 {
	t := b.WorldTransform()
	return t.TransformPoint(math2.Direction(local))
}

// VectorToLocal converts a world-space direction to this body's local
// frame. See PointToLocal: a singular world transform is unreachable in
// practice but still reported rather than assumed away.
func (b *Body) VectorToLocal(world math2.Vec2) (math2.Vec2, error) {
	t := b.WorldTransform()
	return t.TransformPointInverse(math2.Direction(world))
}

// WorldAABB computes this body's world-space AABB from its shape's
// local AABB, transformed through its pose (spec.md §4.2). For every
// shape this uses the extent of the four transformed corners of that
// local AABB; a polygon's own vertices are not projected individually.
func (b *Body) WorldAABB() math2.AABB {

	local := b.Shape.LocalAABB()
	corners := [4]math2.Vec2{
		{X: local.Min.X, Y: local.Min.Y},
		{X: local.Max.X, Y: local.Min.Y},
		{X: local.Max.X, Y: local.Max.Y},
		{X: local.Min.X, Y: local.Max.Y},
	}
	box := math2.EmptyAABB()
	for _, c := range corners {
		box.ExpandByPoint(b.PointToWorld(c))
	}
	return box
}

// VelocityAtWorldPoint returns the world-space velocity of the material
// point currently at the given world position, combining linear and
// angular velocity.
func (b *Body) VelocityAtWorldPoint(worldPoint math2.Vec2) math2.Vec2 {

	var r math2.Vec2
	r.SubVectors(worldPoint, b.Position)
	// v + w x r, where w x r in 2D is w * perp(r)
	perp := r.Perp()
	perp.MultiplyScalar(b.AngularVelocity)
	result := b.LinearVelocity
	result.Add(perp)
	return result
}

// Integrate advances this body's pose by dt using its current
// velocities (spec.md §4.10, end of iterative solve). Keyframed bodies
// integrate their pose from velocity like Dynamic ones (a Keyframed
// body may have externally-set velocity); a Static body returns without
// touching its pose, whatever its velocities, satisfying the "static
// bodies never move" invariant (spec.md §8) bit-for-bit.
func (b *Body) Integrate(dt math2.Real) {

	if b.MotionType == Static {
		return
	}
	b.Position.X += b.LinearVelocity.X * dt
	b.Position.Y += b.LinearVelocity.Y * dt
	b.Orientation = math2.NormalizeAngle(b.Orientation + b.AngularVelocity*dt)
}
