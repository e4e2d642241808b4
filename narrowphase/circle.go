// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package narrowphase

import (
	"github.com/quartzengine/rigid2d/contact"
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
	"github.com/quartzengine/rigid2d/shape"
)

// circleCircle is the analytic circle-circle collider (spec.md §4.3).
func circleCircle(a, b *object.Body) (math2.Vec2, []contact.ContactPoint, bool) {

	ca := a.Shape.(*shape.Circle)
	cb := b.Shape.(*shape.Circle)

	var delta math2.Vec2
	delta.SubVectors(b.Position, a.Position)
	dist := delta.Length()
	radiusSum := ca.Radius + cb.Radius
	if dist >= radiusSum {
		return math2.Vec2{}, nil, false
	}

	normal := math2.Vec2{X: 0, Y: 1}
	if dist > math2.Epsilon {
		normal = delta
		normal.MultiplyScalar(1 / dist)
	}
	depth := radiusSum - dist

	// A single world point midway between the two surfaces, carried in
	// each body's local frame so it tracks their poses independently.
	worldPoint := a.Position
	along := normal
	along.MultiplyScalar(ca.Radius - depth/2)
	worldPoint.Add(along)

	point := contact.ContactPoint{
		Depth:  depth,
		LocalA: pointToLocal(a, worldPoint),
		LocalB: pointToLocal(b, worldPoint),
	}
	return normal, []contact.ContactPoint{point}, true
}

// circleBox is the analytic circle-box collider: find the closest point
// on the box to the circle's center, in the box's local frame, and test
// that against the circle radius (spec.md §4.3). The convention here is
// circle as shape A, box as shape B; the dispatch table's swap wrapper
// handles the reverse ordering.
func circleBox(a, b *object.Body) (math2.Vec2, []contact.ContactPoint, bool) {

	circ := a.Shape.(*shape.Circle)
	box := b.Shape.(*shape.Box)

	centerLocal := pointToLocal(b, a.Position)

	clamped := math2.Vec2{
		X: math2.Clamp(centerLocal.X, -box.HalfExtents.X, box.HalfExtents.X),
		Y: math2.Clamp(centerLocal.Y, -box.HalfExtents.Y, box.HalfExtents.Y),
	}

	var toCenter math2.Vec2
	toCenter.SubVectors(centerLocal, clamped)

	var normalLocal math2.Vec2
	var depth math2.Real

	if toCenter.IsZero() {
		// Center is inside the box: push out along the axis of least
		// penetration.
		dx := box.HalfExtents.X - math2.Abs(centerLocal.X)
		dy := box.HalfExtents.Y - math2.Abs(centerLocal.Y)
		if dx < dy {
			sign := math2.Real(1)
			if centerLocal.X < 0 {
				sign = -1
			}
			normalLocal = math2.Vec2{X: sign, Y: 0}
			depth = dx + circ.Radius
		} else {
			sign := math2.Real(1)
			if centerLocal.Y < 0 {
				sign = -1
			}
			normalLocal = math2.Vec2{X: 0, Y: sign}
			depth = dy + circ.Radius
		}
	} else {
		dist := toCenter.Length()
		if dist >= circ.Radius {
			return math2.Vec2{}, nil, false
		}
		normalLocal = toCenter
		normalLocal.MultiplyScalar(1 / dist)
		depth = circ.Radius - dist
	}

	// normalLocal points from the box surface toward the circle center,
	// i.e. from B to A; the pair convention is A to B, so negate.
	normalWorld := b.VectorToWorld(normalLocal)
	normalWorld.MultiplyScalar(-1)

	worldPoint := b.PointToWorld(clamped)
	point := contact.ContactPoint{
		Depth:  depth,
		LocalA: pointToLocal(a, worldPoint),
		LocalB: clamped,
	}
	return normalWorld, []contact.ContactPoint{point}, true
}
