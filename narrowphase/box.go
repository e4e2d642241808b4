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

// boxBox is the analytic box-box collider: a separating-axis test over
// each box's two local face normals, followed by a deepest-vertex
// manifold of exactly two contact points (no edge clipping is done:
// one point per box). Grounded on the
// teacher's physics/narrowphase.go FindPenetrationAxis/ClipAgainstHull
// pair, specialized to axis-aligned-per-body boxes.
func boxBox(a, b *object.Body) (math2.Vec2, []contact.ContactPoint, bool) {

	boxA := a.Shape.(*shape.Box)
	boxB := b.Shape.(*shape.Box)

	axes := [4]math2.Vec2{
		a.VectorToWorld(math2.Vec2{X: 1, Y: 0}),
		a.VectorToWorld(math2.Vec2{X: 0, Y: 1}),
		b.VectorToWorld(math2.Vec2{X: 1, Y: 0}),
		b.VectorToWorld(math2.Vec2{X: 0, Y: 1}),
	}
	vertsA := worldVertices(a, boxA.Vertices())
	vertsB := worldVertices(b, boxB.Vertices())

	bestDepth := math2.Infinity
	var bestAxis math2.Vec2
	for _, axis := range axes {
		n, _ := axis.Normalized()
		minA, maxA := projectOnto(vertsA, n)
		minB, maxB := projectOnto(vertsB, n)
		overlap := math2.Min(maxA, maxB) - math2.Max(minA, minB)
		if overlap <= 0 {
			return math2.Vec2{}, nil, false
		}
		if overlap < bestDepth {
			bestDepth = overlap
			bestAxis = n
		}
	}

	// bestAxis direction is arbitrary; orient it to point from A's
	// center to B's center so it matches the pair's A-to-B convention.
	var centerDelta math2.Vec2
	centerDelta.SubVectors(b.Position, a.Position)
	if bestAxis.Dot(centerDelta) < 0 {
		bestAxis.MultiplyScalar(-1)
	}

	// Contact points: A's vertex deepest along +bestAxis and B's vertex
	// deepest along -bestAxis serve as a 2-point manifold
	// approximation.
	deepA := deepestVertex(vertsA, bestAxis)
	negAxis := bestAxis
	negAxis.MultiplyScalar(-1)
	deepB := deepestVertex(vertsB, negAxis)

	points := []contact.ContactPoint{
		{
			Depth:  bestDepth,
			LocalA: pointToLocal(a, deepA),
			LocalB: pointToLocal(b, deepA),
		},
		{
			Depth:  bestDepth,
			LocalA: pointToLocal(a, deepB),
			LocalB: pointToLocal(b, deepB),
		},
	}
	return bestAxis, points, true
}

func worldVertices(body *object.Body, local [4]math2.Vec2) [4]math2.Vec2 {

	var out [4]math2.Vec2
	for i, v := range local {
		out[i] = body.PointToWorld(v)
	}
	return out
}

func projectOnto(verts [4]math2.Vec2, axis math2.Vec2) (min, max math2.Real) {

	min, max = math2.Infinity, -math2.Infinity
	for _, v := range verts {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func deepestVertex(verts [4]math2.Vec2, axis math2.Vec2) math2.Vec2 {

	best := verts[0]
	bestDot := best.Dot(axis)
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		if d > bestDot {
			bestDot = d
			best = v
		}
	}
	return best
}
