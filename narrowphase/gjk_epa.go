// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package narrowphase

import (
	"github.com/quartzengine/rigid2d/contact"
	"github.com/quartzengine/rigid2d/internal/log"
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
)

// epaMaxIterations bounds polytope expansion; reaching it degrades
// gracefully to the best edge found so far rather than aborting the
// step (spec.md §7, SolverNonConvergent).
const epaMaxIterations = 32

// simplexVertex is a point of the GJK simplex/EPA polytope in the
// Minkowski difference of A and B, carrying its witness points on each
// shape so a contact point can be reconstructed without a second query.
// Grounded on original_source/Physics/physicsCollider.h's SimplexVertex.
type simplexVertex struct {
	point    math2.Vec2
	supportA math2.Vec2
	supportB math2.Vec2
}

// supportMinkowski returns the point of A-B furthest in direction d,
// together with its witness points on A and B in world space.
func supportMinkowski(a, b *object.Body, d math2.Vec2) simplexVertex {

	dirA := vectorToLocal(a, d)
	localSupportA := a.Shape.Support(dirA)
	worldA := a.PointToWorld(localSupportA)

	negD := d
	negD.MultiplyScalar(-1)
	dirB := vectorToLocal(b, negD)
	localSupportB := b.Shape.Support(dirB)
	worldB := b.PointToWorld(localSupportB)

	var p math2.Vec2
	p.SubVectors(worldA, worldB)
	return simplexVertex{point: p, supportA: worldA, supportB: worldB}
}

// gjkEPA is the general convex-convex collider: GJK determines whether
// the Minkowski difference of A and B contains the origin, and if so
// EPA walks the simplex outward to the polytope edge closest to the
// origin, which gives the contact normal and penetration depth
// (spec.md §4.3, §4.4). Used for ConvexPolygon pairs and as the
// fallback for any shape combination without a dedicated analytic
// collider.
func gjkEPA(a, b *object.Body) (math2.Vec2, []contact.ContactPoint, bool) {

	simplex, ok := gjk(a, b)
	if !ok {
		return math2.Vec2{}, nil, false
	}

	normal, depth, v0, v1, t := epa(a, b, simplex)

	// EPA's sign convention for the Minkowski-difference edge normal
	// does not by itself guarantee "points from A to B"; reorient it
	// against the body centers so every collider in this package
	// agrees on the same convention (spec.md §3).
	var centerDelta math2.Vec2
	centerDelta.SubVectors(b.Position, a.Position)
	if normal.Dot(centerDelta) < 0 {
		normal.MultiplyScalar(-1)
	}

	// Reconstruct a single contact point by interpolating the witness
	// points of the closest edge's two vertices at parameter t.
	localA := v0.supportA.Lerp(v1.supportA, t)
	localB := v0.supportB.Lerp(v1.supportB, t)

	point := contact.ContactPoint{
		Depth:  depth,
		LocalA: pointToLocal(a, localA),
		LocalB: pointToLocal(b, localB),
	}
	return normal, []contact.ContactPoint{point}, true
}

// gjk runs the 2D GJK existence test, returning the final simplex (a
// triangle, 3 points) enclosing the origin if the shapes overlap.
func gjk(a, b *object.Body) ([]simplexVertex, bool) {

	var centerDelta math2.Vec2
	centerDelta.SubVectors(b.Position, a.Position)
	d := centerDelta
	if d.IsZero() {
		d = math2.Vec2{X: 1, Y: 0}
	}

	simplex := []simplexVertex{supportMinkowski(a, b, d)}
	d.MultiplyScalar(-1)

	for iter := 0; iter < epaMaxIterations; iter++ {
		v := supportMinkowski(a, b, d)
		if v.point.Dot(d) < 0 {
			return nil, false
		}
		simplex = append(simplex, v)

		var ok bool
		simplex, d, ok = evolveSimplex(simplex)
		if ok {
			return simplex, true
		}
	}
	return nil, false
}

// evolveSimplex reduces the simplex to the feature closest to the
// origin and returns the next search direction. ok is true once the
// simplex is a triangle containing the origin.
func evolveSimplex(simplex []simplexVertex) ([]simplexVertex, math2.Vec2, bool) {

	switch len(simplex) {
	case 2:
		a, b := simplex[1], simplex[0]
		var ab, ao math2.Vec2
		ab.SubVectors(b.point, a.point)
		ao.SubVectors(math2.Vec2{}, a.point)
		if ab.Dot(ao) > 0 {
			return simplex, tripleProduct(ab, ao), false
		}
		return []simplexVertex{a}, ao, false

	case 3:
		a, b, c := simplex[2], simplex[1], simplex[0]
		var ab, ac, ao math2.Vec2
		ab.SubVectors(b.point, a.point)
		ac.SubVectors(c.point, a.point)
		ao.SubVectors(math2.Vec2{}, a.point)

		abPerp := tripleProduct(ac, ab)
		if abPerp.Dot(ao) > 0 {
			return []simplexVertex{b, a}, abPerp, false
		}
		acPerp := tripleProduct(ab, ac)
		if acPerp.Dot(ao) > 0 {
			return []simplexVertex{c, a}, acPerp, false
		}
		return []simplexVertex{c, b, a}, math2.Vec2{}, true
	}
	return simplex, math2.Vec2{}, false
}

// tripleProduct returns (u x v) x v for 2D vectors, i.e. a vector
// perpendicular to v pointing away from u's side of v, used to pick the
// GJK search direction away from an edge's far side.
func tripleProduct(u, v math2.Vec2) math2.Vec2 {

	cross := u.Cross(v)
	return math2.Vec2{X: -cross * v.Y, Y: cross * v.X}
}

// epa expands the GJK simplex into a polytope and walks it to the edge
// closest to the origin, returning the world-space separating normal
// (A to B), the penetration depth, and the closest edge's two polytope
// vertices (plus interpolation parameter). Degrades to the best edge
// found if it does not converge within epaMaxIterations (spec.md §7).
func epa(a, b *object.Body, simplex []simplexVertex) (math2.Vec2, math2.Real, simplexVertex, simplexVertex, math2.Real) {

	polytope := append([]simplexVertex(nil), simplex...)

	for iter := 0; iter < epaMaxIterations; iter++ {
		i0, i1, normal, dist := closestEdge(polytope)

		v := supportMinkowski(a, b, normal)
		d := v.point.Dot(normal)

		if d-dist < 1e-4 {
			t := edgeParameter(polytope[i0].point, polytope[i1].point, normal, dist)
			return normal, dist, polytope[i0], polytope[i1], t
		}

		// Insert the new point between i0 and i1.
		inserted := make([]simplexVertex, 0, len(polytope)+1)
		inserted = append(inserted, polytope[:i1]...)
		inserted = append(inserted, v)
		inserted = append(inserted, polytope[i1:]...)
		polytope = inserted
	}

	log.Warn("narrowphase: EPA did not converge after %d iterations, using best edge", epaMaxIterations)
	i0, i1, normal, dist := closestEdge(polytope)
	t := edgeParameter(polytope[i0].point, polytope[i1].point, normal, dist)
	return normal, dist, polytope[i0], polytope[i1], t
}

// closestEdge finds the polytope edge closest to the origin, returning
// its endpoint indices, its outward normal, and its distance from the
// origin.
func closestEdge(polytope []simplexVertex) (i0, i1 int, normal math2.Vec2, dist math2.Real) {

	dist = math2.Infinity
	n := len(polytope)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := polytope[i].point, polytope[j].point

		var edge math2.Vec2
		edge.SubVectors(b, a)
		candidate := edge.Perp()
		candidate.MultiplyScalar(-1)
		norm, err := candidate.Normalized()
		if err != nil {
			continue
		}
		if norm.Dot(a) < 0 {
			norm.MultiplyScalar(-1)
		}
		d := norm.Dot(a)
		if d < dist {
			dist = d
			normal = norm
			i0, i1 = i, j
		}
	}
	return i0, i1, normal, dist
}

// edgeParameter returns t in [0,1] such that a + t*(b-a) is the point
// on segment ab closest to the origin, used to interpolate the
// witness points stored at each simplex vertex.
func edgeParameter(a, b, normal math2.Vec2, dist math2.Real) math2.Real {

	var ab math2.Vec2
	ab.SubVectors(b, a)
	lenSq := ab.LengthSq()
	if lenSq <= math2.Epsilon {
		return 0
	}
	closest := normal
	closest.MultiplyScalar(dist)
	var ac math2.Vec2
	ac.SubVectors(closest, a)
	t := ac.Dot(ab) / lenSq
	return math2.Clamp(t, 0, 1)
}
