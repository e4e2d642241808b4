// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/quartzengine/rigid2d/math2"

// ConvexPolygon is a shape defined by an ordered list of vertices (CCW,
// forming a convex hull). Invariant: the hull is convex and closed, and
// the origin of the local frame lies inside the hull (spec.md §3).
type ConvexPolygon struct {
	vertices []math2.Vec2
}

// NewConvexPolygon validates and constructs a ConvexPolygon from vertices
// given in CCW order. Fails with ErrDegenerateShape if there are fewer
// than three vertices, the hull is not convex, or the local origin does
// not lie inside the hull (spec.md §7).
func NewConvexPolygon(vertices []math2.Vec2) (*ConvexPolygon, error) {

	if len(vertices) < 3 {
		return nil, ErrDegenerateShape
	}

	n := len(vertices)
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		c := vertices[(i+2)%n]

		var edge1, edge2, toOrigin math2.Vec2
		edge1.SubVectors(b, a)
		edge2.SubVectors(c, b)
		if edge1.Cross(edge2) < 0 {
			return nil, ErrDegenerateShape
		}

		// Origin must lie on the interior side (left, for CCW) of every edge.
		toOrigin.SubVectors(math2.Vec2{}, a)
		if edge1.Cross(toOrigin) < 0 {
			return nil, ErrDegenerateShape
		}
	}

	cp := make([]math2.Vec2, n)
	copy(cp, vertices)
	return &ConvexPolygon{vertices: cp}, nil
}

// Kind satisfies Shape.
func (p *ConvexPolygon) Kind() Kind { return KindConvexPolygon }

// Vertices returns the polygon's vertices in local frame, CCW order.
// The returned slice must not be mutated: shapes are immutable and may
// be shared by reference across bodies.
func (p *ConvexPolygon) Vertices() []math2.Vec2 {
	return p.vertices
}

// Support returns the argmax vertex along d, per spec.md §4.1.
func (p *ConvexPolygon) Support(d math2.Vec2) math2.Vec2 {

	best := p.vertices[0]
	bestDot := best.Dot(d)
	for _, v := range p.vertices[1:] {
		dot := v.Dot(d)
		if dot > bestDot {
			bestDot = dot
			best = v
		}
	}
	return best
}

// LocalAABB satisfies Shape.
func (p *ConvexPolygon) LocalAABB() math2.AABB {

	box := math2.EmptyAABB()
	for _, v := range p.vertices {
		box.ExpandByPoint(v)
	}
	return box
}
