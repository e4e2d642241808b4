// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/kr/pretty"
	check "gopkg.in/check.v1"

	"github.com/quartzengine/rigid2d/math2"
)

func Test(t *testing.T) { check.TestingT(t) }

type ShapeSuite struct{}

var _ = check.Suite(&ShapeSuite{})

// sampleDirections is a table of directions covering every quadrant and
// the axes, used to probe the support-function property below.
var sampleDirections = []math2.Vec2{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
	{X: 3, Y: 1}, {X: 1, Y: 3}, {X: -2, Y: 5}, {X: 5, Y: -2},
}

// checkSupportDominatesVertices asserts the defining property of a
// support function: for every candidate direction, support(d) . d must
// be at least as large as v . d for every other vertex v of the shape
// (spec.md §4.1, §8).
func checkSupportDominatesVertices(c *check.C, name string, vertices []math2.Vec2, support func(math2.Vec2) math2.Vec2) {

	for _, d := range sampleDirections {
		got := support(d)
		gotDot := got.Dot(d)
		for _, v := range vertices {
			vDot := v.Dot(d)
			if vDot > gotDot+1e-4 {
				c.Fatalf("%s: support(%# v) = %# v (dot %v) does not dominate vertex %# v (dot %v)",
					name, pretty.Formatter(d), pretty.Formatter(got), gotDot, pretty.Formatter(v), vDot)
			}
		}
	}
}

func (s *ShapeSuite) TestBoxSupportDominatesAllVertices(c *check.C) {
	b := NewBox(math2.Vec2{X: 2, Y: 1})
	verts := b.Vertices()
	checkSupportDominatesVertices(c, "box", verts[:], b.Support)
}

func (s *ShapeSuite) TestConvexPolygonSupportDominatesAllVertices(c *check.C) {
	p, err := NewConvexPolygon([]math2.Vec2{
		{X: 2, Y: 0}, {X: 1, Y: 2}, {X: -1, Y: 2}, {X: -2, Y: 0}, {X: 0, Y: -2},
	})
	c.Assert(err, check.IsNil)
	checkSupportDominatesVertices(c, "convex polygon", p.Vertices(), p.Support)
}

// TestCircleSupportDominatesBoundarySamples checks the same property
// for Circle against many sampled boundary points, since a circle has
// no finite vertex set.
func (s *ShapeSuite) TestCircleSupportDominatesBoundarySamples(c *check.C) {

	circ := NewCircle(3)
	var boundary []math2.Vec2
	for i := 0; i < 64; i++ {
		theta := math2.Real(i) * (2 * math2.Pi / 64)
		boundary = append(boundary, math2.Vec2{
			X: circ.Radius * math2.Cos(theta),
			Y: circ.Radius * math2.Sin(theta),
		})
	}
	checkSupportDominatesVertices(c, "circle", boundary, circ.Support)
}

// TestCircleSupportLiesExactlyOnBoundary checks the complementary
// property specific to an analytic shape: the returned point's
// distance from the origin always equals the radius, for every probed
// direction, not merely an upper bound.
func (s *ShapeSuite) TestCircleSupportLiesExactlyOnBoundary(c *check.C) {

	circ := NewCircle(3)
	for _, d := range sampleDirections {
		got := circ.Support(d)
		if diff := got.Length() - circ.Radius; diff > 1e-4 || diff < -1e-4 {
			c.Fatalf("support(%# v) has length %v, want %v", pretty.Formatter(d), got.Length(), circ.Radius)
		}
	}
}
