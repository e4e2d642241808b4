// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package narrowphase

import (
	"testing"

	"github.com/kr/pretty"
	check "gopkg.in/check.v1"

	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
	"github.com/quartzengine/rigid2d/shape"
)

func Test(t *testing.T) { check.TestingT(t) }

type GJKEPASuite struct{}

var _ = check.Suite(&GJKEPASuite{})

func squarePolygon(c *check.C, halfExtent math2.Real) shape.Shape {
	p, err := shape.NewConvexPolygon([]math2.Vec2{
		{X: -halfExtent, Y: -halfExtent}, {X: halfExtent, Y: -halfExtent},
		{X: halfExtent, Y: halfExtent}, {X: -halfExtent, Y: halfExtent},
	})
	c.Assert(err, check.IsNil)
	return p
}

// TestRoundTripMatchesAnalyticSeparatingAxisAndDepth overlaps two
// axis-aligned unit squares, expressed as general ConvexPolygons so
// dispatch falls back to gjkEPA rather than the analytic box-box
// collider, and checks the reported normal and depth against the
// values a direct SAT computation would give for this configuration
// (spec.md §4.4, §8 GJK/EPA round-trip).
func (s *GJKEPASuite) TestRoundTripMatchesAnalyticSeparatingAxisAndDepth(c *check.C) {

	cases := []struct {
		offset    math2.Vec2
		wantAxis  math2.Vec2
		wantDepth math2.Real
	}{
		{offset: math2.Vec2{X: 1.5, Y: 0}, wantAxis: math2.Vec2{X: 1, Y: 0}, wantDepth: 0.5},
		{offset: math2.Vec2{X: -1.5, Y: 0}, wantAxis: math2.Vec2{X: -1, Y: 0}, wantDepth: 0.5},
		{offset: math2.Vec2{X: 0, Y: 1.5}, wantAxis: math2.Vec2{X: 0, Y: 1}, wantDepth: 0.5},
		{offset: math2.Vec2{X: 0, Y: -1.5}, wantAxis: math2.Vec2{X: 0, Y: -1}, wantDepth: 0.5},
	}

	for _, tc := range cases {
		a := object.New(0, object.Dynamic, math2.Vec2{X: 0, Y: 0}, 0, 1, 1, squarePolygon(c, 1))
		b := object.New(1, object.Dynamic, tc.offset, 0, 1, 1, squarePolygon(c, 1))

		normal, points, colliding := gjkEPA(a, b)
		if !colliding {
			c.Fatalf("expected overlap for offset %# v", pretty.Formatter(tc.offset))
		}
		c.Assert(points, check.HasLen, 1)

		if diff := normal.Dot(tc.wantAxis) - 1; diff < -1e-3 {
			c.Fatalf("offset %# v: normal %# v does not match expected axis %# v",
				pretty.Formatter(tc.offset), pretty.Formatter(normal), pretty.Formatter(tc.wantAxis))
		}
		if d := float64(points[0].Depth - tc.wantDepth); d > 1e-3 || d < -1e-3 {
			c.Fatalf("offset %# v: depth %v, want %v", pretty.Formatter(tc.offset), points[0].Depth, tc.wantDepth)
		}
	}
}

// TestRoundTripAgreesWithAnalyticCircleBoxOnASharedConfiguration cross
// checks gjkEPA (via a ConvexPolygon standing in for the box) against
// the analytic circleBox collider for the same geometry, so the
// general-purpose path and the specialized one agree on depth within
// tolerance.
func (s *GJKEPASuite) TestRoundTripAgreesWithAnalyticCircleBoxOnASharedConfiguration(c *check.C) {

	circ := object.New(0, object.Dynamic, math2.Vec2{X: 0, Y: 1.5}, 0, 1, 1, shape.NewCircle(1))
	box := object.New(1, object.Dynamic, math2.Vec2{X: 0, Y: 0}, 0, 1, 1, squarePolygon(c, 1))

	_, points, colliding := gjkEPA(circ, box)
	c.Assert(colliding, check.Equals, true)
	c.Assert(points, check.HasLen, 1)
	// Circle center at y=1.5, box top at y=1: analytic penetration is
	// radius(1) - (1.5-1) = 0.5.
	if d := float64(points[0].Depth - 0.5); d > 1e-3 || d < -1e-3 {
		c.Fatalf("depth %v, want 0.5", points[0].Depth)
	}
}
