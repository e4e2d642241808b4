// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rigid2d

import (
	"testing"

	"github.com/kr/pretty"
	check "gopkg.in/check.v1"

	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
	"github.com/quartzengine/rigid2d/shape"
)

func Test(t *testing.T) { check.TestingT(t) }

type WorldSuite struct{}

var _ = check.Suite(&WorldSuite{})

// TestNonPenetrationDepthNeverIncreases drops a circle onto a static box
// from several starting heights and checks that, while the circle is in
// contact (the previous step ended with positive penetration), the
// penetration is non-increasing step over step.
func (s *WorldSuite) TestNonPenetrationDepthNeverIncreases(c *check.C) {

	heights := []math2.Real{1.2, 1.5, 2.0, 3.0}
	for _, h := range heights {
		w := CreateWorld(DefaultWorldConfig())
		w.CreateBody(object.Static, math2.Vec2{X: 0, Y: 0}, 0, 0, 0, shape.NewBox(math2.Vec2{X: 5, Y: 1}))
		circ := w.CreateBody(object.Dynamic, math2.Vec2{X: 0, Y: h}, 0, 1, 1, shape.NewCircle(1))

		var prevDepth math2.Real
		for i := 0; i < 180; i++ {
			w.Step()
			b, err := w.GetBody(circ)
			c.Assert(err, check.IsNil)
			penetration := math2.Real(2) - b.Position.Y
			if prevDepth > 0 && penetration > prevDepth+1e-4 {
				c.Fatalf("penetration grew in contact for start height %v: %# v -> %# v", h, pretty.Formatter(prevDepth), pretty.Formatter(penetration))
			}
			prevDepth = penetration
		}
	}
}

// TestCircleRestsAtExpectedHeightAcrossConfigurations checks the named
// concrete scenario (circle above box falling under gravity) across a
// small table of solver configurations, all of which should converge to
// the same resting height.
func (s *WorldSuite) TestCircleRestsAtExpectedHeightAcrossConfigurations(c *check.C) {

	type testCase struct {
		iterations int
		beta       math2.Real
	}
	cases := []testCase{
		{iterations: 4, beta: 0.1},
		{iterations: 10, beta: 0.1},
		{iterations: 10, beta: 0.2},
	}

	for _, tc := range cases {
		cfg := DefaultWorldConfig()
		cfg.NumIterations = tc.iterations
		cfg.Beta = tc.beta
		w := CreateWorld(cfg)
		w.CreateBody(object.Static, math2.Vec2{X: 0, Y: 0}, 0, 0, 0, shape.NewBox(math2.Vec2{X: 5, Y: 1}))
		circ := w.CreateBody(object.Dynamic, math2.Vec2{X: 0, Y: 5}, 0, 1, 1, shape.NewCircle(1))

		for i := 0; i < 60; i++ {
			w.Step()
		}

		b, err := w.GetBody(circ)
		c.Assert(err, check.IsNil)
		c.Check(float64(b.Position.Y), check.Not(check.Equals), 0.0)
		if b.Position.Y < 1.8 || b.Position.Y > 2.2 {
			c.Fatalf("case %# v: unexpected rest height %v", pretty.Formatter(tc), b.Position.Y)
		}
	}
}

// TestJointSwingSettlesNearFixedLength exercises the named joint
// scenario: a body hanging from a fixed point via a point-to-point
// joint should, after the swing damps out, settle with the anchor
// distance close to its initial length.
func (s *WorldSuite) TestJointSwingSettlesNearFixedLength(c *check.C) {

	w := CreateWorld(DefaultWorldConfig())
	anchor := w.CreateBody(object.Static, math2.Vec2{X: 0, Y: 0}, 0, 0, 0, shape.NewCircle(0.1))
	bob := w.CreateBody(object.Dynamic, math2.Vec2{X: 2, Y: 0}, 0, 1, 1, shape.NewCircle(0.3))

	_, err := w.AddJoint(anchor, bob, math2.Vec2{X: 0, Y: 0})
	c.Assert(err, check.IsNil)

	for i := 0; i < 300; i++ {
		w.Step()
	}

	a, _ := w.GetBody(anchor)
	b, _ := w.GetBody(bob)
	var delta math2.Vec2
	delta.SubVectors(b.Position, a.Position)
	dist := delta.Length()
	if dist < 1.7 || dist > 2.3 {
		c.Fatalf("joint length drifted: got %# v", pretty.Formatter(dist))
	}
}
