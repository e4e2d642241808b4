// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/quartzengine/rigid2d/math2"

// Circle is a shape defined by a radius about its local origin.
type Circle struct {
	Radius math2.Real
}

// NewCircle creates a new Circle shape.
func NewCircle(radius math2.Real) *Circle {
	return &Circle{Radius: radius}
}

// Kind satisfies Shape.
func (c *Circle) Kind() Kind { return KindCircle }

// Support returns d, normalized and scaled by the radius. Per spec.md
// §3, any unit vector is acceptable when d is (near) zero; straight
// down is as good as any other and keeps the function total.
func (c *Circle) Support(d math2.Vec2) math2.Vec2 {

	n, err := d.Normalized()
	if err != nil {
		n = math2.Vec2{X: 0, Y: -1}
	}
	n.MultiplyScalar(c.Radius)
	return n
}

// LocalAABB satisfies Shape.
func (c *Circle) LocalAABB() math2.AABB {

	return math2.AABB{
		Min: math2.Vec2{X: -c.Radius, Y: -c.Radius},
		Max: math2.Vec2{X: c.Radius, Y: c.Radius},
	}
}
