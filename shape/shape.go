// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the collision shapes (circle, box, convex
// polygon) and their support-function capability, grounded on the
// teacher's shape abstraction (g3n-engine/experimental/physics/shape,
// g3n-engine/experimental/collision/shape).
package shape

import (
	"errors"

	"github.com/quartzengine/rigid2d/math2"
)

// ErrDegenerateShape is returned at shape construction time when a
// polygon has fewer than three vertices, is not convex, or does not
// contain its local origin. Construction fails; the shape is not
// created. See spec.md §7.
var ErrDegenerateShape = errors.New("shape: degenerate shape")

// Kind tags the variant a Shape implements; used to index the
// narrow-phase dispatch table (spec.md §4.3).
type Kind int

const (
	KindCircle Kind = iota
	KindBox
	KindConvexPolygon

	NumKinds
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindBox:
		return "box"
	case KindConvexPolygon:
		return "convex"
	default:
		return "unknown"
	}
}

// Shape is a tagged variant over {Circle, Box, ConvexPolygon}. Every
// Shape answers a support query in its own local frame: given a
// direction d, return the point of the shape furthest in direction d.
// Shapes are immutable after construction and may be shared by
// reference across multiple bodies (spec.md §3, §9).
type Shape interface {
	Kind() Kind

	// Support returns the vertex of the shape furthest in direction d,
	// in the shape's local frame. d need not be normalized.
	Support(d math2.Vec2) math2.Vec2

	// LocalAABB returns the shape's axis-aligned bounding box in its
	// own local frame (before the owning body's pose is applied).
	LocalAABB() math2.AABB
}
