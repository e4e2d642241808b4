// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contact implements the contact manifold cache: ContactPoint,
// CachedPair, and the distance-thresholded merge that lets impulses
// warm-start across steps, grounded on the teacher's physics/equation
// package and original_source/Physics/physicsWorld.h's CachedPair.
package contact

import (
	"github.com/quartzengine/rigid2d/collision"
	"github.com/quartzengine/rigid2d/math2"
)

// localityThreshold is the squared distance, in local-frame units,
// below which a new contact point is considered the same physical
// contact as a cached one and inherits its accumulated impulse
// (spec.md §4.8).
const localityThreshold = 5 * 5

// ContactPoint is one point of a contact manifold between two bodies.
// Depth is the penetration depth along the pair's shared normal; LocalA
// and LocalB are the contact position in body A's and body B's local
// frames respectively, so the point tracks each body's pose without
// re-running narrow-phase (spec.md §3).
type ContactPoint struct {
	Depth  math2.Real
	LocalA math2.Vec2
	LocalB math2.Vec2

	// AccumImpulse is the normal impulse accumulated across solver
	// iterations and steps, used to warm-start the next step's solve
	// (spec.md §4.8, §4.10).
	AccumImpulse math2.Real
}

// CachedPair is the persistent contact manifold for one BodyIdPair: its
// world-space contact normal (pointing from A to B) and up to two
// contact points, surviving across steps via Merge (spec.md §3).
type CachedPair struct {
	Pair   collision.BodyIdPair
	Normal math2.Vec2
	Points []ContactPoint
}

// NewCachedPair creates a fresh CachedPair with no accumulated impulse,
// for a pair seen for the first time by the broadphase.
func NewCachedPair(pair collision.BodyIdPair, normal math2.Vec2, points []ContactPoint) *CachedPair {

	return &CachedPair{Pair: pair, Normal: normal, Points: points}
}

// Merge replaces this manifold's points with freshPoints from the
// current step's narrow-phase, transferring AccumImpulse from any
// cached point whose LocalA lies within localityThreshold of the fresh
// point's LocalA: the contact is assumed to be the same physical point
// that moved slightly, so its accumulated impulse is a good warm-start
// (spec.md §4.8).
func (c *CachedPair) Merge(normal math2.Vec2, freshPoints []ContactPoint) {

	merged := make([]ContactPoint, len(freshPoints))
	for i, fresh := range freshPoints {
		merged[i] = fresh
		for _, old := range c.Points {
			var d math2.Vec2
			d.SubVectors(fresh.LocalA, old.LocalA)
			if d.LengthSq() <= localityThreshold {
				merged[i].AccumImpulse = old.AccumImpulse
				break
			}
		}
	}
	c.Normal = normal
	c.Points = merged
}
