// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import "github.com/quartzengine/rigid2d/object"

// Broadphase finds candidate colliding pairs by sweeping world-space
// AABBs, and partitions them into new/existing/destroyed relative to
// the previous call, so the contact cache (spec.md §4.8) can create,
// warm-start, or retire CachedPairs accordingly. Grounded on the
// teacher's physics/collision/broadphase.go and matrix.go, merged into
// a single map-based presence set in place of the teacher's triangular
// Matrix.
type Broadphase struct {
	active map[BodyIdPair]bool
}

// NewBroadphase creates an empty Broadphase.
func NewBroadphase() *Broadphase {

	return &Broadphase{active: make(map[BodyIdPair]bool)}
}

// NeedTest reports whether a and b should be AABB-tested against each
// other: distinct bodies, and not both non-dynamic (two Static or
// Keyframed bodies can never generate a contact response).
func NeedTest(a, b *object.Body) bool {

	if a.Id == b.Id {
		return false
	}
	if a.MotionType != object.Dynamic && b.MotionType != object.Dynamic {
		return false
	}
	return true
}

// FindPairs sweeps all bodies' world AABBs and returns the pairs found
// to overlap, split into those not present in the previous sweep (New),
// those present in both (Existing), and those present only in the
// previous sweep (Destroyed). The Broadphase retains the current sweep
// as its new baseline for the next call (spec.md §4.2).
func (bp *Broadphase) FindPairs(bodies []*object.Body) (newPairs, existingPairs, destroyedPairs []BodyIdPair) {

	current := make(map[BodyIdPair]bool)

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !NeedTest(a, b) {
				continue
			}
			if !a.WorldAABB().Overlaps(b.WorldAABB()) {
				continue
			}
			pair := NewBodyIdPair(a.Id, b.Id)
			current[pair] = true
			if bp.active[pair] {
				existingPairs = append(existingPairs, pair)
			} else {
				newPairs = append(newPairs, pair)
			}
		}
	}

	for pair := range bp.active {
		if !current[pair] {
			destroyedPairs = append(destroyedPairs, pair)
		}
	}

	bp.active = current
	return newPairs, existingPairs, destroyedPairs
}
