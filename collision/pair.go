// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements the broadphase sweep and the resulting
// pair bookkeeping, grounded on the teacher's physics/collision package
// (broadphase.go, matrix.go).
package collision

import "github.com/quartzengine/rigid2d/object"

// BodyIdPair canonically identifies an unordered pair of bodies: A is
// always the smaller id, so BodyIdPair(1,2) and BodyIdPair(2,1) compare
// equal and hash identically (spec.md §3).
type BodyIdPair struct {
	A object.BodyId
	B object.BodyId
}

// NewBodyIdPair builds a canonicalized pair from two body ids, ordering
// them so A < B.
func NewBodyIdPair(a, b object.BodyId) BodyIdPair {

	if a < b {
		return BodyIdPair{A: a, B: b}
	}
	return BodyIdPair{A: b, B: a}
}
