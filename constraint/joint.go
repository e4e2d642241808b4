// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
)

// JointId is a stable identifier for a Joint, valid for its lifetime in
// a World. Freed ids are reused via a free-list, mirroring
// object.BodyId (spec.md §3).
type JointId int

// InvalidJointId is never issued by a World.
const InvalidJointId JointId = -1

// Joint is a point-to-point constraint pinning a world pivot on BodyA
// to the corresponding world pivot on BodyB. It produces two
// unclamped constraint rows per step, one along each world axis
// (spec.md §3, §4.9).
type Joint struct {
	Id    JointId
	BodyA object.BodyId
	BodyB object.BodyId

	// LocalAnchorA, LocalAnchorB are the pivot point in each body's
	// local frame, set at creation time from the world pivot so the
	// joint tracks both bodies' poses thereafter.
	LocalAnchorA math2.Vec2
	LocalAnchorB math2.Vec2

	// AccumImpulse is the [x, y] impulse accumulated across solver
	// iterations and steps, used to warm-start the next step's solve.
	AccumImpulse [2]math2.Real
}

// NewJoint creates a Joint pinning the world point pivot on bodyA to
// the same point on bodyB, deriving each body's local anchor from its
// current pose. Fails only if a body's world transform is singular,
// which does not happen for a valid pose.
func NewJoint(id JointId, bodyA, bodyB *object.Body, pivot math2.Vec2) (*Joint, error) {

	localA, err := bodyA.PointToLocal(pivot)
	if err != nil {
		return nil, err
	}
	localB, err := bodyB.PointToLocal(pivot)
	if err != nil {
		return nil, err
	}

	return &Joint{
		Id:           id,
		BodyA:        bodyA.Id,
		BodyB:        bodyB.Id,
		LocalAnchorA: localA,
		LocalAnchorB: localB,
	}, nil
}
