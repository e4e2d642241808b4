// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package narrowphase

import (
	"github.com/quartzengine/rigid2d/internal/log"
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
)

// pointToLocal and vectorToLocal adapt object.Body's error-returning
// frame conversions to this package's colliders, none of which have an
// error return of their own. A singular body transform cannot happen
// for a valid pose, so on the error path we log and fall back to the
// zero vector rather than threading an error through every Collider
// signature for a case that is unreachable in practice.

func pointToLocal(body *object.Body, world math2.Vec2) math2.Vec2 {
	p, err := body.PointToLocal(world)
	if err != nil {
		log.Error("narrowphase: body %d: %v", body.Id, err)
		return math2.Vec2{}
	}
	return p
}

func vectorToLocal(body *object.Body, world math2.Vec2) math2.Vec2 {
	v, err := body.VectorToLocal(world)
	if err != nil {
		log.Error("narrowphase: body %d: %v", body.Id, err)
		return math2.Vec2{}
	}
	return v
}
