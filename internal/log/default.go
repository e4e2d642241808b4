// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

// The package-level convenience wrappers around Default (Debug, Info,
// Warn, Error, Fatal), which let callers that don't need a dedicated
// child logger just call log.Warn(...), are declared in logger.go.
