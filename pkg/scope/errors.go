// pkg/scope/errors.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import "errors"

var (
	ErrInvalidGeometry = errors.New("World bounds and viewport dimensions must be positive")
)
