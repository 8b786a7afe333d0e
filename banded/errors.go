// SPDX-License-Identifier: MIT
// Package banded: sentinel error set.

package banded

import "errors"

// ErrDimensionMismatch indicates that a per-row weight slice does not match
// the operator order. Returned by ScaleRows; matched with errors.Is.
var ErrDimensionMismatch = errors.New("banded: dimension mismatch")
