// SPDX-License-Identifier: MIT
// Package: flowsearch/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w (method tag + parameters).
//   • Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter is below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidFraction indicates a source fraction outside [0,1].
var ErrInvalidFraction = errors.New("builder: fraction out of range")

// ErrInvalidValue indicates a non-positive maximum source value.
var ErrInvalidValue = errors.New("builder: max value must be >= 1")

// ErrConstructFailed indicates a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
