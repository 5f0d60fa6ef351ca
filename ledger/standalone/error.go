// Copyright (c) 2022 The snarkd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific RuleError.
const (
	// ErrInvalidAnchorTime indicates the anchor time for a network is not a
	// positive number of seconds or implies fewer than one block per year.
	ErrInvalidAnchorTime = ErrorKind("ErrInvalidAnchorTime")

	// ErrInvalidBlocksPerEpoch indicates the number of blocks per epoch for a
	// network is zero.
	ErrInvalidBlocksPerEpoch = ErrorKind("ErrInvalidBlocksPerEpoch")

	// ErrArithmeticOverflow indicates an intermediate reward calculation
	// exceeds the maximum value representable by a 64-bit unsigned integer
	// and would lose information when narrowed.
	ErrArithmeticOverflow = ErrorKind("ErrArithmeticOverflow")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError identifies a rule violation. It has full support for errors.Is
// and errors.As, so the caller can ascertain the specific reason for the
// error by checking the underlying error.
type RuleError struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e RuleError) Unwrap() error {
	return e.Err
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(kind ErrorKind, desc string) RuleError {
	return RuleError{Err: kind, Description: desc}
}
