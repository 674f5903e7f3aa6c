/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package recon

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// ErrNoConsensus is returned when no combination produced a reliable candidate.
var ErrNoConsensus = errors.New("no reliable candidate to vote on")

// ConfigError signals input that cannot be reconstructed at all,
// such as a threshold outside [1, n] or an empty share set.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// NewConfigError returns a ConfigError carrying a stack trace.
func NewConfigError(format string, a ...interface{}) error {
	return errors.WithStack(&ConfigError{Reason: fmt.Sprintf(format, a...)})
}

// InvalidDigitError is returned when a share value contains a character
// that is not a digit of its declared base.
type InvalidDigitError struct {
	Value    string
	Char     rune
	Position int
	Base     int
}

func (e *InvalidDigitError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("empty value is not a base %d number", e.Base)
	}
	return fmt.Sprintf("invalid digit %q at position %d of %q for base %d", e.Char, e.Position, e.Value, e.Base)
}

// InexactInterpolationError is returned when the interpolated value at zero
// is not an integer, i.e. the points do not lie on one integer polynomial.
// Numerator/Denominator is the reduced fraction that was obtained.
type InexactInterpolationError struct {
	Numerator   *big.Int
	Denominator *big.Int
}

func (e *InexactInterpolationError) Error() string {
	return fmt.Sprintf("interpolation at zero is not integral: %s/%s", e.Numerator, e.Denominator)
}

// CombinatorialLimitExceeded is returned when C(n, k) is larger than the allowed number of combinations.
type CombinatorialLimitExceeded struct {
	Required *big.Int
	Limit    int
}

func (e *CombinatorialLimitExceeded) Error() string {
	if e.Limit <= 0 {
		return fmt.Sprintf("%s combinations required, which is too many to enumerate", e.Required)
	}
	return fmt.Sprintf("%s combinations required but at most %d are allowed", e.Required, e.Limit)
}
