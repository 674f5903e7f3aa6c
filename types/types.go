/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package recon

import (
	"context"
	"fmt"
	"math/big"
)

// Logger logs messages in a synchronized fashion to the same destination (usually to a file)
type Logger interface {
	DebugEnabled() bool
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

// Share is a single point (X, Y) on the sharing polynomial.
// Shares are created once when a test case is decoded and never mutated.
type Share struct {
	X int64
	Y *big.Int
}

func (s Share) String() string {
	return fmt.Sprintf("(%d,%s)", s.X, s.Y)
}

// TestCase is a decoded set of N shares out of which any K determine the secret.
// Shares are sorted by X in ascending order.
type TestCase struct {
	Shares []Share
	K      int
	N      int
}

// Degree is the degree of the polynomial the shares are expected to lie on.
func (tc *TestCase) Degree() int {
	return tc.K - 1
}

// RawShare is an undecoded share value as supplied by a Loader.
type RawShare struct {
	Base  int
	Value string
}

// RawCase is the structured record a Loader yields.
// Shares is keyed by the share index, which becomes the X coordinate.
type RawCase struct {
	K      int
	N      int
	Shares map[string]RawShare
}

// Candidate is the outcome of interpolating a single combination.
// A non-nil Err marks the candidate as unreliable and Secret is nil.
type Candidate struct {
	Index  int
	Shares []Share
	Secret *big.Int
	Err    error
}

// Reliable reports whether the candidate may take part in the tally.
func (c Candidate) Reliable() bool {
	return c.Err == nil && c.Secret != nil
}

// VoteResult is the secret that won the majority vote.
// Count is how many candidates agreed on Secret, Total is how many combinations were tested.
type VoteResult struct {
	Secret *big.Int
	Count  int
	Total  int
}

// Confidence is the fraction of tested combinations that agreed on the secret.
func (vr VoteResult) Confidence() float64 {
	if vr.Total == 0 {
		return 0
	}
	return float64(vr.Count) / float64(vr.Total)
}

// Outcome is everything a reconstruction run produced.
type Outcome struct {
	Case *TestCase
	// Tested is the number of combinations interpolated
	Tested int
	// Rejected is the number of combinations that failed the exactness check
	Rejected   int
	Preview    []Candidate
	Candidates []Candidate
	Vote       VoteResult
}

// Loader supplies raw test cases by name.
type Loader interface {
	Load(ctx context.Context, name string) (*RawCase, error)
}

// Reporter consumes the outcome of a reconstruction run.
type Reporter interface {
	Report(name string, out *Outcome)
}
