/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package reconstruct

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/IBM/sss-recon/choose"
	"github.com/IBM/sss-recon/decode"
	"github.com/IBM/sss-recon/lagrange"
	. "github.com/IBM/sss-recon/types"
	"github.com/IBM/sss-recon/vote"
)

const (
	DefaultPreviewSize     = 5
	DefaultMaxCombinations = 1000000
)

// Scheme reconstructs secrets by interpolating every k-subset of the shares
// of a test case and voting on the results.
type Scheme struct {
	// State
	setupOnce sync.Once
	// Config
	// Workers bounds the number of concurrent interpolations, defaults to the number of CPUs
	Workers int
	// MaxCombinations bounds C(n, k). Zero means no bound.
	MaxCombinations int
	// PreviewSize is the number of leading combinations handed to the Reporter as a preview
	PreviewSize int
	Logger      Logger
	// Reporter, if set, receives the outcome of every successful run
	Reporter Reporter
}

func (s *Scheme) setup() {
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.PreviewSize < 0 {
		s.PreviewSize = 0
	}
	if s.Logger == nil {
		s.Logger = nopLogger{}
	}
}

// Decode decodes the shares of a raw test case and validates it.
// The resulting shares are sorted by their x coordinate.
func (s *Scheme) Decode(raw *RawCase) (*TestCase, error) {
	s.setupOnce.Do(s.setup)

	if raw == nil || len(raw.Shares) == 0 {
		return nil, NewConfigError("no shares supplied")
	}

	if raw.N != len(raw.Shares) {
		return nil, NewConfigError("n is %d but %d shares were supplied", raw.N, len(raw.Shares))
	}

	if raw.K < 1 || raw.K > raw.N {
		return nil, NewConfigError("threshold k = %d is outside [1, %d]", raw.K, raw.N)
	}

	shares := make([]Share, 0, len(raw.Shares))
	seen := make(map[int64]string, len(raw.Shares))

	for key, rs := range raw.Shares {
		x, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil || x < 1 {
			return nil, NewConfigError("share index %q is not a positive integer", key)
		}

		if other, exists := seen[x]; exists {
			return nil, NewConfigError("share indices %q and %q both denote x = %d", other, key, x)
		}
		seen[x] = key

		y, err := decode.Decode(rs.Value, rs.Base)
		if err != nil {
			return nil, errors.Wrapf(err, "failed decoding share %s", key)
		}

		shares = append(shares, Share{X: x, Y: y})
	}

	sort.Slice(shares, func(i, j int) bool {
		return shares[i].X < shares[j].X
	})

	return &TestCase{
		Shares: shares,
		K:      raw.K,
		N:      raw.N,
	}, nil
}

// Reconstruct decodes the raw test case under the given name and runs it.
func (s *Scheme) Reconstruct(ctx context.Context, name string, raw *RawCase) (*Outcome, error) {
	tc, err := s.Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid test case %s", name)
	}

	out, err := s.Run(ctx, tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reconstructing %s", name)
	}

	if s.Reporter != nil {
		s.Reporter.Report(name, out)
	}

	return out, nil
}

// Run interpolates every combination of tc.K shares and votes on the resulting secrets.
// Combinations whose interpolation is not integral are counted as rejected and take no
// part in the tally. The run fails only if the input is invalid, the combination bound is
// exceeded, the context expires, or no combination was reliable.
func (s *Scheme) Run(ctx context.Context, tc *TestCase) (*Outcome, error) {
	s.setupOnce.Do(s.setup)

	if tc == nil || len(tc.Shares) == 0 {
		return nil, NewConfigError("no shares supplied")
	}

	if tc.K < 1 || tc.K > len(tc.Shares) {
		return nil, NewConfigError("threshold k = %d is outside [1, %d]", tc.K, len(tc.Shares))
	}

	required := choose.Count(len(tc.Shares), tc.K)
	if !required.IsInt64() || (s.MaxCombinations > 0 && required.Int64() > int64(s.MaxCombinations)) {
		return nil, errors.WithStack(&CombinatorialLimitExceeded{
			Required: required,
			Limit:    s.MaxCombinations,
		})
	}

	s.Logger.Infof("Testing all %s combinations of %d out of %d shares (polynomial of degree %d)",
		required, tc.K, len(tc.Shares), tc.Degree())

	candidates, err := s.interpolateAll(ctx, tc, int(required.Int64()))
	if err != nil {
		return nil, err
	}

	var rejected int
	for _, c := range candidates {
		if c.Reliable() {
			continue
		}
		rejected++
		if s.Logger.DebugEnabled() {
			s.Logger.Debugf("Combination %d %s rejected: %v", c.Index+1, sharesString(c.Shares), c.Err)
		}
	}

	if rejected > 0 {
		s.Logger.Warnf("%d out of %d combinations are not consistent with an integer polynomial", rejected, len(candidates))
	}

	result, err := vote.Candidates(candidates)
	if err != nil {
		return nil, err
	}

	s.Logger.Infof("Secret %s appears %d/%d times", result.Secret, result.Count, result.Total)

	previewSize := s.PreviewSize
	if previewSize > len(candidates) {
		previewSize = len(candidates)
	}

	return &Outcome{
		Case:       tc,
		Tested:     len(candidates),
		Rejected:   rejected,
		Preview:    candidates[:previewSize],
		Candidates: candidates,
		Vote:       result,
	}, nil
}

func (s *Scheme) interpolateAll(ctx context.Context, tc *TestCase, total int) ([]Candidate, error) {
	candidates := make([]Candidate, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)

	err := choose.Each(tc.Shares, tc.K, func(i int, combination []Share) {
		if gctx.Err() != nil {
			return
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			secret, err := lagrange.AtZero(combination)

			var inexact *InexactInterpolationError
			if err != nil && !errors.As(err, &inexact) {
				return errors.Wrapf(err, "failed interpolating combination %d", i+1)
			}

			// Each goroutine writes only its own slot
			candidates[i] = Candidate{
				Index:  i,
				Shares: combination,
				Secret: secret,
				Err:    err,
			}
			return nil
		})
	})

	waitErr := g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Wrap(ctxErr, "reconstruction aborted")
	}

	if waitErr != nil {
		return nil, waitErr
	}

	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func sharesString(shares []Share) string {
	parts := make([]string, len(shares))
	for i, s := range shares {
		parts[i] = s.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

type nopLogger struct{}

func (nopLogger) DebugEnabled() bool                     { return false }
func (nopLogger) Debugf(format string, a ...interface{}) {}
func (nopLogger) Infof(format string, a ...interface{})  {}
func (nopLogger) Warnf(format string, a ...interface{})  {}
func (nopLogger) Errorf(format string, a ...interface{}) {}
