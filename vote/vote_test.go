/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vote

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/IBM/sss-recon/types"
)

func bigs(vals ...int64) []*big.Int {
	res := make([]*big.Int, len(vals))
	for i, v := range vals {
		res[i] = big.NewInt(v)
	}
	return res
}

func TestVote(t *testing.T) {
	for _, tst := range []struct {
		name   string
		values []*big.Int
		secret int64
		count  int
	}{
		{name: "unanimous", values: bigs(7, 7, 7), secret: 7, count: 3},
		{name: "majority", values: bigs(5, 7, 7, 9, 7), secret: 7, count: 3},
		{name: "single", values: bigs(-4), secret: -4, count: 1},
		{name: "tie goes to first seen", values: bigs(9, 7, 7, 9), secret: 9, count: 2},
		{name: "all distinct", values: bigs(3, 2, 1), secret: 3, count: 1},
		{name: "late majority", values: bigs(1, 2, 3, 3), secret: 3, count: 2},
	} {
		t.Run(tst.name, func(t *testing.T) {
			res, err := Vote(tst.values)
			assert.NoError(t, err)
			assert.Equal(t, tst.secret, res.Secret.Int64())
			assert.Equal(t, tst.count, res.Count)
			assert.Equal(t, len(tst.values), res.Total)
		})
	}
}

func TestVoteValueEquality(t *testing.T) {
	a, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	b, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.False(t, a == b)

	res, err := Vote([]*big.Int{a, big.NewInt(1), b})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 0, a.Cmp(res.Secret))
	assert.InDelta(t, 2.0/3.0, res.Confidence(), 1e-9)
}

func TestVoteEmpty(t *testing.T) {
	var configErr *ConfigError

	_, err := Vote(nil)
	assert.True(t, errors.As(err, &configErr))

	_, err = Vote([]*big.Int{big.NewInt(1), nil})
	assert.True(t, errors.As(err, &configErr))
}

func TestCandidates(t *testing.T) {
	inexact := &InexactInterpolationError{Numerator: big.NewInt(13), Denominator: big.NewInt(2)}

	res, err := Candidates([]Candidate{
		{Index: 0, Secret: big.NewInt(7)},
		{Index: 1, Err: inexact},
		{Index: 2, Secret: big.NewInt(5)},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.Secret.Int64())
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 3, res.Total)

	res, err = Candidates([]Candidate{{Err: inexact}, {Err: inexact}})
	assert.True(t, errors.Is(err, ErrNoConsensus))
	assert.Equal(t, 2, res.Total)
	assert.Nil(t, res.Secret)
}

func TestBallotResultIsACopy(t *testing.T) {
	v := big.NewInt(10)

	var b Ballot
	b.Add(v)
	res, err := b.Result()
	require.NoError(t, err)

	res.Secret.SetInt64(11)
	assert.Equal(t, int64(10), v.Int64())
}
