/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package choose

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/IBM/sss-recon/types"
)

func TestNChooseK(t *testing.T) {
	for _, tst := range []struct {
		n int
		k int
	}{
		{n: 1, k: 1},
		{n: 2, k: 2},
		{n: 3, k: 3},
		{n: 5, k: 3},
		{n: 10, k: 5},
	} {
		t.Run(fmt.Sprintf("%d choose %d", tst.n, tst.k), func(t *testing.T) {
			s := make(map[string]struct{})
			permutations := Count(tst.n, tst.k)
			var count int
			err := Indices(tst.n, tst.k, func(a []int) {
				count++
				s[fmt.Sprintf("%v", a)] = struct{}{}
			})
			assert.NoError(t, err)
			assert.Len(t, s, int(permutations.Int64()))
			assert.Equal(t, int(permutations.Int64()), count)
		})
	}
}

func TestCompleteness(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for k := 1; k <= n; k++ {
			seen := make(map[uint32]struct{})
			var prev []int
			err := Indices(n, k, func(a []int) {
				var mask uint32
				for _, i := range a {
					mask |= 1 << uint(i)
				}
				seen[mask] = struct{}{}
				if prev != nil {
					assert.True(t, lexLess(prev, a), "%v before %v", prev, a)
				}
				prev = a
			})
			require.NoError(t, err)
			require.Equal(t, Count(n, k).Int64(), int64(len(seen)), "%d choose %d", n, k)
		}
	}
}

func TestLexicographicOrder(t *testing.T) {
	subsets, err := All([]string{"a", "b", "c", "d"}, 2)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"},
		{"c", "d"},
	}, subsets)
}

func TestEdgeCases(t *testing.T) {
	items := []int{7, 8, 9}

	singletons, err := All(items, 1)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{7}, {8}, {9}}, singletons)

	everything, err := All(items, 3)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{7, 8, 9}}, everything)

	for _, k := range []int{0, -1, 4} {
		_, err := All(items, k)
		var configErr *ConfigError
		assert.True(t, errors.As(err, &configErr), "k=%d", k)
	}
}

func TestEachOrdinals(t *testing.T) {
	var ordinals []int
	err := Each([]int{1, 2, 3, 4}, 3, func(i int, _ []int) {
		ordinals = append(ordinals, i)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, ordinals)
}

func TestSubsetsAreIndependent(t *testing.T) {
	var kept [][]int
	err := Indices(5, 3, func(a []int) {
		kept = append(kept, a)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, kept[0])
	assert.Equal(t, []int{2, 3, 4}, kept[len(kept)-1])
}

func TestCount(t *testing.T) {
	assert.Equal(t, int64(1), Count(5, 0).Int64())
	assert.Equal(t, int64(0), Count(3, 4).Int64())
	assert.Equal(t, "100891344545564193334812497256", Count(100, 50).String())
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
