/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package choose

import (
	"math/big"

	. "github.com/IBM/sss-recon/types"
)

// Count returns the binomial coefficient C(n, k).
func Count(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Indices calls f with every k-subset of {0, ..., n-1} in lexicographic order.
// Every slice handed to f is freshly allocated.
func Indices(n, k int, f func([]int)) error {
	if err := validate(n, k); err != nil {
		return err
	}
	choose(n, k, 0, make([]int, 0, k), f)
	return nil
}

// Each calls f with every k-subset of items, in lexicographic order of
// the positions of the items. The first argument to f is the ordinal of the subset.
func Each[T any](items []T, k int, f func(int, []T)) error {
	var ordinal int
	return Indices(len(items), k, func(indices []int) {
		subset := make([]T, len(indices))
		for i, index := range indices {
			subset[i] = items[index]
		}
		f(ordinal, subset)
		ordinal++
	})
}

// All returns every k-subset of items.
func All[T any](items []T, k int) ([][]T, error) {
	if err := validate(len(items), k); err != nil {
		return nil, err
	}

	res := make([][]T, 0, int(Count(len(items), k).Int64()))
	err := Each(items, k, func(_ int, subset []T) {
		res = append(res, subset)
	})
	return res, err
}

func validate(n, k int) error {
	if k < 1 {
		return NewConfigError("cannot choose %d out of %d", k, n)
	}
	if k > n {
		return NewConfigError("cannot choose %d out of only %d", k, n)
	}
	return nil
}

func choose(n int, targetAmount int, i int, currentSubGroup []int, f func([]int)) {
	// Check if we have enough elements in our current subgroup
	if len(currentSubGroup) == targetAmount {
		f(concatInts(currentSubGroup))
		return
	}
	// Return early if not enough remaining candidates to pick from
	itemsLeftToPick := n - i
	if targetAmount-len(currentSubGroup) > itemsLeftToPick {
		return
	}
	// Picking the current element first keeps the output lexicographic
	choose(n, targetAmount, i+1, append(currentSubGroup, i), f)
	// Or don't pick it
	choose(n, targetAmount, i+1, currentSubGroup, f)
}

func concatInts(a []int, elements ...int) []int {
	res := make([]int, 0, len(a)+len(elements))
	res = append(res, a...)
	res = append(res, elements...)
	return res
}
