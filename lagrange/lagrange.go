/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lagrange

import (
	"math/big"

	. "github.com/IBM/sss-recon/types"
)

// AtZero returns the value at x = 0 of the unique polynomial of degree len(points)-1
// that passes through all points.
//
// The terms y_i * L_i(0) are summed as an exact fraction over a running common
// denominator, and the division is performed once at the end. If the result is not
// an integer, the points do not lie on a single integer polynomial and an
// InexactInterpolationError is returned.
func AtZero(points []Share) (*big.Int, error) {
	xs, err := abscissas(points)
	if err != nil {
		return nil, err
	}

	sumNum := big.NewInt(0)
	sumDen := big.NewInt(1)
	tmp := new(big.Int)

	for i, p := range points {
		if p.Y == nil {
			return nil, NewConfigError("point at x = %d has no value", p.X)
		}

		nominator, denominator := lagrangeCoefficient(i, xs)
		// term = y_i * nominator / denominator
		nominator.Mul(nominator, p.Y)

		// sumNum/sumDen + nominator/denominator
		sumNum.Mul(sumNum, denominator)
		sumNum.Add(sumNum, tmp.Mul(nominator, sumDen))
		sumDen.Mul(sumDen, denominator)

		reduce(sumNum, sumDen)
	}

	q, r := new(big.Int).QuoRem(sumNum, sumDen, new(big.Int))
	if r.Sign() != 0 {
		return nil, &InexactInterpolationError{
			Numerator:   sumNum,
			Denominator: sumDen,
		}
	}

	return q, nil
}

// Coefficients returns the Lagrange basis weights L_i(0) for the given abscissas,
// so that f(0) = sum of y_i * L_i(0).
func Coefficients(xs []int64) ([]*big.Rat, error) {
	points := make([]Share, len(xs))
	for i, x := range xs {
		points[i] = Share{X: x}
	}

	bigXs, err := abscissas(points)
	if err != nil {
		return nil, err
	}

	res := make([]*big.Rat, len(xs))
	for i := range xs {
		nominator, denominator := lagrangeCoefficient(i, bigXs)
		res[i] = new(big.Rat).SetFrac(nominator, denominator)
	}

	return res, nil
}

// lagrangeCoefficient returns the nominator and denominator of L_i(0),
// namely the products of (0 - x_j) and (x_i - x_j) over all j != i.
func lagrangeCoefficient(i int, xs []*big.Int) (*big.Int, *big.Int) {
	nominator := big.NewInt(1)
	denominator := big.NewInt(1)
	diff := new(big.Int)

	for j, xj := range xs {
		if i == j {
			continue
		}

		nominator.Mul(nominator, diff.Neg(xj))            // 0 - x_j
		denominator.Mul(denominator, diff.Sub(xs[i], xj)) // x_i - x_j
	}

	return nominator, denominator
}

func abscissas(points []Share) ([]*big.Int, error) {
	if len(points) == 0 {
		return nil, NewConfigError("cannot interpolate an empty set of points")
	}

	seen := make(map[int64]struct{}, len(points))
	xs := make([]*big.Int, len(points))

	for i, p := range points {
		if _, exists := seen[p.X]; exists {
			return nil, NewConfigError("x = %d appears more than once", p.X)
		}
		seen[p.X] = struct{}{}
		xs[i] = big.NewInt(p.X)
	}

	return xs, nil
}

// reduce divides num and den by their greatest common divisor
// and makes den positive.
func reduce(num, den *big.Int) {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	if num.Sign() == 0 {
		den.SetInt64(1)
		return
	}

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.Cmp(big.NewInt(1)) == 0 {
		return
	}

	num.Quo(num, gcd)
	den.Quo(den, gcd)
}
