/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decode

import (
	"math/big"

	. "github.com/IBM/sss-recon/types"
)

const (
	MinBase = 2
	MaxBase = 36
)

// Digit maps an alphanumeric character to its digit value.
// Letters are case-insensitive and start at 10.
func Digit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode parses value as a number written in the given base,
// most significant digit first.
func Decode(value string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, NewConfigError("base %d is outside [%d, %d]", base, MinBase, MaxBase)
	}

	if value == "" {
		return nil, &InvalidDigitError{Value: value, Base: base}
	}

	b := big.NewInt(int64(base))
	res := big.NewInt(0)
	d := new(big.Int)

	for pos, ch := range []rune(value) {
		dig, ok := Digit(ch)
		if !ok || dig >= base {
			return nil, &InvalidDigitError{
				Value:    value,
				Char:     ch,
				Position: pos,
				Base:     base,
			}
		}
		// res = res*base + dig
		res.Mul(res, b)
		res.Add(res, d.SetInt64(int64(dig)))
	}

	return res, nil
}
