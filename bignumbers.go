// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"math/big"
	"sort"
)

var (
	big2   = big.NewInt(2)
	big100 = big.NewInt(100)

	weiPerGwei = new(big.Int).Exp(big.NewInt(10), big.NewInt(9), nil)
)

// MaxBigInt returns the larger of a and b.
func MaxBigInt(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// AbsBigInt returns |a| as a new value.
func AbsBigInt(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

// MedianBigInt returns the median of values, averaging the two middle
// elements for even lengths. The input slice is not modified. Returns
// zero for an empty slice.
func MedianBigInt(values []*big.Int) *big.Int {
	if len(values) == 0 {
		return new(big.Int)
	}
	sorted := make([]*big.Int, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Cmp(sorted[j]) < 0
	})
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return new(big.Int).Set(sorted[mid])
	}
	sum := new(big.Int).Add(sorted[mid-1], sorted[mid])
	return sum.Div(sum, big2)
}

// ValuesWithinThresholdBigInt reports whether two values differ by no
// more than the given fraction of the larger one, e.g. threshold 0.05
// allows a 5 percent difference.
func ValuesWithinThresholdBigInt(value1, value2 *big.Int, threshold float64) bool {
	maxValue := MaxBigInt(value1, value2)
	if maxValue.Sign() == 0 {
		return true
	}
	diff := AbsBigInt(new(big.Int).Sub(value1, value2))
	percentDiff := diff.Mul(diff, big100)
	percentDiff.Div(percentDiff, maxValue)
	return percentDiff.Cmp(big.NewInt(int64(threshold*100))) <= 0
}

// GweiToWei converts a gwei value to wei.
func GweiToWei(gwei *big.Int) *big.Int {
	return new(big.Int).Mul(gwei, weiPerGwei)
}

// WeiToRoundedGwei converts a wei value to gwei, truncating sub-gwei dust.
func WeiToRoundedGwei(wei *big.Int) *big.Int {
	return new(big.Int).Div(wei, weiPerGwei)
}
