// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"fmt"
	"math/big"
)

// basisPointsDivisor converts basis points to a fraction: 25 bps = 0.25%.
var basisPointsDivisor = big.NewInt(10000)

// parseAmountString parses a non-negative base-10 integer amount string.
// Amount strings come straight from UI entry state or network config;
// validating them before they get here is the numeric-entry layer's job.
func parseAmountString(amountString string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(amountString, 10)
	if !ok {
		return nil, fmt.Errorf("cannot parse amount %q as a base-10 integer", amountString)
	}
	return amount, nil
}

// CalculateTokenFee returns the protocol fee retained from amount at the
// given basis point rate, rounded down. The arithmetic is exact for any
// amount size; fee never exceeds amount for rates up to 10000 bps.
func CalculateTokenFee(amount *big.Int, feeBasisPoints string) (*big.Int, error) {
	basisPoints, err := parseAmountString(feeBasisPoints)
	if err != nil {
		return nil, err
	}
	fee := new(big.Int).Mul(amount, basisPoints)
	return fee.Div(fee, basisPointsDivisor), nil
}

// clampToBalance detects a spend of the full available balance and, when
// the deducted cost itself fits inside the balance, lowers the selected
// amount so the cost can still be paid from the same balance.
//
// When the cost exceeds the balance the selected amount passes through
// unmodified even though isMax is set: the engine does not own
// insufficient-balance policy, upstream entry validation rejects the
// transaction before it is signed.
func clampToBalance(selectedAmount, deductedCost, currentBalance *big.Int) (isMax bool, clampedAmount *big.Int) {
	total := new(big.Int).Add(selectedAmount, deductedCost)
	isMax = total.Cmp(currentBalance) >= 0
	if isMax && deductedCost.Cmp(currentBalance) <= 0 {
		return true, new(big.Int).Sub(currentBalance, deductedCost)
	}
	return isMax, selectedAmount
}
