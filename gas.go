// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"fmt"
	"math/big"
)

// EVMGasType is the fee model of an EVM transaction envelope.
type EVMGasType uint8

const (
	// EVMGasType0 is a legacy transaction priced by GasPrice.
	EVMGasType0 EVMGasType = iota
	// EVMGasType1 is an access-list transaction, also priced by GasPrice.
	EVMGasType1
	// EVMGasType2 is an EIP-1559 transaction priced by MaxFeePerGas and
	// MaxPriorityFeePerGas.
	EVMGasType2
)

// TransactionGasDetails is a point-in-time snapshot of the gas parameters
// chosen for a transaction. GasPrice must be set for type 0 and type 1;
// MaxFeePerGas and MaxPriorityFeePerGas must be set for type 2. The
// engine only reads these values; fetching them is the fee oracle's job.
type TransactionGasDetails struct {
	Type                 EVMGasType
	GasEstimate          *big.Int
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// price is the per-unit gas price used for worst-case cost math.
func (g TransactionGasDetails) price() *big.Int {
	switch g.Type {
	case EVMGasType0, EVMGasType1:
		return g.GasPrice
	default:
		return g.MaxFeePerGas
	}
}

// CalculateGasLimit pads a gas estimate by 20 percent, rounding down.
// Submitting with a padded limit keeps underestimated transactions from
// reverting; unused gas is refunded.
func CalculateGasLimit(gasEstimate *big.Int) *big.Int {
	limit := new(big.Int).Mul(gasEstimate, big.NewInt(12000))
	return limit.Div(limit, big.NewInt(10000))
}

// CalculateMaximumGas returns the worst-case base token cost of a
// transaction: the padded gas limit at the snapshot's full price.
func CalculateMaximumGas(gasDetails TransactionGasDetails) *big.Int {
	return new(big.Int).Mul(CalculateGasLimit(gasDetails.GasEstimate), gasDetails.price())
}

// CalculateTotalGas returns the expected base token cost of a
// transaction: the unpadded estimate at the snapshot's full price.
func CalculateTotalGas(gasDetails TransactionGasDetails) *big.Int {
	return new(big.Int).Mul(gasDetails.GasEstimate, gasDetails.price())
}

// oneUnitGas is the broadcaster fee quote scale: fee quotes are token
// amounts per 10^18 units of gas.
var oneUnitGas = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// BroadcasterFeeForGas converts a broadcaster's fee-per-unit-gas quote
// into the fee token amount owed for a transaction's worst-case gas.
// The result is the fee the unshield and private-send adjusters deduct
// when the fee token matches the transferred token.
func BroadcasterFeeForGas(feePerUnitGas string, gasDetails TransactionGasDetails, feeToken ERC20Token) (*ERC20Amount, error) {
	perUnitGas, err := parseAmountString(feePerUnitGas)
	if err != nil {
		return nil, fmt.Errorf("invalid broadcaster fee quote: %w", err)
	}
	fee := new(big.Int).Mul(perUnitGas, CalculateMaximumGas(gasDetails))
	fee.Div(fee, oneUnitGas)
	return &ERC20Amount{
		Token:        feeToken,
		AmountString: fee.String(),
	}, nil
}
