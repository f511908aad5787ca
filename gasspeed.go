// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"errors"
	"math/big"
)

// GasHistoryPercentile is a confirmation speed bucket. Buckets map to the
// reward percentiles requested from eth_feeHistory.
type GasHistoryPercentile uint8

const (
	GasHistoryPercentileLow GasHistoryPercentile = iota
	GasHistoryPercentileMedium
	GasHistoryPercentileHigh
	GasHistoryPercentileVeryHigh
)

// GasHistoryPercentiles lists the speed buckets from slowest to fastest.
var GasHistoryPercentiles = []GasHistoryPercentile{
	GasHistoryPercentileLow,
	GasHistoryPercentileMedium,
	GasHistoryPercentileHigh,
	GasHistoryPercentileVeryHigh,
}

func (p GasHistoryPercentile) String() string {
	switch p {
	case GasHistoryPercentileLow:
		return "Low"
	case GasHistoryPercentileMedium:
		return "Medium"
	case GasHistoryPercentileHigh:
		return "High"
	default:
		return "VeryHigh"
	}
}

// baseFeePercentageMultiplier boosts the latest base fee per speed bucket
// so the transaction survives base fee growth while pending.
var baseFeePercentageMultiplier = map[GasHistoryPercentile]*big.Int{
	GasHistoryPercentileLow:      big.NewInt(105),
	GasHistoryPercentileMedium:   big.NewInt(110),
	GasHistoryPercentileHigh:     big.NewInt(115),
	GasHistoryPercentileVeryHigh: big.NewInt(125),
}

// FeeHistoryResult is an already-fetched eth_feeHistory snapshot.
// BaseFeePerGas holds one base fee per historical block plus the pending
// block; Reward holds, per historical block, the priority fee rewards at
// the requested percentiles from lowest to highest. Fetching the history
// is the provider layer's job.
type FeeHistoryResult struct {
	BaseFeePerGas []*big.Int
	Reward        [][]*big.Int
}

// SuggestedGasDetails is a type 2 fee suggestion for one speed bucket.
type SuggestedGasDetails struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// ErrEmptyFeeHistory is returned when a fee history snapshot carries no
// base fees or no reward rows to aggregate.
var ErrEmptyFeeHistory = errors.New("fee history has no blocks to aggregate")

// GasPriceForPercentile boosts a gas price (or base fee) by the base fee
// multiplier for the given speed bucket.
func GasPriceForPercentile(gasPrice *big.Int, percentile GasHistoryPercentile) *big.Int {
	boosted := new(big.Int).Mul(gasPrice, baseFeePercentageMultiplier[percentile])
	return boosted.Div(boosted, big100)
}

// rewardForPercentile picks the reward column for a speed bucket out of
// one history row, falling back to the next lower column when the node
// returned fewer percentiles than requested.
func rewardForPercentile(rewards []*big.Int, percentile GasHistoryPercentile) *big.Int {
	index := int(percentile)
	if index >= len(rewards) {
		index = len(rewards) - 1
	}
	for index > 0 && rewards[index] == nil {
		index--
	}
	return rewards[index]
}

// SuggestedGasDetailsBySpeed derives a type 2 fee suggestion for every
// speed bucket from a fee history snapshot: the median priority fee
// reward at the bucket's percentile, plus the latest base fee boosted by
// the bucket's multiplier.
func SuggestedGasDetailsBySpeed(feeHistory FeeHistoryResult) (map[GasHistoryPercentile]SuggestedGasDetails, error) {
	if len(feeHistory.BaseFeePerGas) == 0 || len(feeHistory.Reward) == 0 {
		return nil, ErrEmptyFeeHistory
	}
	mostRecentBaseFeePerGas := feeHistory.BaseFeePerGas[len(feeHistory.BaseFeePerGas)-1]

	suggestions := make(map[GasHistoryPercentile]SuggestedGasDetails, len(GasHistoryPercentiles))
	for _, percentile := range GasHistoryPercentiles {
		rewards := make([]*big.Int, 0, len(feeHistory.Reward))
		for _, blockRewards := range feeHistory.Reward {
			if len(blockRewards) == 0 {
				return nil, ErrEmptyFeeHistory
			}
			rewards = append(rewards, rewardForPercentile(blockRewards, percentile))
		}

		maxPriorityFeePerGas := MedianBigInt(rewards)
		maxBaseFeePerGas := GasPriceForPercentile(mostRecentBaseFeePerGas, percentile)
		suggestions[percentile] = SuggestedGasDetails{
			MaxFeePerGas:         new(big.Int).Add(maxBaseFeePerGas, maxPriorityFeePerGas),
			MaxPriorityFeePerGas: maxPriorityFeePerGas,
		}
	}
	return suggestions, nil
}

// GasDetailsForSpeed materializes a full gas snapshot for one speed
// bucket from a suggestion and a gas estimate.
func GasDetailsForSpeed(suggestion SuggestedGasDetails, gasEstimate *big.Int) TransactionGasDetails {
	return TransactionGasDetails{
		Type:                 EVMGasType2,
		GasEstimate:          gasEstimate,
		MaxFeePerGas:         suggestion.MaxFeePerGas,
		MaxPriorityFeePerGas: suggestion.MaxPriorityFeePerGas,
	}
}
