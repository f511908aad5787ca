// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGasLimit(t *testing.T) {
	assert.Equal(t, "120000", CalculateGasLimit(big.NewInt(100000)).String())
	// Rounds down.
	assert.Equal(t, "100", CalculateGasLimit(big.NewInt(84)).String())
	assert.Equal(t, "0", CalculateGasLimit(big.NewInt(0)).String())
}

func TestCalculateMaximumGas(t *testing.T) {
	legacy := TransactionGasDetails{
		Type:        EVMGasType0,
		GasEstimate: big.NewInt(100000),
		GasPrice:    big.NewInt(20),
	}
	assert.Equal(t, "2400000", CalculateMaximumGas(legacy).String())

	eip1559 := TransactionGasDetails{
		Type:                 EVMGasType2,
		GasEstimate:          big.NewInt(100000),
		MaxFeePerGas:         GweiToWei(big.NewInt(50)),
		MaxPriorityFeePerGas: GweiToWei(big.NewInt(2)),
	}
	assert.Equal(t, "6000000000000000", CalculateMaximumGas(eip1559).String())
}

func TestCalculateTotalGas(t *testing.T) {
	legacy := TransactionGasDetails{
		Type:        EVMGasType1,
		GasEstimate: big.NewInt(100000),
		GasPrice:    big.NewInt(20),
	}
	// Unpadded: estimate at the full price.
	assert.Equal(t, "2000000", CalculateTotalGas(legacy).String())
}

func TestBroadcasterFeeForGas(t *testing.T) {
	// maximumGas == 100 with this snapshot; two fee tokens per full
	// unit of gas yields a fee of 200.
	fee, err := BroadcasterFeeForGas("2000000000000000000", testGasDetails, testERC20)
	assert.NoError(t, err)
	assert.Equal(t, testERC20, fee.Token)
	assert.Equal(t, "200", fee.AmountString)

	_, err = BroadcasterFeeForGas("2.5", testGasDetails, testERC20)
	assert.Error(t, err)
}
