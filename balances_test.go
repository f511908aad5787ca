// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	"github.com/stretchr/testify/assert"
)

func TestBalanceStore(t *testing.T) {
	ctx := context.Background()
	store := NewBalanceStore(datastore.NewMapDatastore())

	assert.NoError(t, store.PutBalance(ctx, "ethereum", testBaseToken, "1050"))
	assert.NoError(t, store.PutBalance(ctx, "ethereum", testERC20, "5000"))
	assert.NoError(t, store.PutBalance(ctx, "polygon", testERC20, "7"))

	balances, err := store.Balances(ctx, "ethereum")
	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Equal(t, "1050", balances[BaseTokenBalanceKey])
	assert.Equal(t, "5000", balances["0x6b175474e89094c44da98b954eedeac495271d0f"])

	// Snapshots feed the adjusters directly.
	assert.Equal(t, "1050", TokenBalanceSerialized(testBaseToken, balances))

	// Networks do not bleed into each other.
	polygon, err := store.Balances(ctx, "polygon")
	assert.NoError(t, err)
	assert.Len(t, polygon, 1)

	balance, err := store.Balance(ctx, "ethereum", testERC20)
	assert.NoError(t, err)
	assert.Equal(t, "5000", balance)
}

func TestBalanceStoreMissingEntries(t *testing.T) {
	ctx := context.Background()
	store := NewBalanceStore(datastore.NewMapDatastore())

	balance, err := store.Balance(ctx, "ethereum", testERC20)
	assert.NoError(t, err)
	assert.Equal(t, "0", balance)

	balances, err := store.Balances(ctx, "ethereum")
	assert.NoError(t, err)
	assert.Empty(t, balances)
}

func TestBalanceStoreRejectsMalformedBalances(t *testing.T) {
	ctx := context.Background()
	store := NewBalanceStore(datastore.NewMapDatastore())

	assert.Error(t, store.PutBalance(ctx, "ethereum", testERC20, "12.5"))
	assert.Error(t, store.PutBalances(ctx, "ethereum", ERC20BalancesSerialized{
		"0x6b175474e89094c44da98b954eedeac495271d0f": "NaN",
	}))
}

func TestBalanceStorePutBalances(t *testing.T) {
	ctx := context.Background()
	store := NewBalanceStore(datastore.NewMapDatastore())

	snapshot := ERC20BalancesSerialized{
		BaseTokenBalanceKey: "1",
		"0x6b175474e89094c44da98b954eedeac495271d0f": "2",
	}
	assert.NoError(t, store.PutBalances(ctx, "ethereum", snapshot))

	balances, err := store.Balances(ctx, "ethereum")
	assert.NoError(t, err)
	assert.Equal(t, snapshot, balances)
}
