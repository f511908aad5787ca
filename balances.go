// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"context"
	"fmt"
	"strings"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	badger "github.com/ipfs/go-ds-badger"
)

// BalanceStore caches serialized token balances per network. The balance
// scanner writes into it as balances update; callers read point-in-time
// snapshots to feed the amount adjusters. The adjusters themselves never
// touch the store.
type BalanceStore struct {
	ds datastore.Datastore
}

// NewBalanceStore wraps an existing datastore.
func NewBalanceStore(ds datastore.Datastore) *BalanceStore {
	return &BalanceStore{ds: ds}
}

// NewBadgerBalanceStore opens a badger-backed store at dataDir.
func NewBadgerBalanceStore(dataDir string) (*BalanceStore, error) {
	ds, err := badger.NewDatastore(dataDir, &badger.DefaultOptions)
	if err != nil {
		return nil, err
	}
	return &BalanceStore{ds: ds}, nil
}

func balanceKey(networkName string, token ERC20Token) datastore.Key {
	return datastore.NewKey(BalancesDatastoreKeyPrefix + networkName + "/" +
		TokenAddressForBalances(token.Address, token.IsBaseToken))
}

// PutBalance records a token balance for a network. The balance must be
// a base-10 integer string; anything else is rejected before it can
// poison later adjustments.
func (s *BalanceStore) PutBalance(ctx context.Context, networkName string, token ERC20Token, balanceSerialized string) error {
	if _, err := parseAmountString(balanceSerialized); err != nil {
		return fmt.Errorf("refusing to store balance: %w", err)
	}
	return s.ds.Put(ctx, balanceKey(networkName, token), []byte(balanceSerialized))
}

// PutBalances writes a full serialized balance map for a network. The
// map is validated up front so a malformed entry cannot leave a partial
// snapshot behind.
func (s *BalanceStore) PutBalances(ctx context.Context, networkName string, balances ERC20BalancesSerialized) error {
	for key, balanceSerialized := range balances {
		if _, err := parseAmountString(balanceSerialized); err != nil {
			return fmt.Errorf("refusing to store balance for %s: %w", key, err)
		}
	}
	for key, balanceSerialized := range balances {
		dsKey := datastore.NewKey(BalancesDatastoreKeyPrefix + networkName + "/" + key)
		if err := s.ds.Put(ctx, dsKey, []byte(balanceSerialized)); err != nil {
			return err
		}
	}
	return nil
}

// Balances returns the serialized balance snapshot for a network, in the
// map shape the group builder consumes.
func (s *BalanceStore) Balances(ctx context.Context, networkName string) (ERC20BalancesSerialized, error) {
	prefix := BalancesDatastoreKeyPrefix + networkName
	results, err := s.ds.Query(ctx, query.Query{
		Prefix: prefix,
	})
	if err != nil {
		return nil, err
	}
	defer results.Close()

	balances := make(ERC20BalancesSerialized)
	for result, ok := results.NextSync(); ok; result, ok = results.NextSync() {
		if result.Error != nil {
			return nil, result.Error
		}
		key := strings.TrimPrefix(result.Entry.Key, prefix+"/")
		balances[key] = string(result.Entry.Value)
	}
	return balances, nil
}

// Balance returns one token's serialized balance, "0" when absent.
func (s *BalanceStore) Balance(ctx context.Context, networkName string, token ERC20Token) (string, error) {
	value, err := s.ds.Get(ctx, balanceKey(networkName, token))
	if err != nil {
		if err == datastore.ErrNotFound {
			return "0", nil
		}
		return "", err
	}
	return string(value), nil
}

// Close releases the underlying datastore.
func (s *BalanceStore) Close() error {
	return s.ds.Close()
}
