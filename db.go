// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

const (
	BalancesDatastoreKeyPrefix = "/walletcore/balances/"
)
