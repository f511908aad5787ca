// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import "strings"

// BaseTokenBalanceKey is the balances map key for the chain's native base
// token. The unwrapped base token has no contract address of its own, so
// it is stored under this sentinel rather than the wrapped address.
const BaseTokenBalanceKey = "0x00"

// ERC20Token identifies a fungible token on a single network.
type ERC20Token struct {
	Address     string
	Decimals    uint8
	IsBaseToken bool
}

// ERC20Amount pairs a token with an exact count of its smallest unit,
// serialized as a base-10 integer string. Amounts are never fractional
// and never floats.
type ERC20Amount struct {
	Token        ERC20Token
	AmountString string
}

// ERC20AmountRecipient is a single transfer instruction: send
// AmountString of Token to RecipientAddress.
type ERC20AmountRecipient struct {
	Token            ERC20Token
	AmountString     string
	RecipientAddress string

	// ExternalUnresolvedToWalletAddress holds the original user-entered
	// name when RecipientAddress was resolved through an external name
	// service. It is carried through adjustment untouched.
	ExternalUnresolvedToWalletAddress *string
}

// ERC20BalancesSerialized maps a balance key (see TokenAddressForBalances)
// to a serialized integer balance.
type ERC20BalancesSerialized map[string]string

// CompareTokenAddress reports whether two token addresses refer to the
// same contract. Addresses are case-insensitive identities.
func CompareTokenAddress(addressA, addressB string) bool {
	return strings.EqualFold(addressA, addressB)
}

// CompareTokens reports whether two tokens are the same asset. The
// wrapped and unwrapped base token share an address but are distinct.
func CompareTokens(tokenA, tokenB ERC20Token) bool {
	return tokenA.IsBaseToken == tokenB.IsBaseToken &&
		CompareTokenAddress(tokenA.Address, tokenB.Address)
}

// TokenAddressForBalances returns the balances map key for a token.
func TokenAddressForBalances(tokenAddress string, isBaseToken bool) string {
	if isBaseToken {
		return BaseTokenBalanceKey
	}
	return strings.ToLower(tokenAddress)
}

// TokenBalanceSerialized looks up a token's balance in a serialized
// balance map. A missing entry is a zero balance.
func TokenBalanceSerialized(token ERC20Token, balances ERC20BalancesSerialized) string {
	balance, ok := balances[TokenAddressForBalances(token.Address, token.IsBaseToken)]
	if !ok {
		return "0"
	}
	return balance
}
