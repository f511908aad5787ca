// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import "fmt"

// TransactionType tags a user-facing transaction flow. The set is closed;
// every switch over it must either be exhaustive or fail loudly on an
// unknown tag.
type TransactionType uint8

const (
	TxTypeApproveShield TransactionType = iota
	TxTypeShield
	TxTypeUnshield
	TxTypeSend
	TxTypeSwap
	TxTypeApproveSpender
	TxTypeMint
	TxTypeCancel
	TxTypeFarmDeposit
	TxTypeFarmRedeem
	TxTypeAddLiquidity
	TxTypeRemoveLiquidity
)

func (t TransactionType) String() string {
	switch t {
	case TxTypeApproveShield:
		return "Approve Shield"
	case TxTypeShield:
		return "Shield"
	case TxTypeUnshield:
		return "Unshield"
	case TxTypeSend:
		return "Send"
	case TxTypeSwap:
		return "Swap"
	case TxTypeApproveSpender:
		return "Approve Spender"
	case TxTypeMint:
		return "Mint"
	case TxTypeCancel:
		return "Cancel"
	case TxTypeFarmDeposit:
		return "Farm Deposit"
	case TxTypeFarmRedeem:
		return "Farm Redeem"
	case TxTypeAddLiquidity:
		return "Add Liquidity"
	case TxTypeRemoveLiquidity:
		return "Remove Liquidity"
	default:
		return fmt.Sprintf("TransactionType(%d)", uint8(t))
	}
}

// ProofType selects the zero-knowledge circuit a transaction proves
// against. Proof generation itself happens in the external SDK.
type ProofType uint8

const (
	ProofTypeTransfer ProofType = iota
	ProofTypeUnshield
	ProofTypeUnshieldBaseToken
	ProofTypeCrossContractCalls
)

func (p ProofType) String() string {
	switch p {
	case ProofTypeTransfer:
		return "Transfer"
	case ProofTypeUnshield:
		return "Unshield"
	case ProofTypeUnshieldBaseToken:
		return "Unshield Base Token"
	case ProofTypeCrossContractCalls:
		return "Cross Contract Calls"
	default:
		return fmt.Sprintf("ProofType(%d)", uint8(p))
	}
}

// ProofTypeForTransaction maps a transaction type to the proof it
// requires. Types that never spend from the private balance (approvals,
// shields, mints, cancels) have no proof type and return an error.
func ProofTypeForTransaction(transactionType TransactionType, isBaseTokenWithdraw bool) (ProofType, error) {
	switch transactionType {
	case TxTypeSend:
		return ProofTypeTransfer, nil
	case TxTypeUnshield:
		if isBaseTokenWithdraw {
			return ProofTypeUnshieldBaseToken, nil
		}
		return ProofTypeUnshield, nil
	case TxTypeSwap, TxTypeFarmDeposit, TxTypeFarmRedeem,
		TxTypeAddLiquidity, TxTypeRemoveLiquidity:
		return ProofTypeCrossContractCalls, nil
	default:
		return 0, fmt.Errorf("no proof type for %s transaction", transactionType)
	}
}

// ShieldedFromToAddress reports whether the sending and receiving sides
// of a transaction are shielded addresses. Transfers and contract calls
// follow the privacy of the wallet; shields and unshields always cross
// the privacy boundary in one direction.
func ShieldedFromToAddress(transactionType TransactionType, isPrivateTransaction bool) (fromShielded, toShielded bool) {
	switch transactionType {
	case TxTypeSend, TxTypeSwap, TxTypeFarmDeposit, TxTypeFarmRedeem,
		TxTypeAddLiquidity, TxTypeRemoveLiquidity:
		return isPrivateTransaction, isPrivateTransaction
	case TxTypeUnshield:
		return true, false
	case TxTypeShield:
		return false, true
	default:
		return false, false
	}
}
