// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package walletcore

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidFeeTransactionType is returned when the shield/unshield fee
// adjustment is invoked for a transaction type that carries no protocol
// fee.
var ErrInvalidFeeTransactionType = errors.New("choose transaction type Shield or Unshield for this fee calculation")

// AdjustedERC20AmountRecipients is the result of adjusting one recipient:
// Input is the amount to authorize and sign, Output is the amount the
// recipient receives, and Fee is the protocol fee retained between them
// ("0" for types without a protocol fee). IsMax is set when the
// adjustment treated the selection as a spend of the entire balance.
type AdjustedERC20AmountRecipients struct {
	Input  ERC20AmountRecipient
	Output ERC20AmountRecipient
	Fee    ERC20Amount
	IsMax  bool
}

// AdjustedERC20AmountRecipientGroup collects adjusted recipients into
// the three parallel slices consumed by transaction population. All
// three are index-aligned with the original recipient list.
type AdjustedERC20AmountRecipientGroup struct {
	Fees    []ERC20Amount
	Inputs  []ERC20AmountRecipient
	Outputs []ERC20AmountRecipient
}

// NewAdjustedERC20AmountRecipientGroup assembles a group from
// per-recipient adjustments, preserving order.
func NewAdjustedERC20AmountRecipientGroup(adjustedRecipients []AdjustedERC20AmountRecipients) *AdjustedERC20AmountRecipientGroup {
	group := &AdjustedERC20AmountRecipientGroup{
		Fees:    make([]ERC20Amount, 0, len(adjustedRecipients)),
		Inputs:  make([]ERC20AmountRecipient, 0, len(adjustedRecipients)),
		Outputs: make([]ERC20AmountRecipient, 0, len(adjustedRecipients)),
	}
	for _, adjusted := range adjustedRecipients {
		group.Fees = append(group.Fees, adjusted.Fee)
		group.Inputs = append(group.Inputs, adjusted.Input)
		group.Outputs = append(group.Outputs, adjusted.Output)
	}
	return group
}

// AdjustERC20AmountsForTransaction adjusts every recipient in the list
// against its current balance and assembles the grouped result. Balances
// are looked up per token (missing entries count as zero); recipients
// are adjusted independently against the same snapshot, so callers must
// not pass overlapping recipients for one token expecting sequential
// balance depletion.
func AdjustERC20AmountsForTransaction(
	erc20AmountRecipients []ERC20AmountRecipient,
	transactionType TransactionType,
	isFullyPrivateTransaction bool,
	gasDetails *TransactionGasDetails,
	broadcasterFeeERC20Amount *ERC20Amount,
	depositFeeBasisPoints string,
	withdrawFeeBasisPoints string,
	tokenBalancesSerialized ERC20BalancesSerialized,
	sendWithPublicWallet bool,
) (*AdjustedERC20AmountRecipientGroup, error) {
	allAdjusted := make([]AdjustedERC20AmountRecipients, 0, len(erc20AmountRecipients))
	for _, erc20AmountRecipient := range erc20AmountRecipients {
		tokenBalanceSerialized := TokenBalanceSerialized(
			erc20AmountRecipient.Token,
			tokenBalancesSerialized,
		)

		adjusted, err := AdjustERC20AmountRecipientForTransaction(
			erc20AmountRecipient,
			transactionType,
			isFullyPrivateTransaction,
			gasDetails,
			broadcasterFeeERC20Amount,
			depositFeeBasisPoints,
			withdrawFeeBasisPoints,
			tokenBalanceSerialized,
			sendWithPublicWallet,
		)
		if err != nil {
			return nil, err
		}
		log.Debugw("Adjusted amount for recipient",
			"transactionType", transactionType.String(),
			"token", erc20AmountRecipient.Token.Address,
			"input", adjusted.Input.AmountString,
			"fee", adjusted.Fee.AmountString,
			"isMax", adjusted.IsMax,
		)
		allAdjusted = append(allAdjusted, *adjusted)
	}
	return NewAdjustedERC20AmountRecipientGroup(allAdjusted), nil
}

// AdjustERC20AmountsForShieldUnshield is the shield/unshield entry point
// used by the review screens. Shields and unshields are never fully
// private transactions: one side of the transfer is always public.
func AdjustERC20AmountsForShieldUnshield(
	erc20AmountRecipients []ERC20AmountRecipient,
	transactionType TransactionType,
	depositFeeBasisPoints string,
	withdrawFeeBasisPoints string,
	gasDetails *TransactionGasDetails,
	broadcasterFeeERC20Amount *ERC20Amount,
	tokenBalancesSerialized ERC20BalancesSerialized,
	sendWithPublicWallet bool,
) (*AdjustedERC20AmountRecipientGroup, error) {
	return AdjustERC20AmountsForTransaction(
		erc20AmountRecipients,
		transactionType,
		false,
		gasDetails,
		broadcasterFeeERC20Amount,
		depositFeeBasisPoints,
		withdrawFeeBasisPoints,
		tokenBalancesSerialized,
		sendWithPublicWallet,
	)
}

// AdjustERC20AmountRecipientForTransaction routes a recipient to the
// adjustment rule for its transaction type. Types that move value through
// external contract calls pass through unchanged with a zero fee; their
// fee accounting happens elsewhere.
func AdjustERC20AmountRecipientForTransaction(
	erc20AmountRecipient ERC20AmountRecipient,
	transactionType TransactionType,
	isFullyPrivateTransaction bool,
	gasDetails *TransactionGasDetails,
	broadcasterFeeERC20Amount *ERC20Amount,
	depositFeeBasisPoints string,
	withdrawFeeBasisPoints string,
	tokenBalanceSerialized string,
	sendWithPublicWallet bool,
) (*AdjustedERC20AmountRecipients, error) {
	switch transactionType {
	case TxTypeSend:
		return adjustERC20AmountForSendTransaction(
			erc20AmountRecipient,
			isFullyPrivateTransaction,
			gasDetails,
			broadcasterFeeERC20Amount,
			tokenBalanceSerialized,
			sendWithPublicWallet,
		)
	case TxTypeShield, TxTypeUnshield:
		return adjustERC20AmountForShieldUnshield(
			erc20AmountRecipient,
			transactionType,
			depositFeeBasisPoints,
			withdrawFeeBasisPoints,
			gasDetails,
			broadcasterFeeERC20Amount,
			tokenBalanceSerialized,
			sendWithPublicWallet,
		)
	case TxTypeApproveShield, TxTypeSwap, TxTypeFarmDeposit, TxTypeFarmRedeem,
		TxTypeAddLiquidity, TxTypeRemoveLiquidity, TxTypeApproveSpender,
		TxTypeMint, TxTypeCancel:
		return &AdjustedERC20AmountRecipients{
			Input:  erc20AmountRecipient,
			Output: erc20AmountRecipient,
			Fee: ERC20Amount{
				Token:        erc20AmountRecipient.Token,
				AmountString: "0",
			},
			IsMax: false,
		}, nil
	default:
		return nil, fmt.Errorf("no amount adjustment for transaction type %s", transactionType)
	}
}

// recipientWithAmount copies a recipient with a new amount, keeping the
// token, recipient address and unresolved name intact.
func recipientWithAmount(recipient ERC20AmountRecipient, amountString string) ERC20AmountRecipient {
	recipient.AmountString = amountString
	return recipient
}

func adjustERC20AmountForSendTransaction(
	erc20AmountRecipient ERC20AmountRecipient,
	isFullyPrivateTransaction bool,
	gasDetails *TransactionGasDetails,
	broadcasterFeeERC20Amount *ERC20Amount,
	tokenBalanceSerialized string,
	sendWithPublicWallet bool,
) (*AdjustedERC20AmountRecipients, error) {
	selectedAmount, err := parseAmountString(erc20AmountRecipient.AmountString)
	if err != nil {
		return nil, err
	}
	currentBalance, err := parseAmountString(tokenBalanceSerialized)
	if err != nil {
		return nil, err
	}

	isMax := false
	adjustedAmount := selectedAmount

	// Exactly one deduction source can apply: gas for public sends of
	// the base token, or the broadcaster fee for private sends paying
	// the fee in the transferred token.
	if !isFullyPrivateTransaction && erc20AmountRecipient.Token.IsBaseToken && gasDetails != nil {
		totalGas := CalculateMaximumGas(*gasDetails)
		isMax, adjustedAmount = clampToBalance(selectedAmount, totalGas, currentBalance)
	} else if isFullyPrivateTransaction && !sendWithPublicWallet &&
		broadcasterFeeERC20Amount != nil &&
		CompareTokens(broadcasterFeeERC20Amount.Token, erc20AmountRecipient.Token) {
		broadcasterFee, err := parseAmountString(broadcasterFeeERC20Amount.AmountString)
		if err != nil {
			return nil, err
		}
		isMax, adjustedAmount = clampToBalance(selectedAmount, broadcasterFee, currentBalance)
	}

	adjusted := recipientWithAmount(erc20AmountRecipient, adjustedAmount.String())
	return &AdjustedERC20AmountRecipients{
		Input:  adjusted,
		Output: adjusted,
		Fee: ERC20Amount{
			Token:        erc20AmountRecipient.Token,
			AmountString: "0",
		},
		IsMax: isMax,
	}, nil
}

func adjustERC20AmountForShieldUnshield(
	erc20AmountRecipient ERC20AmountRecipient,
	transactionType TransactionType,
	depositFeeBasisPoints string,
	withdrawFeeBasisPoints string,
	gasDetails *TransactionGasDetails,
	broadcasterFeeERC20Amount *ERC20Amount,
	tokenBalanceSerialized string,
	sendWithPublicWallet bool,
) (*AdjustedERC20AmountRecipients, error) {
	selectedAmount, err := parseAmountString(erc20AmountRecipient.AmountString)
	if err != nil {
		return nil, err
	}
	currentBalance, err := parseAmountString(tokenBalanceSerialized)
	if err != nil {
		return nil, err
	}

	isMax := false
	gasAdjustedAmount := selectedAmount
	feeBasisPoints := ""

	switch transactionType {
	case TxTypeShield:
		// Shielding the base token pays gas from the same public
		// balance being shielded.
		if erc20AmountRecipient.Token.IsBaseToken && gasDetails != nil {
			totalGas := CalculateMaximumGas(*gasDetails)
			isMax, gasAdjustedAmount = clampToBalance(selectedAmount, totalGas, currentBalance)
		}
		feeBasisPoints = depositFeeBasisPoints
	case TxTypeUnshield:
		// A broadcaster fee paid in the unshielded token draws from the
		// same private balance being withdrawn.
		if broadcasterFeeERC20Amount != nil && !sendWithPublicWallet &&
			CompareTokens(broadcasterFeeERC20Amount.Token, erc20AmountRecipient.Token) {
			broadcasterFee, err := parseAmountString(broadcasterFeeERC20Amount.AmountString)
			if err != nil {
				return nil, err
			}
			isMax, gasAdjustedAmount = clampToBalance(selectedAmount, broadcasterFee, currentBalance)
		}
		feeBasisPoints = withdrawFeeBasisPoints
	default:
		return nil, ErrInvalidFeeTransactionType
	}

	fee, err := CalculateTokenFee(gasAdjustedAmount, feeBasisPoints)
	if err != nil {
		return nil, err
	}
	output := new(big.Int).Sub(gasAdjustedAmount, fee)

	return &AdjustedERC20AmountRecipients{
		Input:  recipientWithAmount(erc20AmountRecipient, gasAdjustedAmount.String()),
		Output: recipientWithAmount(erc20AmountRecipient, output.String()),
		Fee: ERC20Amount{
			Token:        erc20AmountRecipient.Token,
			AmountString: fee.String(),
		},
		IsMax: isMax,
	}, nil
}
