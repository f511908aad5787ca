// Copyright (c) 2024 The Railway developers
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// feepreview renders the adjusted input/output/fee amounts for a
// transaction the way the review screens will show them. Useful for
// sanity-checking fee schedules and max-balance behavior against real
// numbers without driving the full app.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/Railway-Wallet/walletcore"
	"github.com/pterm/pterm"
)

func main() {
	var (
		txType       = flag.String("type", "shield", "transaction type: send, shield or unshield")
		amount       = flag.String("amount", "1000000000000000000", "selected amount in base units")
		balance      = flag.String("balance", "1500000000000000000", "current balance in base units")
		depositBps   = flag.String("deposit-bps", "25", "shield fee in basis points")
		withdrawBps  = flag.String("withdraw-bps", "25", "unshield fee in basis points")
		gasEstimate  = flag.Int64("gas-estimate", 21000, "gas estimate in units")
		gasPriceGwei = flag.Int64("gas-price", 30, "gas price in gwei")
		feePerGas    = flag.String("broadcaster-fee-per-gas", "", "broadcaster fee token amount per 10^18 gas (unshield only)")
		baseToken    = flag.Bool("base-token", true, "treat the token as the chain's base token")
	)
	flag.Parse()

	token := walletcore.ERC20Token{
		Address:     "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599",
		Decimals:    18,
		IsBaseToken: *baseToken,
	}
	recipient := walletcore.ERC20AmountRecipient{
		Token:            token,
		AmountString:     *amount,
		RecipientAddress: "0zk1qyqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq",
	}
	balances := walletcore.ERC20BalancesSerialized{
		walletcore.TokenAddressForBalances(token.Address, token.IsBaseToken): *balance,
	}

	gasDetails := &walletcore.TransactionGasDetails{
		Type:         walletcore.EVMGasType2,
		GasEstimate:  big.NewInt(*gasEstimate),
		MaxFeePerGas: walletcore.GweiToWei(big.NewInt(*gasPriceGwei)),
	}

	var broadcasterFee *walletcore.ERC20Amount
	if *feePerGas != "" {
		fee, err := walletcore.BroadcasterFeeForGas(*feePerGas, *gasDetails, token)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		broadcasterFee = fee
	}

	transactionType, err := parseTransactionType(*txType)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	group, err := walletcore.AdjustERC20AmountsForTransaction(
		[]walletcore.ERC20AmountRecipient{recipient},
		transactionType,
		transactionType == walletcore.TxTypeSend && broadcasterFee != nil,
		gasDetails,
		broadcasterFee,
		*depositBps,
		*withdrawBps,
		balances,
		false,
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.DefaultSection.Printf("%s preview", transactionType)

	rows := pterm.TableData{
		{"", "Token", "Amount"},
	}
	for i := range group.Inputs {
		rows = append(rows,
			[]string{"input", group.Inputs[i].Token.Address, group.Inputs[i].AmountString},
			[]string{"output", group.Outputs[i].Token.Address, group.Outputs[i].AmountString},
			[]string{"fee", group.Fees[i].Token.Address, group.Fees[i].AmountString},
		)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Info.Printf("worst-case gas: %s wei\n", walletcore.CalculateMaximumGas(*gasDetails).String())
}

func parseTransactionType(name string) (walletcore.TransactionType, error) {
	switch name {
	case "send":
		return walletcore.TxTypeSend, nil
	case "shield":
		return walletcore.TxTypeShield, nil
	case "unshield":
		return walletcore.TxTypeUnshield, nil
	default:
		return 0, fmt.Errorf("unknown transaction type %q: want send, shield or unshield", name)
	}
}
