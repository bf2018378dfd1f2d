package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fystack/nodit-kaia/pkg/rpc"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// kaiaDecimals is the number of peb digits in one KAIA.
const kaiaDecimals = 18

func requireAddress(args []string) error {
	for _, a := range args {
		if !common.IsHexAddress(a) {
			return fmt.Errorf("invalid address %q", a)
		}
	}
	return nil
}

func newBalanceCmd(flags *rootFlags) *cobra.Command {
	var block string
	cmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Native KAIA balance from the node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddress(args); err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Node.GetBalance(cmd.Context(), args[0], block)
			if err != nil {
				return err
			}
			var hex string
			if err := rpc.DecodeResult(raw, &hex); err != nil {
				return err
			}
			peb, err := hexutil.DecodeBig(hex)
			if err != nil {
				return fmt.Errorf("decode balance %q: %w", hex, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s KAIA (%s peb)\n", formatKaia(peb), peb.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&block, "block", "", "block number (hex) or tag, default latest")
	return cmd
}

func formatKaia(peb *big.Int) string {
	return decimal.NewFromBigInt(peb, -kaiaDecimals).String()
}

func newBlockCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "block <hash|number>",
		Short: "Block from the indexing API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Blockchain.GetBlockByHashOrNumber(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func newGasPriceCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gas-price",
		Short: "Current gas price from the indexing API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Blockchain.GetGasPrice(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <address>",
		Short: "Account statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddress(args); err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Statistics.GetAccountStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}

func newTokenPricesCmd(flags *rootFlags) *cobra.Command {
	var currency string
	cmd := &cobra.Command{
		Use:   "token-prices <contract>...",
		Short: "Token prices by contract address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAddress(args); err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			raw, err := client.Token.GetTokenPricesByContracts(cmd.Context(), args, currency)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "quote currency, e.g. USD")
	return cmd
}
