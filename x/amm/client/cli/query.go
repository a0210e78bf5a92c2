package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdDerivePoolID(),
		GetCmdQuote(),
	)

	return ammQueryCmd
}

// GetCmdDerivePoolID returns the command deriving a pool id from a pair and fee
func GetCmdDerivePoolID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-id [asset-a] [asset-b] [fee-bps]",
		Short: "Derive the pool id for an asset pair and fee tier",
		Long: `Derive the deterministic pool id for an unordered asset pair and fee tier.
The result is independent of the argument order.

Example:
  $ vortexd query amm pool-id uatom uusdt 30
  $ vortexd query amm pool-id native uatom 100`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetA, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			assetB, err := parseAsset(args[1])
			if err != nil {
				return err
			}
			feeBps, ok := math.NewIntFromString(args[2])
			if !ok || feeBps.IsNegative() || feeBps.GT(math.NewInt(types.MaxFeeBps)) {
				return fmt.Errorf("invalid fee-bps: %s (must be in [0, %d])", args[2], types.MaxFeeBps)
			}

			id, err := types.NewPoolID(assetA, assetB, uint32(feeBps.Int64()))
			if err != nil {
				return err
			}

			cmd.Println(id.String())
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuote returns the command pricing a swap against given reserves
func GetCmdQuote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [amount-in] [reserve-in] [reserve-out] [fee-bps]",
		Short: "Price an exact-input swap against the given reserves",
		Long: `Compute the exact-input swap output for the given reserves and fee tier,
using the same rounding the chain applies: the fee is carved out of the input
with floor division and the constant product formula also rounds down.

Example:
  $ vortexd query amm quote 100 1000 2000 30`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := parseAmount(args[0], "amount-in")
			if err != nil {
				return err
			}
			reserveIn, err := parseAmount(args[1], "reserve-in")
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount(args[2], "reserve-out")
			if err != nil {
				return err
			}
			feeBps, ok := math.NewIntFromString(args[3])
			if !ok || feeBps.IsNegative() || feeBps.GT(math.NewInt(types.MaxFeeBps)) {
				return fmt.Errorf("invalid fee-bps: %s (must be in [0, %d])", args[3], types.MaxFeeBps)
			}

			amountInWithFee := amountIn.
				Mul(math.NewInt(types.FeeDenominator).Sub(feeBps)).
				Quo(math.NewInt(types.FeeDenominator))
			if amountInWithFee.IsZero() {
				return fmt.Errorf("input too small after fee")
			}
			amountOut := amountInWithFee.Mul(reserveOut).Quo(reserveIn.Add(amountInWithFee))

			cmd.Println(amountOut.String())
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
