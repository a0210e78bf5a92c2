package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
		CmdSwapRoute(),
	)

	return ammTxCmd
}

// printMsg emits the validated message as JSON for the signing pipeline.
func printMsg(clientCtx client.Context, msg any) error {
	bz, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

func parseAmount(arg, name string) (math.Int, error) {
	amount, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

// CmdCreatePool returns a CLI command handler for creating a pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [asset-a] [amount-a] [asset-b] [amount-b]",
		Short: "Create a new pool with an initial deposit",
		Long: `Create a new pool for an asset pair and seed it with both assets.
Use the literal "native" for the chain's native asset. Fee tier 0 selects the
default fee.

Example:
  $ vortexd tx amm create-pool uatom 1000000 uusdt 2000000 --from mykey
  $ vortexd tx amm create-pool native 500000000 uatom 1000000 --fee-bps 100 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetA, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			assetB, err := parseAsset(args[2])
			if err != nil {
				return err
			}
			amountA, err := parseAmount(args[1], "amount-a")
			if err != nil {
				return err
			}
			amountB, err := parseAmount(args[3], "amount-b")
			if err != nil {
				return err
			}
			feeBps, err := cmd.Flags().GetUint32(FlagFeeBps)
			if err != nil {
				return err
			}

			msg := &types.MsgCreatePool{
				Creator: clientCtx.GetFromAddress().String(),
				AssetA:  assetA,
				AssetB:  assetB,
				AmountA: amountA,
				AmountB: amountB,
				FeeBps:  feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsg(clientCtx, msg)
		},
	}

	cmd.Flags().Uint32(FlagFeeBps, 0, "Swap fee in basis points (0 selects the default)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount0] [amount1]",
		Short: "Add liquidity to an existing pool",
		Long: `Deposit up to the desired amounts at the pool's current ratio. Amounts are
given in the pool's canonical asset order; whichever side overshoots the
ratio is scaled down.

Example:
  $ vortexd tx amm add-liquidity <pool-id> 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			if _, err := types.PoolIDFromString(args[0]); err != nil {
				return err
			}
			amount0, err := parseAmount(args[1], "amount0")
			if err != nil {
				return err
			}
			amount1, err := parseAmount(args[2], "amount1")
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider:       clientCtx.GetFromAddress().String(),
				PoolID:         args[0],
				Amount0Desired: amount0,
				Amount1Desired: amount1,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsg(clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [liquidity]",
		Short: "Burn pool shares and withdraw both assets",
		Long: `Burn liquidity shares and withdraw the proportional slice of both reserves.

Example:
  $ vortexd tx amm remove-liquidity <pool-id> 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			if _, err := types.PoolIDFromString(args[0]); err != nil {
				return err
			}
			liquidity, err := parseAmount(args[1], "liquidity")
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider:  clientCtx.GetFromAddress().String(),
				PoolID:    args[0],
				Liquidity: liquidity,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsg(clientCtx, msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for a single-pool swap
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [asset-in] [amount-in]",
		Short: "Swap an exact input amount against a pool",
		Long: `Swap an exact input amount against a single pool. The output asset is the
pool's other side. Use --min-amount-out to bound slippage and --recipient to
send the output elsewhere.

Example:
  $ vortexd tx amm swap <pool-id> uatom 1000000 --min-amount-out 1900000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			if _, err := types.PoolIDFromString(args[0]); err != nil {
				return err
			}
			assetIn, err := parseAsset(args[1])
			if err != nil {
				return err
			}
			amountIn, err := parseAmount(args[2], "amount-in")
			if err != nil {
				return err
			}

			minOutStr, err := cmd.Flags().GetString(FlagMinAmountOut)
			if err != nil {
				return err
			}
			minAmountOut, ok := math.NewIntFromString(minOutStr)
			if !ok || minAmountOut.IsNegative() {
				return fmt.Errorf("invalid min-amount-out: %s", minOutStr)
			}

			recipient, err := cmd.Flags().GetString(FlagRecipient)
			if err != nil {
				return err
			}
			if recipient == "" {
				recipient = clientCtx.GetFromAddress().String()
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				PoolID:       args[0],
				AssetIn:      assetIn,
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				Recipient:    recipient,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsg(clientCtx, msg)
		},
	}

	cmd.Flags().String(FlagMinAmountOut, "0", "Minimum acceptable output amount")
	cmd.Flags().String(FlagRecipient, "", "Recipient of the swap output (defaults to the trader)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapRoute returns a CLI command handler for a multi-hop swap
func CmdSwapRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-route [asset-path] [amount-in]",
		Short: "Swap an exact input through a chain of pools",
		Long: `Route an exact input through several pools. The asset path is a
comma-separated list and --pools supplies one pool id per consecutive pair.
The slippage bound applies to the final output only.

Example:
  $ vortexd tx amm swap-route uatom,uusdt,native 1000000 --pools <id1>,<id2> --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			path, err := parseAssetPath(args[0])
			if err != nil {
				return err
			}
			amountIn, err := parseAmount(args[1], "amount-in")
			if err != nil {
				return err
			}

			poolsArg, err := cmd.Flags().GetString(FlagPools)
			if err != nil {
				return err
			}
			if poolsArg == "" {
				return fmt.Errorf("--pools is required")
			}
			poolIDs := strings.Split(poolsArg, ",")
			for i, id := range poolIDs {
				poolIDs[i] = strings.TrimSpace(id)
				if _, err := types.PoolIDFromString(poolIDs[i]); err != nil {
					return err
				}
			}

			minOutStr, err := cmd.Flags().GetString(FlagMinAmountOut)
			if err != nil {
				return err
			}
			minAmountOut, ok := math.NewIntFromString(minOutStr)
			if !ok || minAmountOut.IsNegative() {
				return fmt.Errorf("invalid min-amount-out: %s", minOutStr)
			}

			recipient, err := cmd.Flags().GetString(FlagRecipient)
			if err != nil {
				return err
			}
			if recipient == "" {
				recipient = clientCtx.GetFromAddress().String()
			}

			msg := &types.MsgSwapMultiHop{
				Trader:       clientCtx.GetFromAddress().String(),
				Path:         path,
				PoolIDs:      poolIDs,
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				Recipient:    recipient,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return printMsg(clientCtx, msg)
		},
	}

	cmd.Flags().String(FlagPools, "", "Comma-separated pool ids, one per consecutive asset pair")
	cmd.Flags().String(FlagMinAmountOut, "0", "Minimum acceptable final output amount")
	cmd.Flags().String(FlagRecipient, "", "Recipient of the route output (defaults to the trader)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
