package cli

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pairpool/pairpool/x/amm/types"
)

const (
	flagAmountAMin = "amount-a-min"
	flagAmountBMin = "amount-b-min"
	flagTo         = "to"
	flagDeadline   = "deadline"

	defaultDeadlineSecs = 300
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
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
	)

	return ammTxCmd
}

func parsePositiveInt(raw, name string) (math.Int, error) {
	v, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if !v.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return v, nil
}

func parseMinFlag(cmd *cobra.Command, flag string) (math.Int, error) {
	raw, err := cmd.Flags().GetString(flag)
	if err != nil {
		return math.Int{}, err
	}
	v, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", flag, raw)
	}
	if v.IsNegative() {
		return math.Int{}, fmt.Errorf("%s cannot be negative", flag)
	}
	return v, nil
}

func resolveRecipientAndDeadline(cmd *cobra.Command, clientCtx client.Context) (string, int64, error) {
	to, err := cmd.Flags().GetString(flagTo)
	if err != nil {
		return "", 0, err
	}
	if to == "" {
		to = clientCtx.GetFromAddress().String()
	}

	deadline, err := cmd.Flags().GetInt64(flagDeadline)
	if err != nil {
		return "", 0, err
	}
	if deadline == 0 {
		deadline = time.Now().Unix() + defaultDeadlineSecs
	}
	return to, deadline, nil
}

// CmdAddLiquidity returns a CLI command handler for depositing both pool assets
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-a] [amount-a] [token-b] [amount-b]",
		Short: "Deposit both tokens into the pool and mint liquidity shares",
		Long: `Deposit both tokens into the pool and receive liquidity shares.

For the first deposit both amounts are taken in full. Afterwards the deposit is
scaled down to the current pool ratio; use --amount-a-min and --amount-b-min to
bound how far below the desired amounts the deposit may land.

Example:
  $ poold tx amm add-liquidity uatom 1000000 uusdc 4000000 --from mykey
  $ poold tx amm add-liquidity uatom 1000000 uusdc 4000000 --amount-b-min 3900000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[2]

			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			amountA, err := parsePositiveInt(args[1], "amount-a")
			if err != nil {
				return err
			}
			amountB, err := parsePositiveInt(args[3], "amount-b")
			if err != nil {
				return err
			}

			amountAMin, err := parseMinFlag(cmd, flagAmountAMin)
			if err != nil {
				return err
			}
			amountBMin, err := parseMinFlag(cmd, flagAmountBMin)
			if err != nil {
				return err
			}

			to, deadline, err := resolveRecipientAndDeadline(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider:       clientCtx.GetFromAddress().String(),
				TokenA:         tokenA,
				TokenB:         tokenB,
				AmountADesired: amountA,
				AmountBDesired: amountB,
				AmountAMin:     amountAMin,
				AmountBMin:     amountBMin,
				To:             to,
				Deadline:       deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagAmountAMin, "0", "Minimum accepted amount of token-a")
	cmd.Flags().String(flagAmountBMin, "0", "Minimum accepted amount of token-b")
	cmd.Flags().String(flagTo, "", "Recipient of the minted shares (defaults to the sender)")
	cmd.Flags().Int64(flagDeadline, 0, "Unix timestamp after which the tx is rejected (default now+300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for burning shares against reserves
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [token-a] [token-b] [shares]",
		Short: "Burn liquidity shares and withdraw both tokens",
		Long: `Burn liquidity shares and receive both tokens in proportion to your share
of the pool.

Example:
  $ poold tx amm remove-liquidity uatom uusdc 1000000 --from mykey
  $ poold tx amm remove-liquidity uatom uusdc 1000000 --amount-a-min 490000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenA := args[0]
			tokenB := args[1]

			if tokenA == tokenB {
				return fmt.Errorf("tokens must be different")
			}

			shares, err := parsePositiveInt(args[2], "shares")
			if err != nil {
				return err
			}

			amountAMin, err := parseMinFlag(cmd, flagAmountAMin)
			if err != nil {
				return err
			}
			amountBMin, err := parseMinFlag(cmd, flagAmountBMin)
			if err != nil {
				return err
			}

			to, deadline, err := resolveRecipientAndDeadline(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider:   clientCtx.GetFromAddress().String(),
				TokenA:     tokenA,
				TokenB:     tokenB,
				Liquidity:  shares,
				AmountAMin: amountAMin,
				AmountBMin: amountBMin,
				To:         to,
				Deadline:   deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagAmountAMin, "0", "Minimum accepted amount of token-a")
	cmd.Flags().String(flagAmountBMin, "0", "Minimum accepted amount of token-b")
	cmd.Flags().String(flagTo, "", "Recipient of the withdrawn tokens (defaults to the sender)")
	cmd.Flags().Int64(flagDeadline, 0, "Unix timestamp after which the tx is rejected (default now+300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping tokens
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [token-in] [amount-in] [token-out] [min-amount-out]",
		Short: "Swap an exact amount of one token for the other",
		Long: `Swap an exact input amount for the other pool token using the constant
product formula. The min-amount-out argument protects against slippage; the
transaction fails if the output falls below it.

Use the estimate-swap query to quote the output before swapping.

Examples:
  $ poold tx amm swap uatom 1000000 uusdc 3900000 --from mykey
  $ poold query amm estimate-swap uatom uusdc 1000000`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenIn := args[0]
			tokenOut := args[2]

			if tokenIn == tokenOut {
				return fmt.Errorf("token-in and token-out must be different")
			}

			amountIn, err := parsePositiveInt(args[1], "amount-in")
			if err != nil {
				return err
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}
			if minAmountOut.IsNegative() {
				return fmt.Errorf("min-amount-out cannot be negative")
			}

			to, deadline, err := resolveRecipientAndDeadline(cmd, clientCtx)
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				TokenIn:      tokenIn,
				TokenOut:     tokenOut,
				AmountIn:     amountIn,
				AmountOutMin: minAmountOut,
				To:           to,
				Deadline:     deadline,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagTo, "", "Recipient of the output tokens (defaults to the sender)")
	cmd.Flags().Int64(flagDeadline, 0, "Unix timestamp after which the tx is rejected (default now+300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
