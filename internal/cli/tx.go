package cli

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/amount"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/spf13/cobra"
)

var (
	initDecimals uint8
	buyReferrer  string
)

var initCmd = &cobra.Command{
	Use:   "init <name> <symbol>",
	Short: "Initialize the economy and become its first administrator",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sign("initialize")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			err := n.engine.Initialize(ctx, s, engine.TokenMetadata{
				Name:     args[0],
				Symbol:   args[1],
				Decimals: initDecimals,
			})
			if err := outcome(cmd.OutOrStdout(), "init", err); err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), "admin", s.ID.String(), "variant", n.cfg.Economy.Variant)
			return nil
		})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <amount>",
	Short: "Spend currency on tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		incoming, err := amount.ParseCurrency(args[0])
		if err != nil {
			return err
		}
		var referrer *state.HolderID
		if buyReferrer != "" {
			id, err := parseHolderID(buyReferrer)
			if err != nil {
				return err
			}
			referrer = &id
		}
		s, err := sign("buy")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := n.engine.Buy(ctx, s, incoming, referrer)
			if err := outcome(cmd.OutOrStdout(), "buy", err); err != nil {
				return err
			}
			return printTokens(ctx, cmd, n, "tokens received", tokens)
		})
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell <tokens>",
	Short: "Burn tokens for currency credited to your dividends",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sign("sell")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := parseTokens(ctx, n, args[0])
			if err != nil {
				return err
			}
			proceeds, err := n.engine.Sell(ctx, s, tokens)
			if err := outcome(cmd.OutOrStdout(), "sell", err); err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), "proceeds", amount.FormatCurrency(proceeds))
			return nil
		})
	},
}

var reinvestCmd = &cobra.Command{
	Use:   "reinvest",
	Short: "Spend your dividends on tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sign("reinvest")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := n.engine.Reinvest(ctx, s)
			if err := outcome(cmd.OutOrStdout(), "reinvest", err); err != nil {
				return err
			}
			return printTokens(ctx, cmd, n, "tokens received", tokens)
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Pay your dividends and referral balance to your wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sign("withdraw")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			paid, err := n.engine.Withdraw(ctx, s)
			if err := outcome(cmd.OutOrStdout(), "withdraw", err); err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), "paid", amount.FormatCurrency(paid))
			return nil
		})
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <tokens>",
	Short: "Send tokens to another holder, paying the dividend fee in tokens",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := parseHolderID(args[0])
		if err != nil {
			return err
		}
		s, err := sign("transfer")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := parseTokens(ctx, n, args[1])
			if err != nil {
				return err
			}
			received, err := n.engine.Transfer(ctx, s, to, tokens)
			if err := outcome(cmd.OutOrStdout(), "transfer", err); err != nil {
				return err
			}
			return printTokens(ctx, cmd, n, "recipient received", received)
		})
	},
}

var exitCmd = &cobra.Command{
	Use:   "exit",
	Short: "Sell every spendable token and withdraw",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sign("exit")
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			paid, err := n.engine.Exit(ctx, s)
			if err := outcome(cmd.OutOrStdout(), "exit", err); err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), "paid", amount.FormatCurrency(paid))
			return nil
		})
	},
}

func printTokens(ctx context.Context, cmd *cobra.Command, n *node, label string, tokens sdkmath.Uint) error {
	decimals, err := tokenDecimals(ctx, n)
	if err != nil {
		return err
	}
	printKV(cmd.OutOrStdout(), label, amount.Format(tokens, decimals))
	return nil
}

func init() {
	initCmd.Flags().Uint8Var(&initDecimals, "decimals", state.DefaultDecimals, "token decimal places")
	buyCmd.Flags().StringVar(&buyReferrer, "ref", "", "holder id of the referrer")

	for _, cmd := range []*cobra.Command{initCmd, buyCmd, sellCmd, reinvestCmd, withdrawCmd, transferCmd, exitCmd} {
		addKeyFlag(cmd)
		rootCmd.AddCommand(cmd)
	}
}
