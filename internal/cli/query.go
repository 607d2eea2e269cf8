package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/LeJamon/goSkwizz/internal/core/amount"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/spf13/cobra"
)

var includeReferral bool

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Read-only views of the economy",
}

// holderArg returns the holder named by args, or the --key holder.
func holderArg(args []string) (state.HolderID, error) {
	if len(args) > 0 {
		return parseHolderID(args[0])
	}
	id, err := callerIdentity()
	if err != nil {
		return state.HolderID{}, fmt.Errorf("give a holder id or %w", err)
	}
	return id.HolderID(), nil
}

var dividendsCmd = &cobra.Command{
	Use:   "dividends [id]",
	Short: "Show what a holder could withdraw now",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := holderArg(args)
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			divs, err := n.engine.MyDividends(ctx, id, includeReferral)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCurrency(divs))
			return nil
		})
	},
}

var buyPriceCmd = &cobra.Command{
	Use:   "buy-price",
	Short: "Currency paid for one whole token, fee included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(ctx context.Context, n *node) error {
			price, err := n.engine.BuyPrice(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCurrency(price))
			return nil
		})
	},
}

var sellPriceCmd = &cobra.Command{
	Use:   "sell-price",
	Short: "Currency received for one whole token, fee deducted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(ctx context.Context, n *node) error {
			price, err := n.engine.SellPrice(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCurrency(price))
			return nil
		})
	},
}

var tokensReceivedCmd = &cobra.Command{
	Use:   "tokens-received <amount>",
	Short: "Tokens a purchase of amount would mint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		incoming, err := amount.ParseCurrency(args[0])
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := n.engine.CalculateTokensReceived(ctx, incoming)
			if err != nil {
				return err
			}
			decimals, err := tokenDecimals(ctx, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.Format(tokens, decimals))
			return nil
		})
	},
}

var currencyReceivedCmd = &cobra.Command{
	Use:   "currency-received <tokens>",
	Short: "Currency a sale of tokens would pay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(ctx context.Context, n *node) error {
			tokens, err := parseTokens(ctx, n, args[0])
			if err != nil {
				return err
			}
			proceeds, err := n.engine.CalculateCurrencyReceived(ctx, tokens)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), amount.FormatCurrency(proceeds))
			return nil
		})
	},
}

var holderCmd = &cobra.Command{
	Use:   "holder [id]",
	Short: "Show a holder record",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := holderArg(args)
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			info, err := n.engine.Holder(ctx, id)
			if err != nil {
				return err
			}
			decimals, err := tokenDecimals(ctx, n)
			if err != nil {
				return err
			}
			wallet, err := n.bank.Balance(ctx, id)
			if err != nil {
				return err
			}

			h := info.Holder
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "holder %s\n", h.ID)
			printKV(w,
				"balance", amount.Format(h.Balance, decimals),
				"spendable", amount.Format(info.Spendable, decimals),
				"dividends", amount.FormatCurrency(info.Dividends),
				"referral balance", amount.FormatCurrency(h.ReferredBalance),
				"wallet", amount.FormatCurrency(wallet),
				"admin", strconv.FormatBool(h.IsAdmin),
				"ambassador", strconv.FormatBool(h.IsAmbassador),
				"ambassador purchases", amount.FormatCurrency(h.AmbassadorQuota),
				"claimed", strconv.FormatBool(h.Claimed()),
			)
			if !h.Lock.Total.IsZero() {
				printKV(w,
					"locked total", amount.Format(h.Lock.Total, decimals),
					"unlock start", h.Lock.Start.Format(time.RFC3339),
					"unlock end", h.Lock.End.Format(time.RFC3339),
				)
			}
			return nil
		})
	},
}

var holdersCmd = &cobra.Command{
	Use:   "holders",
	Short: "List every holder record with its balance and dividends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(ctx context.Context, n *node) error {
			decimals, err := tokenDecimals(ctx, n)
			if err != nil {
				return err
			}
			var ids []state.HolderID
			err = n.store.Holders(ctx, func(h *state.Holder) error {
				ids = append(ids, h.ID)
				return nil
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, id := range ids {
				info, err := n.engine.Holder(ctx, id)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("%s balance=%s dividends=%s",
					id, amount.Format(info.Holder.Balance, decimals), amount.FormatCurrency(info.Dividends))
				if info.Holder.IsAdmin {
					line += " admin"
				}
				if info.Holder.IsAmbassador {
					line += " ambassador"
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "%d holders\n", len(ids))
			return nil
		})
	},
}

var economyCmd = &cobra.Command{
	Use:   "economy",
	Short: "Show the economy record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withNode(cmd, func(ctx context.Context, n *node) error {
			econ, err := n.engine.Economy(ctx)
			if err != nil {
				return err
			}
			phase, err := n.engine.Phase(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", econ.Name, econ.Symbol)
			printKV(w,
				"variant", econ.Variant.String(),
				"phase", phase.String(),
				"decimals", strconv.Itoa(int(econ.Decimals)),
				"dividend fee", "1/"+strconv.Itoa(int(econ.DividendFee)),
				"token supply", amount.Format(econ.TokenSupply, econ.Decimals),
				"contract balance", amount.FormatCurrency(econ.ContractBalance),
				"profit per share", econ.ProfitPerShare.String(),
				"staking requirement", amount.Format(econ.StakingRequirement, econ.Decimals),
				"ambassador quota", amount.FormatCurrency(econ.AmbassadorQuota),
				"vesting", strconv.FormatBool(econ.Vesting.Enabled),
			)
			return nil
		})
	},
}

func init() {
	dividendsCmd.Flags().BoolVar(&includeReferral, "include-referral", false, "add the referral balance")
	addKeyFlag(dividendsCmd)
	addKeyFlag(holderCmd)

	queryCmd.AddCommand(dividendsCmd, buyPriceCmd, sellPriceCmd, tokensReceivedCmd, currencyReceivedCmd, holderCmd, holdersCmd, economyCmd)
	rootCmd.AddCommand(queryCmd)
}
