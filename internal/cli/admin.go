package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator operations",
}

// adminCommand builds a signed admin subcommand. run performs the
// operation once the node is open.
func adminCommand(use, short, op string, args cobra.PositionalArgs, run func(ctx context.Context, n *node, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNode(cmd, func(ctx context.Context, n *node) error {
				return outcome(cmd.OutOrStdout(), op, run(ctx, n, args))
			})
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func init() {
	adminCmd.AddCommand(
		adminCommand("disable-initial-phase", "Close the bootstrap phase for good", "disable_initial_phase", cobra.NoArgs,
			func(ctx context.Context, n *node, _ []string) error {
				s, err := sign("disable_initial_phase")
				if err != nil {
					return err
				}
				return n.engine.DisableInitialPhase(ctx, s)
			}),

		adminCommand("set-admin <id> <true|false>", "Grant or revoke the administrator role", "set_administrator", cobra.ExactArgs(2),
			func(ctx context.Context, n *node, args []string) error {
				user, err := parseHolderID(args[0])
				if err != nil {
					return err
				}
				status, err := parseBool(args[1])
				if err != nil {
					return err
				}
				s, err := sign("set_administrator")
				if err != nil {
					return err
				}
				return n.engine.SetAdministrator(ctx, s, user, status)
			}),

		adminCommand("set-ambassador <id> <true|false>", "Grant or revoke the ambassador role", "set_ambassador", cobra.ExactArgs(2),
			func(ctx context.Context, n *node, args []string) error {
				user, err := parseHolderID(args[0])
				if err != nil {
					return err
				}
				status, err := parseBool(args[1])
				if err != nil {
					return err
				}
				s, err := sign("set_ambassador")
				if err != nil {
					return err
				}
				return n.engine.SetAmbassador(ctx, s, user, status)
			}),

		adminCommand("set-staking-requirement <tokens>", "Set the balance a referrer must hold", "set_staking_requirement", cobra.ExactArgs(1),
			func(ctx context.Context, n *node, args []string) error {
				tokens, err := parseTokens(ctx, n, args[0])
				if err != nil {
					return err
				}
				s, err := sign("set_staking_requirement")
				if err != nil {
					return err
				}
				return n.engine.SetStakingRequirement(ctx, s, tokens)
			}),

		adminCommand("set-name <name>", "Rename the token", "set_name", cobra.ExactArgs(1),
			func(ctx context.Context, n *node, args []string) error {
				s, err := sign("set_name")
				if err != nil {
					return err
				}
				return n.engine.SetName(ctx, s, args[0])
			}),

		adminCommand("set-symbol <symbol>", "Change the token symbol", "set_symbol", cobra.ExactArgs(1),
			func(ctx context.Context, n *node, args []string) error {
				s, err := sign("set_symbol")
				if err != nil {
					return err
				}
				return n.engine.SetSymbol(ctx, s, args[0])
			}),

		adminCommand("distribute <recipient> <tokens>", "Move vesting tokens to a holder", "distribute_token", cobra.ExactArgs(2),
			func(ctx context.Context, n *node, args []string) error {
				recipient, err := parseHolderID(args[0])
				if err != nil {
					return err
				}
				tokens, err := parseTokens(ctx, n, args[1])
				if err != nil {
					return err
				}
				s, err := sign("distribute_token")
				if err != nil {
					return err
				}
				return n.engine.DistributeToken(ctx, s, recipient, tokens)
			}),
	)
	rootCmd.AddCommand(adminCmd)
}
