package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/LeJamon/goSkwizz/internal/core/amount"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/crypto"
	"github.com/LeJamon/goSkwizz/internal/storage/journal"
	"github.com/spf13/cobra"
)

var (
	keySeed       string
	historyHolder string
	historyLimit  int
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage holder keys",
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a keypair and print its holder id",
	Long: `Create a secp256k1 keypair. With --seed the key is derived from the
seed (hex, at least 16 bytes) and the same seed always yields the same key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var seed []byte
		var err error
		if keySeed != "" {
			seed, err = hex.DecodeString(keySeed)
			if err != nil {
				return fmt.Errorf("--seed: %w", err)
			}
		} else if seed, err = crypto.RandomSeed(); err != nil {
			return err
		}
		defer crypto.SecureErase(seed)

		id, err := crypto.NewIdentityFromSeed(seed)
		if err != nil {
			return err
		}
		printKV(cmd.OutOrStdout(),
			"holder id", id.HolderID().String(),
			"public key", id.PublicKeyHex(),
			"private key", id.PrivateKeyHex(),
		)
		return nil
	},
}

var fundCmd = &cobra.Command{
	Use:   "fund <id> <amount>",
	Short: "Credit a wallet with currency (development networks)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseHolderID(args[0])
		if err != nil {
			return err
		}
		credit, err := amount.ParseCurrency(args[1])
		if err != nil {
			return err
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			if err := n.bank.Fund(ctx, id, credit); err != nil {
				return err
			}
			wallet, err := n.bank.Balance(ctx, id)
			if err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), "wallet", amount.FormatCurrency(wallet))
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled events, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := journal.Filter{Limit: historyLimit}
		if historyHolder != "" {
			id, err := parseHolderID(historyHolder)
			if err != nil {
				return err
			}
			filter.Holder = &id
		}
		return withNode(cmd, func(ctx context.Context, n *node) error {
			if n.journal == nil {
				return fmt.Errorf("the event journal is disabled (journal.driver = %q)", n.cfg.Journal.Driver)
			}
			records, err := n.journal.Events(ctx, filter)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, rec := range records {
				fmt.Fprintf(w, "%6d %s %s\n", rec.Seq, rec.Event.Time.Format(time.RFC3339), formatEvent(rec.Event))
			}
			return nil
		})
	},
}

// formatEvent renders the event's key/value pairs on one line.
func formatEvent(ev engine.Event) string {
	kv := ev.KeyVals()
	parts := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", kv[i], kv[i+1]))
	}
	return strings.Join(parts, " ")
}

func init() {
	keysGenerateCmd.Flags().StringVar(&keySeed, "seed", "", "hex seed to derive the key from")
	keysCmd.AddCommand(keysGenerateCmd)

	historyCmd.Flags().StringVar(&historyHolder, "holder", "", "only events involving this holder")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of events")

	rootCmd.AddCommand(keysCmd, fundCmd, historyCmd)
}
