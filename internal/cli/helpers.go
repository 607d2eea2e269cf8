package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/amount"
	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/crypto"
	"github.com/spf13/cobra"
)

var errNoKey = errors.New("--key is required to sign this command")

// signingKey is the hex private key of the caller of a signed command.
var signingKey string

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&signingKey, "key", "", "hex-encoded private key of the caller")
}

// callerIdentity parses --key.
func callerIdentity() (*crypto.Identity, error) {
	if signingKey == "" {
		return nil, errNoKey
	}
	id, err := crypto.NewIdentityFromPrivateKey(signingKey)
	if err != nil {
		return nil, fmt.Errorf("--key: %w", err)
	}
	return id, nil
}

// sign returns the caller of the operation named op.
func sign(op string) (engine.Signer, error) {
	id, err := callerIdentity()
	if err != nil {
		return engine.Signer{}, err
	}
	return id.SignOperation(op), nil
}

// withNode opens the node, runs fn and closes the node.
func withNode(cmd *cobra.Command, fn func(ctx context.Context, n *node) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	n, err := openNode(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, n.Close())
	}()
	return fn(ctx, n)
}

// outcome reports the result code of an operation. A failed operation is
// returned as an error so the process exits non-zero.
func outcome(w io.Writer, op string, err error) error {
	res := engine.ResultOf(err)
	if !res.IsSuccess() {
		return fmt.Errorf("%s: %s %s (%w)", op, res, res.Message(), err)
	}
	fmt.Fprintf(w, "%s %s\n", op, res)
	return nil
}

func parseHolderID(s string) (state.HolderID, error) {
	id, err := state.ParseHolderID(s)
	if err != nil {
		return id, fmt.Errorf("holder id %q: %w", s, err)
	}
	return id, nil
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected true or false, got %q", s)
	}
	return b, nil
}

// tokenDecimals returns the precision token amounts are given in.
func tokenDecimals(ctx context.Context, n *node) (uint8, error) {
	econ, err := n.engine.Economy(ctx)
	if err != nil {
		return 0, err
	}
	return econ.Decimals, nil
}

func parseTokens(ctx context.Context, n *node, s string) (sdkmath.Uint, error) {
	decimals, err := tokenDecimals(ctx, n)
	if err != nil {
		return sdkmath.ZeroUint(), err
	}
	return amount.Parse(s, decimals)
}

func printKV(w io.Writer, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(w, "  %-22s %s\n", pairs[i]+":", pairs[i+1])
	}
}
