package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wbrc/primeshamir"
)

type splitOptions struct {
	secret    uint64
	shares    int
	threshold int
	seed      string
}

func newSplitCommand(a *app) *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long: `Split a secret into n shares, any k of which recover it. The secret must be
less than the modulus. Shares are evaluated at x = 1..n.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.split(opts)
		},
	}

	cmd.Flags().Uint64VarP(&opts.secret, "secret", "s", 0, "secret to split")
	cmd.Flags().IntVarP(&opts.shares, "shares", "n", 0, "share count - number of shares to generate")
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "k", 0, "threshold - number of shares required to recover")
	cmd.Flags().StringVar(&opts.seed, "seed", "",
		"derive coefficients deterministically from this seed (reproducible demos only)")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("shares")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}

func (a *app) split(opts *splitOptions) error {
	dealer, err := a.dealer()
	if err != nil {
		return err
	}

	if opts.seed != "" {
		a.log.Warn("using seeded randomness, shares are only as secret as the seed")
		dealer.Rand = primeshamir.NewSeededReader([]byte(opts.seed))
	}

	a.log.Debug("splitting secret",
		zap.Int("threshold", opts.threshold),
		zap.Int("shares", opts.shares),
		zap.Uint64("modulus", dealer.F.Modulus()))

	shares, err := dealer.Split(opts.threshold, opts.shares, opts.secret)
	if err != nil {
		return fmt.Errorf("failed to split secret: %w", err)
	}

	return a.printer().PrintShares(dealer.F.Modulus(), opts.threshold, shares)
}
