package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wbrc/primeshamir"
)

func newCombineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "combine [x:y ...]",
		Short: "Recover a secret from shares",
		Long: `Recover a secret from shares given as arguments or, when there are none, read
from stdin one per line. All shares must come from the same split and have
distinct x values. Supplying fewer shares than the split's threshold yields a
wrong secret, not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.combine(args)
		},
	}
}

func (a *app) combine(args []string) error {
	texts := args
	if len(texts) == 0 {
		var err error
		texts, err = a.readShares()
		if err != nil {
			return err
		}
	}

	shares, err := primeshamir.ParseShares(texts)
	if err != nil {
		return fmt.Errorf("failed to read share: %w", err)
	}

	dealer, err := a.dealer()
	if err != nil {
		return err
	}

	a.log.Debug("combining shares",
		zap.Int("shares", len(shares)),
		zap.Uint64("modulus", dealer.F.Modulus()))

	secret, err := dealer.Combine(shares)
	if err != nil {
		return fmt.Errorf("failed to combine shares: %w", err)
	}

	return a.printer().PrintSecret(secret)
}

func (a *app) readShares() ([]string, error) {
	var texts []string
	s := bufio.NewScanner(a.in)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shares: %w", err)
	}

	return texts, nil
}
