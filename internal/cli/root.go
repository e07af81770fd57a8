// Package cli implements the primeshamir command line tool.
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wbrc/primeshamir"
	"github.com/wbrc/primeshamir/internal/logging"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *Config
	log        *zap.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand returns the primeshamir command tree reading from in and
// writing results to out and diagnostics to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      newViper(),
		log:    zap.NewNop(),
		in:     in,
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:   "primeshamir",
		Short: "Shamir's Secret Sharing over a prime field",
		Long: `primeshamir splits an integer secret into n shares such that any k of them
recover it, while fewer than k reveal nothing about it.

Shares are points (x, y) on a random polynomial of degree k-1 over GF(p)
whose constant term is the secret.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.Uint64("modulus", primeshamir.DefaultModulus,
		"prime field modulus, must exceed the secret and the share count")
	flags.StringP("output", "o", string(OutputFormatText), "output format (text, json)")
	flags.BoolP("verbose", "v", false, "debug logging to stderr")

	for _, key := range []string{"modulus", "output", "verbose"} {
		// only fails for a nil flag
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(newSplitCommand(a))
	rootCmd.AddCommand(newCombineCommand(a))

	return rootCmd
}

func (a *app) init() error {
	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewLogger(a.errOut, cfg.Verbose)

	a.log.Debug("configuration loaded",
		zap.Uint64("modulus", cfg.Modulus),
		zap.String("output", cfg.Output),
		zap.String("config", a.v.ConfigFileUsed()))

	return nil
}

func (a *app) dealer() (*primeshamir.Dealer, error) {
	f, err := a.cfg.Field()
	if err != nil {
		return nil, err
	}
	return &primeshamir.Dealer{F: f}, nil
}

func (a *app) printer() *Printer {
	return NewPrinter(a.cfg.Output, a.out)
}
