package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wbrc/primeshamir"
)

const envPrefix = "PRIMESHAMIR"

// Config is the resolved configuration shared by all commands.
type Config struct {
	Modulus uint64
	Output  string
	Verbose bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file and resolves every key from
// flags, environment and file, in that order of precedence.
func loadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Modulus: v.GetUint64("modulus"),
		Output:  v.GetString("output"),
		Verbose: v.GetBool("verbose"),
	}

	switch OutputFormat(cfg.Output) {
	case OutputFormatText, OutputFormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Output)
	}

	return cfg, nil
}

// Field returns the prime field named by the configuration.
func (c *Config) Field() (primeshamir.Field, error) {
	return primeshamir.NewField(c.Modulus)
}
