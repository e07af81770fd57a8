package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wbrc/primeshamir"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer writes command results to stdout.
type Printer struct {
	format OutputFormat
	writer io.Writer
}

func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintShares prints one "x:y" share per line, or a JSON document holding the
// sharing parameters and the shares.
func (p *Printer) PrintShares(modulus uint64, threshold int, shares []primeshamir.Share) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"modulus":   modulus,
			"threshold": threshold,
			"shares":    shares,
		})
	case OutputFormatText:
		for _, s := range shares {
			if _, err := fmt.Fprintln(p.writer, s); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSecret prints a recovered secret.
func (p *Printer) PrintSecret(secret uint64) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"secret": secret,
		})
	case OutputFormatText:
		_, err := fmt.Fprintln(p.writer, secret)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
