// Package cli implements the simresult subcommands.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/eytandecker/simresult-mcp/internal/catalog"
	"github.com/eytandecker/simresult-mcp/internal/logging"
	"github.com/eytandecker/simresult-mcp/pkg/types"
)

// Codes implements subcommands.Command for the "codes" command.
type Codes struct {
	Out           io.Writer
	Log           logrus.FieldLogger
	DefaultFormat string

	format string
}

// Name implements subcommands.Command.
func (*Codes) Name() string {
	return "codes"
}

// Synopsis implements subcommands.Command.
func (*Codes) Synopsis() string {
	return "lists every named simulator result code"
}

// Usage implements subcommands.Command.
func (*Codes) Usage() string {
	return "codes [-format yaml|json]\n"
}

// SetFlags implements subcommands.Command.
func (c *Codes) SetFlags(f *flag.FlagSet) {
	def := c.DefaultFormat
	if def == "" {
		def = "yaml"
	}
	f.StringVar(&c.format, "format", def, "output format: yaml or json.")
}

// Execute implements subcommands.Command.Execute.
func (c *Codes) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return finish(c.Log, write(c.Out, c.format, catalog.List()))
}

// Lookup implements subcommands.Command for the "lookup" command.
type Lookup struct {
	Out           io.Writer
	Log           logrus.FieldLogger
	DefaultFormat string

	format string
}

// Name implements subcommands.Command.
func (*Lookup) Name() string {
	return "lookup"
}

// Synopsis implements subcommands.Command.
func (*Lookup) Synopsis() string {
	return "resolves a simulator result code by name or number"
}

// Usage implements subcommands.Command.
func (*Lookup) Usage() string {
	return "lookup [-format yaml|json] <name|number>\n" +
		"Negative codes must follow --, e.g. lookup -- -3.\n"
}

// SetFlags implements subcommands.Command.
func (l *Lookup) SetFlags(f *flag.FlagSet) {
	def := l.DefaultFormat
	if def == "" {
		def = "yaml"
	}
	f.StringVar(&l.format, "format", def, "output format: yaml or json.")
}

// Execute implements subcommands.Command.Execute.
func (l *Lookup) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	entry, err := catalog.Resolve(f.Arg(0))
	if err != nil {
		return finish(l.Log, err)
	}
	return finish(l.Log, write(l.Out, l.format, entry))
}

// finish logs err and picks the exit status. Invalid arguments are usage
// errors.
func finish(log logrus.FieldLogger, err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	log.WithFields(logging.FailureFields(err)).Error(err.Error())
	if types.IsInvalidArgs(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

func write(out io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return types.InvalidArgs(fmt.Sprintf("unsupported output format %q", format))
}
