// Binary simresult inspects simulator result codes.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/eytandecker/simresult-mcp/internal/cli"
	"github.com/eytandecker/simresult-mcp/internal/config"
	"github.com/eytandecker/simresult-mcp/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Logging, os.Stderr)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&cli.Codes{Out: os.Stdout, Log: log, DefaultFormat: cfg.Output.Format}, "")
	subcommands.Register(&cli.Lookup{Out: os.Stdout, Log: log, DefaultFormat: cfg.Output.Format}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
