package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/wallet/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Handles the shell completion protocol and exits when invoked by the
	// shell; a no-op in a normal run.
	completion().Complete("wlt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI to the shell completion engine.
func completion() *complete.Command {
	storeFlags := map[string]complete.Predictor{
		"wallet-file": predict.Files("*.json"),
	}
	return &complete.Command{
		Flags: storeFlags,
		Sub: map[string]*complete.Command{
			"add":     {Flags: storeFlags},
			"list":    {Flags: storeFlags},
			"find":    {Flags: storeFlags},
			"edit":    {Flags: storeFlags},
			"remove":  {Flags: storeFlags},
			"import":  {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
			"balance": {Flags: storeFlags},
			"assist":  {Flags: storeFlags},
			"topic":   {Args: predict.Set{"readme", "format", "balance", "search"}},
		},
	}
}
