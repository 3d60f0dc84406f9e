package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a record at a given number" }
func (*removeCmd) Usage() string {
	return `wlt remove <n>

  Deletes record number n (as shown by 'wlt list'); subsequent records shift
  down by one.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing record number")
		return subcommands.ExitUsageError
	}
	index, err := parseIndex(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	record, _ := w.Record(index)
	ok, err := w.Remove(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record number %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed record #%s: %s\n", f.Arg(0), record)
	return subcommands.ExitSuccess
}
