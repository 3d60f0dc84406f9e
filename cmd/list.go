package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/wallet/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all records in the wallet" }
func (*listCmd) Usage() string {
	return `wlt list [-head <n>] [-tail <n>]

  Lists the wallet records in store order, numbered the way edit and remove
  address them.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	records := w.Records()
	first := 1
	if c.head > 0 && len(records) > c.head {
		records = records[:c.head]
	}
	if c.tail > 0 && len(records) > c.tail {
		first = len(records) - c.tail + 1
		records = records[len(records)-c.tail:]
	}

	printMarkdown(renderer.RecordsFrom("Records", first, records))
	return subcommands.ExitSuccess
}
