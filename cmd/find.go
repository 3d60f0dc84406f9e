package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finbook/wallet/renderer"
	"github.com/google/subcommands"
)

// findCmd holds the flags for the 'find' subcommand.
type findCmd struct{}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "search records by date, category, amount or description" }
func (*findCmd) Usage() string {
	return `wlt find <term>

  Lists the records matching the term, in store order. The numbers shown count
  the matches, not the store; use 'wlt list' numbers with edit and remove.
  See 'wlt topic search' for the matching rules.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing search term")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	found := w.Find(term)
	printMarkdown(renderer.Records(fmt.Sprintf("Records matching %q", term), found))
	return subcommands.ExitSuccess
}
