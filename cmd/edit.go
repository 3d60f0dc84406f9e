package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/wallet"
	"github.com/finbook/wallet/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	date        string
	category    string
	amount      string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a record at a given number" }
func (*editCmd) Usage() string {
	return `wlt edit [-d <date>] [-c <category>] [-a <amount>] [-m <description>] <n>

  Replaces record number n (as shown by 'wlt list'). Fields left unset keep
  their current value; the record is replaced wholesale either way.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "New date (YYYY-MM-DD). Empty keeps the current one.")
	f.StringVar(&c.category, "c", "", "New category. Empty keeps the current one.")
	f.StringVar(&c.amount, "a", "", "New amount. Empty keeps the current one.")
	f.StringVar(&c.description, "m", "", "New description. Empty keeps the current one.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing record number")
		return subcommands.ExitUsageError
	}
	index, err := parseIndex(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.date != "" && !date.IsValid(c.date) {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q, want the YYYY-MM-DD format\n", c.date)
		return subcommands.ExitUsageError
	}
	var amount *float64
	if c.amount != "" {
		a, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: want a number\n", c.amount)
			return subcommands.ExitUsageError
		}
		v := a.InexactFloat64()
		amount = &v
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	current, ok := w.Record(index)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record number %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	updated := c.apply(current, amount)
	ok, err = w.Edit(index, updated)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record number %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated record #%s: %s\n", f.Arg(0), updated)
	return subcommands.ExitSuccess
}

// apply builds the replacement record from the current one and the flags that
// were set.
func (c *editCmd) apply(current wallet.Record, amount *float64) wallet.Record {
	updated := current
	if c.date != "" {
		updated.Date = c.date
	}
	if c.category != "" {
		updated.Category = c.category
	}
	if amount != nil {
		updated.Amount = *amount
	}
	if c.description != "" {
		updated.Description = c.description
	}
	return updated
}
