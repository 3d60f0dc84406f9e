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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	category    string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a record to the wallet" }
func (*addCmd) Usage() string {
	return `wlt add -c <category> -a <amount> [-d <date>] [-m <description>]

  Adds a record to the wallet and saves the store.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the record (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category, conventionally Income or Expense.")
	f.StringVar(&c.amount, "a", "", "Amount, a decimal number. Expenses are recorded positive.")
	f.StringVar(&c.description, "m", "", "Free-text description.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !date.IsValid(c.date) {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q, want the YYYY-MM-DD format\n", c.date)
		return subcommands.ExitUsageError
	}
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -c category is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: want a number\n", c.amount)
		return subcommands.ExitUsageError
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	r := wallet.Record{
		Date:        c.date,
		Category:    c.category,
		Amount:      amount.InexactFloat64(),
		Description: c.description,
	}
	if err := w.Add(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added record #%d to %s\n", w.Len(), w.Filename())
	return subcommands.ExitSuccess
}
