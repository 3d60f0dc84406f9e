package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finbook/wallet"
	"github.com/finbook/wallet/date"
	"github.com/finbook/wallet/renderer"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	income   string
	expense  string
	currency string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance, total income and total expenses" }
func (*balanceCmd) Usage() string {
	return `wlt balance [-income <labels>] [-expense <labels>] [-cur <currency>]

  Partitions the records by category label and displays income, expense and
  their difference. See 'wlt topic balance'.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.income, "income", "", "Comma-separated category labels counted as income. Empty uses the default labels.")
	f.StringVar(&c.expense, "expense", "", "Comma-separated category labels counted as expense. Empty uses the default labels.")
	f.StringVar(&c.currency, "cur", "EUR", "Display currency for the totals (ISO-4217 code).")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	b := w.Balance(c.rules())
	printMarkdown(renderer.Balance(date.Today().String(), b, c.currency))
	return subcommands.ExitSuccess
}

// rules builds the category rules from the label flags. Each side falls back
// to its default labels independently, so setting -income alone leaves the
// expense defaults in place.
func (c *balanceCmd) rules() wallet.Rules {
	income := splitLabels(c.income)
	if len(income) == 0 {
		income = wallet.DefaultIncomeLabels
	}
	expense := splitLabels(c.expense)
	if len(expense) == 0 {
		expense = wallet.DefaultExpenseLabels
	}
	return wallet.NewRules(income, expense)
}

// splitLabels splits a comma-separated flag value into trimmed labels.
func splitLabels(s string) []string {
	var labels []string
	for _, label := range strings.Split(s, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
