// Package cmd implements the CLI application to manage a wallet.
package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/finbook/wallet"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&findCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&removeCmd{}, "records")
	c.Register(&importCmd{}, "records")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var walletFile = flag.String("wallet-file", "wallet.json", "Path to the wallet store file (JSON format)")

// openWallet is the central function to open the wallet store.
func openWallet() (*wallet.Wallet, error) {
	return wallet.Open(*walletFile)
}

// parseIndex translates a user-entered 1-based record number into the
// wallet's 0-based index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid record number %q: want a number", arg)
	}
	return n - 1, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be set up.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
