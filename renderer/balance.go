package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/finbook/wallet"
	"github.com/shopspring/decimal"
)

// balanceReport carries the already formatted figures for the template.
type balanceReport struct {
	Date    string
	Income  string
	Expense string
	Net     string
}

// balanceMarkdownTemplate is the template for rendering a balance summary in Markdown.
const balanceMarkdownTemplate = `# Balance on {{ .Date }}

| | |
|:---|---:|
| Income | {{ .Income }} |
| Expense | {{ .Expense }} |
| **Balance** | **{{ .Net }}** |
`

// Balance renders the balance summary, with totals formatted in the given
// ISO-4217 currency.
func Balance(on string, b wallet.Balance, currency string) string {
	report := balanceReport{
		Date:    on,
		Income:  FormatAmount(b.Income, currency),
		Expense: FormatAmount(b.Expense, currency),
		Net:     FormatAmount(b.Net, currency),
	}
	tmpl := template.Must(template.New("balance").Parse(balanceMarkdownTemplate))
	var builder strings.Builder
	if err := tmpl.Execute(&builder, report); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return builder.String()
}

// FormatAmount formats a float amount as a localized currency string, e.g.
// FormatAmount(1234.5, "USD") is "$1,234.50".
func FormatAmount(v float64, currency string) string {
	// The money constructor guarantees a non-nil currency even for unknown codes.
	cur := *money.New(0, currency).Currency()
	units := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}
