// Package renderer builds the markdown reports printed by the wlt command
// line. Numbers in record tables keep the store's own textual form; only the
// balance report formats totals as currency.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/finbook/wallet"
)

// recordsRow is one line of a record table, numbered the way users address
// records in `wlt edit` and `wlt remove` (1-based).
type recordsRow struct {
	N      int
	Record wallet.Record
}

// recordsMarkdownTemplate is the template for rendering a record table in Markdown.
const recordsMarkdownTemplate = `# {{ .Title }}

{{ if .Rows -}}
| # | Date | Category | Amount | Description |
|--:|:---|:---|---:|:---|
{{- range .Rows }}
| {{ .N }} | {{ .Record.Date }} | {{ .Record.Category }} | {{ .Record.AmountText }} | {{ .Record.Description }} |
{{- end }}
{{- else -}}
No records.
{{- end }}
`

// Records renders a numbered markdown table of records.
func Records(title string, records []wallet.Record) string {
	return RecordsFrom(title, 1, records)
}

// RecordsFrom is Records with an explicit first row number, for views that
// show a slice of the store but must keep the store's own numbering.
func RecordsFrom(title string, first int, records []wallet.Record) string {
	rows := make([]recordsRow, 0, len(records))
	for i, r := range records {
		rows = append(rows, recordsRow{N: first + i, Record: r})
	}
	data := struct {
		Title string
		Rows  []recordsRow
	}{Title: title, Rows: rows}

	tmpl := template.Must(template.New("records").Parse(recordsMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
