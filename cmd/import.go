package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finbook/wallet"
	"github.com/finbook/wallet/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file    string
	path    string
	dateKey string
	catKey  string
	amtKey  string
	descKey string
	dryRun  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import records from a JSON export" }
func (*importCmd) Usage() string {
	return `wlt import -file <export.json> [-path <jsonpath>] [-date-key <k>] [-category-key <k>] [-amount-key <k>] [-description-key <k>] [-n]

  Extracts records from an arbitrary JSON export (bank statements, other
  trackers) and appends them to the wallet. -path selects the list of entries
  with a JSONPath expression, the -*-key flags name the properties to read
  from each entry.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON file to import from.")
	f.StringVar(&c.path, "path", "$[*]", "JSONPath expression selecting the entries to import.")
	f.StringVar(&c.dateKey, "date-key", "date", "Entry property holding the date.")
	f.StringVar(&c.catKey, "category-key", "category", "Entry property holding the category.")
	f.StringVar(&c.amtKey, "amount-key", "amount", "Entry property holding the amount.")
	f.StringVar(&c.descKey, "description-key", "description", "Entry property holding the description.")
	f.BoolVar(&c.dryRun, "n", false, "Only print what would be imported.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	records, err := c.extract(jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting records: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		for _, r := range records {
			fmt.Println(r)
		}
		fmt.Printf("Would import %d records into %s\n", len(records), *walletFile)
		return subcommands.ExitSuccess
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range records {
		if err := w.Add(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving wallet: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d records into %s\n", len(records), w.Filename())
	return subcommands.ExitSuccess
}

// extract applies the JSONPath expression to the decoded export and converts
// each selected entry into a record.
func (c *importCmd) extract(jobj interface{}) ([]wallet.Record, error) {
	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", c.path, err)
	}
	entries, ok := jval.([]interface{})
	if !ok {
		// jsonpath returns a single value for a non-wildcard path; accept a
		// single entry too.
		entries = []interface{}{jval}
	}

	records := make([]wallet.Record, 0, len(entries))
	for i, entry := range entries {
		jmap, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("entry %d: expected an object, got %T", i, entry)
		}
		r, err := c.record(jmap)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// record reads one export entry into a wallet record.
func (c *importCmd) record(jmap map[string]interface{}) (wallet.Record, error) {
	day, err := stringProp(jmap, c.dateKey)
	if err != nil {
		return wallet.Record{}, err
	}
	if !date.IsValid(day) {
		return wallet.Record{}, fmt.Errorf("property %q: invalid date %q, want the YYYY-MM-DD format", c.dateKey, day)
	}
	category, err := stringProp(jmap, c.catKey)
	if err != nil {
		return wallet.Record{}, err
	}
	description, err := stringProp(jmap, c.descKey)
	if err != nil {
		return wallet.Record{}, err
	}
	amount, err := amountProp(jmap, c.amtKey)
	if err != nil {
		return wallet.Record{}, err
	}
	return wallet.Record{Date: day, Category: category, Amount: amount, Description: description}, nil
}

func stringProp(jmap map[string]interface{}, key string) (string, error) {
	jval, ok := jmap[key]
	if !ok {
		return "", fmt.Errorf("missing the property %q", key)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("property %q must be of type 'string', got %T", key, jval)
	}
	return s, nil
}

// amountProp reads an amount that exports encode either as a JSON number or
// as a decimal string.
func amountProp(jmap map[string]interface{}, key string) (float64, error) {
	jval, ok := jmap[key]
	if !ok {
		return 0, fmt.Errorf("missing the property %q", key)
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return 0, fmt.Errorf("property %q: invalid amount %q", key, v)
		}
		return d.InexactFloat64(), nil
	default:
		return 0, fmt.Errorf("property %q must be a number, got %T", key, jval)
	}
}
