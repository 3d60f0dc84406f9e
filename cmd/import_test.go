package cmd

import (
	"encoding/json"
	"testing"
)

func TestImport_Extract(t *testing.T) {
	export := `{
		"account": "main",
		"transactions": [
			{"date": "2023-01-01", "category": "Income", "amount": 1000.0, "description": "Salary"},
			{"date": "2023-01-02", "category": "Expense", "amount": "49.90", "description": "Кофе"}
		]
	}`
	var jobj interface{}
	if err := json.Unmarshal([]byte(export), &jobj); err != nil {
		t.Fatal(err)
	}

	c := &importCmd{
		path:    "$.transactions[*]",
		dateKey: "date", catKey: "category", amtKey: "amount", descKey: "description",
	}
	records, err := c.extract(jobj)
	if err != nil {
		t.Fatalf("extract() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("extract() returned %d records, want 2", len(records))
	}
	if records[0].Amount != 1000.0 {
		t.Errorf("record 0 amount = %v, want 1000.0", records[0].Amount)
	}
	if records[1].Amount != 49.90 {
		t.Errorf("record 1 amount = %v, want 49.90 parsed from string", records[1].Amount)
	}
	if records[1].Description != "Кофе" {
		t.Errorf("record 1 description = %q", records[1].Description)
	}
}

func TestImport_ExtractRenamedKeys(t *testing.T) {
	export := `[{"on": "2023-03-05", "kind": "Expense", "total": 12.5, "memo": "Taxi"}]`
	var jobj interface{}
	if err := json.Unmarshal([]byte(export), &jobj); err != nil {
		t.Fatal(err)
	}

	c := &importCmd{
		path:    "$[*]",
		dateKey: "on", catKey: "kind", amtKey: "total", descKey: "memo",
	}
	records, err := c.extract(jobj)
	if err != nil {
		t.Fatalf("extract() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("extract() returned %d records, want 1", len(records))
	}
	want := "2023-03-05 - Expense - 12.5 - Taxi"
	if got := records[0].String(); got != want {
		t.Errorf("record = %q, want %q", got, want)
	}
}

func TestImport_ExtractRejectsBadEntries(t *testing.T) {
	testCases := []struct {
		name   string
		export string
	}{
		{"missing property", `[{"date": "2023-01-01", "category": "Income", "amount": 1.0}]`},
		{"invalid date", `[{"date": "01-01-2023", "category": "Income", "amount": 1.0, "description": ""}]`},
		{"amount not a number", `[{"date": "2023-01-01", "category": "Income", "amount": true, "description": ""}]`},
		{"entry not an object", `[42]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var jobj interface{}
			if err := json.Unmarshal([]byte(tc.export), &jobj); err != nil {
				t.Fatal(err)
			}
			c := &importCmd{
				path:    "$[*]",
				dateKey: "date", catKey: "category", amtKey: "amount", descKey: "description",
			}
			if _, err := c.extract(jobj); err == nil {
				t.Error("extract() = nil error, want failure")
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	testCases := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "1", want: 0},
		{arg: "12", want: 11},
		{arg: "0", want: -1}, // out of range, but the wallet reports that
		{arg: "x", wantErr: true},
		{arg: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := parseIndex(tc.arg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseIndex(%q) = nil error, want failure", tc.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseIndex(%q) error = %v", tc.arg, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseIndex(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}
}
