package wallet

import (
	"encoding/json"
	"testing"
)

func TestRecord_String(t *testing.T) {
	testCases := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "integral amount keeps its decimal point",
			record: Record{"2023-01-01", "Income", 1000.0, "Salary"},
			want:   "2023-01-01 - Income - 1000.0 - Salary",
		},
		{
			name:   "fractional amount",
			record: Record{"2023-01-02", "Expense", 3.5, "Coffee"},
			want:   "2023-01-02 - Expense - 3.5 - Coffee",
		},
		{
			name:   "negative amount",
			record: Record{"2023-01-03", "Expense", -50.0, "Refund reversal"},
			want:   "2023-01-03 - Expense - -50.0 - Refund reversal",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAmountText(t *testing.T) {
	testCases := []struct {
		amount float64
		want   string
	}{
		{1000.0, "1000.0"},
		{0.0, "0.0"},
		{-50.0, "-50.0"},
		{0.5, "0.5"},
		{1234.56, "1234.56"},
		{1000000.0, "1000000.0"},
		{1500000.5, "1500000.5"},
		{-2500000.0, "-2500000.0"},
		{0.0001, "0.0001"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
	}
	for _, tc := range testCases {
		if got := amountText(tc.amount); got != tc.want {
			t.Errorf("amountText(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRecord_JSONKeyOrder(t *testing.T) {
	r := Record{"2023-01-01", "Income", 1000.0, "Salary"}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"date":"2023-01-01","category":"Income","amount":1000,"description":"Salary"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	records := []Record{
		{"2023-01-01", "Income", 1000.0, "Salary"},
		{"2023-02-01", "Расход", -50.25, "Кофе"},
		{"2023-03-01", "misc", 0.0, ""},
	}
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", r, err)
		}
		var back Record
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if back != r {
			t.Errorf("round trip = %+v, want %+v", back, r)
		}
	}
}
