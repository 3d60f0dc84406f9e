package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncodeRecords_Format(t *testing.T) {
	records := []Record{
		{"2023-01-01", "Доход", 1000.0, "Зарплата"},
		{"2023-01-02", "Expense", 3.5, "Tea & cake"},
	}
	var b bytes.Buffer
	if err := EncodeRecords(&b, records); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	got := b.String()

	want := `[
    {
        "date": "2023-01-01",
        "category": "Доход",
        "amount": 1000,
        "description": "Зарплата"
    },
    {
        "date": "2023-01-02",
        "category": "Expense",
        "amount": 3.5,
        "description": "Tea & cake"
    }
]
`
	if got != want {
		t.Errorf("EncodeRecords() = %q, want %q", got, want)
	}
	if strings.Contains(got, `\u`) {
		t.Errorf("EncodeRecords() escaped non-ASCII text: %q", got)
	}
}

func TestEncodeRecords_Empty(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeRecords(&b, nil); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	if got := strings.TrimSpace(b.String()); got != "[]" {
		t.Errorf("EncodeRecords(nil) = %q, want %q", got, "[]")
	}
}

func TestDecodeRecords(t *testing.T) {
	testCases := []struct {
		name    string
		store   string
		want    int
		wantErr bool
	}{
		{name: "empty stream", store: "", want: 0},
		{name: "blank stream", store: "  \n", want: 0},
		{name: "empty array", store: "[]", want: 0},
		{
			name:  "two records",
			store: `[{"date":"2023-01-01","category":"Income","amount":1000.0,"description":"Salary"},{"date":"2023-01-02","category":"Expense","amount":-50.0,"description":"Refund"}]`,
			want:  2,
		},
		{
			name:    "missing property",
			store:   `[{"date":"2023-01-01","category":"Income","description":"Salary"}]`,
			wantErr: true,
		},
		{
			name:    "wrong property type",
			store:   `[{"date":"2023-01-01","category":"Income","amount":"a lot","description":"Salary"}]`,
			wantErr: true,
		},
		{
			name:    "element is not an object",
			store:   `[42]`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := DecodeRecords(strings.NewReader(tc.store))
			if tc.wantErr {
				if err == nil {
					t.Fatal("DecodeRecords() = nil error, want failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRecords() error = %v", err)
			}
			if len(records) != tc.want {
				t.Errorf("DecodeRecords() returned %d records, want %d", len(records), tc.want)
			}
		})
	}
}

func TestDecodeRecords_SyntaxErrorIsRecognizable(t *testing.T) {
	_, err := DecodeRecords(strings.NewReader("{not json"))
	var syntax *json.SyntaxError
	if !errors.As(err, &syntax) {
		t.Errorf("DecodeRecords() error = %v, want a *json.SyntaxError", err)
	}
}

func TestDecodeRecords_RoundTrip(t *testing.T) {
	records := []Record{
		{"2023-01-01", "Income", 1000.0, "Salary"},
		{"2023-01-02", "Expense", -50.25, "Кофе"},
	}
	var b bytes.Buffer
	if err := EncodeRecords(&b, records); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	back, err := DecodeRecords(&b)
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("round trip lost records: %d, want %d", len(back), len(records))
	}
	for i := range records {
		if back[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, back[i], records[i])
		}
	}
}
