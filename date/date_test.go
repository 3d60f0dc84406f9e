package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	testCases := []struct {
		text string
		want bool
	}{
		{"2023-01-01", true},
		{"2023-01-05", true},
		{"2023-12-31", true},
		{"2024-02-29", true},  // 2024 is a leap year
		{"2023-02-29", false}, // 2023 is not
		{"2000-02-29", true},  // century divisible by 400
		{"1900-02-29", false}, // century not divisible by 400
		{"01-01-2023", false}, // wrong ordering
		{"2023/01/01", false}, // wrong separator
		{"2023-1-1", false},   // unpadded month and day
		{"2023-13-01", false}, // no 13th month
		{"2023-04-31", false}, // April has 30 days
		{"2023-01-01 ", false},
		{"20230101", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValid(tc.text); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2023-07-14")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d.Year() != 2023 || d.Month() != time.July || d.Day() != 14 {
		t.Errorf("Parse() = %v, want 2023-07-14", d)
	}
	if got := d.String(); got != "2023-07-14" {
		t.Errorf("String() = %q, want %q", got, "2023-07-14")
	}

	if _, err := Parse("14-07-2023"); err == nil {
		t.Error("Parse() accepted a non ISO date")
	}
}

func TestAdd_NormalizesAcrossMonths(t *testing.T) {
	d := New(2023, time.January, 31).Add(1)
	if got := d.String(); got != "2023-02-01" {
		t.Errorf("Add(1) = %q, want %q", got, "2023-02-01")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2023, time.March, 9)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2023-03-09"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2023-03-09"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
