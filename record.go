package wallet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is a single transaction entry of the wallet.
//
// The date is kept as a plain string on purpose: validity is the business of
// date.IsValid and of the caller entering the record, not of the store. A
// record loaded from an old file with a sloppy date must still load, render
// and match in searches.
//
// Records are value objects: editing a wallet entry replaces the whole record
// at its index, fields are never mutated in place.
type Record struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// String renders the record in its canonical one-line form:
//
//	2023-01-01 - Income - 1000.0 - Salary
func (r Record) String() string {
	return fmt.Sprintf("%s - %s - %s - %s", r.Date, r.Category, r.AmountText(), r.Description)
}

// AmountText returns the textual form of the amount. An integral amount keeps
// a trailing ".0" (1000.0, not 1000) so that rendering and search matching
// treat amounts the same way users type them. Plain decimal form is used for
// every magnitude a wallet realistically holds; only beyond 1e16 (or under
// 1e-4) does the text switch to exponent notation.
func (r Record) AmountText() string { return amountText(r.Amount) }

func amountText(v float64) string {
	abs := math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) || (abs != 0 && (abs >= 1e16 || abs < 1e-4)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// FormatFloat drops the fractional part of integral values.
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
