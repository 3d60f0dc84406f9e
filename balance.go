package wallet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Role is the accounting role of a category label in the balance.
type Role int

const (
	// RoleIgnored categories take no part in the balance.
	RoleIgnored Role = iota
	// RoleIncome categories add to the income total.
	RoleIncome
	// RoleExpense categories add to the expense total.
	RoleExpense
)

func (r Role) String() string {
	switch r {
	case RoleIncome:
		return "income"
	case RoleExpense:
		return "expense"
	default:
		return "ignored"
	}
}

// Rules maps category labels to their accounting role. Matching is exact and
// case-insensitive: keys are stored lowercase, and a category that matches no
// rule is ignored entirely.
type Rules map[string]Role

// NewRules builds a Rules set from income and expense labels.
func NewRules(income, expense []string) Rules {
	rules := make(Rules, len(income)+len(expense))
	for _, label := range income {
		rules[strings.ToLower(label)] = RoleIncome
	}
	for _, label := range expense {
		rules[strings.ToLower(label)] = RoleExpense
	}
	return rules
}

// RoleOf returns the role of a category under these rules.
func (r Rules) RoleOf(category string) Role {
	return r[strings.ToLower(category)]
}

// Conventional labels, in English and in the Russian the original store files
// were written with.
var (
	DefaultIncomeLabels  = []string{"Income", "Доход"}
	DefaultExpenseLabels = []string{"Expense", "Расход"}
)

// DefaultRules recognizes the conventional labels.
func DefaultRules() Rules {
	return NewRules(DefaultIncomeLabels, DefaultExpenseLabels)
}

// Balance is the result of partitioning a wallet by category role.
//
// Net is Income minus Expense: the store convention is that expense amounts
// are recorded positive, so a wallet of 1000.0 income and 300.0 expense nets
// 700.0.
type Balance struct {
	Income  float64
	Expense float64
	Net     float64
}

// Balance sums the wallet's records under the given rules. Records whose
// category matches no rule are not counted in either total; this is not an
// error, the wallet is free-text by design.
//
// Sums are accumulated exactly on decimals and only converted back to a
// float64 at the end.
func (w *Wallet) Balance(rules Rules) Balance {
	var income, expense decimal.Decimal
	for _, r := range w.records {
		switch rules.RoleOf(r.Category) {
		case RoleIncome:
			income = income.Add(decimal.NewFromFloat(r.Amount))
		case RoleExpense:
			expense = expense.Add(decimal.NewFromFloat(r.Amount))
		}
	}
	return Balance{
		Income:  income.InexactFloat64(),
		Expense: expense.InexactFloat64(),
		Net:     income.Sub(expense).InexactFloat64(),
	}
}
