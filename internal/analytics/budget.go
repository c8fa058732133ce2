package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// DefaultMonthlyBudget applies when no budget has been configured.
var DefaultMonthlyBudget = decimal.NewFromInt(1000)

// AnalyzeBudget compares the total of all expenses with the monthly budget
// and breaks spending down by category, largest first.
func AnalyzeBudget(expenses []model.Expense, monthly decimal.Decimal) BudgetStatus {
	status := BudgetStatus{
		Spent:  decimal.Zero,
		Budget: monthly,
	}

	byCategory := make(map[string]*CategoryTotal)
	for _, e := range expenses {
		amount := nonNegative(e.Amount)
		status.Spent = status.Spent.Add(amount)

		name := e.CategoryOrDefault()
		ct, ok := byCategory[name]
		if !ok {
			ct = &CategoryTotal{Category: name, Total: decimal.Zero}
			byCategory[name] = ct
		}
		ct.Total = ct.Total.Add(amount)
		ct.Count++
	}

	for _, ct := range byCategory {
		status.Categories = append(status.Categories, *ct)
	}
	sort.Slice(status.Categories, func(i, j int) bool {
		a, b := status.Categories[i], status.Categories[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	if monthly.IsPositive() {
		status.Ratio = status.Spent.Div(monthly).InexactFloat64()
	}
	status.Progress = min(status.Ratio, 1.0)

	switch {
	case status.Ratio < 0.5:
		status.Level = BudgetOK
	case status.Ratio < 0.8:
		status.Level = BudgetWarning
	default:
		status.Level = BudgetOver
	}

	return status
}
