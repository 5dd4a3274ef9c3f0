package workflow

import (
	"biztrack/models"
	"biztrack/utils"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Summary aggregates transactions into sales, expense and net totals
// in both currencies. Secondary totals are display values (2 dp).
type Summary struct {
	TotalSalesPrimary      decimal.Decimal `json:"totalSalesPrimary"`
	TotalExpensesPrimary   decimal.Decimal `json:"totalExpensesPrimary"`
	NetPrimary             decimal.Decimal `json:"netPrimary"`
	TotalSalesSecondary    decimal.Decimal `json:"totalSalesSecondary"`
	TotalExpensesSecondary decimal.Decimal `json:"totalExpensesSecondary"`
	NetSecondary           decimal.Decimal `json:"netSecondary"`
}

// Summarize totals the transactions in the optional date range.
// An empty store yields all-zero totals.
func Summarize(db *gorm.DB, converter *utils.CurrencyConverter, from, to *time.Time) (*Summary, error) {
	transactions, err := ListTransactions(db, TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	totalExpenses := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Category == models.TransactionCategorySale {
			totalSales = totalSales.Add(transaction.AmountPrimary)
		} else {
			totalExpenses = totalExpenses.Add(transaction.AmountPrimary)
		}
	}
	net := totalSales.Sub(totalExpenses)

	salesSecondary, err := converter.ToSecondary(totalSales)
	if err != nil {
		return nil, err
	}
	expensesSecondary, err := converter.ToSecondary(totalExpenses)
	if err != nil {
		return nil, err
	}
	// Net can be negative, so it is derived by subtraction rather than
	// through the converter.
	netSecondary := salesSecondary.Sub(expensesSecondary)

	return &Summary{
		TotalSalesPrimary:      totalSales,
		TotalExpensesPrimary:   totalExpenses,
		NetPrimary:             net,
		TotalSalesSecondary:    salesSecondary.Round(2),
		TotalExpensesSecondary: expensesSecondary.Round(2),
		NetSecondary:           netSecondary.Round(2),
	}, nil
}

// MonthlySummary totals one calendar month
func MonthlySummary(db *gorm.DB, converter *utils.CurrencyConverter, year int, month time.Month) (*Summary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return Summarize(db, converter, &from, &to)
}
