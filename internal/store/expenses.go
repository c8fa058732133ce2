package store

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/focussphere/internal/model"
)

// AddExpense inserts an expense. A blank category is stored as General.
func (db *DB) AddExpense(ctx context.Context, e *model.Expense) (int64, error) {
	e.Category = e.CategoryOrDefault()
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO expenses (description, amount, date, category) VALUES (?, ?, ?, ?)",
		e.Description, e.Amount.InexactFloat64(), e.Date, e.Category,
	)
	if err != nil {
		return 0, err
	}
	e.ID, err = res.LastInsertId()
	return e.ID, err
}

// ListExpenses returns every expense, most recent date first.
func (db *DB) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, description, amount, date, category FROM expenses ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var amount float64
		var date, category sql.NullString
		if err := rows.Scan(&e.ID, &e.Description, &amount, &date, &category); err != nil {
			return nil, err
		}
		e.Amount = decimal.NewFromFloat(amount)
		e.Date = date.String
		e.Category = category.String
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpense removes an expense.
func (db *DB) DeleteExpense(ctx context.Context, id int64) error {
	return affectedOne(db.conn.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id))
}
