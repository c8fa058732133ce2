package app

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var (
	expenseCategory string
	expenseDate     string
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"expenses"},
	Short:   "Record spending and check the monthly budget",
	Long: `Record expenses and compare total spending with the monthly budget.

Examples:
  focussphere expense add 12.50 Lunch --category Food
  focussphere expense add 40 Train tickets --date 2026-10-12
  focussphere expense list
  focussphere expense budget`,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <amount> <description...>",
	Short: "Record an expense",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runExpenseList,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

var expenseBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show spending against the monthly budget",
	Args:  cobra.NoArgs,
	RunE:  runExpenseBudget,
}

func init() {
	expenseAddCmd.Flags().StringVar(&expenseCategory, "category", model.DefaultCategory, "Expense category")
	expenseAddCmd.Flags().StringVar(&expenseDate, "date", "", "Date as YYYY-MM-DD (default: today)")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseRmCmd, expenseBudgetCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	date, err := dateFlag(expenseDate, ws.today())
	if err != nil {
		return err
	}
	e := model.Expense{
		Description: joinArgs(args[1:]),
		Amount:      amount.Round(2),
		Date:        calendar.FormatDate(date),
		Category:    expenseCategory,
	}
	if _, err := ws.db.AddExpense(ws.ctx, &e); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}
	if flagJSON {
		return writeJSON(ws.out, e)
	}
	fmt.Fprintf(ws.out, "Added expense %d: $%s %s (%s)\n", e.ID, e.Amount.StringFixed(2), e.Description, e.Category)
	return nil
}

func runExpenseList(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	expenses, err := ws.db.ListExpenses(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	if flagJSON {
		if expenses == nil {
			expenses = []model.Expense{}
		}
		return writeJSON(ws.out, expenses)
	}
	if len(expenses) == 0 {
		fmt.Fprintln(ws.out, "No expenses.")
		return nil
	}

	tbl := output.NewTable("ID", "Date", "Amount", "Category", "Description").AlignRight(0, 2)
	for _, e := range expenses {
		tbl.AddRow(fmt.Sprintf("%d", e.ID), e.Date, "$"+e.Amount.StringFixed(2), e.CategoryOrDefault(), e.Description)
	}
	tbl.Fprint(ws.out)
	return nil
}

func runExpenseRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.DeleteExpense(ws.ctx, id); err != nil {
		return notFound("expense", id, err)
	}
	fmt.Fprintf(ws.out, "Deleted expense %d\n", id)
	return nil
}

func runExpenseBudget(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	expenses, err := ws.db.ListExpenses(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	status := analytics.AnalyzeBudget(expenses, ws.engine.MonthlyBudget)
	if flagJSON {
		return writeJSON(ws.out, status)
	}

	out := ws.out
	fmt.Fprintln(out, output.Section("Budget"))
	fmt.Fprintln(out, output.KeyValue("Spent", "$"+status.Spent.StringFixed(2)))
	fmt.Fprintln(out, output.KeyValue("Monthly budget", "$"+status.Budget.StringFixed(2)))
	fmt.Fprintf(out, " %s %s\n",
		output.ProgressBar(status.Progress, 30, status.Level),
		output.LevelStyle(status.Level).Render(fmt.Sprintf("%.0f%% %s", status.Ratio*100, status.Level)))

	if len(status.Categories) > 0 {
		fmt.Fprintln(out, output.Section("By Category"))
		tbl := output.NewTable("Category", "Total", "Entries").AlignRight(1, 2)
		for _, c := range status.Categories {
			tbl.AddRow(c.Category, "$"+c.Total.StringFixed(2), fmt.Sprintf("%d", c.Count))
		}
		tbl.Fprint(out)
	}
	return nil
}
