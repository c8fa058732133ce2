package app

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/output"
	"github.com/blackwell-systems/focussphere/internal/state"
	"github.com/blackwell-systems/focussphere/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user settings",
	Long: `Show or change the settings kept in the database: display name, theme
and monthly budget. The stored budget takes precedence over budget.monthly
in the config file.

Examples:
  focussphere settings show
  focussphere settings name Ada
  focussphere settings theme toggle
  focussphere settings budget 1500`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsNameCmd = &cobra.Command{
	Use:   "name <name...>",
	Short: "Set the display name used in the greeting",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSettingsName,
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <dark|light|toggle>",
	Short:     "Switch between the dark and light palettes",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runSettingsTheme,
}

var settingsBudgetCmd = &cobra.Command{
	Use:   "budget <amount>",
	Short: "Set the monthly budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsBudget,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsNameCmd, settingsThemeCmd, settingsBudgetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsOutput is the JSON form of settings show.
type settingsOutput struct {
	UserName      string          `json:"user_name"`
	Theme         string          `json:"theme"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	DBPath        string          `json:"db_path"`
	AnalysisDays  int             `json:"analysis_days"`
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	out := settingsOutput{
		UserName:      ws.state.UserName,
		Theme:         ws.state.ThemeName(),
		MonthlyBudget: ws.engine.MonthlyBudget,
		DBPath:        ws.cfg.DBPath,
		AnalysisDays:  ws.cfg.AnalysisDays,
	}
	if flagJSON {
		return writeJSON(ws.out, out)
	}
	fmt.Fprintln(ws.out, output.Section("Settings"))
	fmt.Fprintln(ws.out, output.KeyValue("Name", out.UserName))
	fmt.Fprintln(ws.out, output.KeyValue("Theme", out.Theme))
	fmt.Fprintln(ws.out, output.KeyValue("Monthly budget", "$"+out.MonthlyBudget.StringFixed(2)))
	fmt.Fprintln(ws.out, output.KeyValue("Analysis window", fmt.Sprintf("%d days", out.AnalysisDays)))
	fmt.Fprintln(ws.out, output.KeyValue("Database", out.DBPath))
	return nil
}

func runSettingsName(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	next := ws.state.WithUserName(joinArgs(args))
	if err := state.Save(ws.ctx, ws.db, next); err != nil {
		return err
	}
	fmt.Fprintf(ws.out, "Name set to %s\n", next.UserName)
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	var next state.AppState
	switch strings.ToLower(args[0]) {
	case "dark":
		next = ws.state.WithDarkMode(true)
	case "light":
		next = ws.state.WithDarkMode(false)
	case "toggle":
		next = ws.state.ToggleTheme()
	default:
		return fmt.Errorf("invalid theme %q (want dark, light or toggle)", args[0])
	}
	if err := state.Save(ws.ctx, ws.db, next); err != nil {
		return err
	}
	output.SetTheme(next.DarkMode)
	fmt.Fprintf(ws.out, "Theme set to %s\n", next.ThemeName())
	return nil
}

func runSettingsBudget(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil || !amount.IsPositive() {
		return fmt.Errorf("invalid budget %q: must be a positive amount", args[0])
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.SetSetting(ws.ctx, store.SettingMonthlyBudget, amount.StringFixed(2)); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}
	fmt.Fprintf(ws.out, "Monthly budget set to $%s\n", amount.StringFixed(2))
	return nil
}
