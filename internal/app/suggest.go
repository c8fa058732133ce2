package app

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/output"
	"github.com/blackwell-systems/focussphere/internal/suggest"
)

var (
	suggestLimit    int
	suggestCategory string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate ranked recommendations from your data",
	Long: `Refresh analytics and turn the result into actionable, ranked
recommendations: overdue tasks, budget pressure, streaks about to break,
quiet weeks and more. Suggestions are scored by impact and sorted from
highest to lowest.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum number of suggestions to show")
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category (tasks, budget, habits, activity, schedule, mood, data)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	report, err := ws.engine.Refresh(ws.ctx, analytics.DefaultWindowDays)
	if err != nil {
		return err
	}

	suggestions := suggest.NewEngine().Run(&suggest.AnalysisContext{
		Report: report,
		Now:    ws.engine.Now(),
	})

	if suggestCategory != "" {
		suggestions = filterByCategory(suggestions, suggestCategory)
	}
	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	if flagJSON {
		if suggestions == nil {
			suggestions = []suggest.Suggestion{}
		}
		return writeJSON(ws.out, suggestions)
	}
	renderSuggestions(ws.out, suggestions)
	return nil
}

// filterByCategory keeps suggestions whose category matches, ignoring case.
func filterByCategory(suggestions []suggest.Suggestion, category string) []suggest.Suggestion {
	return slices.DeleteFunc(slices.Clone(suggestions), func(s suggest.Suggestion) bool {
		return !strings.EqualFold(s.Category, category)
	})
}

var priorityBadges = map[int]string{
	suggest.PriorityCritical: "critical",
	suggest.PriorityHigh:     "high",
	suggest.PriorityMedium:   "medium",
	suggest.PriorityLow:      "low",
}

// priorityBadge renders a suggestion priority as a colored tag.
func priorityBadge(priority int) string {
	name, ok := priorityBadges[priority]
	if !ok {
		name = "unknown"
	}
	tag := "[" + strings.ToUpper(name) + "]"
	switch priority {
	case suggest.PriorityCritical, suggest.PriorityHigh:
		return output.StyleError.Render(tag)
	case suggest.PriorityMedium:
		return output.StyleWarning.Render(tag)
	default:
		return output.StyleMuted.Render(tag)
	}
}

func renderSuggestions(out io.Writer, suggestions []suggest.Suggestion) {
	fmt.Fprintln(out, output.Section("Suggestions"))
	if len(suggestions) == 0 {
		fmt.Fprintln(out, " Nothing needs attention right now.")
		return
	}
	for i, s := range suggestions {
		fmt.Fprintf(out, "\n %2d. %s %s\n", i+1, priorityBadge(s.Priority), output.StyleBold.Render(s.Title))
		fmt.Fprintf(out, "     %s\n", s.Description)
		fmt.Fprintln(out, output.StyleMuted.Render(fmt.Sprintf("     %s, impact %.1f", s.Category, s.ImpactScore)))
	}
}
