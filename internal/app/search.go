package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Find tasks and notes containing text",
	Long: `Case-insensitive search over task titles, descriptions and tags and
over note titles and content.

Example:
  focussphere search report`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// searchOutput is the JSON form of search results.
type searchOutput struct {
	Query string       `json:"query"`
	Tasks []model.Task `json:"tasks"`
	Notes []model.Note `json:"notes"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	query := joinArgs(args)
	tasks, err := ws.db.ListTasks(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	notes, err := ws.db.ListNotes(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}

	res := searchOutput{Query: query, Tasks: []model.Task{}, Notes: []model.Note{}}
	for _, t := range tasks {
		if containsFold(query, t.Title, t.Description, t.Tags) {
			res.Tasks = append(res.Tasks, t)
		}
	}
	for _, n := range notes {
		if containsFold(query, n.Title, n.Content) {
			res.Notes = append(res.Notes, n)
		}
	}

	if flagJSON {
		return writeJSON(ws.out, res)
	}
	if len(res.Tasks) == 0 && len(res.Notes) == 0 {
		fmt.Fprintf(ws.out, "Nothing matches %q.\n", query)
		return nil
	}
	if len(res.Tasks) > 0 {
		fmt.Fprintln(ws.out, output.Section("Tasks"))
		for _, t := range res.Tasks {
			fmt.Fprintf(ws.out, " %-4d %s\n", t.ID, t.Title)
		}
	}
	if len(res.Notes) > 0 {
		fmt.Fprintln(ws.out, output.Section("Notes"))
		for _, n := range res.Notes {
			fmt.Fprintf(ws.out, " %-4d %s\n", n.ID, n.Title)
		}
	}
	return nil
}

// containsFold reports whether any field contains query, ignoring case.
func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
