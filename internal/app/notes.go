package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
)

var (
	noteContent string
	noteTitle   string
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes"},
	Short:   "Keep short notes",
	Long: `Write, edit and remove free-form notes. Notes are listed most recently
edited first.

Examples:
  focussphere note add Ideas --content "try time blocking on Fridays"
  focussphere note edit 2 --content "updated text"
  focussphere note list`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title or content",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteRm,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteContent, "content", "", "Note body")
	noteEditCmd.Flags().StringVar(&noteTitle, "title", "", "New title")
	noteEditCmd.Flags().StringVar(&noteContent, "content", "", "New body")

	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteEditCmd, noteRmCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	n := model.Note{Title: joinArgs(args), Content: noteContent}
	if _, err := ws.db.AddNote(ws.ctx, &n); err != nil {
		return fmt.Errorf("adding note: %w", err)
	}
	if flagJSON {
		return writeJSON(ws.out, n)
	}
	fmt.Fprintf(ws.out, "Added note %d: %s\n", n.ID, n.Title)
	return nil
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	notes, err := ws.db.ListNotes(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}
	if flagJSON {
		if notes == nil {
			notes = []model.Note{}
		}
		return writeJSON(ws.out, notes)
	}
	if len(notes) == 0 {
		fmt.Fprintln(ws.out, "No notes.")
		return nil
	}

	tbl := output.NewTable("ID", "Title", "Words", "Updated", "Preview")
	for _, n := range notes {
		tbl.AddRow(fmt.Sprintf("%d", n.ID), n.Title, fmt.Sprintf("%d", n.WordCount()), n.UpdatedAt, preview(n.Content, 40))
	}
	tbl.Fprint(ws.out)
	return nil
}

// preview returns the first line of s cut to at most n runes.
func preview(s string, n int) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	titleSet := cmd.Flags().Changed("title")
	contentSet := cmd.Flags().Changed("content")
	if !titleSet && !contentSet {
		return fmt.Errorf("nothing to change: pass --title or --content")
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	n, err := ws.db.GetNote(ws.ctx, id)
	if err != nil {
		return notFound("note", id, err)
	}
	if titleSet {
		if strings.TrimSpace(noteTitle) == "" {
			return fmt.Errorf("title must not be blank")
		}
		n.Title = strings.TrimSpace(noteTitle)
	}
	if contentSet {
		n.Content = noteContent
	}
	if err := ws.db.UpdateNote(ws.ctx, &n); err != nil {
		return notFound("note", id, err)
	}
	fmt.Fprintf(ws.out, "Updated note %d\n", id)
	return nil
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.DeleteNote(ws.ctx, id); err != nil {
		return notFound("note", id, err)
	}
	fmt.Fprintf(ws.out, "Deleted note %d\n", id)
	return nil
}
