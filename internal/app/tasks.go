package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/output"
	"github.com/blackwell-systems/focussphere/internal/store"
)

var (
	taskDesc     string
	taskDue      string
	taskPriority string
	taskTags     string
	taskRecur    string
	taskPending  bool
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "Manage tasks",
	Long: `Add, list, complete and remove tasks.

Examples:
  focussphere task add Write report --due 2026-10-20 --priority high --tags work,q4
  focussphere task list --pending
  focussphere task done 3
  focussphere task clear`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, pending first",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTaskCompleted(cmd, args[0], true)
	},
}

var taskUndoCmd = &cobra.Command{
	Use:   "undo <id>",
	Short: "Mark a task pending again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTaskCompleted(cmd, args[0], false)
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

var taskClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every completed task",
	Args:  cobra.NoArgs,
	RunE:  runTaskClear,
}

func init() {
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Longer description")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date as YYYY-MM-DD")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "medium", "Priority: low, medium or high")
	taskAddCmd.Flags().StringVar(&taskTags, "tags", "", "Comma-separated tags")
	taskAddCmd.Flags().StringVar(&taskRecur, "recur", "", "Recurrence: daily, weekly or monthly")
	taskListCmd.Flags().BoolVar(&taskPending, "pending", false, "Only show pending tasks")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskUndoCmd, taskRmCmd, taskClearCmd)
	rootCmd.AddCommand(taskCmd)
}

// parseRecurrence accepts the recurrence tags case-insensitively.
func parseRecurrence(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "daily":
		return model.RecurDaily, nil
	case "weekly":
		return model.RecurWeekly, nil
	case "monthly":
		return model.RecurMonthly, nil
	}
	return "", fmt.Errorf("invalid recurrence %q (want daily, weekly or monthly)", s)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	if taskDue != "" {
		if _, err := calendar.ParseDate(taskDue); err != nil {
			return err
		}
	}
	recur, err := parseRecurrence(taskRecur)
	if err != nil {
		return err
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	task := model.Task{
		Title:       joinArgs(args),
		Description: taskDesc,
		DueDate:     taskDue,
		Priority:    model.ParsePriority(taskPriority),
		Tags:        store.NormalizeTags([]string{taskTags}),
		Recurring:   recur,
	}
	if _, err := ws.db.AddTask(ws.ctx, &task); err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	if flagJSON {
		return writeJSON(ws.out, task)
	}
	fmt.Fprintf(ws.out, "Added task %d: %s\n", task.ID, task.Title)
	return nil
}

func runTaskList(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	tasks, err := ws.db.ListTasks(ws.ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if taskPending {
		pending := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				pending = append(pending, t)
			}
		}
		tasks = pending
	}

	if flagJSON {
		if tasks == nil {
			tasks = []model.Task{}
		}
		return writeJSON(ws.out, tasks)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(ws.out, "No tasks.")
		return nil
	}

	today := ws.today()
	tbl := output.NewTable("ID", "", "Title", "Priority", "Due", "Tags")
	for _, t := range tasks {
		check := "[ ]"
		if t.Completed {
			check = output.StyleSuccess.Render("[x]")
		}
		due := t.DueDate
		if analytics.IsOverdue(t, today) {
			due = output.StyleError.Render(due + " overdue")
		}
		tbl.AddRow(fmt.Sprintf("%d", t.ID), check, t.Title, priorityLabel(t.Priority), due, strings.Join(t.TagList(), ", "))
	}
	tbl.Fprint(ws.out)
	return nil
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return output.StyleError.Render(string(p))
	case model.PriorityLow:
		return output.StyleMuted.Render(string(p))
	default:
		return string(p)
	}
}

func setTaskCompleted(cmd *cobra.Command, arg string, completed bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.SetTaskCompleted(ws.ctx, id, completed); err != nil {
		return notFound("task", id, err)
	}
	if completed {
		fmt.Fprintf(ws.out, "Completed task %d\n", id)
	} else {
		fmt.Fprintf(ws.out, "Reopened task %d\n", id)
	}
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	if err := ws.db.DeleteTask(ws.ctx, id); err != nil {
		return notFound("task", id, err)
	}
	fmt.Fprintf(ws.out, "Deleted task %d\n", id)
	return nil
}

func runTaskClear(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	n, err := ws.db.ClearCompletedTasks(ws.ctx)
	if err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	fmt.Fprintf(ws.out, "Cleared %d completed tasks\n", n)
	return nil
}
