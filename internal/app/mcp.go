package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/focussphere/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing focussphere analytics",
	Long: `Start a Model Context Protocol stdio server so an assistant can query
your productivity data. The server exposes five tools:

  get_kpis             Headline KPIs for a 7, 30 or 90 day window
  get_series           Task completion, productivity and mood series
  get_weekly_activity  Activity score and level for the last seven days
  get_schedule         The laid-out schedule of one day
  get_task_stats       Task counters including overdue and high priority

Add to an MCP client configuration:
  {"mcpServers":{"focussphere":{"command":"focussphere","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	srv := mcp.NewServer(ws.engine, ws.db, ws.cfg.ScheduleOptions(), logger)
	return srv.Run(ws.ctx, cmd.InOrStdin(), ws.out)
}
