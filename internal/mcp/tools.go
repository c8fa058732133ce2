package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/blackwell-systems/focussphere/internal/analytics"
	"github.com/blackwell-systems/focussphere/internal/calendar"
	"github.com/blackwell-systems/focussphere/internal/model"
	"github.com/blackwell-systems/focussphere/internal/schedule"
)

// EventLister reads the schedule events of one date.
type EventLister interface {
	ListEventsForDate(ctx context.Context, date time.Time) ([]model.ScheduleEvent, error)
}

// KPIsResult holds the headline figures for one window.
type KPIsResult struct {
	Window analytics.Window `json:"window"`
	KPIs   analytics.KPIs   `json:"kpis"`
	Issues []string         `json:"issues,omitempty"`
}

// SeriesResult holds the daily time series for one window.
type SeriesResult struct {
	Window analytics.Window `json:"window"`
	Series analytics.Series `json:"series"`
}

// WeeklyActivityResult holds the last seven days of activity scores.
type WeeklyActivityResult struct {
	Days []analytics.DayActivity `json:"days"`
}

var (
	noArgsSchema = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	daysSchema   = json.RawMessage(`{"type":"object","properties":{"days":{"type":"integer","description":"Window length in days: 7, 30 or 90 (default 7)"}},"additionalProperties":false}`)
	dateSchema   = json.RawMessage(`{"type":"object","properties":{"date":{"type":"string","description":"Calendar date YYYY-MM-DD (default today)"}},"additionalProperties":false}`)
)

// addTools registers the analytics tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "get_kpis",
		Description: "Completed tasks, best habit streak, spend and scheduled focus hours for a window of days.",
		InputSchema: daysSchema,
		Handler:     s.handleGetKPIs,
	})
	s.registerTool(toolDef{
		Name:        "get_series",
		Description: "Daily task-completion, productivity and mood series for a window of days.",
		InputSchema: daysSchema,
		Handler:     s.handleGetSeries,
	})
	s.registerTool(toolDef{
		Name:        "get_weekly_activity",
		Description: "Activity score and level for each of the last seven days.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetWeeklyActivity,
	})
	s.registerTool(toolDef{
		Name:        "get_schedule",
		Description: "Positioned time blocks for one day's schedule.",
		InputSchema: dateSchema,
		Handler:     s.handleGetSchedule,
	})
	s.registerTool(toolDef{
		Name:        "get_task_stats",
		Description: "Task totals: completed, pending, high-priority, overdue and percent done.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetTaskStats,
	})
}

// parseDays reads the optional "days" argument. Missing or zero means the
// default window; anything else must be one of analytics.WindowChoices.
func parseDays(args json.RawMessage) (int, error) {
	var params struct {
		Days int `json:"days"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &params); err != nil {
			return 0, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if params.Days != 0 && !slices.Contains(analytics.WindowChoices, params.Days) {
		return 0, fmt.Errorf("days must be one of %v, got %d", analytics.WindowChoices, params.Days)
	}
	return params.Days, nil
}

func (s *Server) refresh(ctx context.Context, args json.RawMessage) (*analytics.Report, error) {
	days, err := parseDays(args)
	if err != nil {
		return nil, err
	}
	return s.engine.Refresh(ctx, days)
}

func (s *Server) handleGetKPIs(ctx context.Context, args json.RawMessage) (any, error) {
	report, err := s.refresh(ctx, args)
	if err != nil {
		return nil, err
	}
	return KPIsResult{Window: report.Window, KPIs: report.KPIs, Issues: report.Issues}, nil
}

func (s *Server) handleGetSeries(ctx context.Context, args json.RawMessage) (any, error) {
	report, err := s.refresh(ctx, args)
	if err != nil {
		return nil, err
	}
	return SeriesResult{Window: report.Window, Series: report.Series}, nil
}

func (s *Server) handleGetWeeklyActivity(ctx context.Context, _ json.RawMessage) (any, error) {
	report, err := s.engine.Refresh(ctx, analytics.DefaultWindowDays)
	if err != nil {
		return nil, err
	}
	return WeeklyActivityResult{Days: report.Weekly}, nil
}

func (s *Server) handleGetTaskStats(ctx context.Context, _ json.RawMessage) (any, error) {
	report, err := s.engine.Refresh(ctx, analytics.DefaultWindowDays)
	if err != nil {
		return nil, err
	}
	return report.Tasks, nil
}

// handleGetSchedule lays out one day. The now marker is only present when
// the requested date is today.
func (s *Server) handleGetSchedule(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Date string `json:"date"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &params); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}

	now := s.engine.Now()
	day := calendar.DateOf(now)
	if params.Date != "" {
		d, err := calendar.ParseDate(params.Date)
		if err != nil {
			return nil, err
		}
		day = d
	}

	events, err := s.events.ListEventsForDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	result := schedule.BuildDay(day, events, now, s.layout)
	result.Hours = nil
	return result, nil
}
