// Package model defines the productivity records kept by the store and read
// by the analytics engine. Dates and clock times stay in their stored string
// form; parsing happens where they are consumed so that one malformed field
// never prevents the rest of a record from loading.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Priority is a task priority.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority maps free text to a Priority. Unknown or blank values fall
// back to PriorityMedium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Recurrence tags accepted for tasks. Stored values outside this set are kept
// as-is.
const (
	RecurDaily   = "Daily"
	RecurWeekly  = "Weekly"
	RecurMonthly = "Monthly"
)

// Task is a to-do item.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	Tags        string   `json:"tags,omitempty"`
	Recurring   string   `json:"recurring,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// TagList splits the comma-joined tag string, dropping blanks.
func (t Task) TagList() []string {
	var tags []string
	for _, tag := range strings.Split(t.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Habit is a daily habit and the set of dates it was completed on.
type Habit struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	CompletedDays string `json:"completed_days"`
	CreatedAt     string `json:"created_at"`
}

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "General"

// Expense is a single spending entry.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
}

// CategoryOrDefault returns the category, or DefaultCategory when blank.
func (e Expense) CategoryOrDefault() string {
	if c := strings.TrimSpace(e.Category); c != "" {
		return c
	}
	return DefaultCategory
}

// DefaultEventColor is the color tag given to events created without one.
const DefaultEventColor = "#6366f1"

// ScheduleEvent is a time block on a given day.
type ScheduleEvent struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
	Date      string `json:"date"`
}

// Note is a free-form text note.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// WordCount returns the number of whitespace-separated words in the content.
func (n Note) WordCount() int {
	return len(strings.Fields(n.Content))
}

// MoodLog is a single mood entry.
type MoodLog struct {
	ID       int64  `json:"id"`
	Mood     string `json:"mood"`
	LoggedAt string `json:"logged_at"`
}
