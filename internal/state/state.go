// Package state holds the user-facing application state: the current view,
// the theme and the user's display name. AppState is a value; transitions
// return a new value and persistence is explicit.
package state

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// View names a top-level screen.
type View string

const (
	ViewDashboard View = "Dashboard"
	ViewTasks     View = "Tasks"
	ViewNotes     View = "Notes"
	ViewHabits    View = "Habits"
	ViewExpenses  View = "Expenses"
	ViewSchedule  View = "Schedule"
	ViewAnalytics View = "Analytics"
)

// Views lists every screen in navigation order.
var Views = []View{ViewDashboard, ViewTasks, ViewNotes, ViewHabits, ViewExpenses, ViewSchedule, ViewAnalytics}

// DefaultUserName is shown until the user sets a name.
const DefaultUserName = "User"

// Setting keys, shared with the store's settings table.
const (
	keyUserName = "userName"
	keyDarkMode = "darkMode"
)

// AppState is the application state passed to renderers.
type AppState struct {
	View     View   `json:"view"`
	DarkMode bool   `json:"dark_mode"`
	UserName string `json:"user_name"`
}

// Default returns the state of a fresh install.
func Default() AppState {
	return AppState{View: ViewDashboard, DarkMode: true, UserName: DefaultUserName}
}

// WithView returns s showing v. Unknown views are rejected.
func (s AppState) WithView(v View) (AppState, error) {
	for _, known := range Views {
		if strings.EqualFold(string(v), string(known)) {
			s.View = known
			return s, nil
		}
	}
	return s, fmt.Errorf("unknown view %q", v)
}

// WithDarkMode returns s with the theme set.
func (s AppState) WithDarkMode(dark bool) AppState {
	s.DarkMode = dark
	return s
}

// ToggleTheme returns s with the theme flipped.
func (s AppState) ToggleTheme() AppState {
	return s.WithDarkMode(!s.DarkMode)
}

// WithUserName returns s with a new display name. Blank names are ignored.
func (s AppState) WithUserName(name string) AppState {
	if name = strings.TrimSpace(name); name != "" {
		s.UserName = name
	}
	return s
}

// ThemeName returns "dark" or "light".
func (s AppState) ThemeName() string {
	if s.DarkMode {
		return "dark"
	}
	return "light"
}

// Greeting returns the header greeting for the time of day.
func (s AppState) Greeting(now time.Time) string {
	period := "Good Evening"
	switch h := now.Hour(); {
	case h < 12:
		period = "Good Morning"
	case h < 17:
		period = "Good Afternoon"
	}
	return fmt.Sprintf("%s, %s!", period, s.UserName)
}

// SettingsStore is the key/value persistence AppState is saved to.
type SettingsStore interface {
	GetSetting(ctx context.Context, key, def string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Load reads the persisted state. Missing or unreadable values keep their
// defaults; only store errors are returned.
func Load(ctx context.Context, st SettingsStore) (AppState, error) {
	s := Default()

	name, err := st.GetSetting(ctx, keyUserName, "")
	if err != nil {
		return s, fmt.Errorf("loading user name: %w", err)
	}
	s = s.WithUserName(name)

	dark, err := st.GetSetting(ctx, keyDarkMode, "")
	if err != nil {
		return s, fmt.Errorf("loading theme: %w", err)
	}
	if b, err := strconv.ParseBool(dark); err == nil {
		s.DarkMode = b
	}
	return s, nil
}

// Save persists the user name and theme. The view is not persisted.
func Save(ctx context.Context, st SettingsStore, s AppState) error {
	if err := st.SetSetting(ctx, keyUserName, s.UserName); err != nil {
		return fmt.Errorf("saving user name: %w", err)
	}
	if err := st.SetSetting(ctx, keyDarkMode, strconv.FormatBool(s.DarkMode)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
