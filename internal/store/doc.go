// Package store provides SQLite persistence for tasks, habits, expenses,
// schedule events, notes, moods and settings.
package store
