package models

import "time"

// Entry is a journal entry row. There is at most one entry per user per date.
// Images and AudioNotes hold object storage keys, stored as JSON arrays.
type Entry struct {
	ID         string
	UserID     string
	Date       string
	Content    string
	Mood       string
	Weather    string
	Images     []string
	AudioNotes []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
