package models

import "time"

// Entry is the server-persisted journal entry as seen by the client.
type Entry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Content    string    `json:"content"`
	Mood       string    `json:"mood,omitempty"`
	Weather    string    `json:"weather,omitempty"`
	Images     []string  `json:"images,omitempty"`
	AudioNotes []string  `json:"audioNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
