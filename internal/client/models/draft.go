// Package models defines client-side data models used by the Daybook CLI.
package models

import (
	"encoding/json"
	"strings"
)

// Draft is the in-memory, not-yet-confirmed-saved representation of one
// journal entry being edited. Date identifies the persisted entry (one per
// user per calendar day) and never changes once editing starts.
type Draft struct {
	OwnerID    string   `json:"ownerId"`
	Date       string   `json:"date"`
	Content    string   `json:"content"`
	Mood       string   `json:"mood,omitempty"`
	Weather    string   `json:"weather,omitempty"`
	Images     []string `json:"images,omitempty"`
	AudioNotes []string `json:"audioNotes,omitempty"`
}

// Serialize renders the draft as canonical JSON. The same bytes are used for
// the local backup snapshot and for dirty comparison, so the encoding must be
// deterministic (it is: fixed field order, no maps).
func (d *Draft) Serialize() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DraftFromJSON restores a draft from a backup snapshot.
func DraftFromJSON(s string) (*Draft, error) {
	var d Draft
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Clone returns a deep copy so an in-flight save holds a stable payload while
// the user keeps editing.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Images = append([]string(nil), d.Images...)
	c.AudioNotes = append([]string(nil), d.AudioNotes...)
	return &c
}

// WordCount is a pure display helper over Content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
