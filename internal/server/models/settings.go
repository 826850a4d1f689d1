package models

import "time"

// Settings is the per-user appearance settings row. Empty string means
// "not set", the client falls back to its defaults.
type Settings struct {
	UserID          string
	Theme           string
	PrimaryColor    string
	AccentColor     string
	BackgroundColor string
	FontFamily      string
	FontSize        string
	BackgroundType  string
	BackgroundValue string
	BackgroundBlur  int
	UpdatedAt       time.Time
}
