package models

import "time"

type User struct {
	ID           string
	UserName     string
	PasswordHash string
	PartnerID    *string
	CreatedAt    time.Time
}
