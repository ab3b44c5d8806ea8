package domain

import "time"

type User struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	PreferredTopics []string  `json:"preferredTopics"`
	CreatedAt       time.Time `json:"createdAt"`
}
