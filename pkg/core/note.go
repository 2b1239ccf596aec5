package core

import "time"

// Note is the central entity of the domain.
// It represents a user-authored piece of text identified by an ID,
// agnostic to the storage backend.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	AIEnhanced bool      `json:"aiEnhanced"`
}
