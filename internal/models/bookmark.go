package models

import "time"

type Bookmark struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookmarkInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link"`
}

// BookmarkPatch carries a partial bookmark update. Nil fields are left untouched.
type BookmarkPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

func (p BookmarkPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}
