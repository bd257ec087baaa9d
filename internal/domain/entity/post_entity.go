package entity

import "time"

// Post is a blog entry. OwnerID is fixed at creation and decides who may mutate it.
type Post struct {
	ID        int64     `json:"blog_id"`
	OwnerID   int64     `json:"owner_user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID created the post.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p != nil && p.OwnerID == userID
}

// PostPatch carries the fields of a partial update; nil means unchanged.
type PostPatch struct {
	Title   *string
	Content *string
}

// Empty reports whether the patch changes nothing.
func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil
}
