package domain

import "time"

// DefaultPostImage is used when a post is created with neither an upload nor
// an image URL.
const DefaultPostImage = "https://img.freepik.com/free-photo/technology-communication-icons-symbols-concept_53876-120314.jpg"

// Post is a blog entry authored by an admin user. CreatedAt and Slug are set
// once at creation and never change on edit.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ImageFile string    `json:"image_file"`
	Slug      string    `json:"slug"`
	AuthorID  string    `json:"author_id"`
}
