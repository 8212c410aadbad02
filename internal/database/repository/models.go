package repository

import "time"

// Page keys stored in posts.page.
const (
	PagePosts   = "posts"
	PageReplies = "replies"
	PageMedia   = "media"
	PageAbout   = "about"
)

// Profile represents a profiles row.
type Profile struct {
	ID          string
	Handle      string
	DisplayName string
	Bio         string
	Location    string
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// Post represents a posts row. Each post belongs to one page of a profile.
type Post struct {
	ID        string
	ProfileID string
	Page      string
	Position  int
	Author    string
	Body      string
	Likes     int
	PostedAt  time.Time
}

// ScrollState is the saved scroll position of a profile.
type ScrollState struct {
	ProfileID    string
	ActivePage   string
	HeaderOffset float64
	PageOffsets  map[string]float64
	UpdatedAt    time.Time
}
