// Package models defines the content documents persisted by the site.
// JSON tags follow the camelCase shape the dashboard and public pages use.
package models

import "time"

// Author is embedded in a BlogPost.
type Author struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// BlogPost is a blog article addressed by its unique Slug.
type BlogPost struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	CoverImage  string    `json:"coverImage"`
	Author      Author    `json:"author"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// RelatedPosts is computed at read time and never stored.
	RelatedPosts []*BlogPost `json:"relatedPosts,omitempty"`
}
