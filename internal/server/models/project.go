package models

import "time"

// ProcessStep is one stage of the delivery process shown on a case study.
type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Result is a headline outcome metric of a project.
type Result struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Testimonial is an optional client quote.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position,omitempty"`
	Image    string `json:"image,omitempty"`
}

// TeamMember credits a person who worked on a project.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image,omitempty"`
}

// Project is a portfolio case study addressed by its unique Slug.
type Project struct {
	ID             string        `json:"_id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Description    string        `json:"description"`
	Excerpt        string        `json:"excerpt"`
	CoverImage     string        `json:"coverImage"`
	Gallery        []string      `json:"gallery"`
	Client         string        `json:"client"`
	Technologies   []string      `json:"technologies"`
	Features       []string      `json:"features"`
	Process        []ProcessStep `json:"process"`
	Results        []Result      `json:"results"`
	Testimonial    *Testimonial  `json:"testimonial,omitempty"`
	Duration       string        `json:"duration"`
	Industry       string        `json:"industry"`
	Team           []TeamMember  `json:"team"`
	Challenge      string        `json:"challenge"`
	Solution       string        `json:"solution"`
	Implementation string        `json:"implementation"`
	Featured       bool          `json:"featured"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	RelatedProjects []*Project `json:"relatedProjects,omitempty"`
}
