package models

import "time"

// Stat is a headline number on the about page, e.g. {"150+", "Projects"}.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// About is the singleton document behind the about page.
type About struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Paragraphs []string  `json:"paragraphs"`
	Stats      []Stat    `json:"stats"`
	Mission    string    `json:"mission"`
	Vision     string    `json:"vision"`
	Values     []string  `json:"values"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DefaultAbout is stored on first read of an empty collection.
func DefaultAbout() *About {
	return &About{
		Title:    "About Us",
		Subtitle: "We build digital products that grow businesses.",
		Paragraphs: []string{
			"We are a full-service digital agency crafting websites, apps and brands.",
			"Our team blends strategy, design and engineering to deliver measurable results.",
		},
		Stats: []Stat{
			{Value: "150+", Label: "Projects Completed"},
			{Value: "50+", Label: "Happy Clients"},
			{Value: "10+", Label: "Years Experience"},
		},
		Mission: "Help ambitious teams launch products people love.",
		Vision:  "A web where every business has a first-class digital presence.",
		Values:  []string{"Quality", "Transparency", "Partnership"},
	}
}

// ContactInfo is the singleton document behind the contact page and footer.
type ContactInfo struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	WorkingHours string    `json:"workingHours"`
	MapURL       string    `json:"mapUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultContactInfo is stored on first read of an empty collection.
func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Email:        "hello@example.com",
		Phone:        "+1 (555) 000-0000",
		Address:      "123 Main Street, Suite 100",
		WorkingHours: "Mon - Fri: 9:00 AM - 6:00 PM",
	}
}
