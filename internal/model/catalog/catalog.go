// Package catalog holds the static marketing content served read-only to
// the frontend: portfolio case studies, testimonials and blog posts.
package catalog

import "time"

// PortfolioItem is one case study shown on the work page.
type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	Client      string    `json:"client"`
	Year        string    `json:"year"`
	Results     string    `json:"results"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Testimonial is one client quote.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Content   string    `json:"content"`
	Rating    string    `json:"rating"`
	ImageURL  string    `json:"imageUrl"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPost is one article; only published posts are listed.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"imageUrl"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	ReadTime  string    `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
}
