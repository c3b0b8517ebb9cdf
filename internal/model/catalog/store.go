package catalog

// Store exposes catalog retrieval for HTTP handlers.
type Store interface {
	Portfolio(featuredOnly bool) []PortfolioItem
	PortfolioItemByID(id string) (PortfolioItem, bool)
	Testimonials(featuredOnly bool) []Testimonial
	BlogPosts(category string) []BlogPost
	BlogPostBySlug(slug string) (BlogPost, bool)
}

// MemoryStore implements Store over in-memory slices; the catalog is static
// content seeded at startup.
type MemoryStore struct {
	portfolio    []PortfolioItem
	testimonials []Testimonial
	posts        []BlogPost
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied content.
func NewMemoryStore(portfolio []PortfolioItem, testimonials []Testimonial, posts []BlogPost) *MemoryStore {
	return &MemoryStore{
		portfolio:    append([]PortfolioItem(nil), portfolio...),
		testimonials: append([]Testimonial(nil), testimonials...),
		posts:        append([]BlogPost(nil), posts...),
	}
}

// Portfolio lists case studies, optionally only featured ones.
func (s *MemoryStore) Portfolio(featuredOnly bool) []PortfolioItem {
	if !featuredOnly {
		return append([]PortfolioItem(nil), s.portfolio...)
	}
	items := make([]PortfolioItem, 0, len(s.portfolio))
	for _, item := range s.portfolio {
		if item.Featured {
			items = append(items, item)
		}
	}
	return items
}

// PortfolioItemByID looks up a case study by identifier.
func (s *MemoryStore) PortfolioItemByID(id string) (PortfolioItem, bool) {
	for _, item := range s.portfolio {
		if item.ID == id {
			return item, true
		}
	}
	return PortfolioItem{}, false
}

// Testimonials lists client quotes, optionally only featured ones.
func (s *MemoryStore) Testimonials(featuredOnly bool) []Testimonial {
	if !featuredOnly {
		return append([]Testimonial(nil), s.testimonials...)
	}
	items := make([]Testimonial, 0, len(s.testimonials))
	for _, item := range s.testimonials {
		if item.Featured {
			items = append(items, item)
		}
	}
	return items
}

// BlogPosts lists published posts, optionally filtered by category.
func (s *MemoryStore) BlogPosts(category string) []BlogPost {
	posts := make([]BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		if !post.Published {
			continue
		}
		if category != "" && post.Category != category {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// BlogPostBySlug looks up a post by slug.
func (s *MemoryStore) BlogPostBySlug(slug string) (BlogPost, bool) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}
