package catalog

import "time"

// Seed provides the launch content for the marketing site.
func Seed() ([]PortfolioItem, []Testimonial, []BlogPost) {
	now := time.Now().UTC()

	portfolio := []PortfolioItem{
		{
			ID:          "p-1",
			Title:       "E-commerce Platform",
			Description: "Modern multi-vendor marketplace with AI-powered recommendations and automated inventory management.",
			Category:    "web-dev",
			ImageURL:    "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?auto=format&fit=crop&w=800&h=600",
			Tags:        []string{"React", "Node.js", "AI", "E-commerce"},
			Client:      "TechFlow Inc",
			Year:        "2024",
			Results:     "150% increase in revenue within 6 months",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "p-2",
			Title:       "Analytics Dashboard",
			Description: "Real-time business intelligence platform with automated reporting and predictive analytics.",
			Category:    "automation",
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&h=600",
			Tags:        []string{"Data Analytics", "Automation", "Dashboard"},
			Client:      "DataCorp",
			Year:        "2024",
			Results:     "40+ hours saved weekly, 99% accuracy in reporting",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "p-3",
			Title:       "Customer Support AI",
			Description: "Intelligent customer service chatbot with natural language processing and sentiment analysis.",
			Category:    "ai",
			ImageURL:    "https://images.unsplash.com/photo-1531746790731-6c087fecd65a?auto=format&fit=crop&w=800&h=600",
			Tags:        []string{"AI", "Chatbot", "NLP"},
			Client:      "RetailMax",
			Year:        "2023",
			Results:     "60% increase in customer satisfaction, 80% automation rate",
			Featured:    true,
			CreatedAt:   now,
		},
	}

	testimonials := []Testimonial{
		{
			ID:        "t-1",
			Name:      "Michael Chen",
			Position:  "CTO",
			Company:   "TechFlow Inc.",
			Content:   "Ikonnect Service transformed our entire data workflow. Their automation solution saved us 40+ hours per week and eliminated manual errors completely.",
			Rating:    "5",
			ImageURL:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=100&h=100",
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:        "t-2",
			Name:      "Sarah Williams",
			Position:  "Director of Operations",
			Company:   "RetailMax",
			Content:   "The AI chatbot they developed increased our customer satisfaction by 60% and handles 80% of inquiries automatically. Outstanding work!",
			Rating:    "5",
			ImageURL:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=100&h=100",
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:        "t-3",
			Name:      "David Rodriguez",
			Position:  "Founder",
			Company:   "GrowthCorp",
			Content:   "Their web development team delivered a beautiful, fast, and scalable platform. Revenue increased by 150% in just 6 months. Highly recommended!",
			Rating:    "5",
			ImageURL:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=100&h=100",
			Featured:  true,
			CreatedAt: now,
		},
	}

	posts := []BlogPost{
		{
			ID:        "b-1",
			Title:     "The Future of AI in Business Automation",
			Slug:      "future-ai-business-automation",
			Excerpt:   "Explore how artificial intelligence is revolutionizing business processes and what it means for the future of work.",
			Content:   "Artificial intelligence is no longer a futuristic concept...",
			Category:  "AI",
			Author:    "Ikonnect Team",
			ImageURL:  "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&w=800&h=600",
			Tags:      []string{"AI", "Automation", "Business"},
			Published: true,
			ReadTime:  "5 min read",
			CreatedAt: now,
		},
		{
			ID:        "b-2",
			Title:     "Modern Web Development Trends in 2024",
			Slug:      "web-development-trends-2024",
			Excerpt:   "Discover the latest trends and technologies shaping web development in 2024.",
			Content:   "The web development landscape continues to evolve rapidly...",
			Category:  "Web Dev",
			Author:    "Ikonnect Team",
			ImageURL:  "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=800&h=600",
			Tags:      []string{"Web Development", "React", "Trends"},
			Published: true,
			ReadTime:  "7 min read",
			CreatedAt: now,
		},
	}

	return portfolio, testimonials, posts
}
