package analytics

// PageCount pairs a page path with its view count.
type PageCount struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

// Summary is the derived session-level view served to the admin dashboard.
// It is computed on demand and never stored.
type Summary struct {
	TotalPageViews int         `json:"totalPageViews"`
	UniqueVisitors int         `json:"uniqueVisitors"`
	TopPages       []PageCount `json:"topPages"`
	BounceRate     int         `json:"bounceRate"`
}
