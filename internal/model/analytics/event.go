package analytics

import "time"

// EventTypePageView is the event tag the aggregator derives page metrics from.
const EventTypePageView = "page_view"

// Event is one ingested visitor-analytics record.
type Event struct {
	ID        string         `json:"id"`
	EventType string         `json:"eventType"`
	Page      string         `json:"page"`
	Data      map[string]any `json:"data"`
	SessionID string         `json:"sessionId"`
	UserAgent string         `json:"userAgent"`
	IPAddress string         `json:"ipAddress"`
	Referrer  string         `json:"referrer"`
	CreatedAt time.Time      `json:"createdAt"`
}

// InsertEvent carries the caller-supplied fields of an event. The store
// assigns ID and CreatedAt at ingestion.
type InsertEvent struct {
	EventType string
	Page      string
	Data      map[string]any
	SessionID string
	UserAgent string
	IPAddress string
	Referrer  string
}
