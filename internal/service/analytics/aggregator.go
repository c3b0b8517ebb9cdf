// Package analytics reduces the raw event log into the summary view served
// to the admin dashboard.
package analytics

import (
	"math"
	"sort"

	"github.com/google/uuid"

	model "github.com/ikonnect/website/backend/internal/model/analytics"
)

// Summarize computes the summary view from an event snapshot. It is a pure
// function of its input: it never fails, and malformed events (empty page,
// empty session id) are treated as valid rather than rejected.
//
// Anonymous events are handled with two distinct conventions: they are
// excluded from the unique-visitor count entirely, while for bounce-rate
// grouping each anonymous page view forms its own singleton session.
func Summarize(events []model.Event) model.Summary {
	pageViews := make([]model.Event, 0, len(events))
	visitors := make(map[string]struct{})
	for _, e := range events {
		if e.SessionID != "" {
			visitors[e.SessionID] = struct{}{}
		}
		if e.EventType == model.EventTypePageView {
			pageViews = append(pageViews, e)
		}
	}

	topPages := rankPages(pageViews)
	bounceRate := computeBounceRate(pageViews)

	return model.Summary{
		TotalPageViews: len(pageViews),
		UniqueVisitors: len(visitors),
		TopPages:       topPages,
		BounceRate:     bounceRate,
	}
}

// rankPages groups page views by page, sorts descending by count and keeps
// the top five. Ties preserve the order in which each page was first seen.
func rankPages(pageViews []model.Event) []model.PageCount {
	counts := make(map[string]int)
	order := make([]string, 0, len(pageViews))
	for _, e := range pageViews {
		if _, seen := counts[e.Page]; !seen {
			order = append(order, e.Page)
		}
		counts[e.Page]++
	}

	ranked := make([]model.PageCount, 0, len(order))
	for _, page := range order {
		ranked = append(ranked, model.PageCount{Page: page, Views: counts[page]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})

	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// computeBounceRate groups page views by session and reports the percentage
// of sessions with exactly one view, rounded half-up to an integer.
func computeBounceRate(pageViews []model.Event) int {
	sessionViews := make(map[string]int)
	for _, e := range pageViews {
		sid := e.SessionID
		if sid == "" {
			// Each anonymous view counts as its own session here.
			sid = uuid.NewString()
		}
		sessionViews[sid]++
	}

	singleViewSessions := 0
	for _, views := range sessionViews {
		if views == 1 {
			singleViewSessions++
		}
	}

	totalSessions := len(sessionViews)
	if totalSessions == 0 {
		totalSessions = 1
	}

	return int(math.Round(float64(singleViewSessions) / float64(totalSessions) * 100))
}
