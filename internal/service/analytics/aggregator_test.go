package analytics_test

import (
	"reflect"
	"testing"

	model "github.com/ikonnect/website/backend/internal/model/analytics"
	analytics "github.com/ikonnect/website/backend/internal/service/analytics"
)

func pageView(page, sessionID string) model.Event {
	return model.Event{EventType: model.EventTypePageView, Page: page, SessionID: sessionID}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := analytics.Summarize(nil)

	if summary.TotalPageViews != 0 {
		t.Fatalf("unexpected totalPageViews: got %d want 0", summary.TotalPageViews)
	}
	if summary.UniqueVisitors != 0 {
		t.Fatalf("unexpected uniqueVisitors: got %d want 0", summary.UniqueVisitors)
	}
	if len(summary.TopPages) != 0 {
		t.Fatalf("expected empty topPages, got %v", summary.TopPages)
	}
	if summary.BounceRate != 0 {
		t.Fatalf("unexpected bounceRate: got %d want 0", summary.BounceRate)
	}
}

func TestSummarizeSingleSession(t *testing.T) {
	single := analytics.Summarize([]model.Event{pageView("/", "s-1")})
	if single.UniqueVisitors != 1 {
		t.Fatalf("unexpected uniqueVisitors: got %d want 1", single.UniqueVisitors)
	}
	if single.BounceRate != 100 {
		t.Fatalf("one view in one session should bounce: got %d", single.BounceRate)
	}

	multi := analytics.Summarize([]model.Event{
		pageView("/", "s-1"),
		pageView("/services", "s-1"),
		pageView("/contact", "s-1"),
	})
	if multi.TotalPageViews != 3 {
		t.Fatalf("unexpected totalPageViews: got %d want 3", multi.TotalPageViews)
	}
	if multi.UniqueVisitors != 1 {
		t.Fatalf("unexpected uniqueVisitors: got %d want 1", multi.UniqueVisitors)
	}
	if multi.BounceRate != 0 {
		t.Fatalf("multi-view session should not bounce: got %d", multi.BounceRate)
	}
}

// Anonymous events are excluded from uniqueVisitors but each forms its own
// singleton session for bounce-rate grouping.
func TestSummarizeAnonymousEvents(t *testing.T) {
	summary := analytics.Summarize([]model.Event{
		pageView("/", ""),
		pageView("/", ""),
		pageView("/pricing", ""),
	})

	if summary.UniqueVisitors != 0 {
		t.Fatalf("anonymous events must not count as visitors: got %d", summary.UniqueVisitors)
	}
	if summary.TotalPageViews != 3 {
		t.Fatalf("unexpected totalPageViews: got %d want 3", summary.TotalPageViews)
	}
	if summary.BounceRate != 100 {
		t.Fatalf("singleton anonymous sessions should all bounce: got %d", summary.BounceRate)
	}
}

func TestSummarizeUniqueVisitorsCountsAllEventTypes(t *testing.T) {
	summary := analytics.Summarize([]model.Event{
		pageView("/", "s-1"),
		{EventType: "cta_click", Page: "/", SessionID: "s-2"},
	})

	if summary.UniqueVisitors != 2 {
		t.Fatalf("custom events must contribute visitors: got %d want 2", summary.UniqueVisitors)
	}
	if summary.TotalPageViews != 1 {
		t.Fatalf("custom events must not count as page views: got %d want 1", summary.TotalPageViews)
	}
}

func TestSummarizeTopPagesTieOrderAndTruncation(t *testing.T) {
	// /a and /b both end at 3 views, with /a reaching 3 first; /c leads
	// with 4; /d, /e, /f each get 1, so truncation drops /f.
	events := []model.Event{
		pageView("/c", "s-1"),
		pageView("/a", "s-1"),
		pageView("/b", "s-1"),
		pageView("/c", "s-2"),
		pageView("/a", "s-2"),
		pageView("/b", "s-2"),
		pageView("/c", "s-3"),
		pageView("/a", "s-3"),
		pageView("/b", "s-3"),
		pageView("/c", "s-4"),
		pageView("/d", "s-4"),
		pageView("/e", "s-5"),
		pageView("/f", "s-6"),
	}

	summary := analytics.Summarize(events)

	want := []model.PageCount{
		{Page: "/c", Views: 4},
		{Page: "/a", Views: 3},
		{Page: "/b", Views: 3},
		{Page: "/d", Views: 1},
		{Page: "/e", Views: 1},
	}
	if !reflect.DeepEqual(summary.TopPages, want) {
		t.Fatalf("unexpected topPages:\n got %v\nwant %v", summary.TopPages, want)
	}
}

func TestSummarizeBounceRounding(t *testing.T) {
	// Two bouncing sessions out of three: 66.67% rounds to 67.
	summary := analytics.Summarize([]model.Event{
		pageView("/", "s-1"),
		pageView("/", "s-2"),
		pageView("/", "s-3"),
		pageView("/about", "s-3"),
	})

	if summary.BounceRate != 67 {
		t.Fatalf("unexpected bounceRate: got %d want 67", summary.BounceRate)
	}
}

func TestSummarizeIsPure(t *testing.T) {
	events := []model.Event{
		pageView("/", "s-1"),
		pageView("/services", "s-1"),
		pageView("/", "s-2"),
		{EventType: "form_submit", SessionID: "s-3"},
	}

	first := analytics.Summarize(events)
	second := analytics.Summarize(events)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ across calls:\n first %v\nsecond %v", first, second)
	}
}
