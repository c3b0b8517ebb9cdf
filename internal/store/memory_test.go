package store_test

import (
	"testing"

	"github.com/ikonnect/website/backend/internal/model/analytics"
	"github.com/ikonnect/website/backend/internal/model/chat"
	"github.com/ikonnect/website/backend/internal/store"
)

func TestAppendAssignsUniqueIDsAndMonotonicTimestamps(t *testing.T) {
	s := store.New()

	seen := make(map[string]bool)
	events := make([]analytics.Event, 0, 50)
	for i := 0; i < 50; i++ {
		event := s.Append(analytics.InsertEvent{EventType: "page_view", Page: "/"})
		if event.ID == "" || seen[event.ID] {
			t.Fatalf("event %d has missing or duplicate id %q", i, event.ID)
		}
		seen[event.ID] = true
		events = append(events, event)
	}

	for i := 1; i < len(events); i++ {
		if events[i].CreatedAt.Before(events[i-1].CreatedAt) {
			t.Fatalf("createdAt decreased between events %d and %d", i-1, i)
		}
	}
}

func TestAllEventsIsASnapshot(t *testing.T) {
	s := store.New()
	s.Append(analytics.InsertEvent{EventType: "page_view"})

	snapshot := s.AllEvents()
	s.Append(analytics.InsertEvent{EventType: "page_view"})

	if len(snapshot) != 1 {
		t.Fatalf("snapshot grew after later append: %d", len(snapshot))
	}
	if len(s.AllEvents()) != 2 {
		t.Fatalf("expected 2 events in a fresh snapshot, got %d", len(s.AllEvents()))
	}
}

func TestAppendDefaultsDataMap(t *testing.T) {
	s := store.New()
	event := s.Append(analytics.InsertEvent{EventType: "page_view"})
	if event.Data == nil {
		t.Fatal("expected an empty data map, got nil")
	}
}

func TestTurnsForSessionOrdering(t *testing.T) {
	s := store.New()

	s.AppendTurn(chat.Turn{SessionID: "s-1", UserQuery: "first"})
	s.AppendTurn(chat.Turn{SessionID: "s-2", UserQuery: "other session"})
	s.AppendTurn(chat.Turn{SessionID: "s-1", UserQuery: "second"})

	turns := s.TurnsForSession("s-1")
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].UserQuery != "first" || turns[1].UserQuery != "second" {
		t.Fatalf("turns out of order: %q then %q", turns[0].UserQuery, turns[1].UserQuery)
	}
	if turns[1].CreatedAt.Before(turns[0].CreatedAt) {
		t.Fatal("createdAt decreased across turns")
	}
}

func TestFindTurnAndSetSatisfaction(t *testing.T) {
	s := store.New()
	turn := s.AppendTurn(chat.Turn{SessionID: "s-1", UserQuery: "hi", BotResponse: "hello"})

	found, ok := s.FindTurn(turn.ID)
	if !ok || found.UserQuery != "hi" {
		t.Fatalf("FindTurn failed: ok=%v turn=%v", ok, found)
	}
	if found.Satisfaction != nil {
		t.Fatal("new turn must have nil satisfaction")
	}

	updated, ok := s.SetSatisfaction(turn.ID, 5)
	if !ok || updated.Satisfaction == nil || *updated.Satisfaction != 5 {
		t.Fatalf("SetSatisfaction failed: ok=%v turn=%v", ok, updated)
	}

	if _, ok := s.SetSatisfaction("missing", 3); ok {
		t.Fatal("SetSatisfaction must report unknown ids")
	}
	if _, ok := s.FindTurn("missing"); ok {
		t.Fatal("FindTurn must report unknown ids")
	}
}
