// Package store holds the append-only in-memory event log that backs one
// engine instance. State lives for the process lifetime; a restart clears it.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ikonnect/website/backend/internal/model/analytics"
	"github.com/ikonnect/website/backend/internal/model/chat"
)

// Memory stores analytics events and conversation turns. Appends never fail;
// validation of required fields happens before the store is touched. The
// mutex makes appends atomic under concurrent request handling.
type Memory struct {
	mu      sync.RWMutex
	events  []analytics.Event
	turns   []chat.Turn
	turnIdx map[string]int
	lastAt  time.Time
}

// New returns an empty store. Each engine instance owns exactly one.
func New() *Memory {
	return &Memory{
		events:  make([]analytics.Event, 0, 64),
		turns:   make([]chat.Turn, 0, 16),
		turnIdx: make(map[string]int),
	}
}

// Append records an analytics event, assigning its id and timestamp.
func (s *Memory) Append(rec analytics.InsertEvent) analytics.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}

	event := analytics.Event{
		ID:        uuid.NewString(),
		EventType: rec.EventType,
		Page:      rec.Page,
		Data:      data,
		SessionID: rec.SessionID,
		UserAgent: rec.UserAgent,
		IPAddress: rec.IPAddress,
		Referrer:  rec.Referrer,
		CreatedAt: s.nextTimestamp(),
	}

	s.events = append(s.events, event)
	return event
}

// AllEvents returns a snapshot of every event in ingestion order. Later
// appends are not reflected in an already-returned slice.
func (s *Memory) AllEvents() []analytics.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]analytics.Event, len(s.events))
	copy(copied, s.events)
	return copied
}

// AppendTurn records a conversation turn, assigning its id and timestamp.
func (s *Memory) AppendTurn(turn chat.Turn) chat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn.ID = uuid.NewString()
	turn.CreatedAt = s.nextTimestamp()
	if turn.Context == nil {
		turn.Context = map[string]any{}
	}

	s.turnIdx[turn.ID] = len(s.turns)
	s.turns = append(s.turns, turn)
	return turn
}

// FindTurn looks up a turn by id.
func (s *Memory) FindTurn(id string) (chat.Turn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.turnIdx[id]
	if !ok {
		return chat.Turn{}, false
	}
	return s.turns[idx], true
}

// TurnsForSession returns the chronological conversation for a session.
func (s *Memory) TurnsForSession(sessionID string) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]chat.Turn, 0, 8)
	for _, turn := range s.turns {
		if turn.SessionID == sessionID {
			history = append(history, turn)
		}
	}
	return history
}

// SetSatisfaction records a feedback rating against an existing turn and
// returns the updated turn. Reports false when the id is unknown.
func (s *Memory) SetSatisfaction(id string, rating int) (chat.Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.turnIdx[id]
	if !ok {
		return chat.Turn{}, false
	}

	s.turns[idx].Satisfaction = &rating
	return s.turns[idx], true
}

// nextTimestamp keeps CreatedAt monotonically non-decreasing in insertion
// order even when the wall clock steps backwards. Callers must hold mu.
func (s *Memory) nextTimestamp() time.Time {
	now := time.Now().UTC()
	if now.Before(s.lastAt) {
		now = s.lastAt
	}
	s.lastAt = now
	return now
}
