// Package engine exposes the funnel's four logical operations behind a
// single interface with two interchangeable backends. Local runs the event
// store, aggregator and conversation threader in the calling process;
// Remote reaches the same logic on a deployed server over HTTP. Call sites
// are written against Engine only, so replaying one operation sequence
// against either backend yields identical observable results.
package engine

import (
	"context"
	"errors"

	"github.com/ikonnect/website/backend/internal/model/analytics"
	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
)

// ErrEventTypeRequired rejects ingestion of events without a type tag,
// before any store mutation.
var ErrEventTypeRequired = errors.New("event type is required")

// Engine is the request-shaped surface of the analytics and
// conversation-state engine.
type Engine interface {
	// IngestEvent appends one analytics event and returns the stored record.
	IngestEvent(ctx context.Context, rec analytics.InsertEvent) (analytics.Event, error)
	// Summary aggregates the current event log into the admin view.
	Summary(ctx context.Context) (analytics.Summary, error)
	// Chat runs one conversation turn for a session.
	Chat(ctx context.Context, sessionID, message string, context map[string]any) (chatservice.Reply, error)
	// ChatFeedback records a satisfaction rating against a prior turn.
	ChatFeedback(ctx context.Context, conversationID string, satisfaction int) (chatmodel.Turn, error)
}
