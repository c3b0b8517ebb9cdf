package engine

import (
	"context"

	"github.com/ikonnect/website/backend/internal/model/analytics"
	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
	analyticsservice "github.com/ikonnect/website/backend/internal/service/analytics"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
	"github.com/ikonnect/website/backend/internal/store"
)

// Local runs the engine directly against a module-local store. It is both
// the same-process mirror used when no backend is deployed and the core the
// HTTP handlers delegate to, so the two deployment modes share one logic set.
type Local struct {
	store   *store.Memory
	threads *chatservice.Service
}

// NewLocal wires a local engine over its store and conversation threader.
func NewLocal(st *store.Memory, threads *chatservice.Service) *Local {
	return &Local{store: st, threads: threads}
}

// IngestEvent validates and appends one analytics event.
func (l *Local) IngestEvent(_ context.Context, rec analytics.InsertEvent) (analytics.Event, error) {
	if rec.EventType == "" {
		return analytics.Event{}, ErrEventTypeRequired
	}
	return l.store.Append(rec), nil
}

// Summary aggregates a snapshot of the event log.
func (l *Local) Summary(_ context.Context) (analytics.Summary, error) {
	return analyticsservice.Summarize(l.store.AllEvents()), nil
}

// Chat delegates one turn to the conversation threader.
func (l *Local) Chat(ctx context.Context, sessionID, message string, context map[string]any) (chatservice.Reply, error) {
	return l.threads.Respond(ctx, sessionID, message, context)
}

// ChatFeedback records a satisfaction rating.
func (l *Local) ChatFeedback(ctx context.Context, conversationID string, satisfaction int) (chatmodel.Turn, error) {
	return l.threads.RecordFeedback(ctx, conversationID, satisfaction)
}
