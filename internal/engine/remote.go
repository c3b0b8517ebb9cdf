package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ikonnect/website/backend/internal/model/analytics"
	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
)

// Remote reaches a deployed engine over its JSON endpoints. Transport-level
// failure statuses are translated back to the same sentinel errors the local
// engine returns, so callers observe identical behavior in both modes.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	adminToken string
}

// NewRemote builds a network-attached engine client. adminToken is the
// bearer token presented to the capability-gated summary endpoint; it may be
// empty for clients that never call Summary.
func NewRemote(baseURL string, client *http.Client, adminToken string) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		adminToken: adminToken,
	}
}

// IngestEvent posts one analytics event.
func (r *Remote) IngestEvent(ctx context.Context, rec analytics.InsertEvent) (analytics.Event, error) {
	payload := map[string]any{
		"eventType": rec.EventType,
		"page":      rec.Page,
		"data":      rec.Data,
		"sessionId": rec.SessionID,
	}

	var event analytics.Event
	status, err := r.post(ctx, "/api/analytics/event", payload, &event)
	if err != nil {
		return analytics.Event{}, err
	}
	if status == http.StatusBadRequest {
		return analytics.Event{}, ErrEventTypeRequired
	}
	if status != http.StatusOK {
		return analytics.Event{}, fmt.Errorf("unexpected status %d from event ingestion", status)
	}
	return event, nil
}

// Summary fetches the aggregated admin view.
func (r *Remote) Summary(ctx context.Context) (analytics.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/analytics/summary", nil)
	if err != nil {
		return analytics.Summary{}, err
	}
	if r.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.adminToken)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("summary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return analytics.Summary{}, fmt.Errorf("unexpected status %d from summary", resp.StatusCode)
	}

	var summary analytics.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return analytics.Summary{}, fmt.Errorf("failed to decode summary: %w", err)
	}
	return summary, nil
}

// Chat posts one conversation turn.
func (r *Remote) Chat(ctx context.Context, sessionID, message string, context map[string]any) (chatservice.Reply, error) {
	payload := map[string]any{
		"message":   message,
		"sessionId": sessionID,
		"context":   context,
	}

	var reply chatservice.Reply
	status, err := r.post(ctx, "/api/chat", payload, &reply)
	if err != nil {
		return chatservice.Reply{}, err
	}
	switch status {
	case http.StatusOK:
		return reply, nil
	case http.StatusBadRequest:
		return chatservice.Reply{}, chatservice.ErrMessageRequired
	default:
		return chatservice.Reply{}, chatservice.ErrGenerateFailed
	}
}

// ChatFeedback posts a satisfaction rating for a prior turn.
func (r *Remote) ChatFeedback(ctx context.Context, conversationID string, satisfaction int) (chatmodel.Turn, error) {
	payload := map[string]any{
		"conversationId": conversationID,
		"satisfaction":   satisfaction,
	}

	var ack struct {
		Success      bool           `json:"success"`
		Conversation chatmodel.Turn `json:"conversation"`
	}
	status, err := r.post(ctx, "/api/chat/feedback", payload, &ack)
	if err != nil {
		return chatmodel.Turn{}, err
	}
	switch status {
	case http.StatusOK:
		return ack.Conversation, nil
	case http.StatusBadRequest:
		return chatmodel.Turn{}, chatservice.ErrFeedbackRequired
	case http.StatusNotFound:
		return chatmodel.Turn{}, chatservice.ErrTurnNotFound
	default:
		return chatmodel.Turn{}, fmt.Errorf("unexpected status %d from feedback", status)
	}
}

// post sends a JSON body and decodes a 2xx response into out. Non-2xx
// statuses are returned to the caller for operation-specific mapping.
func (r *Remote) post(ctx context.Context, path string, payload any, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return resp.StatusCode, nil
}
