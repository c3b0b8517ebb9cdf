package chat

import "time"

// Turn is one user-message/bot-response pair within a conversation. All
// turns sharing a SessionID, ordered by CreatedAt, form that session's
// chronological history.
type Turn struct {
	ID           string         `json:"id"`
	SessionID    string         `json:"sessionId"`
	UserQuery    string         `json:"userQuery"`
	BotResponse  string         `json:"botResponse"`
	Context      map[string]any `json:"context"`
	Satisfaction *int           `json:"satisfaction"`
	Resolved     bool           `json:"resolved"`
	CreatedAt    time.Time      `json:"createdAt"`
}
