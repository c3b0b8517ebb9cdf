package chat

import (
	"context"

	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
)

const staticReply = "Thanks for reaching out! Our team offers data automation, web development, AI chatbots, and more. Would you like to schedule a consultation or learn about pricing?"

// StaticResponder answers every turn with a canned reply. It stands in for
// the generation provider when no credential is configured, so the chat
// widget keeps working on deployments without an AI key.
type StaticResponder struct{}

// Generate returns the canned marketing reply.
func (StaticResponder) Generate(_ context.Context, _ []chatmodel.Turn, _ string, _ map[string]any) (string, error) {
	return staticReply, nil
}
