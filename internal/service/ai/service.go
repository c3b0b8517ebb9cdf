package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/ikonnect/website/backend/internal/config"
	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
)

const systemPrompt = "You are an AI assistant for Ikonnect Service, a leading digital innovation company. " +
	"Help visitors learn about our services, process and pricing, and encourage them to book a consultation."

// Service generates chat replies through an Ark-hosted model. It implements
// the threader's Generator interface.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the generation chain: system prompt, replayed history,
// then the new user message.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled reports whether SSE streaming output is configured.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// Generate produces one assistant reply for the conversation so far.
func (s *Service) Generate(ctx context.Context, history []chatmodel.Turn, userMessage string, context map[string]any) (string, error) {
	input := buildChainInput(history, userMessage, context)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	log.Printf("[ai] generated response length=%d", len(response.Content))
	return response.Content, nil
}

// StreamResponse streams reply chunks via the configured chain.
func (s *Service) StreamResponse(ctx context.Context, history []chatmodel.Turn, userMessage string, context map[string]any) (*schema.StreamReader[*schema.Message], error) {
	if !s.StreamingEnabled() {
		return nil, fmt.Errorf("streaming disabled in configuration")
	}

	input := buildChainInput(history, userMessage, context)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}

	return stream, nil
}

func buildChainInput(history []chatmodel.Turn, userMessage string, context map[string]any) map[string]any {
	return map[string]any{
		"system":  buildSystemPrompt(context),
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}
}

// buildSystemPrompt folds the caller-supplied context mapping into the
// system instruction. The mapping is opaque to the engine; it is passed
// through as JSON.
func buildSystemPrompt(context map[string]any) string {
	contextText := "None"
	if len(context) > 0 {
		if raw, err := json.Marshal(context); err == nil {
			contextText = string(raw)
		}
	}
	return fmt.Sprintf("%s\nRecent conversation context: %s", systemPrompt, contextText)
}

// buildHistoryMessages flattens prior turns into alternating user/assistant
// messages, one pair per turn, preserving turn order.
func buildHistoryMessages(history []chatmodel.Turn) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history)*2)
	for _, turn := range history {
		messages = append(messages, schema.UserMessage(turn.UserQuery))
		messages = append(messages, schema.AssistantMessage(turn.BotResponse, nil))
	}
	return messages
}
