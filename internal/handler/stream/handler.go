package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cloudwego/eino/schema"

	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
	aiService "github.com/ikonnect/website/backend/internal/service/ai"
	"github.com/ikonnect/website/backend/internal/store"
	"github.com/ikonnect/website/backend/pkg/utils"
)

// Handler streams chat replies over Server-Sent Events. This surface exists
// only on the network-attached backend; the same-process mirror answers
// through the plain chat operation.
type Handler struct {
	ai       *aiService.Service
	eventLog *store.Memory
}

// New creates a stream handler.
func New(ai *aiService.Service, eventLog *store.Memory) *Handler {
	return &Handler{ai: ai, eventLog: eventLog}
}

// Response is one streaming chunk.
type Response struct {
	Event          string `json:"event"`
	Content        string `json:"content,omitempty"`
	SessionID      string `json:"sessionId,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HandleStreamRequest streams one chat turn and persists it on completion.
// Nothing is stored when generation fails mid-stream.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	history := h.eventLog.TurnsForSession(sessionID)

	h.sendSSE(w, flusher, Response{
		Event:     "start",
		SessionID: sessionID,
	})

	content, err := h.dispatchAIResponse(ctx, w, flusher, sessionID, history, userMessage)
	if err != nil {
		h.sendSSEError(w, flusher, "AI generation failed")
		return err
	}

	turn := h.eventLog.AppendTurn(chatmodel.Turn{
		SessionID:   sessionID,
		UserQuery:   userMessage,
		BotResponse: content,
	})

	h.sendSSE(w, flusher, Response{
		Event:          "end",
		SessionID:      sessionID,
		ConversationID: turn.ID,
		Finished:       true,
	})

	log.Printf("[stream] completed response for session=%s", sessionID)
	return nil
}

func (h *Handler) dispatchAIResponse(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, sessionID string, history []chatmodel.Turn, userMessage string) (string, error) {
	if h.ai.StreamingEnabled() {
		return h.streamAIResponse(ctx, w, flusher, sessionID, history, userMessage)
	}

	content, err := h.ai.Generate(ctx, history, userMessage, nil)
	if err != nil {
		return "", err
	}

	h.sendSSE(w, flusher, Response{
		Event:     "message",
		SessionID: sessionID,
		Content:   content,
	})

	return content, nil
}

func (h *Handler) streamAIResponse(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, sessionID string, history []chatmodel.Turn, userMessage string) (string, error) {
	stream, err := h.ai.StreamResponse(ctx, history, userMessage, nil)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, Response{
				Event:     "delta",
				SessionID: sessionID,
				Content:   chunk.Content,
			})
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}

	h.sendSSE(w, flusher, Response{
		Event:     "message",
		SessionID: sessionID,
		Content:   response.Content,
	})

	return response.Content, nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response Response) {
	utils.SendSSEChunk(w, flusher, response)
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, Response{
		Event: "error",
		Error: errorMsg,
	})
}
