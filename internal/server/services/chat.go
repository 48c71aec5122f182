package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/studiosite/internal/common"
	"github.com/dmitrijs2005/studiosite/internal/logging"
	"github.com/dmitrijs2005/studiosite/internal/server/config"
	"github.com/sashabaranov/go-openai"
)

const (
	// chatHistoryLimit is how many trailing messages are forwarded upstream.
	chatHistoryLimit = 10
	chatTemperature  = 0.7
	chatMaxTokens    = 500
)

// SystemPrompt is prepended to every forwarded conversation.
const SystemPrompt = `You are the friendly assistant of a full-service digital agency.
The agency designs and builds websites, web and mobile applications, e-commerce stores and brands,
and offers SEO, digital marketing, analytics, cloud hosting and ongoing support.
Answer questions about these services, the way the agency works and how to get in touch.
Keep answers short, helpful and professional. If you do not know something, suggest contacting the team
through the contact page instead of guessing. Do not discuss unrelated topics.`

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the subset of the OpenAI client used by ChatService.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// newOpenAIClient is a seam for tests.
var newOpenAIClient = func(apiKey, baseURL string) Completer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// ChatService forwards a trimmed conversation to the completion API. It keeps
// no state between calls.
type ChatService struct {
	client  Completer
	model   string
	timeout time.Duration
	logger  logging.Logger
}

// NewChatService builds a ChatService. Without an API key every Reply fails
// with common.ErrorUpstream.
func NewChatService(cfg *config.Config, logger logging.Logger) *ChatService {
	s := &ChatService{
		model:   cfg.ChatModel,
		timeout: cfg.ChatTimeout,
		logger:  logger.With("module", "chat"),
	}
	if cfg.OpenAIAPIKey != "" {
		s.client = newOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	}
	return s
}

// Reply validates messages, keeps the last ten, prepends SystemPrompt and
// returns the assistant's answer.
func (s *ChatService) Reply(ctx context.Context, messages []ChatMessage) (*ChatMessage, error) {
	if len(messages) == 0 {
		return nil, common.Invalid("Messages are required")
	}
	for _, m := range messages {
		if m.Role != openai.ChatMessageRoleUser && m.Role != openai.ChatMessageRoleAssistant {
			return nil, common.Invalid(fmt.Sprintf("Invalid message role %q", m.Role))
		}
	}

	if s.client == nil {
		s.logger.Error(ctx, "chat completion unavailable", "error", "no api key configured")
		return nil, common.ErrorUpstream
	}

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    BuildPrompt(messages),
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "chat completion failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		s.logger.Error(ctx, "chat completion returned no content")
		return nil, common.ErrorUpstream
	}

	return &ChatMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

// BuildPrompt returns SystemPrompt followed by the last chatHistoryLimit
// messages.
func BuildPrompt(messages []ChatMessage) []openai.ChatCompletionMessage {
	if len(messages) > chatHistoryLimit {
		messages = messages[len(messages)-chatHistoryLimit:]
	}

	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt})
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
