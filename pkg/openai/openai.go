package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newOpenAIImpl creates a new implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&chatResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts a Request to the wire format
func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.JSONMode {
		chatReq.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	if req.SystemInstruction != nil {
		sys := transformMessage(req.SystemInstruction)
		sys.Role = "system"
		chatReq.Messages = append(chatReq.Messages, sys)
	}

	for i := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, transformMessage(&req.Messages[i]))
	}

	return chatReq
}

func transformMessage(msg *Content) chatMessage {
	role := msg.Role
	if role == "" {
		role = "user"
	}
	texts := make([]string, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return chatMessage{Role: role, Content: strings.Join(texts, "\n")}
}

// transformResponse converts the wire response to a Response
func (o *openAIImpl) transformResponse(resp *chatResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	if len(resp.Choices) == 0 {
		return &Response{Model: resp.Model, Usage: usage}
	}

	msg := resp.Choices[0].Message
	content := Content{Role: msg.Role, Parts: make([]Part, 0, 1)}
	if msg.Content != "" {
		content.Parts = append(content.Parts, Part{Text: msg.Content})
	}

	return &Response{
		Content: content,
		Model:   resp.Model,
		Usage:   usage,
	}
}
