package llmprovider

import (
	"context"

	"meeting-task-extractor/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same client
// serves every OpenAI-compatible vendor, so the adapter carries the name.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting the given provider name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: convertToOpenAIContent(req.SystemInstruction),
		Messages:          convertToOpenAIContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	out := &Response{
		Content:      convertFromOpenAIContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func convertToOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToOpenAIContent(&msgs[i])
	}
	return contents
}

func convertFromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}
