package llm

import (
	"strings"

	"meeting-task-extractor/pkg/llmprovider"
)

const systemPrompt = `You extract action items from meeting notes.

Return ONLY a JSON object, with no prose and no markdown, matching this schema:
{
  "tasks": [
    {
      "title": "string, the action to take",
      "assignee": "string, optional, person responsible",
      "due": "string, optional, deadline as written in the notes",
      "priority": "string, optional"
    }
  ],
  "followUp": "string, a short follow-up message listing the action items"
}

Omit optional fields you cannot infer. Do not invent people or dates.`

// buildRequest wraps the notes in a single JSON-only instruction payload.
func buildRequest(text string) *llmprovider.Request {
	var b strings.Builder
	b.WriteString("Meeting notes:\n\"\"\"\n")
	b.WriteString(text)
	b.WriteString("\n\"\"\"\n\nRespond with the JSON object only.")

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: b.String()}}},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		JSONMode:    true,
	}
}
