package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cafa101001/my-asset-app/docs"
)

const model = "gemini-2.5-flash"

// Expert is one chat with a primed model.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAdvisor builds the personal-finance advisor, primed with the user's
// current figures (pre-rendered markdown) and the embedded documentation,
// so it answers about this portfolio rather than in generalities.
func NewAdvisor(snapshots ...string) *Expert {
	topics, err := docs.GetTopic("*")
	if err != nil {
		topics = ""
	}

	var instruction strings.Builder
	instruction.WriteString(`
	You are a personal net-worth advisor for a single user in Taiwan.
	Amounts are reported in TWD unless stated otherwise.

	You can only read the figures given below; you cannot edit the ledger.
	When the user asks for a change, tell them the nwa command to run.
	Be concrete and refer to the user's actual positions and numbers.

	How the figures are computed:
	`)
	instruction.WriteString(topics)
	instruction.WriteString("\nThe user's current figures:\n\n")
	for _, s := range snapshots {
		instruction.WriteString(s)
		instruction.WriteString("\n")
	}

	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction.String()}}},
		},
	}
}

// Start opens the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}
