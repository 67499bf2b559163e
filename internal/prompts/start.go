// Package prompts implements MCP prompt handlers for the eligibility
// checker.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the eligibility-start MCP prompt.
// It guides the AI through one full eligibility check.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("eligibility-start",
		mcp.WithPromptDescription(
			"Find the Sheraa program that fits you. "+
				"Walks you through a few questions about who you are and where "+
				"your venture stands, then recommends a program.",
		),
		mcp.WithArgument("variant",
			mcp.ArgumentDescription("Where the checker is shown: 'dialog' or 'page'. Default: dialog"),
		),
	)
}

// Handle processes the eligibility-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	variant := "dialog"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["variant"]; ok && v != "" {
			variant = v
		}
	}

	return &mcp.GetPromptResult{
		Description: "Sheraa eligibility check",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to find out which Sheraa program I'm eligible for.\n\n"+
						"Please:\n"+
						"1. Run `eligibility_start` with variant='%s' and keep the session_id\n"+
						"2. Ask me each question in plain words and list the options\n"+
						"3. Record my choice with `eligibility_answer`, then call `eligibility_next`\n"+
						"4. If I go back on an answer, use `eligibility_back`\n"+
						"5. When the recommendation appears, explain why it fits and offer to open it with `eligibility_open`\n"+
						"6. Call `eligibility_close` when we're done\n\n"+
						"Never pick an option for me. If a question allows several options, ask me for all that apply.",
					variant,
				)),
			},
		},
	}, nil
}
