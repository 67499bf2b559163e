package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProgramsPrompt handles the eligibility-programs MCP prompt.
// It asks the AI to present the program catalog, optionally for one persona.
type ProgramsPrompt struct{}

// NewProgramsPrompt creates a ProgramsPrompt.
func NewProgramsPrompt() *ProgramsPrompt {
	return &ProgramsPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ProgramsPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("eligibility-programs",
		mcp.WithPromptDescription(
			"Browse the Sheraa programs without answering questions. "+
				"Optionally limited to one audience.",
		),
		mcp.WithArgument("persona",
			mcp.ArgumentDescription("Audience to focus on: student, founder, sme or global. Default: all"),
		),
	)
}

// Handle processes the eligibility-programs prompt request.
func (p *ProgramsPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	focus := "all audiences"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["persona"]; ok && v != "" {
			focus = fmt.Sprintf("the '%s' persona", v)
		}
	}

	return &mcp.GetPromptResult{
		Description: "Sheraa programs overview",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please read the `eligibility://catalog/programs` resource and present the programs for %s.\n\n"+
						"For each program:\n"+
						"1. Give the title and a one-line summary\n"+
						"2. Say who it is for, based on its criteria\n"+
						"3. List the benefits and the link\n\n"+
						"Finish by offering to run the eligibility check with `eligibility_start`.",
					focus,
				)),
			},
		},
	}, nil
}
