package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// StartTool handles the eligibility_start MCP tool.
// It opens a new wizard session at the persona question.
type StartTool struct {
	reg *session.Registry
}

// NewStartTool creates a StartTool backed by the session registry.
func NewStartTool(reg *session.Registry) *StartTool {
	return &StartTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *StartTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_start",
		mcp.WithDescription(
			"Start a new Sheraa eligibility check. Returns a `session_id` and the "+
				"first question (who the user is). Answer with `eligibility_answer`, "+
				"then move on with `eligibility_next`.",
		),
		mcp.WithString("variant",
			mcp.Description("Surface the wizard is shown in. Defaults to dialog."),
			mcp.Enum(string(eligibility.VariantDialog), string(eligibility.VariantPage)),
		),
	)
}

// Handle processes the eligibility_start tool call.
func (t *StartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	variant := eligibility.Variant(req.GetString("variant", ""))
	if variant != "" {
		if err := eligibility.ValidateVariant(variant); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	id, err := t.reg.Open(variant)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	var view eligibility.View
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		view = w.View()
		return nil
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(renderView(id, view)), nil
}
