package tools

import (
	"context"

	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the eligibility_status MCP tool.
// It renders the current state of a session without changing it.
type StatusTool struct {
	reg *session.Registry
}

// NewStatusTool creates a StatusTool backed by the session registry.
func NewStatusTool(reg *session.Registry) *StatusTool {
	return &StatusTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_status",
		mcp.WithDescription(
			"Show the current question, progress and selections of an eligibility "+
				"session, or its recommendation once finished.",
		),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
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
