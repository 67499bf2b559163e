package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// CloseTool handles the eligibility_close MCP tool.
// Closing discards the session and all of its answers.
type CloseTool struct {
	reg *session.Registry
}

// NewCloseTool creates a CloseTool backed by the session registry.
func NewCloseTool(reg *session.Registry) *CloseTool {
	return &CloseTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *CloseTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_close",
		mcp.WithDescription("Close an eligibility session. Its answers are discarded."),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_close tool call.
func (t *CloseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	if err := t.reg.Close(id); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Session `%s` closed.", id)), nil
}
