package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// NextTool handles the eligibility_next MCP tool.
type NextTool struct {
	reg *session.Registry
}

// NewNextTool creates a NextTool backed by the session registry.
func NewNextTool(reg *session.Registry) *NextTool {
	return &NextTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *NextTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_next",
		mcp.WithDescription(
			"Advance an eligibility session. Fails with a message when the current "+
				"question has no answer. After the last question of the branch the "+
				"recommended program is shown.",
		),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_next tool call.
func (t *NextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	var view eligibility.View
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		if err := w.Advance(); err != nil {
			return err
		}
		view = w.View()
		return nil
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(renderView(id, view)), nil
}

// BackTool handles the eligibility_back MCP tool.
type BackTool struct {
	reg *session.Registry
}

// NewBackTool creates a BackTool backed by the session registry.
func NewBackTool(reg *session.Registry) *BackTool {
	return &BackTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *BackTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_back",
		mcp.WithDescription(
			"Go back one step. From the recommendation this returns to the last "+
				"question; from the first question of a branch it returns to the "+
				"persona question and discards the branch answers.",
		),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_back tool call.
func (t *BackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	var view eligibility.View
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		w.Retreat()
		view = w.View()
		return nil
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(renderView(id, view)), nil
}

// ResetTool handles the eligibility_reset MCP tool.
type ResetTool struct {
	reg *session.Registry
}

// NewResetTool creates a ResetTool backed by the session registry.
func NewResetTool(reg *session.Registry) *ResetTool {
	return &ResetTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_reset",
		mcp.WithDescription("Clear every answer of a session and return to the persona question."),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	var view eligibility.View
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		w.Reset()
		view = w.View()
		return nil
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(renderView(id, view)), nil
}

// OpenTool handles the eligibility_open MCP tool.
// It resolves the recommended program's link once the result is shown.
type OpenTool struct {
	reg *session.Registry
}

// NewOpenTool creates an OpenTool backed by the session registry.
func NewOpenTool(reg *session.Registry) *OpenTool {
	return &OpenTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *OpenTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_open",
		mcp.WithDescription(
			"Open the recommended program of a finished session. Returns the "+
				"program link to show or follow.",
		),
		sessionIDParam(),
	)
}

// Handle processes the eligibility_open tool call.
func (t *OpenTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	var link string
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		var err error
		link, err = w.OpenRecommendation()
		return err
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Open the program page: %s", link)), nil
}
