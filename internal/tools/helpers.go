// Package tools implements the MCP tool handlers of the eligibility checker.
//
// Each tool receives its dependencies via its struct and exposes a
// Definition and a Handle method compatible with mcp-go's server.
//
// Design principles:
// - SRP: each file = one tool (navigation tools share navigate.go)
// - user mistakes are tool errors, faults are Go errors
package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// sessionIDParam is the shared definition of the session_id argument.
func sessionIDParam() mcp.ToolOption {
	return mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session ID returned by `eligibility_start`."),
	)
}

// requireSessionID reads session_id or returns a tool error for the caller.
func requireSessionID(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	id := strings.TrimSpace(req.GetString("session_id", ""))
	if id == "" {
		return "", mcp.NewToolResultError("'session_id' is required. Start a session with `eligibility_start` first.")
	}
	return id, nil
}

// resultFor maps a registry or wizard error to a tool result. Validation
// failures and unknown sessions become tool errors; anything else is a
// fault returned as a Go error.
func resultFor(sessionID string, err error) (*mcp.CallToolResult, error) {
	var verr *eligibility.ValidationError
	switch {
	case errors.As(err, &verr):
		return mcp.NewToolResultError(fmt.Sprintf(
			"Please select an option for `%s` before continuing.", verr.QuestionID)), nil
	case errors.Is(err, eligibility.ErrSelectionRequired):
		return mcp.NewToolResultError("Please select an option before continuing."), nil
	case errors.Is(err, eligibility.ErrNoRecommendation):
		return mcp.NewToolResultError("There is no recommendation to open yet. Finish the questions with `eligibility_next`."), nil
	case errors.Is(err, session.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf(
			"Session %q not found. It may have been closed or expired; start a new one with `eligibility_start`.", sessionID)), nil
	default:
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
}

// parseOptionIDs splits a comma-separated option list, dropping blanks.
func parseOptionIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// renderView formats a wizard snapshot as markdown.
func renderView(sessionID string, v eligibility.View) string {
	var b strings.Builder
	b.WriteString("# Eligibility Checker\n\n")
	fmt.Fprintf(&b, "**Session:** `%s`\n", sessionID)
	persona := v.Persona
	if persona == "" {
		persona = "not chosen yet"
	}
	fmt.Fprintf(&b, "**Persona:** %s\n", persona)

	if v.ShowResult {
		b.WriteString("\n")
		b.WriteString(renderRecommendation(v.Recommendation))
		b.WriteString("\nUse `eligibility_back` to change your last answer or `eligibility_reset` to start over.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Progress:** step %d of %d\n\n", v.Step+1, v.TotalSteps)
	if v.CurrentQuestion == nil {
		b.WriteString("No question to show. Call `eligibility_next` to see your recommendation.\n")
		return b.String()
	}

	q := v.CurrentQuestion
	fmt.Fprintf(&b, "## %s\n\n", q.Text)
	fmt.Fprintf(&b, "Question `%s` (%s)\n\n", q.ID, q.Kind)
	selected := v.Answers[q.ID]
	for _, o := range q.Options {
		mark := " "
		if selected.Has(o.ID) {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] `%s` %s\n", mark, o.ID, o.Label)
	}

	b.WriteString("\n")
	switch {
	case !v.HasValidAnswer && q.Kind == catalog.KindMulti:
		fmt.Fprintf(&b, "Select one or more options with `eligibility_answer` (question_id `%s`, comma-separated option_ids).\n", q.ID)
	case !v.HasValidAnswer:
		fmt.Fprintf(&b, "Select an option with `eligibility_answer` (question_id `%s`).\n", q.ID)
	case v.IsLastQuestion:
		b.WriteString("This is the last question. Call `eligibility_next` to see your recommendation.\n")
	default:
		b.WriteString("Call `eligibility_next` to continue.\n")
	}
	return b.String()
}

func renderRecommendation(r *eligibility.MatchResult) string {
	if r == nil || !r.Found {
		return "## No specific program matched\n\n" +
			"Sheraa runs programs for students, founders, SMEs and global companies. " +
			"Browse all programs or contact the team to find the right fit.\n"
	}
	var b strings.Builder
	p := r.Program
	fmt.Fprintf(&b, "## Recommended program: %s\n\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}
	if len(p.Benefits) > 0 {
		b.WriteString("**Benefits:**\n")
		for _, benefit := range p.Benefits {
			fmt.Fprintf(&b, "- %s\n", benefit)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "**Learn more:** %s\n", p.Link)
	fmt.Fprintf(&b, "**Match:** %s\n", r.Tier)
	return b.String()
}
