package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnswerTool handles the eligibility_answer MCP tool.
// It records the selection for one question without advancing.
type AnswerTool struct {
	reg *session.Registry
}

// NewAnswerTool creates an AnswerTool backed by the session registry.
func NewAnswerTool(reg *session.Registry) *AnswerTool {
	return &AnswerTool{reg: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *AnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_answer",
		mcp.WithDescription(
			"Record the answer to a question of an eligibility session. "+
				"Single-choice questions take exactly one option id; multi-choice "+
				"questions take a comma-separated list that replaces the previous "+
				"selection. Pass an empty list to clear. Does not advance: call "+
				"`eligibility_next` afterwards.",
		),
		sessionIDParam(),
		mcp.WithString("question_id",
			mcp.Required(),
			mcp.Description("ID of the question being answered (shown next to the question)."),
		),
		mcp.WithString("option_ids",
			mcp.Required(),
			mcp.Description("Option id, or comma-separated option ids for multi-choice questions."),
		),
	)
}

// Handle processes the eligibility_answer tool call.
func (t *AnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireSessionID(req)
	if errResult != nil {
		return errResult, nil
	}
	questionID := strings.TrimSpace(req.GetString("question_id", ""))
	if questionID == "" {
		return mcp.NewToolResultError("'question_id' is required"), nil
	}

	q, ok := t.reg.Catalog().Question(questionID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown question %q.", questionID)), nil
	}

	raw := req.GetString("option_ids", "")
	answer, msg := buildAnswer(q, raw)
	if msg != "" {
		return mcp.NewToolResultError(msg), nil
	}

	var view eligibility.View
	if err := t.reg.Do(id, func(w *eligibility.Wizard) error {
		w.SelectAnswer(q.ID, answer)
		view = w.View()
		return nil
	}); err != nil {
		return resultFor(id, err)
	}
	return mcp.NewToolResultText(renderView(id, view)), nil
}

// buildAnswer validates raw option ids against q. A non-empty message is a
// user-facing rejection.
func buildAnswer(q catalog.Question, raw string) (eligibility.Answer, string) {
	if q.Kind == catalog.KindText {
		return eligibility.Single(strings.TrimSpace(raw)), ""
	}
	a, err := eligibility.AnswerFor(q, parseOptionIDs(raw))
	switch {
	case errors.Is(err, eligibility.ErrUnknownOption):
		return eligibility.Answer{}, fmt.Sprintf(
			"%v. Valid options: %s.", err, optionList(q))
	case errors.Is(err, eligibility.ErrTooManyOptions):
		return eligibility.Answer{}, fmt.Sprintf("Question `%s` accepts a single option.", q.ID)
	case err != nil:
		return eligibility.Answer{}, err.Error()
	}
	return a, ""
}

func optionList(q catalog.Question) string {
	ids := make([]string, len(q.Options))
	for i, o := range q.Options {
		ids[i] = "`" + o.ID + "`"
	}
	return strings.Join(ids, ", ")
}
