// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it injects the shared catalog and session
// registry into the tools, prompts and resources that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"github.com/HendryAvila/sheraa-eligibility/internal/prompts"
	"github.com/HendryAvila/sheraa-eligibility/internal/resources"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/HendryAvila/sheraa-eligibility/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with every eligibility tool, prompt and
// resource registered against reg.
func New(reg *session.Registry, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		"sheraa-eligibility",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// Blocked steps and navigation requests have no UI here, so they go
	// to the log.
	reg.SetObserver(tools.NewLogObserver(logger.Named("wizard")))

	// --- Register session tools ---

	startTool := tools.NewStartTool(reg)
	s.AddTool(startTool.Definition(), startTool.Handle)

	answerTool := tools.NewAnswerTool(reg)
	s.AddTool(answerTool.Definition(), answerTool.Handle)

	nextTool := tools.NewNextTool(reg)
	s.AddTool(nextTool.Definition(), nextTool.Handle)

	backTool := tools.NewBackTool(reg)
	s.AddTool(backTool.Definition(), backTool.Handle)

	resetTool := tools.NewResetTool(reg)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	statusTool := tools.NewStatusTool(reg)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	openTool := tools.NewOpenTool(reg)
	s.AddTool(openTool.Definition(), openTool.Handle)

	closeTool := tools.NewCloseTool(reg)
	s.AddTool(closeTool.Definition(), closeTool.Handle)

	// --- Register catalog tools ---

	checkTool := tools.NewCheckCatalogTool(reg.Catalog())
	s.AddTool(checkTool.Definition(), checkTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	programsPrompt := prompts.NewProgramsPrompt()
	s.AddPrompt(programsPrompt.Definition(), programsPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(reg.Catalog())
	s.AddResource(resourceHandler.QuestionsResource(), resourceHandler.HandleQuestions)
	s.AddResource(resourceHandler.ProgramsResource(), resourceHandler.HandlePrograms)
	s.AddResource(resourceHandler.CheckResource(), resourceHandler.HandleCheck)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to run an eligibility check.
func serverInstructions() string {
	return `You have access to the Sheraa eligibility checker.

## WHEN TO USE IT

Suggest an eligibility check when the user asks which Sheraa program,
accelerator or membership fits them, or describes themselves as a student,
founder, SME owner or international startup looking for support.

## HOW A CHECK WORKS

1. ` + "`eligibility_start`" + ` opens a session and shows the first question: who the user is.
2. Record each answer with ` + "`eligibility_answer`" + ` (question_id + option_ids), then call ` + "`eligibility_next`" + `.
3. The user's persona decides which questions follow. After the last one the recommended program is shown.
4. ` + "`eligibility_back`" + ` goes back one step; from the first question of a branch it returns to the persona question and clears the branch.
5. ` + "`eligibility_open`" + ` gives the link of the recommended program. ` + "`eligibility_close`" + ` discards the session.

## RULES

- Never answer on the user's behalf. Ask, then record exactly what they chose.
- Multi-choice questions accept several comma-separated option ids.
- If ` + "`eligibility_next`" + ` says a selection is required, ask the question again.
- Answers are not stored; closing a session forgets them.
- The catalogs are readable as resources: ` + resources.QuestionsURI + ` and ` + resources.ProgramsURI + `.`
}
