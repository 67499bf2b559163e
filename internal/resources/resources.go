// Package resources implements MCP resource handlers for the eligibility
// checker.
//
// Resources expose the loaded catalogs as read-only JSON so a host can
// show every question and program without running a session. They use
// URI-based addressing (eligibility://...) following MCP conventions.
package resources

import (
	"context"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	QuestionsURI = "eligibility://catalog/questions"
	ProgramsURI  = "eligibility://catalog/programs"
	CheckURI     = "eligibility://catalog/check"
)

// Handler serves the catalog resources.
type Handler struct {
	cat *catalog.Catalog
}

// NewHandler creates a resource Handler for cat.
func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

// QuestionsResource returns the MCP resource definition for the question catalog.
func (h *Handler) QuestionsResource() mcp.Resource {
	return mcp.NewResource(
		QuestionsURI,
		"Eligibility Questions",
		mcp.WithResourceDescription("Every wizard question in catalog order, with options and dependency links"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleQuestions returns the question catalog as JSON.
func (h *Handler) HandleQuestions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.cat.Questions())
}

// ProgramsResource returns the MCP resource definition for the program catalog.
func (h *Handler) ProgramsResource() mcp.Resource {
	return mcp.NewResource(
		ProgramsURI,
		"Sheraa Programs",
		mcp.WithResourceDescription("Recommendable programs in priority order, with criteria, links and benefits"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandlePrograms returns the program catalog as JSON.
func (h *Handler) HandlePrograms(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.cat.Programs())
}

// CheckResource returns the MCP resource definition for the catalog self-check.
func (h *Handler) CheckResource() mcp.Resource {
	return mcp.NewResource(
		CheckURI,
		"Catalog Check",
		mcp.WithResourceDescription("Integrity report of the loaded catalogs"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCheck returns the self-check report as JSON.
func (h *Handler) HandleCheck(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.RunProtocolChecks(h.cat))
}
