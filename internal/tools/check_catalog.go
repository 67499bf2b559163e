package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

// CheckCatalogTool handles the eligibility_check_catalog MCP tool.
// It runs the catalog self-check and reports issues and warnings.
type CheckCatalogTool struct {
	cat *catalog.Catalog
}

// NewCheckCatalogTool creates a CheckCatalogTool for cat.
func NewCheckCatalogTool(cat *catalog.Catalog) *CheckCatalogTool {
	return &CheckCatalogTool{cat: cat}
}

// Definition returns the MCP tool definition for registration.
func (t *CheckCatalogTool) Definition() mcp.Tool {
	return mcp.NewTool("eligibility_check_catalog",
		mcp.WithDescription(
			"Run the integrity checks over the loaded question and program catalogs: "+
				"unique ids, resolvable dependencies, a single entry question and "+
				"criteria that name real questions.",
		),
	)
}

// Handle processes the eligibility_check_catalog tool call.
func (t *CheckCatalogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(renderReport(t.cat, catalog.RunProtocolChecks(t.cat))), nil
}

func renderReport(cat *catalog.Catalog, r catalog.CheckReport) string {
	var b strings.Builder
	b.WriteString("# Catalog Check\n\n")
	status := "✅ passed"
	if !r.OK {
		status = "❌ failed"
	}
	fmt.Fprintf(&b, "**Status:** %s\n", status)
	fmt.Fprintf(&b, "**Questions:** %d\n", cat.Len())
	fmt.Fprintf(&b, "**Programs:** %d\n\n", cat.NumPrograms())

	writeList(&b, "Issues", r.Issues)
	writeList(&b, "Warnings", r.Warnings)
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
