package httpapi

import (
	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalogs.
type CatalogHandler struct {
	cat *catalog.Catalog
}

// NewCatalogHandler creates a CatalogHandler for cat.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// GET /api/catalog/questions
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	RespondOK(c, gin.H{"questions": h.cat.Questions()})
}

// GET /api/catalog/programs
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	RespondOK(c, gin.H{"programs": h.cat.Programs()})
}

// GET /api/catalog/check
func (h *CatalogHandler) Check(c *gin.Context) {
	RespondOK(c, gin.H{"report": catalog.RunProtocolChecks(h.cat)})
}
