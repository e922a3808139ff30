package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"kisankalyan.app/internal/core/reference"
)

// getTechniques handles GET /api/farming/techniques requests
func (s *HTTPServerAdapter) getTechniques(c *gin.Context) {
	catalog, err := s.referenceUseCase.GetTechniques(c.Request.Context(), c.DefaultQuery("category", reference.CategoryAll))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// getSchemes handles GET /api/farming/schemes requests
func (s *HTTPServerAdapter) getSchemes(c *gin.Context) {
	schemes, err := s.referenceUseCase.GetSchemes(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schemes)
}

// getLaws handles GET /api/farming/laws requests
func (s *HTTPServerAdapter) getLaws(c *gin.Context) {
	laws, err := s.referenceUseCase.GetLaws(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, laws)
}

// searchReference handles GET /api/farming/search requests
func (s *HTTPServerAdapter) searchReference(c *gin.Context) {
	results, err := s.referenceUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
