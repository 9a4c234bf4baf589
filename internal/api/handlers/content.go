package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/models"
	"capm-lab/internal/content"
)

// ListContent handles GET /api/v1/content
func ListContent(c *gin.Context) {
	sections := content.Sections()
	infos := make([]models.SectionInfo, len(sections))
	for i, s := range sections {
		infos[i] = models.SectionInfo{
			Key:   s.Key,
			Title: s.Title,
			Body:  s.Body,
		}
	}

	c.JSON(http.StatusOK, models.ContentResponse{Sections: infos})
}

// GetContent handles GET /api/v1/content/:section
func GetContent(c *gin.Context) {
	s, err := content.Lookup(c.Param("section"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SECTION_NOT_FOUND",
				Message: err.Error(),
				Details: map[string]interface{}{
					"sections": sectionKeys(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.SectionInfo{
		Key:   s.Key,
		Title: s.Title,
		Body:  s.Body,
	})
}

func sectionKeys() []string {
	sections := content.Sections()
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.Key
	}
	return keys
}
