package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/portfolio-cms/internal/application/usecase/content"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
)

// ProjectHandler adds the ?featured=true list filter on top of the standard
// collection operations.
type ProjectHandler struct {
	*CollectionHandler[portfolio.Project]
	uc *content.ProjectUseCase
}

func NewProjectHandler(uc *content.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		CollectionHandler: NewCollectionHandler(uc.CollectionUseCase, "Project"),
		uc:                uc,
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	if c.Query("featured") != "true" {
		h.CollectionHandler.List(c)
		return
	}

	projects, err := h.uc.ListFeatured(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, projects)
}
