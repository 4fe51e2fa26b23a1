package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/portfolio-cms/internal/application/usecase/content"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *content.ProfileUseCase
}

func NewProfileHandler(uc *content.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, p)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req portfolio.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	if err := h.profileUseCase.Update(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	respondMessage(c, http.StatusOK, "Profile updated successfully")
}
