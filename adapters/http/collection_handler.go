package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/portfolio-cms/internal/application/usecase/content"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
)

// CollectionHandler serves one entity collection. List and Get are public;
// Create, Update and Delete sit behind the auth middleware at the router.
type CollectionHandler[T portfolio.Entity] struct {
	uc    *content.CollectionUseCase[T]
	label string
}

func NewCollectionHandler[T portfolio.Entity](uc *content.CollectionUseCase[T], label string) *CollectionHandler[T] {
	return &CollectionHandler[T]{uc: uc, label: label}
}

func (h *CollectionHandler[T]) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, items)
}

func (h *CollectionHandler[T]) Get(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	item, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *CollectionHandler[T]) Create(c *gin.Context) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	id, err := h.uc.Create(c.Request.Context(), payload)
	if err != nil {
		c.Error(err)
		return
	}
	respondDataMessage(c, http.StatusCreated, gin.H{"id": id}, h.label+" added successfully")
}

func (h *CollectionHandler[T]) Update(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.uc.Update(c.Request.Context(), id, payload); err != nil {
		c.Error(err)
		return
	}
	respondMessage(c, http.StatusOK, h.label+" updated successfully")
}

func (h *CollectionHandler[T]) Delete(c *gin.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	respondMessage(c, http.StatusOK, h.label+" deleted successfully")
}

func (h *CollectionHandler[T]) entityID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid "+h.label+" ID", err))
		return 0, false
	}
	return id, true
}
