package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minhvu/portfolio-cms/internal/application/service"
	"github.com/minhvu/portfolio-cms/pkg/apperror"
)

// maxUploadSize caps a single uploaded file at 5 MiB.
const maxUploadSize = 5 << 20

type UploadHandler struct {
	uploader service.Uploader
}

func NewUploadHandler(uploader service.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload stores a multipart file under a generated name and returns the path
// clients should reference it by.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.Error(apperror.NewInvalidInput("file exceeds the 5MB limit", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)

	path, err := h.uploader.Upload(c.Request.Context(), file, filename)
	if err != nil {
		c.Error(apperror.NewInternal("failed to store uploaded file", err))
		return
	}

	respondData(c, http.StatusOK, gin.H{"filePath": path})
}
