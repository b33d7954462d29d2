package handler

import (
	"souqtech/internal/infrastructure/storage"
	"souqtech/pkg/errors"
	"souqtech/pkg/response"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

// maxImageSize caps uploads at 5 MB.
const maxImageSize = 5 << 20

// UploadImage accepts a multipart image and returns its public URL. The
// folder form field groups uploads per surface (products, gallery, offers).
func (h *FileHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file", err))
	}
	if fileHeader.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read file", err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.BadRequest("Upload failed", err))
	}

	return response.Created(c, map[string]string{"url": url})
}

func (h *FileHandler) DeleteImage(c echo.Context) error {
	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.DeleteImage(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, errors.BadRequest("Delete failed", err))
	}

	return response.Success(c, map[string]string{"url": req.URL})
}
