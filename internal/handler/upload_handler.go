package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadSize caps uploaded images at 5MB.
const maxUploadSize = 5 << 20

// UploadHandler stores admin-uploaded product images under the assets
// directory and hands back their public URL.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new upload handler writing into uploadDir.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Upload a product image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file, max 5MB"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "no file uploaded", "NO_FILE")
	}

	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
			"error": "file exceeds the 5MB limit",
			"code":  "FILE_TOO_LARGE",
		})
	}

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return badRequest(c, "only image files are allowed", "INVALID_FILE_TYPE")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return respondError(c, err)
	}

	// uuid filename so a hostile original name never reaches the filesystem
	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return respondError(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, maxUploadSize)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, UploadResponse{URL: "/assets/products/" + name})
}
