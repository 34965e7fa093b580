package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ruangpeduli/donation-backend/utils"
)

const maxFileSize = 10 << 20 // 10MB

// Only evidence media and receipts are accepted.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

type Handler struct {
	dir     string
	baseURL string
}

func NewHandler(dir, baseURL string) *Handler {
	return &Handler{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload stores one multipart file under a random name and returns its
// public URL. The type check sniffs file content, not the client-sent
// Content-Type header.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "validation_error", "file field is required", nil)
		return
	}
	if fileHeader.Size > maxFileSize {
		utils.Error(c, http.StatusBadRequest, "validation_error", "file exceeds the 10MB limit", nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not read upload", nil)
		return
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not read upload", nil)
		return
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedTypes[contentType]
	if !ok {
		utils.Error(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("file type %s is not allowed", contentType), nil)
		return
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not read upload", nil)
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not store upload", nil)
		return
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not store upload", nil)
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		utils.Error(c, http.StatusInternalServerError, "internal_error", "could not store upload", nil)
		return
	}

	utils.JSON(c, http.StatusCreated, gin.H{
		"file_url":     h.baseURL + "/" + name,
		"file_type":    contentType,
		"display_name": filepath.Base(fileHeader.Filename),
	})
}
