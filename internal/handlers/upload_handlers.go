package handlers

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Upload stores a profile photo in the blob store under a generated key and
// returns its URL.
func (h *Handler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file missing"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot open file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot read file"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	// timestamp prefix keeps keys collision free
	name := unsafeChars.ReplaceAllString(fileHeader.Filename, "_")
	key := fmt.Sprintf("uploads/%d_%s", time.Now().UnixMilli(), name)

	url, err := h.blobs.Upload(c.Context(), key, contentType, data)
	if err != nil {
		h.log.Error("upload failed", zap.Error(err), zap.String("key", key))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{"url": url})
}
