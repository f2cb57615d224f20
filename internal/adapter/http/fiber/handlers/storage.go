package handlers

import (
	"mime"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/objectstore"
	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// StorageHandler serves stored objects over HTTP. The sistema bucket is
// public; everything else requires a valid signature from SignedURL.
type StorageHandler struct {
	store *objectstore.LocalStore
	log   *zap.Logger
}

func NewStorageHandler(store *objectstore.LocalStore, log *zap.Logger) *StorageHandler {
	return &StorageHandler{
		store: store,
		log:   log,
	}
}

func (h *StorageHandler) Serve(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	path, err := url.PathUnescape(c.Params("*"))
	if err != nil || path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid object path"})
	}

	if bucket != domain.BucketSistema {
		expires, err := strconv.ParseInt(c.Query("expires"), 10, 64)
		if err != nil || !h.store.Verify(bucket, path, c.Query("signature"), expires) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid or expired signature"})
		}
	}

	obj, err := h.store.Get(c.Context(), bucket, path)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Object not found"})
	}

	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.SendStream(obj)
}
