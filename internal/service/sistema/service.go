package sistema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

const (
	cacheKey       = "sistema:config"
	cacheTTL       = 5 * time.Minute
	maxLogoSize    = 2 * 1024 * 1024
	maxFaviconSize = 500 * 1024
)

var imageTypes = map[string]string{
	"image/png":                ".png",
	"image/jpeg":               ".jpg",
	"image/svg+xml":            ".svg",
	"image/webp":               ".webp",
	"image/x-icon":             ".ico",
	"image/vnd.microsoft.icon": ".ico",
}

// Service manages the singleton branding record and its public assets.
type Service struct {
	repo  ports.SistemaConfigRepository
	store ports.ObjectStore
	cache ports.Cache
	log   *zap.Logger
}

func NewService(repo ports.SistemaConfigRepository, store ports.ObjectStore, cache ports.Cache, log *zap.Logger) *Service {
	return &Service{
		repo:  repo,
		store: store,
		cache: cache,
		log:   log,
	}
}

// Get returns the branding config, cached for a few minutes since every
// page load reads it.
func (s *Service) Get(ctx context.Context) (*domain.SistemaConfig, error) {
	if data, err := s.cache.Get(ctx, cacheKey); err == nil && data != nil {
		var cfg domain.SistemaConfig
		if err := json.Unmarshal(data, &cfg); err == nil {
			return &cfg, nil
		}
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.SistemaConfig{ID: domain.SistemaConfigID}
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, cacheTTL); err != nil {
			s.log.Debug("Failed to cache sistema config", zap.Error(err))
		}
	}
	return cfg, nil
}

// UploadLogo stores a new logo in the public bucket and points the config
// at it. Limit is 2MB.
func (s *Service) UploadLogo(ctx context.Context, nome, contentType string, size int64, r io.Reader, userID string) (*domain.SistemaConfig, error) {
	return s.uploadAsset(ctx, "logo", nome, contentType, size, maxLogoSize, r, userID)
}

// UploadFavicon stores a new favicon. Limit is 500KB.
func (s *Service) UploadFavicon(ctx context.Context, nome, contentType string, size int64, r io.Reader, userID string) (*domain.SistemaConfig, error) {
	return s.uploadAsset(ctx, "favicon", nome, contentType, size, maxFaviconSize, r, userID)
}

func (s *Service) uploadAsset(ctx context.Context, kind, nome, contentType string, size, maxSize int64, r io.Reader, userID string) (*domain.SistemaConfig, error) {
	ext, ok := imageTypes[contentType]
	if !ok {
		return nil, domain.ErrInvalidFileType
	}
	if size > maxSize {
		return nil, domain.ErrFileTooLarge
	}

	path := fmt.Sprintf("branding/%s_%d%s", kind, time.Now().UnixMilli(), ext)
	if err := s.store.Put(ctx, domain.BucketSistema, path, r, size, contentType); err != nil {
		return nil, err
	}
	publicURL := s.store.PublicURL(domain.BucketSistema, path)

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.SistemaConfig{ID: domain.SistemaConfigID}
	}

	// Replace the previous asset, best-effort.
	var oldPath *string
	switch kind {
	case "logo":
		oldPath = cfg.LogoPath
		cfg.LogoURL = &publicURL
		cfg.LogoPath = &path
	case "favicon":
		oldPath = cfg.FaviconPath
		cfg.FaviconURL = &publicURL
		cfg.FaviconPath = &path
	}
	cfg.AtualizadoPor = &userID
	cfg.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	if oldPath != nil && *oldPath != path {
		if err := s.store.Delete(ctx, domain.BucketSistema, *oldPath); err != nil {
			s.log.Warn("Failed to delete previous branding asset",
				zap.String("path", *oldPath),
				zap.Error(err),
			)
		}
	}

	s.invalidate(ctx)
	return cfg, nil
}

type UpdateInput struct {
	LogoURL    *string `json:"logo_url,omitempty"`
	FaviconURL *string `json:"favicon_url,omitempty"`
}

// Update sets branding URLs directly, for assets hosted elsewhere.
func (s *Service) Update(ctx context.Context, input UpdateInput, userID string) (*domain.SistemaConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.SistemaConfig{ID: domain.SistemaConfigID}
	}

	if input.LogoURL != nil {
		cfg.LogoURL = input.LogoURL
		cfg.LogoPath = nil
	}
	if input.FaviconURL != nil {
		cfg.FaviconURL = input.FaviconURL
		cfg.FaviconPath = nil
	}
	cfg.AtualizadoPor = &userID
	cfg.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return cfg, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.log.Debug("Failed to invalidate sistema config cache", zap.Error(err))
	}
}
