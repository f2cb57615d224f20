package sistema

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestGet_ReturnsEmptySingletonWhenUnset(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := &mocks.MockSistemaConfigRepository{
		GetFunc: func(ctx context.Context) (*domain.SistemaConfig, error) {
			return nil, nil
		},
	}
	service := NewService(repo, &mocks.MockObjectStore{}, &mocks.MockCache{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("miss")
		},
	}, newTestLogger())

	// Act
	cfg, err := service.Get(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.ID != domain.SistemaConfigID {
		t.Errorf("expected fixed singleton id, got %s", cfg.ID)
	}
}

func TestGet_ServesFromCache(t *testing.T) {
	// Arrange
	ctx := context.Background()
	logoURL := "https://cdn/logo.png"
	cached, _ := json.Marshal(&domain.SistemaConfig{ID: domain.SistemaConfigID, LogoURL: &logoURL})
	repoCalls := 0
	repo := &mocks.MockSistemaConfigRepository{
		GetFunc: func(ctx context.Context) (*domain.SistemaConfig, error) {
			repoCalls++
			return nil, nil
		},
	}
	cache := &mocks.MockCache{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return cached, nil
		},
	}
	service := NewService(repo, &mocks.MockObjectStore{}, cache, newTestLogger())

	// Act
	cfg, err := service.Get(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repoCalls != 0 {
		t.Errorf("expected cache hit to skip repository, got %d calls", repoCalls)
	}
	if cfg.LogoURL == nil || *cfg.LogoURL != logoURL {
		t.Error("expected cached logo URL")
	}
}

func TestUploadLogo_RejectsOversize(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockSistemaConfigRepository{}, &mocks.MockObjectStore{}, &mocks.MockCache{}, newTestLogger())

	// Act
	_, err := service.UploadLogo(ctx, "logo.png", "image/png", maxLogoSize+1, strings.NewReader("x"), "admin-1")

	// Assert
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadFavicon_RejectsNonImage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockSistemaConfigRepository{}, &mocks.MockObjectStore{}, &mocks.MockCache{}, newTestLogger())

	// Act
	_, err := service.UploadFavicon(ctx, "favicon.pdf", "application/pdf", 100, strings.NewReader("x"), "admin-1")

	// Assert
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestUploadLogo_UpdatesConfigAndInvalidatesCache(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var upserted *domain.SistemaConfig
	repo := &mocks.MockSistemaConfigRepository{
		UpsertFunc: func(ctx context.Context, config *domain.SistemaConfig) error {
			upserted = config
			return nil
		},
	}
	store := &mocks.MockObjectStore{
		PutFunc: func(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
			if bucket != domain.BucketSistema {
				t.Errorf("expected bucket sistema, got %s", bucket)
			}
			return nil
		},
		PublicURLFunc: func(bucket, path string) string {
			return "http://localhost:8080/storage/" + bucket + "/" + path
		},
	}
	invalidated := false
	cache := &mocks.MockCache{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("miss")
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			invalidated = true
			return nil
		},
	}
	service := NewService(repo, store, cache, newTestLogger())

	// Act
	cfg, err := service.UploadLogo(ctx, "logo.png", "image/png", 1024, strings.NewReader("png"), "admin-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if upserted == nil {
		t.Fatal("expected config upsert")
	}
	if cfg.LogoURL == nil || !strings.Contains(*cfg.LogoURL, "/storage/sistema/") {
		t.Error("expected public logo URL pointing at the sistema bucket")
	}
	if cfg.AtualizadoPor == nil || *cfg.AtualizadoPor != "admin-1" {
		t.Error("expected atualizado_por to record the admin")
	}
	if !invalidated {
		t.Error("expected cache invalidation after branding change")
	}
}
