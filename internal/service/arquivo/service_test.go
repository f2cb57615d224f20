package arquivo

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func entryRepo() *mocks.MockTimelineRepository {
	return &mocks.MockTimelineRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.TimelineEntry, error) {
			return &domain.TimelineEntry{ID: id, ProjetoID: "proj-1"}, nil
		},
	}
}

func TestUpload_RejectsOversizeBeforeStorage(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storageCalls := 0
	store := &mocks.MockObjectStore{
		PutFunc: func(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
			storageCalls++
			return nil
		},
	}
	service := NewService(&mocks.MockArquivoRepository{}, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	_, err := service.Upload(ctx, UploadInput{
		EntryID:     "entry-1",
		Nome:        "grande.pdf",
		ContentType: "application/pdf",
		Tamanho:     domain.MaxFileSize + 1,
		Conteudo:    strings.NewReader("x"),
	})

	// Assert
	if !errors.Is(err, domain.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if storageCalls != 0 {
		t.Error("oversize upload must be rejected before any storage call")
	}
}

func TestUpload_RejectsDisallowedType(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockArquivoRepository{}, entryRepo(), &mocks.MockProjetoRepository{}, &mocks.MockObjectStore{}, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	_, err := service.Upload(ctx, UploadInput{
		EntryID:     "entry-1",
		Nome:        "virus.exe",
		ContentType: "application/x-msdownload",
		Tamanho:     100,
		Conteudo:    strings.NewReader("x"),
	})

	// Assert
	if !errors.Is(err, domain.ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestUpload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var storedPath string
	store := &mocks.MockObjectStore{
		PutFunc: func(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
			if bucket != domain.BucketArquivos {
				t.Errorf("expected bucket arquivos, got %s", bucket)
			}
			storedPath = path
			return nil
		},
		SignedURLFunc: func(bucket, path string, expires time.Duration) (string, error) {
			return "https://signed/" + path, nil
		},
	}
	var created *domain.Arquivo
	repo := &mocks.MockArquivoRepository{
		CreateFunc: func(ctx context.Context, arquivo *domain.Arquivo) error {
			created = arquivo
			return nil
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	arquivo, err := service.Upload(ctx, UploadInput{
		EntryID:     "entry-1",
		Nome:        "relatório final.pdf",
		ContentType: "application/pdf",
		Tamanho:     2048,
		UploadedBy:  "user-1",
		Conteudo:    strings.NewReader("conteudo"),
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created == nil {
		t.Fatal("expected metadata row to be written")
	}
	if arquivo.Tipo != domain.TipoPDF {
		t.Errorf("expected tipo pdf, got %s", arquivo.Tipo)
	}
	if !strings.HasPrefix(storedPath, "projetos/entry-1/") {
		t.Errorf("expected per-entry path segment, got %s", storedPath)
	}
	if strings.Contains(storedPath, " ") {
		t.Errorf("expected sanitized file name in path, got %s", storedPath)
	}
	if arquivo.SignedURL == "" {
		t.Error("expected a resolvable URL on the uploaded attachment")
	}
}

func TestUpload_MetadataFailureCleansUpObject(t *testing.T) {
	// Arrange
	ctx := context.Background()
	deleted := false
	store := &mocks.MockObjectStore{
		DeleteFunc: func(ctx context.Context, bucket, path string) error {
			deleted = true
			return nil
		},
	}
	repo := &mocks.MockArquivoRepository{
		CreateFunc: func(ctx context.Context, arquivo *domain.Arquivo) error {
			return errors.New("database error")
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	_, err := service.Upload(ctx, UploadInput{
		EntryID:     "entry-1",
		Nome:        "doc.pdf",
		ContentType: "application/pdf",
		Tamanho:     100,
		Conteudo:    strings.NewReader("x"),
	})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !deleted {
		t.Error("expected best-effort cleanup of the stored object")
	}
}

func TestAddLink_InvalidURL(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockArquivoRepository{}, entryRepo(), &mocks.MockProjetoRepository{}, &mocks.MockObjectStore{}, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	_, err := service.AddLink(ctx, "entry-1", "Drive", "not a url", "user-1")

	// Assert
	if !errors.Is(err, domain.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestAddLink_NeverCarriesStoragePath(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var created *domain.Arquivo
	repo := &mocks.MockArquivoRepository{
		CreateFunc: func(ctx context.Context, arquivo *domain.Arquivo) error {
			created = arquivo
			return nil
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, &mocks.MockObjectStore{}, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	_, err := service.AddLink(ctx, "entry-1", "Planilha", "https://docs.example.com/sheet", "user-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Tipo != domain.TipoLink {
		t.Errorf("expected tipo link, got %s", created.Tipo)
	}
	if created.StoragePath != nil || created.BucketName != nil {
		t.Error("link attachment must never carry a storage path")
	}
}

func TestRemove_LinkSkipsStorageDeletion(t *testing.T) {
	// Arrange
	ctx := context.Background()
	rawURL := "https://example.com"
	repo := &mocks.MockArquivoRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Arquivo, error) {
			return &domain.Arquivo{ID: id, Tipo: domain.TipoLink, URL: &rawURL, ProjetoTimelineID: "entry-1"}, nil
		},
	}
	storageDeletes := 0
	store := &mocks.MockObjectStore{
		DeleteFunc: func(ctx context.Context, bucket, path string) error {
			storageDeletes++
			return nil
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	err := service.Remove(ctx, "arq-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if storageDeletes != 0 {
		t.Errorf("removing a link must not call storage, got %d calls", storageDeletes)
	}
}

func TestRemove_StorageFailureDoesNotBlockMetadataDelete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	bucket := domain.BucketArquivos
	path := "projetos/entry-1/123_doc.pdf"
	metadataDeleted := false
	repo := &mocks.MockArquivoRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Arquivo, error) {
			return &domain.Arquivo{ID: id, Tipo: domain.TipoPDF, BucketName: &bucket, StoragePath: &path, ProjetoTimelineID: "entry-1"}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			metadataDeleted = true
			return nil
		},
	}
	store := &mocks.MockObjectStore{
		DeleteFunc: func(ctx context.Context, bucket, path string) error {
			return errors.New("storage unavailable")
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	err := service.Remove(ctx, "arq-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !metadataDeleted {
		t.Error("metadata delete must proceed after a storage failure")
	}
}

func TestList_MintsSignedURLsForStoredFiles(t *testing.T) {
	// Arrange
	ctx := context.Background()
	bucket := domain.BucketArquivos
	path := "projetos/entry-1/123_doc.pdf"
	rawURL := "https://example.com"
	repo := &mocks.MockArquivoRepository{
		ListByTimelineEntryFunc: func(ctx context.Context, entryID string) ([]*domain.Arquivo, error) {
			return []*domain.Arquivo{
				{ID: "a1", Tipo: domain.TipoPDF, BucketName: &bucket, StoragePath: &path},
				{ID: "a2", Tipo: domain.TipoLink, URL: &rawURL},
			}, nil
		},
	}
	signCalls := 0
	store := &mocks.MockObjectStore{
		SignedURLFunc: func(bucket, path string, expires time.Duration) (string, error) {
			signCalls++
			if expires != time.Hour {
				t.Errorf("expected 1h expiry, got %s", expires)
			}
			return "https://signed/" + path, nil
		},
	}
	service := NewService(repo, entryRepo(), &mocks.MockProjetoRepository{}, store, &mocks.MockEventPublisher{}, time.Hour, newTestLogger())

	// Act
	arquivos, err := service.List(ctx, "entry-1", &domain.User{Role: domain.UserRoleAdmin})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if signCalls != 1 {
		t.Errorf("expected exactly one signed URL mint, got %d", signCalls)
	}
	if arquivos[0].SignedURL == "" {
		t.Error("expected signed URL on stored file")
	}
	if arquivos[1].SignedURL != "" {
		t.Error("links must not get signed URLs")
	}
}
