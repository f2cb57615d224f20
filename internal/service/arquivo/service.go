package arquivo

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/observability/telemetry"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type Service struct {
	arquivoRepo  ports.ArquivoRepository
	timelineRepo ports.TimelineRepository
	projetoRepo  ports.ProjetoRepository
	store        ports.ObjectStore
	publisher    ports.EventPublisher
	signedTTL    time.Duration
	log          *zap.Logger
}

func NewService(arquivoRepo ports.ArquivoRepository, timelineRepo ports.TimelineRepository, projetoRepo ports.ProjetoRepository, store ports.ObjectStore, publisher ports.EventPublisher, signedTTL time.Duration, log *zap.Logger) *Service {
	if signedTTL <= 0 {
		signedTTL = time.Hour
	}
	return &Service{
		arquivoRepo:  arquivoRepo,
		timelineRepo: timelineRepo,
		projetoRepo:  projetoRepo,
		store:        store,
		publisher:    publisher,
		signedTTL:    signedTTL,
		log:          log,
	}
}

// List returns the attachments of a timeline entry, scoped to the caller.
// Non-link rows without a usable URL get a signed URL minted on the fly; a
// minting failure is logged and the row is returned without a link.
func (s *Service) List(ctx context.Context, entryID string, user *domain.User) ([]*domain.Arquivo, error) {
	if err := s.checkScope(ctx, entryID, user); err != nil {
		return nil, err
	}

	arquivos, err := s.arquivoRepo.ListByTimelineEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	for _, a := range arquivos {
		if a.IsLink() || a.BucketName == nil || a.StoragePath == nil {
			continue
		}
		signed, err := s.store.SignedURL(*a.BucketName, *a.StoragePath, s.signedTTL)
		if err != nil {
			s.log.Error("Failed to sign attachment URL",
				zap.String("arquivo_id", a.ID),
				zap.Error(err),
			)
			continue
		}
		a.SignedURL = signed
	}
	return arquivos, nil
}

type UploadInput struct {
	EntryID     string
	Nome        string
	ContentType string
	Tamanho     int64
	UploadedBy  string
	Conteudo    io.Reader
}

// Upload validates type and size before touching storage, stores the object
// under a per-entry path, then writes the metadata row.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Arquivo, error) {
	tipo, ok := domain.MIMETypes[input.ContentType]
	if !ok {
		telemetry.UploadsTotal.WithLabelValues("unknown", "rejected").Inc()
		return nil, domain.ErrInvalidFileType
	}
	if input.Tamanho > domain.MaxFileSize {
		telemetry.UploadsTotal.WithLabelValues(string(tipo), "rejected").Inc()
		return nil, domain.ErrFileTooLarge
	}

	entry, err := s.timelineRepo.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	safeName := unsafeChars.ReplaceAllString(input.Nome, "_")
	path := fmt.Sprintf("projetos/%s/%d_%s", input.EntryID, time.Now().UnixMilli(), safeName)
	bucket := domain.BucketArquivos

	if err := s.store.Put(ctx, bucket, path, input.Conteudo, input.Tamanho, input.ContentType); err != nil {
		telemetry.UploadsTotal.WithLabelValues(string(tipo), "error").Inc()
		return nil, err
	}

	arquivo := &domain.Arquivo{
		ID:                uuid.NewString(),
		ProjetoTimelineID: input.EntryID,
		Nome:              input.Nome,
		Tipo:              tipo,
		Tamanho:           &input.Tamanho,
		BucketName:        &bucket,
		StoragePath:       &path,
		UploadedBy:        input.UploadedBy,
		CreatedAt:         time.Now(),
	}
	if err := s.arquivoRepo.Create(ctx, arquivo); err != nil {
		// Best-effort cleanup of the orphaned object.
		if derr := s.store.Delete(ctx, bucket, path); derr != nil {
			s.log.Warn("Failed to clean up orphaned storage object",
				zap.String("path", path),
				zap.Error(derr),
			)
		}
		return nil, err
	}

	telemetry.UploadsTotal.WithLabelValues(string(tipo), "ok").Inc()
	telemetry.UploadBytes.Observe(float64(input.Tamanho))

	signed, err := s.store.SignedURL(bucket, path, s.signedTTL)
	if err == nil {
		arquivo.SignedURL = signed
	}

	s.publishEvent(ctx, domain.EventInsert, entry.ProjetoID, arquivo, nil)
	return arquivo, nil
}

// AddLink registers an external link attachment. Links never touch storage.
func (s *Service) AddLink(ctx context.Context, entryID, nome, rawURL, uploadedBy string) (*domain.Arquivo, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, domain.ErrInvalidURL
	}

	entry, err := s.timelineRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	if nome == "" {
		nome = parsed.Host
	}
	arquivo := &domain.Arquivo{
		ID:                uuid.NewString(),
		ProjetoTimelineID: entryID,
		Nome:              nome,
		Tipo:              domain.TipoLink,
		URL:               &rawURL,
		UploadedBy:        uploadedBy,
		CreatedAt:         time.Now(),
	}
	if err := s.arquivoRepo.Create(ctx, arquivo); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, domain.EventInsert, entry.ProjetoID, arquivo, nil)
	return arquivo, nil
}

// Remove deletes the storage object first (best-effort, a failure is
// logged and does not block the metadata delete), then the metadata row.
func (s *Service) Remove(ctx context.Context, id string) error {
	arquivo, err := s.arquivoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if arquivo == nil {
		return domain.ErrNotFound
	}

	if !arquivo.IsLink() && arquivo.BucketName != nil && arquivo.StoragePath != nil {
		if err := s.store.Delete(ctx, *arquivo.BucketName, *arquivo.StoragePath); err != nil {
			s.log.Warn("Failed to delete storage object",
				zap.String("arquivo_id", id),
				zap.Error(err),
			)
		}
	}

	if err := s.arquivoRepo.Delete(ctx, id); err != nil {
		return err
	}

	entry, err := s.timelineRepo.GetByID(ctx, arquivo.ProjetoTimelineID)
	if err == nil && entry != nil {
		s.publishEvent(ctx, domain.EventDelete, entry.ProjetoID, nil, arquivo)
	}
	return nil
}

// checkScope verifies the caller may see the entry's projeto. Admins pass
// unconditionally.
func (s *Service) checkScope(ctx context.Context, entryID string, user *domain.User) error {
	if user == nil || user.IsAdmin() {
		return nil
	}
	entry, err := s.timelineRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	projeto, err := s.projetoRepo.GetByID(ctx, entry.ProjetoID)
	if err != nil {
		return err
	}
	if projeto == nil {
		return domain.ErrNotFound
	}
	if user.ClienteID == nil || *user.ClienteID != projeto.ClienteID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) publishEvent(ctx context.Context, eventType domain.EventType, projetoID string, novo, old *domain.Arquivo) {
	event := &domain.ArquivoEvent{
		EventType: eventType,
		ProjetoID: projetoID,
		New:       novo,
		Old:       old,
	}
	if err := s.publisher.PublishArquivoEvent(ctx, event); err != nil {
		s.log.Error("Failed to publish arquivo event", zap.Error(err))
	}
}
