package timeline

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/observability/telemetry"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type Service struct {
	timelineRepo ports.TimelineRepository
	projetoRepo  ports.ProjetoRepository
	publisher    ports.EventPublisher
	log          *zap.Logger
}

func NewService(timelineRepo ports.TimelineRepository, projetoRepo ports.ProjetoRepository, publisher ports.EventPublisher, log *zap.Logger) *Service {
	return &Service{
		timelineRepo: timelineRepo,
		projetoRepo:  projetoRepo,
		publisher:    publisher,
		log:          log,
	}
}

// ListByProjeto returns the full timeline of a projeto ordered by fase and
// etapa. Clientes may only read timelines of their own projetos.
func (s *Service) ListByProjeto(ctx context.Context, projetoID string, user *domain.User) ([]*domain.TimelineEntry, error) {
	projeto, err := s.projetoRepo.GetByID(ctx, projetoID)
	if err != nil {
		return nil, err
	}
	if projeto == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsAdmin() {
		if user.ClienteID == nil || *user.ClienteID != projeto.ClienteID {
			return nil, domain.ErrForbidden
		}
	}
	return s.timelineRepo.ListByProjeto(ctx, projetoID)
}

// UpdateStatus moves an entry to the given status, saving notes in the same
// write when provided. Stamping rules:
//   - entering em_andamento sets data_inicio only if it was never set
//   - entering concluido always (re)sets data_conclusao
//
// Backward movement is allowed and does not clear timestamps.
func (s *Service) UpdateStatus(ctx context.Context, entryID string, status domain.StatusEtapa, observacoes *string) (*domain.TimelineEntry, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	entry, err := s.timelineRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	old := *entry
	now := time.Now()

	entry.Status = status
	if observacoes != nil {
		entry.Observacoes = observacoes
	}
	if status == domain.StatusEmAndamento && entry.DataInicio == nil {
		entry.DataInicio = &now
	}
	if status == domain.StatusConcluido {
		entry.DataConclusao = &now
	}
	entry.UpdatedAt = now

	if err := s.timelineRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	telemetry.TimelineStatusUpdates.WithLabelValues(string(status)).Inc()
	s.publishUpdate(ctx, &old, entry)
	return entry, nil
}

// UpdateObservacoes saves notes with status held constant.
func (s *Service) UpdateObservacoes(ctx context.Context, entryID string, observacoes *string) (*domain.TimelineEntry, error) {
	entry, err := s.timelineRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	old := *entry
	entry.Observacoes = observacoes
	entry.UpdatedAt = time.Now()

	if err := s.timelineRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, &old, entry)
	return entry, nil
}

func (s *Service) publishUpdate(ctx context.Context, old, updated *domain.TimelineEntry) {
	event := &domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: updated.ProjetoID,
		New:       updated,
		Old:       old,
	}
	if err := s.publisher.PublishTimelineEvent(ctx, event); err != nil {
		// Realtime delivery is best-effort; the write already succeeded.
		s.log.Error("Failed to publish timeline event",
			zap.String("entry_id", updated.ID),
			zap.Error(err),
		)
	}
}

// Progresso computes the completion percentage of a set of entries,
// rounded to the nearest integer. An empty set is 0, never a division
// by zero.
func Progresso(entries []*domain.TimelineEntry) int {
	if len(entries) == 0 {
		return 0
	}
	done := 0
	for _, e := range entries {
		if e.Status == domain.StatusConcluido {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(entries)) * 100))
}

// ProgressoPorFase computes the percentage per fase, keyed by fase nome.
// Entries without preloaded catalog data are skipped.
func ProgressoPorFase(entries []*domain.TimelineEntry) map[domain.FaseNome]int {
	byFase := make(map[domain.FaseNome][]*domain.TimelineEntry)
	for _, e := range entries {
		if e.Etapa == nil || e.Etapa.Fase == nil {
			continue
		}
		nome := e.Etapa.Fase.Nome
		byFase[nome] = append(byFase[nome], e)
	}

	result := make(map[domain.FaseNome]int, len(domain.FasesOrdenadas))
	for _, nome := range domain.FasesOrdenadas {
		result[nome] = Progresso(byFase[nome])
	}
	return result
}
