package admin

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	ClientesAtivos    int64 `json:"clientes_ativos"`
	ProjetosAtivos    int64 `json:"projetos_ativos"`
	EtapasPendentes   int64 `json:"etapas_pendentes"`
	EtapasEmAndamento int64 `json:"etapas_em_andamento"`
	EtapasConcluidas  int64 `json:"etapas_concluidas"`
	ProgressoGeral    int   `json:"progresso_geral"`
}

type Service struct {
	clienteRepo  ports.ClienteRepository
	projetoRepo  ports.ProjetoRepository
	timelineRepo ports.TimelineRepository
	log          *zap.Logger
}

func NewService(clienteRepo ports.ClienteRepository, projetoRepo ports.ProjetoRepository, timelineRepo ports.TimelineRepository, log *zap.Logger) *Service {
	return &Service{
		clienteRepo:  clienteRepo,
		projetoRepo:  projetoRepo,
		timelineRepo: timelineRepo,
		log:          log,
	}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.ClientesAtivos, err = s.clienteRepo.CountAtivos(ctx); err != nil {
		return nil, err
	}
	if stats.ProjetosAtivos, err = s.projetoRepo.CountAtivos(ctx); err != nil {
		return nil, err
	}
	if stats.EtapasPendentes, err = s.timelineRepo.CountByStatus(ctx, domain.StatusPendente); err != nil {
		return nil, err
	}
	if stats.EtapasEmAndamento, err = s.timelineRepo.CountByStatus(ctx, domain.StatusEmAndamento); err != nil {
		return nil, err
	}
	if stats.EtapasConcluidas, err = s.timelineRepo.CountByStatus(ctx, domain.StatusConcluido); err != nil {
		return nil, err
	}

	total := stats.EtapasPendentes + stats.EtapasEmAndamento + stats.EtapasConcluidas
	if total > 0 {
		stats.ProgressoGeral = int(math.Round(float64(stats.EtapasConcluidas) / float64(total) * 100))
	}
	return stats, nil
}
