package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	TimelineStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timeline_status_updates_total",
		Help: "Total de atualizações de status de etapas",
	}, []string{"status"})

	ProjetosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timeline_projetos_created_total",
		Help: "Total de projetos criados",
	})

	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timeline_uploads_total",
		Help: "Total de uploads de anexos",
	}, []string{"tipo", "status"})

	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "timeline_upload_bytes",
		Help:    "Tamanho dos arquivos enviados em bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	// Métricas de infraestrutura
	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "timeline_realtime_clients",
		Help: "Número de clientes websocket conectados",
	})

	RealtimeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timeline_realtime_events_total",
		Help: "Total de eventos em tempo real distribuídos",
	}, []string{"subject"})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timeline_login_attempts_total",
		Help: "Total de tentativas de login",
	}, []string{"result"})
)
