package queue

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

// EventPublisher serializes domain change events onto the queue.
type EventPublisher struct {
	queue MessageQueue
	log   *zap.Logger
}

func NewEventPublisher(q MessageQueue, log *zap.Logger) ports.EventPublisher {
	return &EventPublisher{
		queue: q,
		log:   log,
	}
}

func (p *EventPublisher) PublishTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.queue.Publish(SubjectTimeline, data)
}

func (p *EventPublisher) PublishArquivoEvent(ctx context.Context, event *domain.ArquivoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.queue.Publish(SubjectArquivos, data)
}
