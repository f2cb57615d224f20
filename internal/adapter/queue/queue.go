package queue

// Subjects carrying realtime change events. Consumers route by the
// projeto_id embedded in the payload.
const (
	SubjectTimeline = "timeline.events"
	SubjectArquivos = "arquivos.events"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
