package domain

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// TimelineEvent is a change notification for one projeto's timeline,
// published on the message queue and fanned out to websocket subscribers.
// Shape follows the realtime feed contract: {eventType, new, old}.
type TimelineEvent struct {
	EventType EventType      `json:"eventType"`
	ProjetoID string         `json:"projeto_id"`
	New       *TimelineEntry `json:"new,omitempty"`
	Old       *TimelineEntry `json:"old,omitempty"`
}

// ArquivoEvent is a change notification for attachments of one projeto.
type ArquivoEvent struct {
	EventType EventType `json:"eventType"`
	ProjetoID string    `json:"projeto_id"`
	New       *Arquivo  `json:"new,omitempty"`
	Old       *Arquivo  `json:"old,omitempty"`
}
