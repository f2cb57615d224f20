package timeline

import (
	"sync"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// Tracker holds the in-memory timeline of a single projeto and applies
// incoming realtime events to it. The merge policy is deliberately narrow:
// an UPDATE whose entry id is already held gets its changed fields merged
// over local state; everything else is ignored. No re-fetch, no reordering.
type Tracker struct {
	mu        sync.RWMutex
	projetoID string
	order     []string
	entries   map[string]*domain.TimelineEntry
}

func NewTracker(projetoID string, initial []*domain.TimelineEntry) *Tracker {
	t := &Tracker{
		projetoID: projetoID,
		entries:   make(map[string]*domain.TimelineEntry, len(initial)),
	}
	for _, e := range initial {
		copied := *e
		t.entries[e.ID] = &copied
		t.order = append(t.order, e.ID)
	}
	return t
}

// Apply merges event into local state. Returns true when the event changed
// anything, false when it was ignored.
func (t *Tracker) Apply(event *domain.TimelineEvent) bool {
	if event == nil || event.EventType != domain.EventUpdate || event.New == nil {
		return false
	}
	if event.ProjetoID != "" && event.ProjetoID != t.projetoID {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.entries[event.New.ID]
	if !ok {
		return false
	}

	merge(current, event.New)
	return true
}

// merge copies the mutable fields of src over dst, leaving catalog data
// (etapa, fase) and identity untouched. src is the full post-update row, so
// nullable fields overwrite unconditionally: a cleared note arrives as nil
// and must erase the local one. Status and UpdatedAt are never empty in a
// real row, a zero value there means a malformed event and is skipped.
func merge(dst, src *domain.TimelineEntry) {
	if src.Status != "" {
		dst.Status = src.Status
	}
	dst.Observacoes = src.Observacoes
	dst.DataInicio = src.DataInicio
	dst.DataConclusao = src.DataConclusao
	if !src.UpdatedAt.IsZero() {
		dst.UpdatedAt = src.UpdatedAt
	}
}

// Get returns a copy of the entry, or nil when not held.
func (t *Tracker) Get(id string) *domain.TimelineEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[id]
	if !ok {
		return nil
	}
	copied := *entry
	return &copied
}

// Entries returns copies of all held entries in their original order.
func (t *Tracker) Entries() []*domain.TimelineEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]*domain.TimelineEntry, 0, len(t.order))
	for _, id := range t.order {
		copied := *t.entries[id]
		result = append(result, &copied)
	}
	return result
}
