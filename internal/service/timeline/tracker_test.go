package timeline

import (
	"testing"
	"time"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

func TestTracker_MergesUpdateByID(t *testing.T) {
	// Arrange
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", ProjetoID: "proj-1", Status: domain.StatusPendente},
		{ID: "entry-2", ProjetoID: "proj-1", Status: domain.StatusPendente},
	})

	// Act
	applied := tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-1",
		New:       &domain.TimelineEntry{ID: "entry-1", Status: domain.StatusEmAndamento},
	})

	// Assert
	if !applied {
		t.Fatal("expected event to be applied")
	}
	if got := tracker.Get("entry-1").Status; got != domain.StatusEmAndamento {
		t.Errorf("expected em_andamento, got %s", got)
	}
	if got := tracker.Get("entry-2").Status; got != domain.StatusPendente {
		t.Errorf("entry-2 must be untouched, got %s", got)
	}
}

func TestTracker_IgnoresUnknownID(t *testing.T) {
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", Status: domain.StatusPendente},
	})

	applied := tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-1",
		New:       &domain.TimelineEntry{ID: "ghost", Status: domain.StatusConcluido},
	})

	if applied {
		t.Error("expected event for unknown id to be ignored")
	}
}

func TestTracker_IgnoresInsertAndDelete(t *testing.T) {
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", Status: domain.StatusPendente},
	})

	for _, eventType := range []domain.EventType{domain.EventInsert, domain.EventDelete} {
		applied := tracker.Apply(&domain.TimelineEvent{
			EventType: eventType,
			ProjetoID: "proj-1",
			New:       &domain.TimelineEntry{ID: "entry-1", Status: domain.StatusConcluido},
		})
		if applied {
			t.Errorf("expected %s event to be ignored", eventType)
		}
	}
	if got := tracker.Get("entry-1").Status; got != domain.StatusPendente {
		t.Errorf("entry must be unchanged, got %s", got)
	}
}

func TestTracker_IgnoresOtherProjeto(t *testing.T) {
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", Status: domain.StatusPendente},
	})

	applied := tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-2",
		New:       &domain.TimelineEntry{ID: "entry-1", Status: domain.StatusConcluido},
	})

	if applied {
		t.Error("expected event for another projeto to be ignored")
	}
}

func TestTracker_LaterEventWins(t *testing.T) {
	// Arrange
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", Status: domain.StatusPendente},
	})
	start := time.Now()
	done := start.Add(time.Hour)
	obs := "anotação"

	// Act: two sequential updates for the same id, each carrying the
	// full row as published
	tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-1",
		New:       &domain.TimelineEntry{ID: "entry-1", Status: domain.StatusEmAndamento, DataInicio: &start},
	})
	tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-1",
		New: &domain.TimelineEntry{
			ID:            "entry-1",
			Status:        domain.StatusConcluido,
			Observacoes:   &obs,
			DataInicio:    &start,
			DataConclusao: &done,
		},
	})

	// Assert: the later row wins wholesale
	entry := tracker.Get("entry-1")
	if entry.Status != domain.StatusConcluido {
		t.Errorf("expected concluido, got %s", entry.Status)
	}
	if entry.Observacoes == nil || *entry.Observacoes != obs {
		t.Error("expected observacoes from the later event")
	}
	if entry.DataInicio == nil || !entry.DataInicio.Equal(start) {
		t.Error("expected data_inicio carried by the later row")
	}
	if entry.DataConclusao == nil || !entry.DataConclusao.Equal(done) {
		t.Error("expected data_conclusao from the later event")
	}
}

func TestTracker_ClearedNotePropagates(t *testing.T) {
	// Arrange: entry holding a note in local state
	obs := "nota antiga"
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "entry-1", Status: domain.StatusEmAndamento, Observacoes: &obs},
	})

	// Act: the note was erased, so the published row carries nil
	applied := tracker.Apply(&domain.TimelineEvent{
		EventType: domain.EventUpdate,
		ProjetoID: "proj-1",
		New:       &domain.TimelineEntry{ID: "entry-1", Status: domain.StatusEmAndamento, Observacoes: nil},
	})

	// Assert
	if !applied {
		t.Fatal("expected event to be applied")
	}
	if got := tracker.Get("entry-1").Observacoes; got != nil {
		t.Errorf("expected cleared note to propagate, still holding %q", *got)
	}
}

func TestTracker_EntriesKeepsOrder(t *testing.T) {
	tracker := NewTracker("proj-1", []*domain.TimelineEntry{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	})

	entries := tracker.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, entries[i].ID)
		}
	}
}
