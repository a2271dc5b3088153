package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AlibekovAA/secure-notes/internal/common/clock"
	"github.com/AlibekovAA/secure-notes/internal/common/crypto"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	"github.com/AlibekovAA/secure-notes/internal/note/domain"
	noterepo "github.com/AlibekovAA/secure-notes/internal/note/repository"
	"github.com/AlibekovAA/secure-notes/internal/note/service"
)

const (
	alice = "0b9f1c3e-1d2a-4c5b-8e7f-6a5b4c3d2e1f"
	bob   = "7c1e2d3f-4a5b-4c6d-8e9f-0a1b2c3d4e5f"
)

// memRepo applies the same id-and-owner rule as the SQL statements.
type memRepo struct {
	mu    sync.Mutex
	notes map[domain.ID]domain.Note
	err   error
}

func newMemRepo() *memRepo {
	return &memRepo{notes: make(map[domain.ID]domain.Note)}
}

func (m *memRepo) Create(_ context.Context, note domain.Note) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Note{}, m.err
	}
	m.notes[note.ID] = note
	return note, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Note, error) {
	return m.filter(func(n domain.Note) bool { return n.OwnerID == ownerID })
}

func (m *memRepo) FindByID(_ context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Note{}, m.err
	}
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return domain.Note{}, noterepo.ErrNoteNotFound
	}
	return n, nil
}

func (m *memRepo) UpdateByID(_ context.Context, ownerID string, id domain.ID, title, text string, modifiedAt time.Time) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Note{}, m.err
	}
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return domain.Note{}, noterepo.ErrNoteNotFound
	}
	n.Title, n.Text, n.ModifiedAt = title, text, modifiedAt
	m.notes[id] = n
	return n, nil
}

func (m *memRepo) DeleteByID(_ context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.Note{}, m.err
	}
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return domain.Note{}, noterepo.ErrNoteNotFound
	}
	delete(m.notes, id)
	return n, nil
}

func (m *memRepo) SearchByTitle(_ context.Context, ownerID, fragment string) ([]domain.Note, error) {
	needle := strings.ToLower(fragment)
	return m.filter(func(n domain.Note) bool {
		return n.OwnerID == ownerID && strings.Contains(strings.ToLower(n.Title), needle)
	})
}

func (m *memRepo) filter(keep func(domain.Note) bool) ([]domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Note, 0)
	for _, n := range m.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func setupNoteService(t *testing.T) (*service.NoteService, *memRepo, *clock.MockClock) {
	t.Helper()
	repo := newMemRepo()
	c := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return service.NewNoteService(repo, crypto.NewUUIDGenerator(), c, logger.NewNop()), repo, c
}
