package app_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	notedomain "github.com/AlibekovAA/secure-notes/internal/note/domain"
	noterepo "github.com/AlibekovAA/secure-notes/internal/note/repository"
	userdomain "github.com/AlibekovAA/secure-notes/internal/user/domain"
	userrepo "github.com/AlibekovAA/secure-notes/internal/user/repository"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]userdomain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]userdomain.User)}
}

func (m *memUsers) Create(_ context.Context, username, passwordHash string) (userdomain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; ok {
		return userdomain.User{}, userrepo.ErrUsernameAlreadyExists
	}
	u := userdomain.User{
		ID:           userdomain.ID(uuid.NewString()),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[username] = u
	return u, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (userdomain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}
	return u, nil
}

type memNotes struct {
	mu    sync.Mutex
	notes map[notedomain.ID]notedomain.Note
}

func newMemNotes() *memNotes {
	return &memNotes{notes: make(map[notedomain.ID]notedomain.Note)}
}

func (m *memNotes) Create(_ context.Context, note notedomain.Note) (notedomain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[note.ID] = note
	return note, nil
}

func (m *memNotes) ListByOwner(_ context.Context, ownerID string) ([]notedomain.Note, error) {
	return m.filter(func(n notedomain.Note) bool { return n.OwnerID == ownerID }), nil
}

func (m *memNotes) FindByID(_ context.Context, ownerID string, id notedomain.ID) (notedomain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return notedomain.Note{}, noterepo.ErrNoteNotFound
	}
	return n, nil
}

func (m *memNotes) UpdateByID(_ context.Context, ownerID string, id notedomain.ID, title, text string, modifiedAt time.Time) (notedomain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return notedomain.Note{}, noterepo.ErrNoteNotFound
	}
	n.Title, n.Text, n.ModifiedAt = title, text, modifiedAt
	m.notes[id] = n
	return n, nil
}

func (m *memNotes) DeleteByID(_ context.Context, ownerID string, id notedomain.ID) (notedomain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return notedomain.Note{}, noterepo.ErrNoteNotFound
	}
	delete(m.notes, id)
	return n, nil
}

func (m *memNotes) SearchByTitle(_ context.Context, ownerID, fragment string) ([]notedomain.Note, error) {
	fragment = strings.ToLower(fragment)
	return m.filter(func(n notedomain.Note) bool {
		return n.OwnerID == ownerID && strings.Contains(strings.ToLower(n.Title), fragment)
	}), nil
}

func (m *memNotes) filter(keep func(notedomain.Note) bool) []notedomain.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notedomain.Note, 0)
	for _, n := range m.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
