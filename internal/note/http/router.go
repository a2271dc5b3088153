package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	commonhttp "github.com/AlibekovAA/secure-notes/internal/common/http"
	"github.com/AlibekovAA/secure-notes/internal/common/jwtverify"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	"github.com/AlibekovAA/secure-notes/internal/note/domain"
	"github.com/AlibekovAA/secure-notes/internal/note/service"
)

type Handler struct {
	notes   service.Service
	timeout time.Duration
	log     *logger.Logger
}

func NewHandler(notes service.Service, requestTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{notes: notes, timeout: requestTimeout, log: log}
}

// Register expects r to be scoped to /api/notes and guarded by the auth
// gate.
func (h *Handler) Register(r chi.Router) {
	withTimeout := commonhttp.WithTimeout(h.timeout)

	r.Get("/", withTimeout(h.list))
	r.Post("/", withTimeout(h.create))
	r.Get("/search", withTimeout(h.search))
	r.Get("/{id}", withTimeout(h.get))
	r.Put("/{id}", withTimeout(h.update))
	r.Delete("/{id}", withTimeout(h.delete))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.List(r.Context(), identity.UserID)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponses(notes))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	note, err := h.notes.Create(r.Context(), identity.UserID, service.NoteInput{Title: req.Title, Text: req.Text})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, toResponse(note))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.Search(r.Context(), identity.UserID, r.URL.Query().Get("title"))
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponses(notes))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), identity.UserID, id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(note))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	note, err := h.notes.Update(r.Context(), identity.UserID, id, service.NoteInput{Title: req.Title, Text: req.Text})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(note))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	note, err := h.notes.Delete(r.Context(), identity.UserID, id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, deleteResponse{
		Message:     "note deleted",
		DeletedNote: toResponse(note),
	})
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (jwtverify.Identity, bool) {
	identity, ok := jwtverify.FromContext(r.Context())
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrMissingToken, h.log)
		return jwtverify.Identity{}, false
	}
	return identity, true
}

// noteID answers a malformed id the same way as a missing note.
func (h *Handler) noteID(w http.ResponseWriter, r *http.Request) (domain.ID, bool) {
	id, err := commonhttp.CanonicalUUID(chi.URLParam(r, "id"))
	if err != nil {
		commonhttp.HandleError(w, r, commonerrors.ErrNotFound, h.log)
		return "", false
	}
	return domain.ID(id), true
}
