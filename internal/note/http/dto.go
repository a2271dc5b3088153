package http

import (
	"time"

	"github.com/AlibekovAA/secure-notes/internal/note/domain"
)

type noteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type noteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	OwnerID    string    `json:"ownerId"`
}

type deleteResponse struct {
	Message     string       `json:"message"`
	DeletedNote noteResponse `json:"deletedNote"`
}

func toResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:         string(n.ID),
		Title:      n.Title,
		Text:       n.Text,
		CreatedAt:  n.CreatedAt,
		ModifiedAt: n.ModifiedAt,
		OwnerID:    n.OwnerID,
	}
}

func toResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toResponse(n))
	}
	return out
}
