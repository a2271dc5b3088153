package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/AlibekovAA/secure-notes/internal/common/clock"
	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/secure-notes/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	"github.com/AlibekovAA/secure-notes/internal/note/domain"
	noterepo "github.com/AlibekovAA/secure-notes/internal/note/repository"
)

type Service interface {
	Create(ctx context.Context, ownerID string, input NoteInput) (domain.Note, error)
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	Get(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error)
	Update(ctx context.Context, ownerID string, id domain.ID, input NoteInput) (domain.Note, error)
	Delete(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error)
	Search(ctx context.Context, ownerID, fragment string) ([]domain.Note, error)
}

type NoteInput struct {
	Title string
	Text  string
}

type NoteService struct {
	repo        noterepo.Repository
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	validator   NoteValidator
	log         *logger.Logger
}

func NewNoteService(
	repo noterepo.Repository,
	idGenerator commoncrypto.IDGenerator,
	clock clock.Clock,
	log *logger.Logger,
) *NoteService {
	return &NoteService{
		repo:        repo,
		idGenerator: idGenerator,
		clock:       clock,
		validator:   NewNoteValidator(),
		log:         log,
	}
}

func (s *NoteService) Create(ctx context.Context, ownerID string, input NoteInput) (domain.Note, error) {
	if err := s.validator.ValidateNote(input.Title, input.Text); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"action":  "note_create_validation_failed",
		}).Warnf("note create rejected: %v", err)
		recordOperation("create", err)
		return domain.Note{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"action":  "note_create_id_generation_failed",
		}).Errorf("note create failed: id generation error: %v", err)
		recordOperation("create", err)
		return domain.Note{}, commonerrors.ErrInternal.WithCause(err)
	}

	now := s.clock.Now()
	note, err := s.repo.Create(ctx, domain.Note{
		ID:         domain.ID(id),
		Title:      input.Title,
		Text:       input.Text,
		CreatedAt:  now,
		ModifiedAt: now,
		OwnerID:    ownerID,
	})
	if err != nil {
		err = s.translate(ctx, err, ownerID, "", "note_create")
		recordOperation("create", err)
		return domain.Note{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": ownerID,
		"note_id": string(note.ID),
		"action":  "note_created",
	}).Info("note created")
	recordOperation("create", nil)

	return note, nil
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		err = s.translate(ctx, err, ownerID, "", "note_list")
		recordOperation("list", err)
		return nil, err
	}
	recordOperation("list", nil)
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		err = s.translate(ctx, err, ownerID, id, "note_get")
		recordOperation("get", err)
		return domain.Note{}, err
	}
	recordOperation("get", nil)
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, ownerID string, id domain.ID, input NoteInput) (domain.Note, error) {
	if err := s.validator.ValidateNote(input.Title, input.Text); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"note_id": string(id),
			"action":  "note_update_validation_failed",
		}).Warnf("note update rejected: %v", err)
		recordOperation("update", err)
		return domain.Note{}, err
	}

	note, err := s.repo.UpdateByID(ctx, ownerID, id, input.Title, input.Text, s.clock.Now())
	if err != nil {
		err = s.translate(ctx, err, ownerID, id, "note_update")
		recordOperation("update", err)
		return domain.Note{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": ownerID,
		"note_id": string(id),
		"action":  "note_updated",
	}).Info("note updated")
	recordOperation("update", nil)

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID string, id domain.ID) (domain.Note, error) {
	note, err := s.repo.DeleteByID(ctx, ownerID, id)
	if err != nil {
		err = s.translate(ctx, err, ownerID, id, "note_delete")
		recordOperation("delete", err)
		return domain.Note{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": ownerID,
		"note_id": string(id),
		"action":  "note_deleted",
	}).Info("note deleted")
	recordOperation("delete", nil)

	return note, nil
}

// Search refuses an empty fragment instead of matching everything. A
// fragment longer than any title can hold matches nothing and skips the
// store.
func (s *NoteService) Search(ctx context.Context, ownerID, fragment string) ([]domain.Note, error) {
	if err := s.validator.ValidateFragment(fragment); err != nil {
		recordOperation("search", err)
		return nil, err
	}

	if utf8.RuneCountInString(fragment) > constants.SearchFragmentMaxLength {
		recordOperation("search", nil)
		return []domain.Note{}, nil
	}

	notes, err := s.repo.SearchByTitle(ctx, ownerID, fragment)
	if err != nil {
		err = s.translate(ctx, err, ownerID, "", "note_search")
		recordOperation("search", err)
		return nil, err
	}
	recordOperation("search", nil)
	return notes, nil
}

func (s *NoteService) translate(ctx context.Context, err error, ownerID string, id domain.ID, action string) error {
	fields := logger.Fields{"user_id": ownerID}
	if id != "" {
		fields["note_id"] = string(id)
	}

	if errors.Is(err, noterepo.ErrNoteNotFound) {
		fields["action"] = action + "_not_found"
		s.log.WithFields(ctx, fields).Warn("note not found for owner")
		return commonerrors.ErrNotFound
	}

	fields["action"] = action + "_failed"
	s.log.WithFields(ctx, fields).Errorf("note store failure: %v", err)
	return commonerrors.ErrInternal.WithCause(err)
}
