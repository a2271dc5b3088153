package service

import (
	"context"
	"errors"

	commoncrypto "github.com/AlibekovAA/secure-notes/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/secure-notes/internal/common/errors"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	userdomain "github.com/AlibekovAA/secure-notes/internal/user/domain"
	userrepo "github.com/AlibekovAA/secure-notes/internal/user/repository"
)

// dummyPassword feeds the comparison run for unknown usernames so both
// login failure paths pay the same hashing cost.
const dummyPassword = "secure-notes-dummy-password"

type AuthService struct {
	repo      userrepo.Repository
	hasher    commoncrypto.PasswordHasher
	tokens    TokenIssuer
	validator CredentialValidator
	dummyHash string
	log       *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	tokens TokenIssuer,
	log *logger.Logger,
) *AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Warnf("failed to prepare dummy password hash: %v", err)
	}

	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		validator: NewCredentialValidator(),
		dummyHash: dummyHash,
		log:       log,
	}
}

type SignupInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "signup_attempt",
	}).Info("signup attempt")

	if err := s.validator.Validate(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signup_validation_failed",
		}).Warnf("signup validation failed: %v", err)
		recordSignup("invalid")
		return AuthResult{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signup_hash_failed",
		}).Errorf("signup failed: password hash error: %v", err)
		recordSignup("error")
		return AuthResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	user, err := s.repo.Create(ctx, input.Username, hash)
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "signup_username_exists",
			}).Warn("signup failed: already exists")
			recordSignup("duplicate")
			return AuthResult{}, commonerrors.ErrDuplicateUsername
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signup_create_failed",
		}).Errorf("signup failed: %v", err)
		recordSignup("error")
		return AuthResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  string(user.ID),
			"action":   "signup_token_issue_failed",
		}).Errorf("signup failed: token issue error: %v", err)
		recordSignup("error")
		return AuthResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "signup_success",
	}).Info("signup success")
	recordSignup("success")

	return AuthResult{Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.findForLogin(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.hasher.Verify(input.Password, s.dummyHash)
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			recordLogin("invalid")
			return AuthResult{}, commonerrors.ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		recordLogin("error")
		return AuthResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		recordLogin("invalid")
		return AuthResult{}, commonerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  string(user.ID),
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		recordLogin("error")
		return AuthResult{}, commonerrors.ErrInternal.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "login_success",
	}).Info("login success")
	recordLogin("success")

	return AuthResult{Token: token}, nil
}

func (s *AuthService) findForLogin(ctx context.Context, username string) (userdomain.User, error) {
	if !s.validator.StorableUsername(username) {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}
	return s.repo.FindByUsername(ctx, username)
}
