package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// CredentialService implements registration and password verification.
type CredentialService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	log    zerolog.Logger

	// dummyHash is verified against when the email is unknown so that both
	// failure paths cost one hash computation.
	dummyHash string
}

func NewCredentialService(repo ports.UserRepository, hasher PasswordHasher, log zerolog.Logger) *CredentialService {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		log.Warn().Err(err).Msg("could not precompute dummy password hash")
	}
	return &CredentialService{repo: repo, hasher: hasher, log: log, dummyHash: dummy}
}

// Register creates a user. A taken email yields domain.ErrDuplicateEmail
// and no record is written.
func (s *CredentialService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrIncompleteAccount
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	// The unique email index still rejects a concurrent registration that
	// slipped past the lookup above.
	user, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Verify checks email and password. Unknown email and wrong password both
// return domain.ErrInvalidCredentials.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("verify: %w", err)
	}

	target := s.dummyHash
	if user != nil {
		target = user.PasswordHash
	}

	ok, verr := s.hasher.Verify(password, target)
	if verr != nil && user != nil {
		s.log.Error().Err(verr).Str("user_id", user.ID).Msg("stored password hash is unreadable")
	}
	if user == nil || verr != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
