package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/core/domain"
	"github.com/adelingruian/MyNotes/internal/core/ports"
)

// SessionService issues signed session tokens backed by a server-held
// session table. The token carries the session id; revoking the session
// in the store invalidates the token even before it expires.
type SessionService struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

func NewSessionService(store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TTL is the lifetime of sessions opened by Login.
func (s *SessionService) TTL() time.Duration { return s.ttl }

func (s *SessionService) Login(ctx context.Context, user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", domain.ErrUnauthenticated
	}

	sess := domain.NewSession(user, s.ttl, s.now())
	if err := s.store.Save(ctx, sess); err != nil {
		return "", fmt.Errorf("login: save session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   sess.UserID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("session_id", sess.ID).Msg("session opened")
	return token, nil
}

func (s *SessionService) ResolveIdentity(ctx context.Context, token string) domain.Identity {
	if token == "" {
		return domain.Anonymous
	}

	claims, err := s.parse(token, jwt.WithTimeFunc(s.now))
	if err != nil {
		s.log.Debug().Err(err).Msg("rejected session token")
		return domain.Anonymous
	}

	sess, err := s.store.Find(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Str("session_id", claims.ID).Msg("session lookup failed")
		}
		return domain.Anonymous
	}
	if sess.UserID != claims.Subject || sess.IsExpiredAt(s.now()) {
		return domain.Anonymous
	}
	return sess.Identity()
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	// Expired tokens still identify a session worth deleting.
	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, claims.ID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("user_id", claims.Subject).Str("session_id", claims.ID).Msg("session closed")
	return nil
}

func (s *SessionService) parse(token string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
