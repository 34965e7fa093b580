package adminauth

import (
	"context"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenStore mints and checks admin bearer tokens. The opaque store
// keeps sessions in the database; the signed store is stateless and
// embeds the expiry in an HMAC-signed token.
type TokenStore interface {
	Issue(ctx context.Context) (*Session, error)
	ValidateToken(ctx context.Context, token string) error
}

// NewTokenStore selects an implementation by mode. Anything other than
// "signed" gets the opaque database-backed store.
func NewTokenStore(mode, secret string, repo Repository, ttl time.Duration) TokenStore {
	if mode == "signed" && secret != "" {
		return &signedStore{secret: []byte(secret), ttl: ttl}
	}
	return &opaqueStore{repo: repo, ttl: ttl}
}

type opaqueStore struct {
	repo Repository
	ttl  time.Duration
}

func (s *opaqueStore) Issue(ctx context.Context) (*Session, error) {
	now := time.Now()

	// best-effort housekeeping; login must not fail because of it
	if _, err := s.repo.DeleteExpired(ctx, now); err != nil {
		log.Printf("[AUTH] expired session cleanup failed: %v", err)
	}

	session := &AdminSession{
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return &Session{Token: session.Token, ExpiresAt: session.ExpiresAt}, nil
}

func (s *opaqueStore) ValidateToken(ctx context.Context, token string) error {
	if token == "" {
		return domain.UnauthorizedError{}
	}
	session, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return domain.UnauthorizedError{}
	}
	if !session.ExpiresAt.After(time.Now()) {
		return domain.UnauthorizedError{}
	}
	return nil
}

type signedStore struct {
	secret []byte
	ttl    time.Duration
}

func (s *signedStore) Issue(_ context.Context) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, domain.InternalError{Msg: "token signing failed", Err: err}
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *signedStore) ValidateToken(_ context.Context, token string) error {
	if token == "" {
		return domain.UnauthorizedError{}
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.UnauthorizedError{}
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.UnauthorizedError{}
	}
	return nil
}
