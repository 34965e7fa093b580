package adminauth

import (
	"context"

	"github.com/ruangpeduli/donation-backend/utils"
)

type Service interface {
	Login(ctx context.Context, password string) (*Session, error)
	ValidateToken(ctx context.Context, token string) error
}

type service struct {
	credentials CredentialValidator
	tokens      TokenStore
}

func NewService(credentials CredentialValidator, tokens TokenStore) Service {
	return &service{credentials: credentials, tokens: tokens}
}

func (s *service) Login(ctx context.Context, password string) (*Session, error) {
	if err := s.credentials.Validate(password); err != nil {
		return nil, err
	}
	session, err := s.tokens.Issue(ctx)
	if err != nil {
		return nil, err
	}
	utils.Emit("admin_login", map[string]any{
		"expires_at": session.ExpiresAt,
	})
	return session, nil
}

func (s *service) ValidateToken(ctx context.Context, token string) error {
	return s.tokens.ValidateToken(ctx, token)
}
