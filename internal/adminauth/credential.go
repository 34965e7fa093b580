package adminauth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

// CredentialValidator checks the admin login secret. All failures are
// reported as the same unauthorized error; callers must not be able to
// tell a wrong password from a misconfigured server.
type CredentialValidator interface {
	Validate(password string) error
}

// NewCredentialValidator prefers the bcrypt hash when one is
// configured and falls back to plain comparison against the raw
// secret otherwise.
func NewCredentialValidator(password, passwordHash string) CredentialValidator {
	if passwordHash != "" {
		return bcryptCredential{hash: []byte(passwordHash)}
	}
	return plainCredential{secret: password}
}

type plainCredential struct {
	secret string
}

func (v plainCredential) Validate(password string) error {
	if v.secret == "" || password != v.secret {
		return domain.UnauthorizedError{}
	}
	return nil
}

type bcryptCredential struct {
	hash []byte
}

func (v bcryptCredential) Validate(password string) error {
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return domain.UnauthorizedError{}
	}
	return nil
}
