package adminauth

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

type Repository interface {
	CreateSession(ctx context.Context, s *AdminSession) error
	GetByToken(ctx context.Context, token string) (*AdminSession, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSession(ctx context.Context, s *AdminSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByToken(ctx context.Context, token string) (*AdminSession, error) {
	var s AdminSession
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundError{Resource: "session", Err: err}
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&AdminSession{})
	return res.RowsAffected, res.Error
}
