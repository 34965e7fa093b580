package stats

import (
	"context"

	"gorm.io/gorm"

	"github.com/ruangpeduli/donation-backend/internal/donation"
)

type Repository interface {
	TotalRaised(ctx context.Context) (int64, error)
	TotalDisbursed(ctx context.Context) (int64, error)
	DonorCount(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// TotalRaised sums successful donations only; pending and failed rows
// never contribute.
func (r *repository) TotalRaised(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("donations").
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", donation.StatusSuccess).
		Scan(&total).Error
	return total, err
}

func (r *repository) TotalDisbursed(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("disbursements").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) DonorCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("donations").
		Where("status = ?", donation.StatusSuccess).
		Count(&count).Error
	return count, err
}
