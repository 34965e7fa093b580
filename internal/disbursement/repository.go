package disbursement

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, d *Disbursement) error
	GetByID(ctx context.Context, id uint) (*Disbursement, error)
	ListPage(ctx context.Context, offset, limit int) ([]Disbursement, error)
	Count(ctx context.Context) (int64, error)

	CreateActivity(ctx context.Context, a *DisbursementActivity) error
	ListActivities(ctx context.Context, disbursementID uint) ([]DisbursementActivity, error)

	CreateFile(ctx context.Context, f *ActivityFile) error
	ListFiles(ctx context.Context, activityID uint) ([]ActivityFile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Disbursement, error) {
	var d Disbursement
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFoundError{Resource: "disbursement", Err: err}
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListPage(ctx context.Context, offset, limit int) ([]Disbursement, error) {
	var rows []Disbursement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Disbursement{}).Count(&total).Error
	return total, err
}

func (r *repository) CreateActivity(ctx context.Context, a *DisbursementActivity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListActivities orders by the caller-supplied activity date, not by
// insertion order.
func (r *repository) ListActivities(ctx context.Context, disbursementID uint) ([]DisbursementActivity, error) {
	var rows []DisbursementActivity
	err := r.db.WithContext(ctx).
		Where("disbursement_id = ?", disbursementID).
		Order("activity_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateFile(ctx context.Context, f *ActivityFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) ListFiles(ctx context.Context, activityID uint) ([]ActivityFile, error) {
	var rows []ActivityFile
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
