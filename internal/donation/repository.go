package donation

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	GetByOrderID(ctx context.Context, orderID string) (*Donation, error)
	UpdateStatusByOrderID(ctx context.Context, orderID, status string) (int64, error)
	ListPage(ctx context.Context, offset, limit int) ([]Donation, error)
	Count(ctx context.Context) (int64, error)
	ListFiltered(ctx context.Context, filters AdminFilters) ([]Donation, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, donation *Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Donation, error) {
	var donation Donation
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// UpdateStatusByOrderID is a direct SET keyed by the gateway order id.
// Re-applying the same terminal status is a no-op in effect, which is
// what makes webhook redelivery safe.
func (r *repository) UpdateStatusByOrderID(ctx context.Context, orderID, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Donation{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *repository) ListPage(ctx context.Context, offset, limit int) ([]Donation, error) {
	var donations []Donation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error
	return donations, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Donation{}).
		Count(&total).Error
	return total, err
}

func (r *repository) ListFiltered(ctx context.Context, filters AdminFilters) ([]Donation, int64, error) {
	var donations []Donation
	var total int64

	query := r.db.WithContext(ctx).Model(&Donation{})
	query = applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filters.Page > 0 && filters.Limit > 0 {
		offset := (filters.Page - 1) * filters.Limit
		query = query.Offset(offset).Limit(filters.Limit)
	}

	err := query.Order("created_at DESC").Find(&donations).Error
	return donations, total, err
}

func applyFilters(query *gorm.DB, filters AdminFilters) *gorm.DB {
	if filters.Status != "" && filters.Status != "all" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", filters.To)
	}
	return query
}
