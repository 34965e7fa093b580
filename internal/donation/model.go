package donation

import "time"

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// OrderIDPrefix keeps gateway order ids recognizable in dashboards.
const OrderIDPrefix = "DON-"

// AnonymousDonorName replaces the stored name in the public feed when
// the donor asked to stay anonymous.
const AnonymousDonorName = "Hamba Allah"

// Donation is one contribution record. Amount is the donor-intended
// amount in rupiah; the gateway fee surcharge is never part of it.
// The order id is generated before the insert so the row is created
// in a single statement already carrying it.
type Donation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Message   *string   `json:"message,omitempty"`
	Anonymous bool      `gorm:"default:false" json:"anonymous"`
	Status    string    `gorm:"default:'pending';index" json:"status"`
	OrderID   string    `gorm:"uniqueIndex;not null" json:"order_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// Fee is the gateway surcharge added on top of the donor amount:
// ceil(amount * 0.7%), computed in integer arithmetic.
func Fee(amount int64) int64 {
	return (amount*7 + 999) / 1000
}
