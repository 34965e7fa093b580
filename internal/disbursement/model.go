package disbursement

import "time"

// Disbursement is a running ledger entry for funds released to relief
// efforts. Rows are append-only and carry no status; they are not tied
// to individual donations.
type Disbursement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Disbursement) TableName() string {
	return "disbursements"
}

// DisbursementActivity is one entry on a disbursement's timeline. The
// activity date is supplied by the caller and is distinct from the row
// creation time; listings order by it, not by insertion order.
type DisbursementActivity struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	DisbursementID uint          `gorm:"not null;index" json:"disbursement_id"`
	Disbursement   *Disbursement `gorm:"foreignKey:DisbursementID;constraint:OnDelete:CASCADE" json:"-"`
	ActivityDate   time.Time     `gorm:"not null" json:"activity_date"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (DisbursementActivity) TableName() string {
	return "disbursement_activities"
}

// ActivityFile records a pointer to evidence media (photos, receipts)
// held in external storage. Only the URL and display metadata live here.
type ActivityFile struct {
	ID          uint                  `gorm:"primaryKey" json:"id"`
	ActivityID  uint                  `gorm:"not null;index" json:"activity_id"`
	Activity    *DisbursementActivity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"-"`
	FileURL     string                `gorm:"type:text;not null" json:"file_url"`
	DisplayName string                `gorm:"size:255" json:"display_name"`
	FileType    string                `gorm:"size:100" json:"file_type,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

func (ActivityFile) TableName() string {
	return "activity_files"
}
