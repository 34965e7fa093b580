package adminauth

import "time"

// AdminSession is a server-side opaque credential. Expiry is the only
// termination path; there is no revocation list.
type AdminSession struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
