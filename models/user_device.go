package models

import "time"

// UserDevice is one registered push target. The raw FCM/APNs token never
// hits the database; only its hash is stored for dedup, next to the SNS
// endpoint created for it.
type UserDevice struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Platform  string `gorm:"size:16"` // "android" | "ios"
	TokenHash string `gorm:"size:64;index"`

	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
