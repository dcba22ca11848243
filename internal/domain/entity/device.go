package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a browser or phone that receives order status pushes.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // client-chosen, unique per user
	Platform  string    `json:"platform"` // ios, android or web
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
