package models

import (
	"time"
)

// ShareLink is a capability token granting public read access to one owner's content
type ShareLink struct {
	BaseModel
	Hash      string     `json:"hash" gorm:"size:64;not null;uniqueIndex"`
	OwnerID   string     `json:"owner_id" gorm:"size:64;not null;index"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null;index"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// TableName returns the table name for ShareLink
func (ShareLink) TableName() string {
	return "share_links"
}

// IsExpired reports whether the link has passed its expiry at now
func (l *ShareLink) IsExpired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// IsActive reports whether the link can still be resolved at now
func (l *ShareLink) IsActive(now time.Time) bool {
	return l.RevokedAt == nil && !l.IsExpired(now)
}
