package model

import (
	"time"
)

// Follow 关注边，IsApproved=false 表示待对方确认的关注请求
type Follow struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	FollowerID uint64    `gorm:"not null;uniqueIndex:idx_follower_followed" json:"follower_id"`
	FollowedID uint64    `gorm:"not null;uniqueIndex:idx_follower_followed;index:idx_followed_id" json:"followed_id"`
	IsApproved bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
