package model

import (
	"time"
)

// Comment ParentID 非空时为楼中楼回复
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	ParentID  *uint64   `gorm:"index:idx_parent_id" json:"parent_id,omitempty"`
	Content   string    `gorm:"not null" json:"content"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
