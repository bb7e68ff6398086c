package model

import (
	"time"
)

// Like PostID 与 CommentID 只会填其一
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_likes_user_id" json:"user_id"`
	PostID    *uint64   `gorm:"index:idx_likes_post_id" json:"post_id,omitempty"`
	CommentID *uint64   `gorm:"index:idx_comment_id" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
