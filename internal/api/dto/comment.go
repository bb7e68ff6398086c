package dto

import "time"

// CreateCommentDTO 评论请求, ParentID 非空表示回复某条评论
type CreateCommentDTO struct {
	Content  string  `json:"content" binding:"required" validate:"min=1,max=2000"`
	ParentID *uint64 `json:"parent_id"`
}

// CommentDTO 评论返回对象
type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	UserID    uint64    `json:"user_id"`
	ParentID  *uint64   `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
