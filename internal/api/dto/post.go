package dto

import "time"

// CreatePostDTO 发帖请求
type CreatePostDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=100"`
	Content string `json:"content" binding:"required" validate:"min=1,max=10000"`
}

// UpdatePostDTO 编辑请求, 字段为空表示不修改
type UpdatePostDTO struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=100"`
	Content *string `json:"content" validate:"omitempty,min=1,max=10000"`
}

// PostDTO 帖子返回对象
type PostDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}
