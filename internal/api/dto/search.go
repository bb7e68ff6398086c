package dto

import "time"

// SearchUserDTO 搜索命中的用户
type SearchUserDTO struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Nickname string  `json:"nickname"`
	Bio      *string `json:"bio,omitempty"`
}

// SearchPostDTO 搜索命中的帖子
type SearchPostDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchHashtagDTO 搜索命中的标签
type SearchHashtagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SearchResultDTO 综合搜索结果, type=all 时三块都有值
type SearchResultDTO struct {
	Users    []*SearchUserDTO    `json:"users,omitempty"`
	Posts    []*SearchPostDTO    `json:"posts,omitempty"`
	Hashtags []*SearchHashtagDTO `json:"hashtags,omitempty"`
}
