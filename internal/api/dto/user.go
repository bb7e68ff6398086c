package dto

// UpdateProfileDTO 资料编辑请求, 字段为空表示不修改
type UpdateProfileDTO struct {
	Nickname  *string `json:"nickname" validate:"omitempty,min=1,max=15"`
	Bio       *string `json:"bio" validate:"omitempty,max=200"`
	IsPrivate *bool   `json:"is_private"`
}

// UserDTO 用户返回对象
type UserDTO struct {
	UserID    uint64  `json:"user_id"`
	Username  string  `json:"username"`
	Nickname  string  `json:"nickname"`
	Bio       *string `json:"bio,omitempty"`
	IsPrivate bool    `json:"is_private"`
}
