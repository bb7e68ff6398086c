package dto

// FollowUserDTO 关注列表里的用户信息
type FollowUserDTO struct {
	UserID   uint64  `json:"user_id"`
	Username string  `json:"username"`
	Nickname string  `json:"nickname"`
	Bio      *string `json:"bio,omitempty"`
}

// FollowResultDTO 关注动作的结果
type FollowResultDTO struct {
	FollowID uint64 `json:"follow_id"`
	Status   string `json:"status"` // APPROVED / PENDING
}

// FollowRequestDTO 待处理的关注请求
type FollowRequestDTO struct {
	FollowID  uint64        `json:"follow_id"`
	Follower  FollowUserDTO `json:"follower"`
	CreatedAt string        `json:"created_at"`
}

// FollowCountDTO 关注与粉丝数
type FollowCountDTO struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
