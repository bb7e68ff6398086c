package dto

// NotificationDTO 通知返回对象
type NotificationDTO struct {
	ID           string  `json:"id"`
	FromUserID   uint64  `json:"from_user_id"`
	FromUsername string  `json:"from_username"`
	FromNickname string  `json:"from_nickname"`
	Type         string  `json:"type"`
	PostID       *uint64 `json:"post_id,omitempty"`
	CommentID    *uint64 `json:"comment_id,omitempty"`
	FollowID     *uint64 `json:"follow_id,omitempty"`
	Status       string  `json:"status,omitempty"` // 关注请求处理结果
	IsRead       bool    `json:"is_read"`
	CreatedAt    string  `json:"created_at"`
}

// NotificationListDTO 通知列表, 未读数始终为全量统计, 与过滤条件无关
type NotificationListDTO struct {
	List        []*NotificationDTO `json:"list"`
	UnreadCount int64              `json:"unread_count"`
}

// MarkAllReadDTO 一键已读结果
type MarkAllReadDTO struct {
	Affected int64 `json:"affected"`
}
