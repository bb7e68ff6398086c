package consts

const (
	// NotificationUnreadKey 未读数缓存, 后接用户ID
	NotificationUnreadKey = "notification:unread:count:"
	// NotificationChannelKey 实时推送频道, 后接用户ID
	NotificationChannelKey = "notification:push:"
)
