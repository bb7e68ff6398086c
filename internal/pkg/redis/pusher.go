package redis

import (
	"Bloom/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"
)

// NotificationPusher 把新通知发布到接收者的个人频道，
// 在线的 WebSocket 连接订阅该频道即可收到实时推送
type NotificationPusher struct{}

func NewNotificationPusher() *NotificationPusher {
	return &NotificationPusher{}
}

func (s *NotificationPusher) Push(ctx context.Context, userID uint64, payload []byte) {
	uid := strconv.FormatUint(userID, 10)

	// 新通知落库后未读数缓存已经过期
	if err := DeleteKey(ctx, consts.NotificationUnreadKey+uid); err != nil {
		log.WarnContext(ctx, "invalidate unread cache failed", "user_id", userID, "err", err)
	}

	channel := consts.NotificationChannelKey + uid
	if err := Publish(ctx, channel, payload); err != nil {
		log.WarnContext(ctx, "notification push failed", "channel", channel, "err", err)
	}
}
