package redis

import (
	"Bloom/internal/pkg/consts"
	"context"
	"strconv"
	"time"
)

const unreadCacheTTL = 5 * time.Minute

// UnreadCountCache 未读数缓存, miss 返回 -1
type UnreadCountCache struct{}

func NewUnreadCountCache() *UnreadCountCache {
	return &UnreadCountCache{}
}

func (s *UnreadCountCache) Get(ctx context.Context, userID uint64) (int64, error) {
	value, err := GetValue(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
	if err != nil {
		return -1, err
	}
	if value == "" {
		return -1, nil
	}
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return -1, nil
	}
	return count, nil
}

func (s *UnreadCountCache) Set(ctx context.Context, userID uint64, count int64) error {
	key := consts.NotificationUnreadKey + strconv.FormatUint(userID, 10)
	return SetWithExpiration(ctx, key, strconv.FormatInt(count, 10), unreadCacheTTL)
}

func (s *UnreadCountCache) Invalidate(ctx context.Context, userID uint64) error {
	return DeleteKey(ctx, consts.NotificationUnreadKey+strconv.FormatUint(userID, 10))
}
