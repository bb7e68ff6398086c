package kafka

import (
	"testing"
	"time"
)

func TestNotificationMessageValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     *NotificationMessage
		wantErr bool
	}{
		{
			name: "帖子点赞消息合法",
			msg:  NewPostMessage(TypeLikePost, 1, 2, 100),
		},
		{
			name: "帖子评论消息合法",
			msg:  NewPostMessage(TypeCommentPost, 1, 2, 100),
		},
		{
			name: "新帖推送消息合法",
			msg:  NewPostMessage(TypeNewPost, 1, 2, 100),
		},
		{
			name: "评论点赞消息合法",
			msg:  NewCommentMessage(TypeLikeComment, 1, 2, 200),
		},
		{
			name: "评论回复消息合法",
			msg:  NewCommentMessage(TypeCommentReply, 1, 2, 200),
		},
		{
			name: "关注消息合法",
			msg:  NewFollowMessage(TypeFollow, 1, 2, 300),
		},
		{
			name: "关注请求消息合法",
			msg:  NewFollowMessage(TypeFollowRequest, 1, 2, 300),
		},
		{
			name: "关注通过消息合法",
			msg:  NewFollowMessage(TypeFollowAccept, 1, 2, 300),
		},
		{
			name: "关注拒绝消息合法",
			msg:  NewFollowMessage(TypeFollowReject, 1, 2, 300),
		},
		{
			name:    "未知类型被拒绝",
			msg:     NewPostMessage("MENTION", 1, 2, 100),
			wantErr: true,
		},
		{
			name:    "缺少引用字段被拒绝",
			msg:     &NotificationMessage{UserID: 1, FromUserID: 2, Type: TypeLikePost},
			wantErr: true,
		},
		{
			name: "多个引用字段被拒绝",
			msg: func() *NotificationMessage {
				m := NewPostMessage(TypeLikePost, 1, 2, 100)
				id := uint64(200)
				m.CommentID = &id
				return m
			}(),
			wantErr: true,
		},
		{
			name:    "引用字段类型不匹配被拒绝",
			msg:     &NotificationMessage{UserID: 1, FromUserID: 2, Type: TypeLikePost, FollowID: ptr(300)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.msg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotificationMessageDedupKey(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	msg := NewPostMessage(TypeLikePost, 1, 2, 100)

	// 同一时间桶内重投递得到同一个键
	if k1, k2 := msg.DedupKey(base), msg.DedupKey(base.Add(3*time.Minute)); k1 != k2 {
		t.Errorf("dedup key changed within a bucket: %q vs %q", k1, k2)
	}

	// 跨桶后允许再次生成
	if k1, k2 := msg.DedupKey(base), msg.DedupKey(base.Add(6*time.Minute)); k1 == k2 {
		t.Errorf("dedup key did not change across buckets: %q", k1)
	}

	// 不同内容的消息互不冲突
	other := NewPostMessage(TypeLikePost, 1, 3, 100)
	if msg.DedupKey(base) == other.DedupKey(base) {
		t.Error("dedup key collided for different actors")
	}
	otherType := NewPostMessage(TypeCommentPost, 1, 2, 100)
	if msg.DedupKey(base) == otherType.DedupKey(base) {
		t.Error("dedup key collided for different types")
	}
}

func ptr(v uint64) *uint64 {
	return &v
}
