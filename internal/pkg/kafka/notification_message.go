package kafka

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"
)

type NotificationType string

const (
	TypeLikePost      NotificationType = "LIKE_POST"
	TypeLikeComment   NotificationType = "LIKE_COMMENT"
	TypeCommentPost   NotificationType = "COMMENT_POST"
	TypeCommentReply  NotificationType = "COMMENT_REPLY"
	TypeFollow        NotificationType = "FOLLOW"
	TypeFollowRequest NotificationType = "FOLLOW_REQUEST"
	TypeFollowAccept  NotificationType = "FOLLOW_ACCEPT"
	TypeFollowReject  NotificationType = "FOLLOW_REJECT"
	TypeNewPost       NotificationType = "NEW_POST"
)

type refField int

const (
	refPost refField = iota
	refComment
	refFollow
)

// typeRefField 每种通知类型只允许携带一个引用字段
var typeRefField = map[NotificationType]refField{
	TypeLikePost:      refPost,
	TypeCommentPost:   refPost,
	TypeNewPost:       refPost,
	TypeLikeComment:   refComment,
	TypeCommentReply:  refComment,
	TypeFollow:        refFollow,
	TypeFollowRequest: refFollow,
	TypeFollowAccept:  refFollow,
	TypeFollowReject:  refFollow,
}

// NotificationMessage 生产者与消费者之间的线上契约，发布后不可变
type NotificationMessage struct {
	UserID     uint64           `json:"user_id"`      // 接收者ID
	FromUserID uint64           `json:"from_user_id"` // 动作发起者ID
	Type       NotificationType `json:"type"`
	PostID     *uint64          `json:"post_id,omitempty"`
	CommentID  *uint64          `json:"comment_id,omitempty"`
	FollowID   *uint64          `json:"follow_id,omitempty"`
}

// NewPostMessage 构造携带帖子引用的消息 (LIKE_POST / COMMENT_POST / NEW_POST)
func NewPostMessage(t NotificationType, userID, fromUserID, postID uint64) *NotificationMessage {
	return &NotificationMessage{UserID: userID, FromUserID: fromUserID, Type: t, PostID: &postID}
}

// NewCommentMessage 构造携带评论引用的消息 (LIKE_COMMENT / COMMENT_REPLY)
func NewCommentMessage(t NotificationType, userID, fromUserID, commentID uint64) *NotificationMessage {
	return &NotificationMessage{UserID: userID, FromUserID: fromUserID, Type: t, CommentID: &commentID}
}

// NewFollowMessage 构造携带关注边引用的消息 (FOLLOW / FOLLOW_REQUEST / FOLLOW_ACCEPT / FOLLOW_REJECT)
// FOLLOW_REJECT 携带的是删除前捕获的边ID，消费时允许解析不到
func NewFollowMessage(t NotificationType, userID, fromUserID, followID uint64) *NotificationMessage {
	return &NotificationMessage{UserID: userID, FromUserID: fromUserID, Type: t, FollowID: &followID}
}

// Validate 校验类型已知且恰好填了该类型对应的唯一引用字段
func (m *NotificationMessage) Validate() error {
	want, ok := typeRefField[m.Type]
	if !ok {
		return fmt.Errorf("unknown notification type: %q", m.Type)
	}

	set := 0
	if m.PostID != nil {
		set++
	}
	if m.CommentID != nil {
		set++
	}
	if m.FollowID != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("notification message must carry exactly one reference, got %d", set)
	}

	switch want {
	case refPost:
		if m.PostID == nil {
			return errors.New("notification type requires post_id")
		}
	case refComment:
		if m.CommentID == nil {
			return errors.New("notification type requires comment_id")
		}
	case refFollow:
		if m.FollowID == nil {
			return errors.New("notification type requires follow_id")
		}
	}
	return nil
}

const dedupBucket = 5 * time.Minute

// DedupKey 由消息内容加粗粒度时间桶哈希而来，
// 配合持久层唯一索引把 at-least-once 重投递压成一条记录
func (m *NotificationMessage) DedupKey(now time.Time) string {
	var ref uint64
	switch {
	case m.PostID != nil:
		ref = *m.PostID
	case m.CommentID != nil:
		ref = *m.CommentID
	case m.FollowID != nil:
		ref = *m.FollowID
	}

	bucket := now.Truncate(dedupBucket).Unix()
	raw := string(m.Type) + "|" +
		strconv.FormatUint(m.UserID, 10) + "|" +
		strconv.FormatUint(m.FromUserID, 10) + "|" +
		strconv.FormatUint(ref, 10) + "|" +
		strconv.FormatInt(bucket, 10)

	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
