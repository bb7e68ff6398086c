package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const notificationCollection = "notifications"

// NotificationModel 通知收件箱记录
// 引用字段三选一：消费时引用对象已删除则全部为空
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     uint64             `bson:"user_id" json:"userId"`              // 接收者ID
	FromUserID uint64             `bson:"from_user_id" json:"fromUserId"`     // 动作发起者ID
	Type       string             `bson:"type" json:"type"`                   // 通知类型
	PostID     *uint64            `bson:"post_id,omitempty" json:"postId"`    // 关联帖子
	CommentID  *uint64            `bson:"comment_id,omitempty" json:"commentId"` // 关联评论
	FollowID   *uint64            `bson:"follow_id,omitempty" json:"followId"`   // 关联关注边
	Status     string             `bson:"status,omitempty" json:"status"`     // 关注请求处理结果: ACCEPTED / REJECTED
	DedupKey   string             `bson:"dedup_key" json:"-"`                 // 去重键，唯一索引
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
