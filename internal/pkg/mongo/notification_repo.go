package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *NotificationModel) error
	GetNotificationList(ctx context.Context, userID uint64, unreadOnly bool, limit, offset int64) ([]*NotificationModel, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*NotificationModel, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkAsRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllAsRead(ctx context.Context, userID uint64) (int64, error)
	SetFollowDecision(ctx context.Context, id primitive.ObjectID, decision string) error
}

type notificationRepoImpl struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepoImpl{
		col: db.Collection(notificationCollection),
	}
}

// Create 插入新通知，撞唯一索引由调用方通过 mongo.IsDuplicateKeyError 识别
func (s *notificationRepoImpl) Create(ctx context.Context, n *NotificationModel) error {
	_, err := s.col.InsertOne(ctx, n)
	return err
}

// GetNotificationList 分页获取用户的通知列表 (按时间倒序)
func (s *notificationRepoImpl) GetNotificationList(ctx context.Context, userID uint64, unreadOnly bool, limit, offset int64) ([]*NotificationModel, error) {
	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["is_read"] = false
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*NotificationModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID 根据 ID 获取通知，不存在返回 nil
func (s *notificationRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*NotificationModel, error) {
	var n NotificationModel
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetUnreadCount 获取用户的未读通知总数
func (s *notificationRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"user_id": userID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}

// MarkAsRead 标记单条通知为已读，重复标记不报错
func (s *notificationRepoImpl) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"is_read": true}}
	_, err := s.col.UpdateOne(ctx, filter, update)
	return err
}

// MarkAllAsRead 一键清除未读，返回本次实际置为已读的条数
func (s *notificationRepoImpl) MarkAllAsRead(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"user_id": userID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	res, err := s.col.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetFollowDecision 记录关注请求的处理结果：
// 写入结果、断开已失效的关注边引用，并顺手置为已读
func (s *notificationRepoImpl) SetFollowDecision(ctx context.Context, id primitive.ObjectID, decision string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"status":    decision,
		"follow_id": nil,
		"is_read":   true,
	}}
	_, err := s.col.UpdateOne(ctx, filter, update)
	return err
}
