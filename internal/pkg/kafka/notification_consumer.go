package kafka

import (
	mongodb "Bloom/internal/pkg/mongo"
	"Bloom/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pusher 入库成功后的实时推送出口，尽力而为
type Pusher interface {
	Push(ctx context.Context, userID uint64, payload []byte)
}

type NotificationHandler struct {
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	followRepo  repository.FollowRepo
	notifRepo   mongodb.NotificationRepo
	pusher      Pusher
}

func NewNotificationHandler(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	followRepo repository.FollowRepo,
	notifRepo mongodb.NotificationRepo,
	pusher Pusher,
) *NotificationHandler {
	return &NotificationHandler{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		notifRepo:   notifRepo,
		pusher:      pusher,
	}
}

func (s *NotificationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer setup")
	return nil
}

func (s *NotificationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer cleanup")
	return nil
}

func (s *NotificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-notification consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-notification process batch error", "err", err)
		return err
	}
	return nil
}

func (s *NotificationHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var m NotificationMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		// 坏消息直接丢弃，不能卡住分区
		log.ErrorContext(ctx, "unmarshal notification message error", "offset", msg.Offset, "err", err)
		return nil
	}

	if err := m.Validate(); err != nil {
		log.WarnContext(ctx, "drop malformed notification message", "type", m.Type, "err", err)
		return nil
	}

	// 收件人或发起者已注销则整条丢弃
	recipient, err := s.userRepo.GetUserById(ctx, m.UserID)
	if err != nil {
		return err
	}
	actor, err := s.userRepo.GetUserById(ctx, m.FromUserID)
	if err != nil {
		return err
	}
	if recipient == nil || actor == nil {
		log.InfoContext(ctx, "drop notification, principal missing",
			"type", m.Type, "user_id", m.UserID, "from_user_id", m.FromUserID)
		return nil
	}

	// 引用对象在消费时可能已被删除，照常落库但断开引用
	record := &mongodb.NotificationModel{
		UserID:     m.UserID,
		FromUserID: m.FromUserID,
		Type:       string(m.Type),
		DedupKey:   m.DedupKey(time.Now()),
		IsRead:     false,
		CreatedAt:  time.Now(),
	}
	if err = s.resolveReference(ctx, &m, record); err != nil {
		return err
	}

	if err = s.notifRepo.Create(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.InfoContext(ctx, "drop duplicate notification", "type", m.Type, "dedup_key", record.DedupKey)
			return nil
		}
		return err
	}

	s.push(ctx, record)
	return nil
}

// resolveReference 按类型解析消息携带的唯一引用
func (s *NotificationHandler) resolveReference(ctx context.Context, m *NotificationMessage, record *mongodb.NotificationModel) error {
	switch {
	case m.PostID != nil:
		post, err := s.postRepo.GetPostById(ctx, *m.PostID)
		if err != nil {
			return err
		}
		if post != nil {
			record.PostID = m.PostID
		}
	case m.CommentID != nil:
		comment, err := s.commentRepo.GetCommentById(ctx, *m.CommentID)
		if err != nil {
			return err
		}
		if comment != nil {
			record.CommentID = m.CommentID
		}
	case m.FollowID != nil:
		follow, err := s.followRepo.GetFollowById(ctx, *m.FollowID)
		if err != nil {
			return err
		}
		if follow != nil {
			record.FollowID = m.FollowID
		}
	}
	return nil
}

// push 失败只记日志，在线推送丢了还有收件箱兜底
func (s *NotificationHandler) push(ctx context.Context, record *mongodb.NotificationModel) {
	if s.pusher == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		log.ErrorContext(ctx, "marshal notification record error", "err", err)
		return
	}
	s.pusher.Push(ctx, record.UserID, payload)
}
