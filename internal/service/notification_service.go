package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/model"
	"Bloom/internal/pkg/consts"
	"Bloom/internal/pkg/kafka"
	mongodb "Bloom/internal/pkg/mongo"
	"Bloom/internal/repository"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnreadCache 未读数缓存, Get miss 时返回 -1
type UnreadCache interface {
	Get(ctx context.Context, userID uint64) (int64, error)
	Set(ctx context.Context, userID uint64, count int64) error
	Invalidate(ctx context.Context, userID uint64) error
}

type NotificationService interface {
	List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) (*dto.NotificationListDTO, error)
	MarkRead(ctx context.Context, userID uint64, notificationID string) error
	MarkAllRead(ctx context.Context, userID uint64) (*dto.MarkAllReadDTO, error)
	AcceptFollowRequest(ctx context.Context, userID uint64, notificationID string) error
	RejectFollowRequest(ctx context.Context, userID uint64, notificationID string) error
}

type notificationServiceImpl struct {
	notifRepo mongodb.NotificationRepo
	userRepo  repository.UserRepo
	followSvc FollowService
	cache     UnreadCache
}

func NewNotificationService(
	notifRepo mongodb.NotificationRepo,
	userRepo repository.UserRepo,
	followSvc FollowService,
	cache UnreadCache,
) NotificationService {
	return &notificationServiceImpl{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		followSvc: followSvc,
		cache:     cache,
	}
}

// List 分页拉取通知并补全发起者信息。
// 未读数与 unreadOnly 过滤无关，始终是全量统计
func (s *notificationServiceImpl) List(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) (*dto.NotificationListDTO, error) {
	limit := int64(pageSize)
	offset := int64((page - 1) * pageSize)

	list, err := s.notifRepo.GetNotificationList(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uint64, 0, len(list))
	seen := make(map[uint64]struct{}, len(list))
	for _, n := range list {
		if _, ok := seen[n.FromUserID]; !ok {
			seen[n.FromUserID] = struct{}{}
			actorIDs = append(actorIDs, n.FromUserID)
		}
	}

	userMap := make(map[uint64]*model.User)
	if len(actorIDs) > 0 {
		users, err := s.userRepo.GetUserByIds(ctx, actorIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			userMap[u.ID] = u
		}
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, n := range list {
		d := &dto.NotificationDTO{
			ID:         n.ID.Hex(),
			FromUserID: n.FromUserID,
			Type:       n.Type,
			PostID:     n.PostID,
			CommentID:  n.CommentID,
			FollowID:   n.FollowID,
			Status:     n.Status,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt.UTC().Format(time.RFC3339),
		}
		if u, ok := userMap[n.FromUserID]; ok {
			d.FromUsername = u.Username
			d.FromNickname = u.Nickname
		}
		res = append(res, d)
	}

	unread, err := s.unreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListDTO{List: res, UnreadCount: unread}, nil
}

// MarkRead 标记单条已读, 重复标记直接成功
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID uint64, notificationID string) error {
	n, err := s.getOwned(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}

	if err = s.notifRepo.MarkAsRead(ctx, n.ID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// MarkAllRead 一键已读, 没有未读也不算错误
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID uint64) (*dto.MarkAllReadDTO, error) {
	affected, err := s.notifRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return &dto.MarkAllReadDTO{Affected: affected}, nil
}

// AcceptFollowRequest 通过通知里的关注请求：
// 先驱动关注状态机，再把通知标记为已处理
func (s *notificationServiceImpl) AcceptFollowRequest(ctx context.Context, userID uint64, notificationID string) error {
	n, err := s.getFollowRequest(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err = s.followSvc.Approve(ctx, userID, *n.FollowID); err != nil {
		return err
	}

	if err = s.notifRepo.SetFollowDecision(ctx, n.ID, consts.FollowDecisionAccepted); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// RejectFollowRequest 拒绝通知里的关注请求
func (s *notificationServiceImpl) RejectFollowRequest(ctx context.Context, userID uint64, notificationID string) error {
	n, err := s.getFollowRequest(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err = s.followSvc.Reject(ctx, userID, *n.FollowID); err != nil {
		return err
	}

	if err = s.notifRepo.SetFollowDecision(ctx, n.ID, consts.FollowDecisionRejected); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *notificationServiceImpl) getOwned(ctx context.Context, userID uint64, notificationID string) (*mongodb.NotificationModel, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	n, err := s.notifRepo.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	if n.UserID != userID {
		return nil, ErrNotNotificationOwner
	}
	return n, nil
}

func (s *notificationServiceImpl) getFollowRequest(ctx context.Context, userID uint64, notificationID string) (*mongodb.NotificationModel, error) {
	n, err := s.getOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}
	if n.Type != string(kafka.TypeFollowRequest) || n.FollowID == nil || n.Status != "" {
		return nil, ErrNotFollowRequest
	}
	return n, nil
}

func (s *notificationServiceImpl) unreadCount(ctx context.Context, userID uint64) (int64, error) {
	if count, err := s.cache.Get(ctx, userID); err == nil && count >= 0 {
		return count, nil
	}

	count, err := s.notifRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err = s.cache.Set(ctx, userID, count); err != nil {
		log.WarnContext(ctx, "cache unread count failed", "user_id", userID, "err", err)
	}
	return count, nil
}

func (s *notificationServiceImpl) invalidate(ctx context.Context, userID uint64) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.WarnContext(ctx, "invalidate unread cache failed", "user_id", userID, "err", err)
	}
}
