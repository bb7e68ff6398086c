package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/consts"
	"Bloom/internal/pkg/kafka"
	mongodb "Bloom/internal/pkg/mongo"
	"Bloom/internal/repository"
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版通知存储，行为对齐 Mongo 实现

type memNotifRepo struct {
	notifications map[primitive.ObjectID]*mongodb.NotificationModel
	decisions     map[primitive.ObjectID]string
}

func newMemNotifRepo() *memNotifRepo {
	return &memNotifRepo{
		notifications: map[primitive.ObjectID]*mongodb.NotificationModel{},
		decisions:     map[primitive.ObjectID]string{},
	}
}

func (r *memNotifRepo) Create(_ context.Context, n *mongodb.NotificationModel) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	r.notifications[n.ID] = n
	return nil
}

func (r *memNotifRepo) GetNotificationList(_ context.Context, userID uint64, unreadOnly bool, limit, offset int64) ([]*mongodb.NotificationModel, error) {
	var res []*mongodb.NotificationModel
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	if offset >= int64(len(res)) {
		return nil, nil
	}
	res = res[offset:]
	if int64(len(res)) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *memNotifRepo) GetByID(_ context.Context, id primitive.ObjectID) (*mongodb.NotificationModel, error) {
	return r.notifications[id], nil
}

func (r *memNotifRepo) GetUnreadCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memNotifRepo) MarkAsRead(_ context.Context, id primitive.ObjectID) error {
	if n, ok := r.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (r *memNotifRepo) MarkAllAsRead(_ context.Context, userID uint64) (int64, error) {
	var affected int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (r *memNotifRepo) SetFollowDecision(_ context.Context, id primitive.ObjectID, decision string) error {
	n, ok := r.notifications[id]
	if !ok {
		return nil
	}
	n.Status = decision
	n.FollowID = nil
	n.IsRead = true
	r.decisions[id] = decision
	return nil
}

// 计数缓存假实现，记录失效次数

type memUnreadCache struct {
	values      map[uint64]int64
	invalidated int
}

func newMemUnreadCache() *memUnreadCache {
	return &memUnreadCache{values: map[uint64]int64{}}
}

func (c *memUnreadCache) Get(_ context.Context, userID uint64) (int64, error) {
	if v, ok := c.values[userID]; ok {
		return v, nil
	}
	return -1, nil
}

func (c *memUnreadCache) Set(_ context.Context, userID uint64, count int64) error {
	c.values[userID] = count
	return nil
}

func (c *memUnreadCache) Invalidate(_ context.Context, userID uint64) error {
	delete(c.values, userID)
	c.invalidated++
	return nil
}

// 关注服务假实现，记录状态机调用

type fakeFollowService struct {
	FollowService
	approved []uint64
	rejected []uint64
}

func (f *fakeFollowService) Approve(_ context.Context, _, followID uint64) error {
	f.approved = append(f.approved, followID)
	return nil
}

func (f *fakeFollowService) Reject(_ context.Context, _, followID uint64) error {
	f.rejected = append(f.rejected, followID)
	return nil
}

type stubUserRepo struct {
	repository.UserRepo
	users map[uint64]*model.User
}

func (s *stubUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	var res []*model.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func newNotificationService() (NotificationService, *memNotifRepo, *memUnreadCache, *fakeFollowService) {
	repo := newMemNotifRepo()
	cache := newMemUnreadCache()
	followSvc := &fakeFollowService{}
	users := &stubUserRepo{users: map[uint64]*model.User{
		2: {ID: 2, Username: "bob", Nickname: "Bob"},
	}}
	svc := NewNotificationService(repo, users, followSvc, cache)
	return svc, repo, cache, followSvc
}

func seedNotification(repo *memNotifRepo, userID uint64, notifType string, followID *uint64) primitive.ObjectID {
	n := &mongodb.NotificationModel{
		UserID:     userID,
		FromUserID: 2,
		Type:       notifType,
		FollowID:   followID,
		CreatedAt:  time.Now(),
	}
	_ = repo.Create(context.Background(), n)
	return n.ID
}

func TestNotificationList(t *testing.T) {
	svc, repo, _, _ := newNotificationService()
	ctx := context.Background()

	seedNotification(repo, 1, string(kafka.TypeLikePost), nil)
	id := seedNotification(repo, 1, string(kafka.TypeFollow), nil)
	_ = repo.MarkAsRead(ctx, id)
	seedNotification(repo, 9, string(kafka.TypeLikePost), nil) // 别人的通知

	list, err := svc.List(ctx, 1, false, 1, 20)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list.List) != 2 {
		t.Fatalf("list = %d, want 2", len(list.List))
	}
	if list.List[0].FromUsername != "bob" {
		t.Errorf("actor not hydrated: %+v", list.List[0])
	}
	if list.UnreadCount != 1 {
		t.Errorf("unread = %d, want 1", list.UnreadCount)
	}

	// 只看未读时未读数依然是全量统计
	unreadList, err := svc.List(ctx, 1, true, 1, 20)
	if err != nil {
		t.Fatalf("List(unread) error = %v", err)
	}
	if len(unreadList.List) != 1 || unreadList.UnreadCount != 1 {
		t.Errorf("unread list = %d / count = %d, want 1 / 1", len(unreadList.List), unreadList.UnreadCount)
	}
}

func TestMarkRead(t *testing.T) {
	svc, repo, cache, _ := newNotificationService()
	ctx := context.Background()

	id := seedNotification(repo, 1, string(kafka.TypeLikePost), nil)

	if err := svc.MarkRead(ctx, 1, "not-an-object-id"); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("bad id error = %v, want ErrParamInvalid", err)
	}
	if err := svc.MarkRead(ctx, 1, primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("missing error = %v, want ErrNotificationNotFound", err)
	}
	if err := svc.MarkRead(ctx, 9, id.Hex()); !errors.Is(err, ErrNotNotificationOwner) {
		t.Errorf("wrong owner error = %v, want ErrNotNotificationOwner", err)
	}

	if err := svc.MarkRead(ctx, 1, id.Hex()); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if !repo.notifications[id].IsRead {
		t.Error("notification not marked read")
	}
	if cache.invalidated != 1 {
		t.Errorf("cache invalidations = %d, want 1", cache.invalidated)
	}

	// 重复标记直接成功，也不再打缓存
	if err := svc.MarkRead(ctx, 1, id.Hex()); err != nil {
		t.Fatalf("repeat MarkRead() error = %v", err)
	}
	if cache.invalidated != 1 {
		t.Errorf("repeat mark invalidated cache again: %d", cache.invalidated)
	}
}

func TestMarkAllRead(t *testing.T) {
	svc, repo, _, _ := newNotificationService()
	ctx := context.Background()

	seedNotification(repo, 1, string(kafka.TypeLikePost), nil)
	seedNotification(repo, 1, string(kafka.TypeFollow), nil)

	res, err := svc.MarkAllRead(ctx, 1)
	if err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if res.Affected != 2 {
		t.Errorf("affected = %d, want 2", res.Affected)
	}

	// 第二次没有未读，Affected 归零且不报错
	res, err = svc.MarkAllRead(ctx, 1)
	if err != nil {
		t.Fatalf("second MarkAllRead() error = %v", err)
	}
	if res.Affected != 0 {
		t.Errorf("second affected = %d, want 0", res.Affected)
	}
}

func TestAcceptFollowRequestFromNotification(t *testing.T) {
	svc, repo, _, followSvc := newNotificationService()
	ctx := context.Background()

	followID := uint64(300)
	id := seedNotification(repo, 1, string(kafka.TypeFollowRequest), &followID)

	if err := svc.AcceptFollowRequest(ctx, 1, id.Hex()); err != nil {
		t.Fatalf("AcceptFollowRequest() error = %v", err)
	}
	if len(followSvc.approved) != 1 || followSvc.approved[0] != followID {
		t.Errorf("approved = %v, want [300]", followSvc.approved)
	}

	n := repo.notifications[id]
	if n.Status != consts.FollowDecisionAccepted || n.FollowID != nil || !n.IsRead {
		t.Errorf("notification not settled: %+v", n)
	}

	// 已处理过的请求不能再操作
	if err := svc.AcceptFollowRequest(ctx, 1, id.Hex()); !errors.Is(err, ErrNotFollowRequest) {
		t.Errorf("repeat accept error = %v, want ErrNotFollowRequest", err)
	}
}

func TestRejectFollowRequestFromNotification(t *testing.T) {
	svc, repo, _, followSvc := newNotificationService()
	ctx := context.Background()

	followID := uint64(300)
	id := seedNotification(repo, 1, string(kafka.TypeFollowRequest), &followID)

	if err := svc.RejectFollowRequest(ctx, 1, id.Hex()); err != nil {
		t.Fatalf("RejectFollowRequest() error = %v", err)
	}
	if len(followSvc.rejected) != 1 || followSvc.rejected[0] != followID {
		t.Errorf("rejected = %v, want [300]", followSvc.rejected)
	}
	if repo.notifications[id].Status != consts.FollowDecisionRejected {
		t.Errorf("status = %q, want REJECTED", repo.notifications[id].Status)
	}
}

func TestFollowRequestGuards(t *testing.T) {
	svc, repo, _, _ := newNotificationService()
	ctx := context.Background()

	// 普通通知不是关注请求
	plain := seedNotification(repo, 1, string(kafka.TypeLikePost), nil)
	if err := svc.AcceptFollowRequest(ctx, 1, plain.Hex()); !errors.Is(err, ErrNotFollowRequest) {
		t.Errorf("plain notification error = %v, want ErrNotFollowRequest", err)
	}

	// 引用已断开的请求同样拒绝操作
	dangling := seedNotification(repo, 1, string(kafka.TypeFollowRequest), nil)
	if err := svc.RejectFollowRequest(ctx, 1, dangling.Hex()); !errors.Is(err, ErrNotFollowRequest) {
		t.Errorf("dangling request error = %v, want ErrNotFollowRequest", err)
	}
}
