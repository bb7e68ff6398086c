package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/repository"
	"context"
	"time"
)

type FollowService interface {
	Follow(ctx context.Context, followerID uint64, targetUsername string) (*dto.FollowResultDTO, error)
	Unfollow(ctx context.Context, followerID uint64, targetUsername string) error
	Approve(ctx context.Context, currentUserID, followID uint64) error
	Reject(ctx context.Context, currentUserID, followID uint64) error
	IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error)
	PendingRequests(ctx context.Context, userID uint64) ([]*dto.FollowRequestDTO, error)
	Followers(ctx context.Context, username string, page, pageSize int) ([]*dto.FollowUserDTO, error)
	Following(ctx context.Context, username string, page, pageSize int) ([]*dto.FollowUserDTO, error)
	Counts(ctx context.Context, username string) (*dto.FollowCountDTO, error)
}

type followServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	producer   kafka.Producer
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo, producer kafka.Producer) FollowService {
	return &followServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		producer:   producer,
	}
}

// Follow 发起关注。对方是公开账号直接生效并通知 FOLLOW，
// 私密账号则落一条待确认的边并通知 FOLLOW_REQUEST
func (s *followServiceImpl) Follow(ctx context.Context, followerID uint64, targetUsername string) (*dto.FollowResultDTO, error) {
	target, err := s.userRepo.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if target.ID == followerID {
		return nil, ErrFollowSelf
	}

	// 任何状态的边已存在都算重复关注
	existing, err := s.followRepo.GetFollowByPair(ctx, followerID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFollowExist
	}

	follow := &model.Follow{
		FollowerID: followerID,
		FollowedID: target.ID,
		IsApproved: !target.IsPrivate,
		CreatedAt:  time.Now(),
	}
	if err = s.followRepo.CreateFollow(ctx, follow); err != nil {
		return nil, err
	}

	if follow.IsApproved {
		s.producer.Publish(ctx, kafka.NewFollowMessage(kafka.TypeFollow, target.ID, followerID, follow.ID))
		return &dto.FollowResultDTO{FollowID: follow.ID, Status: "APPROVED"}, nil
	}

	s.producer.Publish(ctx, kafka.NewFollowMessage(kafka.TypeFollowRequest, target.ID, followerID, follow.ID))
	return &dto.FollowResultDTO{FollowID: follow.ID, Status: "PENDING"}, nil
}

// Unfollow 取消关注, 待确认和已生效的边都允许撤掉
func (s *followServiceImpl) Unfollow(ctx context.Context, followerID uint64, targetUsername string) error {
	target, err := s.userRepo.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	follow, err := s.followRepo.GetFollowByPair(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if follow == nil {
		return ErrFollowNotFound
	}

	return s.followRepo.DeleteFollow(ctx, follow.ID)
}

// Approve 通过关注请求, 只有被关注方本人可以操作。
// 重复通过不报错也不重发通知
func (s *followServiceImpl) Approve(ctx context.Context, currentUserID, followID uint64) error {
	follow, err := s.followRepo.GetFollowById(ctx, followID)
	if err != nil {
		return err
	}
	if follow == nil {
		return ErrFollowRequestNotFound
	}
	if follow.FollowedID != currentUserID {
		return ErrNotRequestOwner
	}
	if follow.IsApproved {
		return nil
	}

	if err = s.followRepo.UpdateFollowApproved(ctx, follow.ID); err != nil {
		return err
	}

	s.producer.Publish(ctx, kafka.NewFollowMessage(kafka.TypeFollowAccept, follow.FollowerID, currentUserID, follow.ID))
	return nil
}

// Reject 拒绝关注请求并删边。通知携带删除前的边ID，
// 消费端解析不到引用属于预期
func (s *followServiceImpl) Reject(ctx context.Context, currentUserID, followID uint64) error {
	follow, err := s.followRepo.GetFollowById(ctx, followID)
	if err != nil {
		return err
	}
	if follow == nil {
		return ErrFollowRequestNotFound
	}
	if follow.FollowedID != currentUserID {
		return ErrNotRequestOwner
	}
	if follow.IsApproved {
		return ErrNotFollowRequest
	}

	followerID := follow.FollowerID
	deadFollowID := follow.ID

	if err = s.followRepo.DeleteFollow(ctx, follow.ID); err != nil {
		return err
	}

	s.producer.Publish(ctx, kafka.NewFollowMessage(kafka.TypeFollowReject, followerID, currentUserID, deadFollowID))
	return nil
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	follow, err := s.followRepo.GetFollowByPair(ctx, followerID, followedID)
	if err != nil {
		return false, err
	}
	return follow != nil && follow.IsApproved, nil
}

// PendingRequests 查询我收到的待处理关注请求
func (s *followServiceImpl) PendingRequests(ctx context.Context, userID uint64) ([]*dto.FollowRequestDTO, error) {
	pending, err := s.followRepo.GetPendingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []*dto.FollowRequestDTO{}, nil
	}

	followerIDs := make([]uint64, 0, len(pending))
	for _, f := range pending {
		followerIDs = append(followerIDs, f.FollowerID)
	}
	users, err := s.userRepo.GetUserByIds(ctx, followerIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	res := make([]*dto.FollowRequestDTO, 0, len(pending))
	for _, f := range pending {
		u, ok := userMap[f.FollowerID]
		if !ok {
			continue
		}
		res = append(res, &dto.FollowRequestDTO{
			FollowID: f.ID,
			Follower: dto.FollowUserDTO{
				UserID:   u.ID,
				Username: u.Username,
				Nickname: u.Nickname,
				Bio:      u.Bio,
			},
			CreatedAt: f.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return res, nil
}

// Followers 查询粉丝列表 (仅已生效的边)
func (s *followServiceImpl) Followers(ctx context.Context, username string, page, pageSize int) ([]*dto.FollowUserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	follows, err := s.followRepo.GetFollowers(ctx, user.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowerID)
	}
	return s.loadFollowUsers(ctx, ids)
}

// Following 查询关注列表 (仅已生效的边)
func (s *followServiceImpl) Following(ctx context.Context, username string, page, pageSize int) ([]*dto.FollowUserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	follows, err := s.followRepo.GetFollowing(ctx, user.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowedID)
	}
	return s.loadFollowUsers(ctx, ids)
}

func (s *followServiceImpl) Counts(ctx context.Context, username string) (*dto.FollowCountDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followers, err := s.followRepo.GetFollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.GetFollowingCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowCountDTO{Followers: followers, Following: following}, nil
}

func (s *followServiceImpl) loadFollowUsers(ctx context.Context, ids []uint64) ([]*dto.FollowUserDTO, error) {
	if len(ids) == 0 {
		return []*dto.FollowUserDTO{}, nil
	}
	users, err := s.userRepo.GetUserByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	res := make([]*dto.FollowUserDTO, 0, len(ids))
	for _, id := range ids {
		u, ok := userMap[id]
		if !ok {
			continue
		}
		res = append(res, &dto.FollowUserDTO{
			UserID:   u.ID,
			Username: u.Username,
			Nickname: u.Nickname,
			Bio:      u.Bio,
		})
	}
	return res, nil
}
