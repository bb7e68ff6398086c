package repository

import (
	"Bloom/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollowById(ctx context.Context, id uint64) (*model.Follow, error)
	GetFollowByPair(ctx context.Context, followerID, followedID uint64) (*model.Follow, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.Follow, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.Follow, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetPendingRequests(ctx context.Context, followedID uint64) ([]*model.Follow, error)
	GetApprovedFollowerIds(ctx context.Context, followedID uint64) ([]uint64, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	UpdateFollowApproved(ctx context.Context, id uint64) error
	DeleteFollow(ctx context.Context, id uint64) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

func (s *FollowRepoImpl) GetFollowById(ctx context.Context, id uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).First(&follow, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// GetFollowByPair 任意状态的关注边均算存在
func (s *FollowRepoImpl) GetFollowByPair(ctx context.Context, followerID, followedID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

// GetFollowers 获取用户的粉丝列表（仅已通过的边）
func (s *FollowRepoImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Where("followed_id = ? AND is_approved = ?", userID, true).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowing 获取用户的关注列表（仅已通过的边）
func (s *FollowRepoImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND is_approved = ?", userID, true).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followed_id = ? AND is_approved = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowRepoImpl) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND is_approved = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetPendingRequests 获取发给该用户的待处理关注请求
func (s *FollowRepoImpl) GetPendingRequests(ctx context.Context, followedID uint64) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Where("followed_id = ? AND is_approved = ?", followedID, false).
		Order("created_at desc").
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetApprovedFollowerIds 新帖扇出时取全部已通过的粉丝
func (s *FollowRepoImpl) GetApprovedFollowerIds(ctx context.Context, followedID uint64) ([]uint64, error) {
	var ids []uint64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followed_id = ? AND is_approved = ?", followedID, true).
		Pluck("follower_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

// UpdateFollowApproved 关注边只会从待通过翻转为已通过，不会回退
func (s *FollowRepoImpl) UpdateFollowApproved(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Follow{}, id).Error
}
