package repository

import (
	"Bloom/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeRepo interface {
	GetPostLike(ctx context.Context, userID, postID uint64) (*model.Like, error)
	GetCommentLike(ctx context.Context, userID, commentID uint64) (*model.Like, error)
	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, id uint64) error
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) GetPostLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	var like model.Like
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &like, nil
}

func (s *LikeRepoImpl) GetCommentLike(ctx context.Context, userID, commentID uint64) (*model.Like, error) {
	var like model.Like
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &like, nil
}

func (s *LikeRepoImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Like{}, id).Error
}
