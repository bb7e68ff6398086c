package repository

import (
	"Bloom/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetCommentById(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostId(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) GetCommentById(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	result := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostId(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
