package repository

import (
	"Bloom/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	WalkPosts(ctx context.Context, batchSize int, fn func(posts []*model.Post) error) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	result := s.db.WithContext(ctx).
		Preload("Hashtags").
		Where("is_deleted = ?", false).
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Preload("Hashtags").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	// 全量替换标签关联后再保存正文
	if err := s.db.WithContext(ctx).Model(post).Association("Hashtags").Replace(post.Hashtags); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(post).Error
}

// DeletePost 软删除，搜索文档由调用方另行清理
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *PostRepoImpl) WalkPosts(ctx context.Context, batchSize int, fn func(posts []*model.Post) error) error {
	var batch []*model.Post
	return s.db.WithContext(ctx).
		Preload("Hashtags").
		Where("is_deleted = ?", false).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}
