package repository

import (
	"Bloom/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HashtagRepo interface {
	GetHashtagByName(ctx context.Context, name string) (*model.Hashtag, error)
	UpsertHashtags(ctx context.Context, names []string) ([]*model.Hashtag, error)
	WalkHashtags(ctx context.Context, batchSize int, fn func(tags []*model.Hashtag) error) error
}

type HashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepo(db *gorm.DB) HashtagRepo {
	return &HashtagRepoImpl{db: db}
}

func (s *HashtagRepoImpl) GetHashtagByName(ctx context.Context, name string) (*model.Hashtag, error) {
	var tag model.Hashtag
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tag, nil
}

// UpsertHashtags 幂等落库后按名回查，保证返回带主键的完整行
func (s *HashtagRepoImpl) UpsertHashtags(ctx context.Context, names []string) ([]*model.Hashtag, error) {
	if len(names) == 0 {
		return []*model.Hashtag{}, nil
	}

	rows := make([]*model.Hashtag, 0, len(names))
	for _, name := range names {
		rows = append(rows, &model.Hashtag{Name: name})
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(&rows).Error
	if err != nil {
		return nil, err
	}

	var tags []*model.Hashtag
	result := s.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}
	return tags, nil
}

func (s *HashtagRepoImpl) WalkHashtags(ctx context.Context, batchSize int, fn func(tags []*model.Hashtag) error) error {
	var batch []*model.Hashtag
	return s.db.WithContext(ctx).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}
