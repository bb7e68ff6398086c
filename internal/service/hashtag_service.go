package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/pkg/es"
	"Bloom/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type HashtagService interface {
	PostsByHashtag(ctx context.Context, name string, page, pageSize int) ([]*dto.SearchPostDTO, error)
}

type hashtagServiceImpl struct {
	hashtagRepo repository.HashtagRepo
	postES      es.PostRepo
}

func NewHashtagService(hashtagRepo repository.HashtagRepo, postES es.PostRepo) HashtagService {
	return &hashtagServiceImpl{
		hashtagRepo: hashtagRepo,
		postES:      postES,
	}
}

// PostsByHashtag 按标签名拉取帖子。
// 先查主库确认标签存在, 不存在直接返回空列表, 不打搜索索引
func (s *hashtagServiceImpl) PostsByHashtag(ctx context.Context, name string, page, pageSize int) ([]*dto.SearchPostDTO, error) {
	if name == "" {
		return nil, ErrParamInvalid
	}

	tag, err := s.hashtagRepo.GetHashtagByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return []*dto.SearchPostDTO{}, nil
	}

	posts, err := s.postES.GetPostsByHashtag(ctx, name, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SearchPostDTO, 0, len(posts))
	_ = copier.Copy(&res, posts)
	return res, nil
}
