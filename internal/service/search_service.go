package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/pkg/es"
	"context"

	"github.com/jinzhu/copier"
)

type SearchService interface {
	Search(ctx context.Context, keyword, searchType string, page, pageSize int) (*dto.SearchResultDTO, error)
}

type searchServiceImpl struct {
	userES    es.UserRepo
	postES    es.PostRepo
	hashtagES es.HashtagRepo
}

func NewSearchService(userES es.UserRepo, postES es.PostRepo, hashtagES es.HashtagRepo) SearchService {
	return &searchServiceImpl{
		userES:    userES,
		postES:    postES,
		hashtagES: hashtagES,
	}
}

// Search 综合搜索, searchType 取 users / posts / hashtags / all
func (s *searchServiceImpl) Search(ctx context.Context, keyword, searchType string, page, pageSize int) (*dto.SearchResultDTO, error) {
	if keyword == "" {
		return nil, ErrParamInvalid
	}
	from := (page - 1) * pageSize

	res := &dto.SearchResultDTO{}

	switch searchType {
	case "users":
		users, err := s.userES.SearchUsers(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		_ = copier.Copy(&res.Users, users)
	case "posts":
		posts, err := s.postES.SearchPosts(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		_ = copier.Copy(&res.Posts, posts)
	case "hashtags":
		tags, err := s.hashtagES.SearchHashtags(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		_ = copier.Copy(&res.Hashtags, tags)
	case "", "all":
		users, err := s.userES.SearchUsers(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		posts, err := s.postES.SearchPosts(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		tags, err := s.hashtagES.SearchHashtags(ctx, keyword, from, pageSize)
		if err != nil {
			return nil, err
		}
		_ = copier.Copy(&res.Users, users)
		_ = copier.Copy(&res.Posts, posts)
		_ = copier.Copy(&res.Hashtags, tags)
	default:
		return nil, ErrParamInvalid
	}

	return res, nil
}
