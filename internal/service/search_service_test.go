package service

import (
	"Bloom/internal/pkg/es"
	"context"
	"errors"
	"testing"
)

// 固定返回结果的索引假实现

type cannedUserIndex struct {
	fakeUserIndex
	results []*es.UserES
}

func (c *cannedUserIndex) SearchUsers(_ context.Context, _ string, _, _ int) ([]*es.UserES, error) {
	return c.results, nil
}

type cannedPostIndex struct {
	fakePostIndex
	results []*es.PostES
}

func (c *cannedPostIndex) SearchPosts(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	return c.results, nil
}

type cannedHashtagIndex struct {
	fakeHashtagIndex
	results []*es.HashtagES
}

func (c *cannedHashtagIndex) SearchHashtags(_ context.Context, _ string, _, _ int) ([]*es.HashtagES, error) {
	return c.results, nil
}

func newSearchService() SearchService {
	return NewSearchService(
		&cannedUserIndex{results: []*es.UserES{{ID: 1, Username: "alice", Nickname: "Alice"}}},
		&cannedPostIndex{results: []*es.PostES{{ID: 100, UserID: 1, Title: "hello"}}},
		&cannedHashtagIndex{results: []*es.HashtagES{{ID: 10, Name: "go"}}},
	)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	svc := newSearchService()
	ctx := context.Background()

	tests := []struct {
		name       string
		searchType string
		users      int
		posts      int
		hashtags   int
	}{
		{name: "只搜用户", searchType: "users", users: 1},
		{name: "只搜帖子", searchType: "posts", posts: 1},
		{name: "只搜标签", searchType: "hashtags", hashtags: 1},
		{name: "综合搜索", searchType: "all", users: 1, posts: 1, hashtags: 1},
		{name: "类型缺省等同综合", searchType: "", users: 1, posts: 1, hashtags: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := svc.Search(ctx, "hello", tt.searchType, 1, 20)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(res.Users) != tt.users || len(res.Posts) != tt.posts || len(res.Hashtags) != tt.hashtags {
				t.Errorf("result = %d/%d/%d, want %d/%d/%d",
					len(res.Users), len(res.Posts), len(res.Hashtags), tt.users, tt.posts, tt.hashtags)
			}
		})
	}
}

func TestSearchRejectsBadParams(t *testing.T) {
	t.Parallel()

	svc := newSearchService()
	ctx := context.Background()

	if _, err := svc.Search(ctx, "", "all", 1, 20); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("empty keyword error = %v, want ErrParamInvalid", err)
	}
	if _, err := svc.Search(ctx, "hello", "everything", 1, 20); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("unknown type error = %v, want ErrParamInvalid", err)
	}
}
