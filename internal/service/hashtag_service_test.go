package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/es"
	"Bloom/internal/repository"
	"context"
	"errors"
	"testing"
)

type hashtagPostIndex struct {
	fakePostIndex
	results []*es.PostES
	calls   int
}

func (f *hashtagPostIndex) GetPostsByHashtag(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	f.calls++
	return f.results, nil
}

func newHashtagService(t *testing.T, idx *hashtagPostIndex) HashtagService {
	t.Helper()
	db := newTestDB(t)
	if err := db.AutoMigrate(&model.Hashtag{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&model.Hashtag{ID: 10, Name: "golang"}).Error; err != nil {
		t.Fatalf("seed hashtag: %v", err)
	}
	return NewHashtagService(repository.NewHashtagRepo(db), idx)
}

func TestPostsByHashtag(t *testing.T) {
	idx := &hashtagPostIndex{results: []*es.PostES{
		{ID: 100, UserID: 1, Title: "hello", Hashtags: []string{"golang"}},
		{ID: 101, UserID: 2, Title: "world", Hashtags: []string{"golang"}},
	}}
	svc := newHashtagService(t, idx)

	posts, err := svc.PostsByHashtag(context.Background(), "golang", 1, 20)
	if err != nil {
		t.Fatalf("PostsByHashtag() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts = %d, want 2", len(posts))
	}
	if posts[0].ID != 100 || posts[0].Title != "hello" || len(posts[0].Hashtags) != 1 {
		t.Errorf("unexpected post: %+v", posts[0])
	}
}

func TestPostsByUnknownHashtag(t *testing.T) {
	idx := &hashtagPostIndex{}
	svc := newHashtagService(t, idx)

	// 标签不存在时返回空列表, 不打搜索索引
	posts, err := svc.PostsByHashtag(context.Background(), "nosuchtag", 1, 20)
	if err != nil {
		t.Fatalf("PostsByHashtag() error = %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("posts = %d, want 0", len(posts))
	}
	if idx.calls != 0 {
		t.Errorf("index queried %d times for unknown tag", idx.calls)
	}
}

func TestPostsByHashtagRejectsEmptyName(t *testing.T) {
	svc := newHashtagService(t, &hashtagPostIndex{})

	if _, err := svc.PostsByHashtag(context.Background(), "", 1, 20); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("empty name error = %v, want ErrParamInvalid", err)
	}
}
