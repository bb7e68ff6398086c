package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/es"
	"Bloom/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
)

// 索引假实现, 记录操作序列供断言

type fakeUserIndex struct {
	mu  sync.Mutex
	ops []string
	err error
}

func (f *fakeUserIndex) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
}

func (f *fakeUserIndex) IndexUser(_ context.Context, user *es.UserES, _ int64) error {
	f.record("index:" + user.Username)
	return f.err
}

func (f *fakeUserIndex) DeleteUser(_ context.Context, _ uint64) error {
	f.record("delete")
	return nil
}

func (f *fakeUserIndex) SearchUsers(_ context.Context, _ string, _, _ int) ([]*es.UserES, error) {
	return nil, nil
}

type fakePostIndex struct {
	mu  sync.Mutex
	ops []string
}

func (f *fakePostIndex) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
}

func (f *fakePostIndex) IndexPost(_ context.Context, post *es.PostES, _ int64) error {
	f.record("index:" + post.Title)
	return nil
}

func (f *fakePostIndex) DeletePost(_ context.Context, _ uint64) error {
	f.record("delete")
	return nil
}

func (f *fakePostIndex) SearchPosts(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	return nil, nil
}

func (f *fakePostIndex) GetPostsByHashtag(_ context.Context, _ string, _, _ int) ([]*es.PostES, error) {
	return nil, nil
}

type fakeHashtagIndex struct {
	mu  sync.Mutex
	ops []string
}

func (f *fakeHashtagIndex) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
}

func (f *fakeHashtagIndex) IndexHashtag(_ context.Context, tag *es.HashtagES, _ int64) error {
	f.record("index:" + tag.Name)
	return nil
}

func (f *fakeHashtagIndex) DeleteHashtag(_ context.Context, _ uint64) error {
	f.record("delete")
	return nil
}

func (f *fakeHashtagIndex) SearchHashtags(_ context.Context, _ string, _, _ int) ([]*es.HashtagES, error) {
	return nil, nil
}

// 主库分批扫描的假实现

type walkUserRepo struct {
	repository.UserRepo
	users []*model.User
}

func (r *walkUserRepo) WalkUsers(_ context.Context, _ int, fn func([]*model.User) error) error {
	if len(r.users) == 0 {
		return nil
	}
	return fn(r.users)
}

type walkPostRepo struct {
	repository.PostRepo
	posts []*model.Post
}

func (r *walkPostRepo) WalkPosts(_ context.Context, _ int, fn func([]*model.Post) error) error {
	if len(r.posts) == 0 {
		return nil
	}
	return fn(r.posts)
}

type walkHashtagRepo struct {
	repository.HashtagRepo
	tags []*model.Hashtag
}

func (r *walkHashtagRepo) WalkHashtags(_ context.Context, _ int, fn func([]*model.Hashtag) error) error {
	if len(r.tags) == 0 {
		return nil
	}
	return fn(r.tags)
}

func TestSyncSwallowsIndexErrors(t *testing.T) {
	t.Parallel()

	userIdx := &fakeUserIndex{err: errors.New("index unavailable")}
	svc := NewSearchSyncService(userIdx, &fakePostIndex{}, &fakeHashtagIndex{},
		&walkUserRepo{}, &walkPostRepo{}, &walkHashtagRepo{})

	// 同步失败只记日志, 不影响调用方
	svc.SyncUser(context.Background(), &model.User{ID: 1, Username: "alice"})

	if len(userIdx.ops) != 1 {
		t.Errorf("ops = %v, want one index attempt", userIdx.ops)
	}
}

func TestReindexDeletesBeforeIndexing(t *testing.T) {
	t.Parallel()

	userIdx := &fakeUserIndex{}
	svc := NewSearchSyncService(userIdx, &fakePostIndex{}, &fakeHashtagIndex{},
		&walkUserRepo{}, &walkPostRepo{}, &walkHashtagRepo{})

	if err := svc.ReindexUser(context.Background(), &model.User{ID: 1, Username: "alice"}); err != nil {
		t.Fatalf("ReindexUser() error = %v", err)
	}

	want := []string{"delete", "index:alice"}
	if len(userIdx.ops) != 2 || userIdx.ops[0] != want[0] || userIdx.ops[1] != want[1] {
		t.Errorf("ops = %v, want %v", userIdx.ops, want)
	}
}

func TestReindexAll(t *testing.T) {
	t.Parallel()

	userIdx := &fakeUserIndex{}
	postIdx := &fakePostIndex{}
	tagIdx := &fakeHashtagIndex{}
	svc := NewSearchSyncService(userIdx, postIdx, tagIdx,
		&walkUserRepo{users: []*model.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}},
		&walkPostRepo{posts: []*model.Post{{ID: 100, Title: "hello", Hashtags: []model.Hashtag{{Name: "go"}}}}},
		&walkHashtagRepo{tags: []*model.Hashtag{{ID: 10, Name: "go"}}},
	)

	if err := svc.ReindexAll(context.Background()); err != nil {
		t.Fatalf("ReindexAll() error = %v", err)
	}

	if len(userIdx.ops) != 4 {
		t.Errorf("user ops = %v, want delete+index per user", userIdx.ops)
	}
	if len(postIdx.ops) != 2 {
		t.Errorf("post ops = %v, want delete+index", postIdx.ops)
	}
	if len(tagIdx.ops) != 2 {
		t.Errorf("hashtag ops = %v, want delete+index", tagIdx.ops)
	}
}

func TestReindexAllStopsOnError(t *testing.T) {
	t.Parallel()

	userIdx := &fakeUserIndex{err: errors.New("index unavailable")}
	svc := NewSearchSyncService(userIdx, &fakePostIndex{}, &fakeHashtagIndex{},
		&walkUserRepo{users: []*model.User{{ID: 1, Username: "alice"}}},
		&walkPostRepo{}, &walkHashtagRepo{},
	)

	if err := svc.ReindexAll(context.Background()); err == nil {
		t.Error("ReindexAll() error = nil, want index failure surfaced")
	}
}
