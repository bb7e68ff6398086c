package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/pkg/util"
	"Bloom/internal/repository"
	"context"
	"errors"
	"sort"
	"testing"

	"gorm.io/gorm"
)

// 搜索同步假实现, 记录同步过的文档ID

type recordingSearchSync struct {
	SearchSyncService
	syncedPosts  []uint64
	removedPosts []uint64
	syncedTags   []string
}

func (r *recordingSearchSync) SyncPost(_ context.Context, post *model.Post) {
	r.syncedPosts = append(r.syncedPosts, post.ID)
}

func (r *recordingSearchSync) RemovePost(_ context.Context, id uint64) {
	r.removedPosts = append(r.removedPosts, id)
}

func (r *recordingSearchSync) SyncHashtag(_ context.Context, tag *model.Hashtag) {
	r.syncedTags = append(r.syncedTags, tag.Name)
}

func newPostTestEnv(t *testing.T) (PostService, *recordingProducer, *recordingSearchSync, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	if err := db.AutoMigrate(&model.Post{}, &model.Hashtag{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seedUsers(t, db,
		&model.User{ID: 1, Username: "alice", Nickname: "Alice"},
		&model.User{ID: 2, Username: "bob", Nickname: "Bob"},
		&model.User{ID: 3, Username: "carol", Nickname: "Carol"},
	)
	producer := &recordingProducer{t: t}
	searchSync := &recordingSearchSync{}
	svc := NewPostService(
		repository.NewPostRepo(db),
		repository.NewUserRepo(db),
		repository.NewHashtagRepo(db),
		repository.NewFollowRepo(db),
		searchSync,
		producer,
	)
	return svc, producer, searchSync, db
}

func TestCreatePostSyncsIndexAndTags(t *testing.T) {
	svc, _, searchSync, _ := newPostTestEnv(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "hello #golang", Content: "first post #devlog"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(post.Hashtags) != 2 {
		t.Errorf("hashtags = %v, want 2", post.Hashtags)
	}
	if len(searchSync.syncedPosts) != 1 || searchSync.syncedPosts[0] != post.ID {
		t.Errorf("synced posts = %v, want [%d]", searchSync.syncedPosts, post.ID)
	}
	sort.Strings(searchSync.syncedTags)
	if len(searchSync.syncedTags) != 2 || searchSync.syncedTags[0] != "devlog" || searchSync.syncedTags[1] != "golang" {
		t.Errorf("synced tags = %v, want [devlog golang]", searchSync.syncedTags)
	}
}

func TestCreatePostFansOutToApprovedFollowers(t *testing.T) {
	svc, producer, _, db := newPostTestEnv(t)
	ctx := context.Background()

	// bob 已生效, carol 还在等确认
	if err := db.Create(&model.Follow{FollowerID: 2, FollowedID: 1, IsApproved: true}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}
	if err := db.Create(&model.Follow{FollowerID: 3, FollowedID: 1, IsApproved: false}).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}

	post, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "news", Content: "big update"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(producer.messages) != 1 {
		t.Fatalf("published = %d, want fan-out to approved follower only", len(producer.messages))
	}
	msg := producer.messages[0]
	if msg.Type != kafka.TypeNewPost || msg.UserID != 2 || msg.FromUserID != 1 {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.PostID == nil || *msg.PostID != post.ID {
		t.Errorf("post_id = %v, want %d", msg.PostID, post.ID)
	}
}

func TestUpdatePost(t *testing.T) {
	svc, _, searchSync, _ := newPostTestEnv(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "draft", Content: "wip #draft"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err = svc.Update(ctx, 2, post.ID, &dto.UpdatePostDTO{Title: util.PtrStr("stolen")}); !errors.Is(err, ErrNotPostOwner) {
		t.Errorf("update by stranger error = %v, want ErrNotPostOwner", err)
	}
	if _, err = svc.Update(ctx, 1, 999, &dto.UpdatePostDTO{}); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("update missing error = %v, want ErrPostNotFound", err)
	}

	updated, err := svc.Update(ctx, 1, post.ID, &dto.UpdatePostDTO{Content: util.PtrStr("done #shipped")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(updated.Hashtags) != 1 || updated.Hashtags[0] != "shipped" {
		t.Errorf("hashtags = %v, want [shipped]", updated.Hashtags)
	}
	// 编辑后重新同步了索引
	if len(searchSync.syncedPosts) != 2 {
		t.Errorf("synced posts = %v, want resync after update", searchSync.syncedPosts)
	}
}

func TestDeletePost(t *testing.T) {
	svc, _, searchSync, _ := newPostTestEnv(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "temp", Content: "to be removed"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err = svc.Delete(ctx, 2, post.ID); !errors.Is(err, ErrNotPostOwner) {
		t.Errorf("delete by stranger error = %v, want ErrNotPostOwner", err)
	}
	if err = svc.Delete(ctx, 1, post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(searchSync.removedPosts) != 1 || searchSync.removedPosts[0] != post.ID {
		t.Errorf("removed posts = %v, want [%d]", searchSync.removedPosts, post.ID)
	}

	if _, err = svc.Get(ctx, post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("get deleted error = %v, want ErrPostNotFound", err)
	}
}

func TestListPostsByUser(t *testing.T) {
	svc, _, _, _ := newPostTestEnv(t)
	ctx := context.Background()

	if _, err := svc.ListByUser(ctx, "nobody", 1, 20); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}

	if _, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "one", Content: "a"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, 1, &dto.CreatePostDTO{Title: "two", Content: "b"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	posts, err := svc.ListByUser(ctx, "alice", 1, 20)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("posts = %d, want 2", len(posts))
	}
}
