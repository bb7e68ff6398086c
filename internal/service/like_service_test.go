package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/repository"
	"context"
	"errors"
	"testing"
)

func newLikeTestEnv(t *testing.T) (LikeService, *recordingProducer) {
	t.Helper()
	db := newTestDB(t)
	if err := db.AutoMigrate(&model.Post{}, &model.Comment{}, &model.Like{}, &model.Hashtag{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seedUsers(t, db,
		&model.User{ID: 1, Username: "alice", Nickname: "Alice"},
		&model.User{ID: 2, Username: "bob", Nickname: "Bob"},
	)
	if err := db.Create(&model.Post{ID: 100, UserID: 1, Title: "hello", Content: "first post"}).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	if err := db.Create(&model.Comment{ID: 200, PostID: 100, UserID: 2, Content: "nice"}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	producer := &recordingProducer{t: t}
	svc := NewLikeService(repository.NewLikeRepo(db), repository.NewPostRepo(db), repository.NewCommentRepo(db), producer)
	return svc, producer
}

func TestLikePost(t *testing.T) {
	svc, producer := newLikeTestEnv(t)
	ctx := context.Background()

	if err := svc.LikePost(ctx, 2, 999); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post error = %v, want ErrPostNotFound", err)
	}

	if err := svc.LikePost(ctx, 2, 100); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}
	if len(producer.messages) != 1 {
		t.Fatalf("published = %d, want 1", len(producer.messages))
	}
	msg := producer.messages[0]
	if msg.Type != kafka.TypeLikePost || msg.UserID != 1 || msg.FromUserID != 2 {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.PostID == nil || *msg.PostID != 100 {
		t.Errorf("post_id = %v, want 100", msg.PostID)
	}

	if err := svc.LikePost(ctx, 2, 100); !errors.Is(err, ErrActionDuplicate) {
		t.Errorf("repeat like error = %v, want ErrActionDuplicate", err)
	}
}

func TestLikeOwnContentIsSilent(t *testing.T) {
	svc, producer := newLikeTestEnv(t)
	ctx := context.Background()

	if err := svc.LikePost(ctx, 1, 100); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}
	if err := svc.LikeComment(ctx, 2, 200); err != nil {
		t.Fatalf("LikeComment() error = %v", err)
	}
	if len(producer.messages) != 0 {
		t.Errorf("self likes published %d messages", len(producer.messages))
	}
}

func TestLikeComment(t *testing.T) {
	svc, producer := newLikeTestEnv(t)
	ctx := context.Background()

	if err := svc.LikeComment(ctx, 999, 999); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("missing comment error = %v, want ErrCommentNotFound", err)
	}

	if err := svc.LikeComment(ctx, 1, 200); err != nil {
		t.Fatalf("LikeComment() error = %v", err)
	}
	msg := producer.messages[0]
	if msg.Type != kafka.TypeLikeComment || msg.UserID != 2 || msg.FromUserID != 1 {
		t.Errorf("unexpected message: %+v", msg)
	}
	if msg.CommentID == nil || *msg.CommentID != 200 {
		t.Errorf("comment_id = %v, want 200", msg.CommentID)
	}
}

func TestUnlike(t *testing.T) {
	svc, _ := newLikeTestEnv(t)
	ctx := context.Background()

	if err := svc.UnlikePost(ctx, 2, 100); !errors.Is(err, ErrActionDuplicate) {
		t.Errorf("unlike without like error = %v, want ErrActionDuplicate", err)
	}

	if err := svc.LikePost(ctx, 2, 100); err != nil {
		t.Fatalf("LikePost() error = %v", err)
	}
	if err := svc.UnlikePost(ctx, 2, 100); err != nil {
		t.Fatalf("UnlikePost() error = %v", err)
	}

	// 取消后可以再次点赞
	if err := svc.LikePost(ctx, 2, 100); err != nil {
		t.Errorf("relike error = %v", err)
	}

	if err := svc.LikeComment(ctx, 1, 200); err != nil {
		t.Fatalf("LikeComment() error = %v", err)
	}
	if err := svc.UnlikeComment(ctx, 1, 200); err != nil {
		t.Fatalf("UnlikeComment() error = %v", err)
	}
	if err := svc.UnlikeComment(ctx, 1, 200); !errors.Is(err, ErrActionDuplicate) {
		t.Errorf("repeat unlike error = %v, want ErrActionDuplicate", err)
	}
}
