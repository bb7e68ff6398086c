package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/pkg/util"
	"Bloom/internal/repository"
	"context"
	"time"
)

type LikeService interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	UnlikePost(ctx context.Context, userID, postID uint64) error
	LikeComment(ctx context.Context, userID, commentID uint64) error
	UnlikeComment(ctx context.Context, userID, commentID uint64) error
}

type likeServiceImpl struct {
	likeRepo    repository.LikeRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	producer    kafka.Producer
}

func NewLikeService(
	likeRepo repository.LikeRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	producer kafka.Producer,
) LikeService {
	return &likeServiceImpl{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		producer:    producer,
	}
}

// LikePost 点赞帖子, 重复点赞报错。给自己的帖子点赞不通知
func (s *likeServiceImpl) LikePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	existing, err := s.likeRepo.GetPostLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrActionDuplicate
	}

	like := &model.Like{
		UserID:    userID,
		PostID:    util.PtrUint64(postID),
		CreatedAt: time.Now(),
	}
	if err = s.likeRepo.CreateLike(ctx, like); err != nil {
		return err
	}

	if post.UserID != userID {
		s.producer.Publish(ctx, kafka.NewPostMessage(kafka.TypeLikePost, post.UserID, userID, postID))
	}
	return nil
}

func (s *likeServiceImpl) UnlikePost(ctx context.Context, userID, postID uint64) error {
	existing, err := s.likeRepo.GetPostLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrActionDuplicate
	}
	return s.likeRepo.DeleteLike(ctx, existing.ID)
}

// LikeComment 点赞评论, 语义与帖子一致
func (s *likeServiceImpl) LikeComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	existing, err := s.likeRepo.GetCommentLike(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrActionDuplicate
	}

	like := &model.Like{
		UserID:    userID,
		CommentID: util.PtrUint64(commentID),
		CreatedAt: time.Now(),
	}
	if err = s.likeRepo.CreateLike(ctx, like); err != nil {
		return err
	}

	if comment.UserID != userID {
		s.producer.Publish(ctx, kafka.NewCommentMessage(kafka.TypeLikeComment, comment.UserID, userID, commentID))
	}
	return nil
}

func (s *likeServiceImpl) UnlikeComment(ctx context.Context, userID, commentID uint64) error {
	existing, err := s.likeRepo.GetCommentLike(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrActionDuplicate
	}
	return s.likeRepo.DeleteLike(ctx, existing.ID)
}
