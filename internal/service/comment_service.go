package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/repository"
	"context"
	"time"
)

type CommentService interface {
	Create(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	Delete(ctx context.Context, userID, commentID uint64) error
	ListByPost(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	producer    kafka.Producer
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, producer kafka.Producer) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		producer:    producer,
	}
}

// Create 评论帖子通知楼主 COMMENT_POST (引用帖子)，
// 回复评论通知被回复人 COMMENT_REPLY (引用被回复的父评论)。
// 给自己的内容评论不产生通知
func (s *commentServiceImpl) Create(ctx context.Context, userID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	var parent *model.Comment
	if req.ParentID != nil {
		parent, err = s.commentRepo.GetCommentById(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != postID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		PostID:    postID,
		UserID:    userID,
		ParentID:  req.ParentID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if parent != nil {
		if parent.UserID != userID {
			s.producer.Publish(ctx, kafka.NewCommentMessage(kafka.TypeCommentReply, parent.UserID, userID, parent.ID))
		}
	} else if post.UserID != userID {
		s.producer.Publish(ctx, kafka.NewPostMessage(kafka.TypeCommentPost, post.UserID, userID, postID))
	}

	return toCommentDTO(comment), nil
}

func (s *commentServiceImpl) Delete(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return UnauthorizedError
	}
	return s.commentRepo.DeleteComment(ctx, comment.ID)
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.GetCommentsByPostId(ctx, postID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
