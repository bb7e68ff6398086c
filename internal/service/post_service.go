package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/model"
	"Bloom/internal/pkg/kafka"
	"Bloom/internal/pkg/util"
	"Bloom/internal/repository"
	"context"
	"time"
)

type PostService interface {
	Create(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	Update(ctx context.Context, userID, postID uint64, req *dto.UpdatePostDTO) (*dto.PostDTO, error)
	Delete(ctx context.Context, userID, postID uint64) error
	Get(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	ListByUser(ctx context.Context, username string, page, pageSize int) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	hashtagRepo repository.HashtagRepo
	followRepo  repository.FollowRepo
	searchSync  SearchSyncService
	producer    kafka.Producer
}

func NewPostService(
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	hashtagRepo repository.HashtagRepo,
	followRepo repository.FollowRepo,
	searchSync SearchSyncService,
	producer kafka.Producer,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		userRepo:    userRepo,
		hashtagRepo: hashtagRepo,
		followRepo:  followRepo,
		searchSync:  searchSync,
		producer:    producer,
	}
}

// Create 发帖：正文里的 #标签 先落主库，再同步索引，
// 最后给所有已生效的粉丝发 NEW_POST
func (s *postServiceImpl) Create(ctx context.Context, userID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	names := util.ExtractTags(req.Title + " " + req.Content)
	tags, err := s.hashtagRepo.UpsertHashtags(ctx, names)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, t := range tags {
		post.Hashtags = append(post.Hashtags, *t)
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.searchSync.SyncPost(ctx, post)
	for _, t := range tags {
		s.searchSync.SyncHashtag(ctx, t)
	}

	// 粉丝扇出失败不影响发帖
	followerIDs, err := s.followRepo.GetApprovedFollowerIds(ctx, userID)
	if err == nil {
		for _, fid := range followerIDs {
			s.producer.Publish(ctx, kafka.NewPostMessage(kafka.TypeNewPost, fid, userID, post.ID))
		}
	}

	return toPostDTO(post), nil
}

// Update 编辑后整篇重建索引文档
func (s *postServiceImpl) Update(ctx context.Context, userID, postID uint64, req *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	post.UpdatedAt = time.Now()

	names := util.ExtractTags(post.Title + " " + post.Content)
	tags, err := s.hashtagRepo.UpsertHashtags(ctx, names)
	if err != nil {
		return nil, err
	}
	post.Hashtags = post.Hashtags[:0]
	for _, t := range tags {
		post.Hashtags = append(post.Hashtags, *t)
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	s.searchSync.SyncPost(ctx, post)
	for _, t := range tags {
		s.searchSync.SyncHashtag(ctx, t)
	}

	return toPostDTO(post), nil
}

// Delete 软删主库记录并摘掉索引文档
func (s *postServiceImpl) Delete(ctx context.Context, userID, postID uint64) error {
	post, err := s.getOwned(ctx, userID, postID)
	if err != nil {
		return err
	}

	if err = s.postRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}

	s.searchSync.RemovePost(ctx, post.ID)
	return nil
}

func (s *postServiceImpl) Get(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) ListByUser(ctx context.Context, username string, page, pageSize int) ([]*dto.PostDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.GetPostsByUserId(ctx, user.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostDTO(p))
	}
	return res, nil
}

func (s *postServiceImpl) getOwned(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	tags := make([]string, 0, len(post.Hashtags))
	for _, t := range post.Hashtags {
		tags = append(tags, t.Name)
	}
	return &dto.PostDTO{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		Hashtags:  tags,
		CreatedAt: post.CreatedAt,
	}
}
