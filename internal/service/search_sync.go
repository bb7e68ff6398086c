package service

import (
	"Bloom/internal/model"
	"Bloom/internal/pkg/es"
	"Bloom/internal/repository"
	"context"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const reindexBatchSize = 200

// SearchSyncService 负责把主库变更同步到搜索索引。
// 单条同步失败只记日志不回传，主流程不受搜索侧故障影响；
// 漏掉的文档由对账任务和 cmd/reindex 补齐
type SearchSyncService interface {
	SyncUser(ctx context.Context, user *model.User)
	RemoveUser(ctx context.Context, id uint64)
	SyncPost(ctx context.Context, post *model.Post)
	RemovePost(ctx context.Context, id uint64)
	SyncHashtag(ctx context.Context, tag *model.Hashtag)
	RemoveHashtag(ctx context.Context, id uint64)
	ReindexUser(ctx context.Context, user *model.User) error
	ReindexPost(ctx context.Context, post *model.Post) error
	ReindexHashtag(ctx context.Context, tag *model.Hashtag) error
	ReindexAll(ctx context.Context) error
}

type searchSyncServiceImpl struct {
	userES    es.UserRepo
	postES    es.PostRepo
	hashtagES es.HashtagRepo

	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	hashtagRepo repository.HashtagRepo
}

func NewSearchSyncService(
	userES es.UserRepo,
	postES es.PostRepo,
	hashtagES es.HashtagRepo,
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	hashtagRepo repository.HashtagRepo,
) SearchSyncService {
	return &searchSyncServiceImpl{
		userES:      userES,
		postES:      postES,
		hashtagES:   hashtagES,
		userRepo:    userRepo,
		postRepo:    postRepo,
		hashtagRepo: hashtagRepo,
	}
}

// version 外部版本号取当前毫秒时间戳, 旧写入到达时被 409 挡掉
func version() int64 {
	return time.Now().UnixMilli()
}

func (s *searchSyncServiceImpl) SyncUser(ctx context.Context, user *model.User) {
	if err := s.userES.IndexUser(ctx, toUserES(user), version()); err != nil {
		log.ErrorContext(ctx, "sync user to index failed", "user_id", user.ID, "err", err)
	}
}

func (s *searchSyncServiceImpl) RemoveUser(ctx context.Context, id uint64) {
	if err := s.userES.DeleteUser(ctx, id); err != nil {
		log.ErrorContext(ctx, "remove user from index failed", "user_id", id, "err", err)
	}
}

func (s *searchSyncServiceImpl) SyncPost(ctx context.Context, post *model.Post) {
	if err := s.postES.IndexPost(ctx, toPostES(post), version()); err != nil {
		log.ErrorContext(ctx, "sync post to index failed", "post_id", post.ID, "err", err)
	}
}

func (s *searchSyncServiceImpl) RemovePost(ctx context.Context, id uint64) {
	if err := s.postES.DeletePost(ctx, id); err != nil {
		log.ErrorContext(ctx, "remove post from index failed", "post_id", id, "err", err)
	}
}

func (s *searchSyncServiceImpl) SyncHashtag(ctx context.Context, tag *model.Hashtag) {
	if err := s.hashtagES.IndexHashtag(ctx, toHashtagES(tag), version()); err != nil {
		log.ErrorContext(ctx, "sync hashtag to index failed", "hashtag_id", tag.ID, "err", err)
	}
}

func (s *searchSyncServiceImpl) RemoveHashtag(ctx context.Context, id uint64) {
	if err := s.hashtagES.DeleteHashtag(ctx, id); err != nil {
		log.ErrorContext(ctx, "remove hashtag from index failed", "hashtag_id", id, "err", err)
	}
}

// ReindexUser 重建单个用户文档: 先删后写, 保证残留字段被清掉
func (s *searchSyncServiceImpl) ReindexUser(ctx context.Context, user *model.User) error {
	if err := s.userES.DeleteUser(ctx, user.ID); err != nil {
		return err
	}
	return s.userES.IndexUser(ctx, toUserES(user), version())
}

func (s *searchSyncServiceImpl) ReindexPost(ctx context.Context, post *model.Post) error {
	if err := s.postES.DeletePost(ctx, post.ID); err != nil {
		return err
	}
	return s.postES.IndexPost(ctx, toPostES(post), version())
}

func (s *searchSyncServiceImpl) ReindexHashtag(ctx context.Context, tag *model.Hashtag) error {
	if err := s.hashtagES.DeleteHashtag(ctx, tag.ID); err != nil {
		return err
	}
	return s.hashtagES.IndexHashtag(ctx, toHashtagES(tag), version())
}

// ReindexAll 全量重建三个索引, 三路并发各自分批扫主库
func (s *searchSyncServiceImpl) ReindexAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.userRepo.WalkUsers(gctx, reindexBatchSize, func(users []*model.User) error {
			for _, u := range users {
				if err := s.ReindexUser(gctx, u); err != nil {
					return err
				}
			}
			return nil
		})
	})

	g.Go(func() error {
		return s.postRepo.WalkPosts(gctx, reindexBatchSize, func(posts []*model.Post) error {
			for _, p := range posts {
				if err := s.ReindexPost(gctx, p); err != nil {
					return err
				}
			}
			return nil
		})
	})

	g.Go(func() error {
		return s.hashtagRepo.WalkHashtags(gctx, reindexBatchSize, func(tags []*model.Hashtag) error {
			for _, t := range tags {
				if err := s.ReindexHashtag(gctx, t); err != nil {
					return err
				}
			}
			return nil
		})
	})

	return g.Wait()
}

func toUserES(user *model.User) *es.UserES {
	return &es.UserES{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Bio:      user.Bio,
	}
}

func toPostES(post *model.Post) *es.PostES {
	tags := make([]string, 0, len(post.Hashtags))
	for _, t := range post.Hashtags {
		tags = append(tags, t.Name)
	}
	return &es.PostES{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		Hashtags:  tags,
		CreatedAt: post.CreatedAt,
	}
}

func toHashtagES(tag *model.Hashtag) *es.HashtagES {
	return &es.HashtagES{
		ID:   tag.ID,
		Name: tag.Name,
	}
}
