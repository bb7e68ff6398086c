package service

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/repository"
	"context"
	"time"
)

type UserService interface {
	GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo   repository.UserRepo
	searchSync SearchSyncService
}

func NewUserService(userRepo repository.UserRepo, searchSync SearchSyncService) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		searchSync: searchSync,
	}
}

func (s *userServiceImpl) GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.UserDTO{
		UserID:    user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Bio:       user.Bio,
		IsPrivate: user.IsPrivate,
	}, nil
}

// UpdateProfile 改资料后同步用户索引文档。
// 切成私密账号只影响之后的关注请求, 已生效的边不动
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.IsPrivate != nil {
		user.IsPrivate = *req.IsPrivate
	}
	user.UpdatedAt = time.Now()

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.searchSync.SyncUser(ctx, user)

	return &dto.UserDTO{
		UserID:    user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Bio:       user.Bio,
		IsPrivate: user.IsPrivate,
	}, nil
}
