package handler

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService   service.UserService
	followService service.FollowService
}

func NewUserHandler(user service.UserService, follow service.FollowService) *UserHandler {
	return &UserHandler{
		userService:   user,
		followService: follow,
	}
}

// Get 用户主页信息
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// UpdateProfile 编辑自己的资料
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Counts 关注与粉丝数
func (h *UserHandler) Counts(c *gin.Context) {
	counts, err := h.followService.Counts(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, counts)
}
