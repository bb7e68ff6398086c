package handler

import (
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(s service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: s,
	}
}

// Follow 关注用户
func (h *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	res, err := h.followService.Follow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, res)
}

// Unfollow 取消关注
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")

	err := h.followService.Unfollow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Followers 粉丝列表
func (h *FollowHandler) Followers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.followService.Followers(c.Request.Context(), c.Param("username"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// Following 关注列表
func (h *FollowHandler) Following(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.followService.Following(c.Request.Context(), c.Param("username"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// PendingRequests 我收到的待处理关注请求
func (h *FollowHandler) PendingRequests(c *gin.Context) {
	userID := c.GetUint64("user_id")

	list, err := h.followService.PendingRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// Approve 通过关注请求
func (h *FollowHandler) Approve(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.followService.Approve(c.Request.Context(), userID, followID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Reject 拒绝关注请求
func (h *FollowHandler) Reject(c *gin.Context) {
	userID := c.GetUint64("user_id")

	followID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.followService.Reject(c.Request.Context(), userID, followID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
