package handler

import (
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: s,
	}
}

// List 获取通知列表 (带全量未读数)
func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	unreadOnly := c.DefaultQuery("unread_only", "false") == "true"
	userID := c.GetUint64("user_id")

	list, err := h.notificationService.List(c.Request.Context(), userID, unreadOnly, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// MarkAllRead 一键已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, res)
}

// AcceptFollowRequest 通过通知里的关注请求
func (h *NotificationHandler) AcceptFollowRequest(c *gin.Context) {
	userID := c.GetUint64("user_id")
	err := h.notificationService.AcceptFollowRequest(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// RejectFollowRequest 拒绝通知里的关注请求
func (h *NotificationHandler) RejectFollowRequest(c *gin.Context) {
	userID := c.GetUint64("user_id")
	err := h.notificationService.RejectFollowRequest(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
