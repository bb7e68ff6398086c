package handler

import (
	"Bloom/internal/api/dto"
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PostActionHandler 评论与点赞
type PostActionHandler struct {
	commentService service.CommentService
	likeService    service.LikeService
}

func NewPostActionHandler(comment service.CommentService, like service.LikeService) *PostActionHandler {
	return &PostActionHandler{
		commentService: comment,
		likeService:    like,
	}
}

// CreateComment 评论或回复
func (h *PostActionHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CreateCommentDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	comment, err := h.commentService.Create(c.Request.Context(), userID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

// DeleteComment 删除自己的评论
func (h *PostActionHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = h.commentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListComments 帖子的评论列表
func (h *PostActionHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.commentService.ListByPost(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, list)
}

// LikePost 点赞帖子
func (h *PostActionHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = h.likeService.LikePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UnlikePost 取消点赞帖子
func (h *PostActionHandler) UnlikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = h.likeService.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// LikeComment 点赞评论
func (h *PostActionHandler) LikeComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = h.likeService.LikeComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UnlikeComment 取消点赞评论
func (h *PostActionHandler) UnlikeComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64("user_id")
	if err = h.likeService.UnlikeComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
