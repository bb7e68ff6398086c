package handler

import (
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagService service.HashtagService
}

func NewHashtagHandler(s service.HashtagService) *HashtagHandler {
	return &HashtagHandler{
		hashtagService: s,
	}
}

// PostsByHashtag 按标签名查询帖子
func (h *HashtagHandler) PostsByHashtag(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	posts, err := h.hashtagService.PostsByHashtag(c.Request.Context(), c.Query("name"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}
