package handler

import (
	"Bloom/internal/pkg/response"
	"Bloom/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService service.SearchService
	searchSync    service.SearchSyncService
}

func NewSearchHandler(search service.SearchService, sync service.SearchSyncService) *SearchHandler {
	return &SearchHandler{
		searchService: search,
		searchSync:    sync,
	}
}

// Search 综合搜索
func (h *SearchHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	searchType := c.DefaultQuery("type", "all")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	res, err := h.searchService.Search(c.Request.Context(), keyword, searchType, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, res)
}

// Reindex 管理端全量重建索引, 同步执行
func (h *SearchHandler) Reindex(c *gin.Context) {
	if err := h.searchSync.ReindexAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
