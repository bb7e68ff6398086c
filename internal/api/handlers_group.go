package api

import "Bloom/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	NotificationHandler *handler.NotificationHandler
	FollowHandler       *handler.FollowHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	PostActionHandler   *handler.PostActionHandler
	SearchHandler       *handler.SearchHandler
	HashtagHandler      *handler.HashtagHandler
	WsHandler           *handler.WsHandler
}
