package api

import (
	"Bloom/internal/api/middleware"
	"Bloom/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		notificationGroup := apiGroup.Group("/notifications")
		{
			// WS 鉴权走查询参数, 不过 Auth 中间件
			notificationGroup.GET("/ws", group.WsHandler.Connect)

			authGroup := notificationGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("", group.NotificationHandler.List)
				authGroup.PUT("/read-all", group.NotificationHandler.MarkAllRead)
				authGroup.PUT("/:id/read", group.NotificationHandler.MarkRead)
				authGroup.PUT("/:id/accept", group.NotificationHandler.AcceptFollowRequest)
				authGroup.PUT("/:id/reject", group.NotificationHandler.RejectFollowRequest)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:username", group.UserHandler.Get)
			userGroup.GET("/:username/counts", group.UserHandler.Counts)
			userGroup.GET("/:username/followers", group.FollowHandler.Followers)
			userGroup.GET("/:username/following", group.FollowHandler.Following)
			userGroup.GET("/:username/posts", group.PostHandler.ListByUser)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:username/follow", group.FollowHandler.Follow)
				authGroup.DELETE("/:username/unfollow", group.FollowHandler.Unfollow)
			}
		}

		apiGroup.PUT("/profile", middleware.AuthMiddleware(), group.UserHandler.UpdateProfile)

		requestGroup := apiGroup.Group("/follow-requests")
		{
			requestGroup.Use(middleware.AuthMiddleware())
			{
				requestGroup.GET("", group.FollowHandler.PendingRequests)
				requestGroup.POST("/:id/approve", group.FollowHandler.Approve)
				requestGroup.DELETE("/:id/reject", group.FollowHandler.Reject)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:id", group.PostHandler.Get)
				authOptGroup.GET("/:id/comments", group.PostActionHandler.ListComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.Create)
				authGroup.PUT("/:id", group.PostHandler.Update)
				authGroup.DELETE("/:id", group.PostHandler.Delete)
				authGroup.POST("/:id/comments", group.PostActionHandler.CreateComment)
				authGroup.POST("/:id/like", group.PostActionHandler.LikePost)
				authGroup.DELETE("/:id/like", group.PostActionHandler.UnlikePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.Use(middleware.AuthMiddleware())
			{
				commentGroup.DELETE("/:id", group.PostActionHandler.DeleteComment)
				commentGroup.POST("/:id/like", group.PostActionHandler.LikeComment)
				commentGroup.DELETE("/:id/like", group.PostActionHandler.UnlikeComment)
			}
		}

		hashtagGroup := apiGroup.Group("/hashtags")
		{
			hashtagGroup.GET("/posts", group.HashtagHandler.PostsByHashtag)
		}

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("", middleware.AuthOptionalMiddleware(), group.SearchHandler.Search)

			// 需要登录 & 拥有 admin 角色
			adminGroup := searchGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/reindex", group.SearchHandler.Reindex)
			}
		}
	}

	return r
}
