package wire

import (
	"Bloom/internal/api"
	"Bloom/internal/api/config"
	"Bloom/internal/api/handler"
	"Bloom/internal/job"
	"Bloom/internal/pkg/cron"
	"Bloom/internal/pkg/es"
	"Bloom/internal/pkg/kafka"
	redispkg "Bloom/internal/pkg/redis"
	"Bloom/internal/repository"
	"Bloom/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	mongodb "Bloom/internal/pkg/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	Producer     *kafka.NotificationProducer
	SearchSync   service.SearchSyncService
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	followRepo := repository.NewFollowRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	hashtagRepo := repository.NewHashtagRepo(db)

	notifRepo := mongodb.NewNotificationRepo(mongoDB)

	userES := es.NewUserRepo()
	postES := es.NewPostRepo()
	hashtagES := es.NewHashtagRepo()

	producer, err := kafka.NewNotificationProducer(cfg)
	if err != nil {
		return nil, err
	}

	searchSync := service.NewSearchSyncService(userES, postES, hashtagES, userRepo, postRepo, hashtagRepo)
	followService := service.NewFollowService(followRepo, userRepo, producer)
	notificationService := service.NewNotificationService(notifRepo, userRepo, followService, redispkg.NewUnreadCountCache())
	searchService := service.NewSearchService(userES, postES, hashtagES)
	hashtagService := service.NewHashtagService(hashtagRepo, postES)
	postService := service.NewPostService(postRepo, userRepo, hashtagRepo, followRepo, searchSync, producer)
	commentService := service.NewCommentService(commentRepo, postRepo, producer)
	likeService := service.NewLikeService(likeRepo, postRepo, commentRepo, producer)
	userService := service.NewUserService(userRepo, searchSync)

	handlers := &api.HandlersGroup{
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		FollowHandler:       handler.NewFollowHandler(followService),
		UserHandler:         handler.NewUserHandler(userService, followService),
		PostHandler:         handler.NewPostHandler(postService),
		PostActionHandler:   handler.NewPostActionHandler(commentService, likeService),
		SearchHandler:       handler.NewSearchHandler(searchService, searchSync),
		HashtagHandler:      handler.NewHashtagHandler(hashtagService),
		WsHandler:           handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, userRepo, postRepo, commentRepo, followRepo, notifRepo, redispkg.NewNotificationPusher())
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewReindexJob(searchSync))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		Producer:     producer,
		SearchSync:   searchSync,
		CronMgr:      cronMgr,
	}, nil
}
