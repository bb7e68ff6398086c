package kafka

import (
	"Bloom/internal/api/config"
	mongodb "Bloom/internal/pkg/mongo"
	"Bloom/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	notificationConsumer sarama.ConsumerGroup
	notificationHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(
	cfg *config.Config,
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	followRepo repository.FollowRepo,
	notifRepo mongodb.NotificationRepo,
	pusher Pusher,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	notificationConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaNotificationConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	notificationHandler := NewNotificationHandler(userRepo, postRepo, commentRepo, followRepo, notifRepo, pusher)

	return &ConsumerManager{
		notificationConsumer: notificationConsumer,
		notificationHandler:  notificationHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaNotificationConsumer.Topic
		log.Info("Notification consumer started", "topic", topic)
		for {
			if err := m.notificationConsumer.Consume(ctx, []string{topic}, m.notificationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.notificationConsumer.Close(); err != nil {
		log.Error("Failed to close notification consumer", "err", err)
	}

	return nil
}
