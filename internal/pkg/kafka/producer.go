package kafka

import (
	"Bloom/internal/api/config"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Producer 通知事件发布入口，业务侧只管投递，不关心结果
type Producer interface {
	Publish(ctx context.Context, msg *NotificationMessage)
}

type NotificationProducer struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewNotificationProducer(cfg *config.Config) (*NotificationProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	p := &NotificationProducer{
		producer: producer,
		topic:    cfg.KafkaNotificationProducer.Topic,
	}

	// 异步投递失败只记日志，不回传业务侧
	go func() {
		for e := range producer.Errors() {
			log.Error("notification publish failed", "topic", e.Msg.Topic, "err", e.Err)
		}
	}()

	return p, nil
}

// Publish 校验后异步投递，按接收者ID做分区键保证同一用户的通知有序。
// 任何失败(非法消息、队列已满)都只记日志，调用方不受影响
func (s *NotificationProducer) Publish(ctx context.Context, msg *NotificationMessage) {
	if err := msg.Validate(); err != nil {
		log.ErrorContext(ctx, "drop invalid notification message", "type", msg.Type, "err", err)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.ErrorContext(ctx, "marshal notification message error", "err", err)
		return
	}

	pm := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(msg.UserID, 10)),
		Value: sarama.ByteEncoder(data),
	}

	select {
	case s.producer.Input() <- pm:
	case <-ctx.Done():
		log.WarnContext(ctx, "drop notification message, context canceled", "type", msg.Type)
	}
}

func (s *NotificationProducer) Close() error {
	return s.producer.Close()
}
