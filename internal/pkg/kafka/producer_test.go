package kafka

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
)

func newMockProducer(t *testing.T) (*NotificationProducer, *mocks.AsyncProducer) {
	t.Helper()
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewAsyncProducer(t, cfg)
	p := &NotificationProducer{producer: mock, topic: "notification-events"}
	return p, mock
}

func TestProducerPublish(t *testing.T) {
	p, mock := newMockProducer(t)
	mock.ExpectInputAndSucceed()

	p.Publish(context.Background(), NewPostMessage(TypeLikePost, 1, 2, 100))

	select {
	case pm := <-mock.Successes():
		key, err := pm.Key.Encode()
		if err != nil {
			t.Fatalf("encode key: %v", err)
		}
		// 分区键取接收者ID, 保证同一用户的通知有序
		if string(key) != strconv.FormatUint(1, 10) {
			t.Errorf("key = %q, want recipient id", key)
		}
		value, err := pm.Value.Encode()
		if err != nil {
			t.Fatalf("encode value: %v", err)
		}
		var got NotificationMessage
		if err = json.Unmarshal(value, &got); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if got.Type != TypeLikePost || got.UserID != 1 || got.FromUserID != 2 {
			t.Errorf("payload = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("message never reached the producer")
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestProducerDropsInvalidMessage(t *testing.T) {
	p, _ := newMockProducer(t)

	// 非法消息在入队前被拦下, mock 未设置期望, 有消息进来会让测试失败
	p.Publish(context.Background(), &NotificationMessage{UserID: 1, FromUserID: 2, Type: "MENTION"})
	p.Publish(context.Background(), &NotificationMessage{UserID: 1, FromUserID: 2, Type: TypeLikePost})

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
