package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	declared   []string
	kind       string
	declareErr error
	publishErr error
	published  []fakePublish
	closed     bool
}

type fakePublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name)
	f.kind = kind
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, fakePublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestNewAMQPPublisherDeclaresTopicExchange(t *testing.T) {
	ch := &fakeChannel{}
	if _, err := newAMQPPublisher(ch, ""); err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if len(ch.declared) != 1 || ch.declared[0] != DefaultExchange {
		t.Fatalf("declared = %v", ch.declared)
	}
	if ch.kind != amqp.ExchangeTopic {
		t.Fatalf("kind = %q, want topic", ch.kind)
	}
}

func TestNewAMQPPublisherDeclareError(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	if _, err := newAMQPPublisher(ch, "orders"); err == nil {
		t.Fatal("expected declare error")
	}
}

func TestPublishStatusChanged(t *testing.T) {
	ch := &fakeChannel{}
	publisher, err := newAMQPPublisher(ch, "orders")
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	publisher.now = func() time.Time { return fixed }

	event := StatusChanged{OrderID: "o1", TableNumber: "T03", From: "pending", To: "confirmed"}
	if err := publisher.PublishStatusChanged(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(ch.published) != 1 {
		t.Fatalf("published = %d, want 1", len(ch.published))
	}
	got := ch.published[0]
	if got.exchange != "orders" || got.key != "order.status.confirmed" {
		t.Fatalf("exchange/key = %s/%s", got.exchange, got.key)
	}
	if got.msg.ContentType != "application/json" || got.msg.DeliveryMode != amqp.Persistent {
		t.Fatalf("publishing = %+v", got.msg)
	}
	var decoded StatusChanged
	if err := json.Unmarshal(got.msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.OrderID != "o1" || !decoded.ChangedAt.Equal(fixed) {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestPublishStatusChangedError(t *testing.T) {
	ch := &fakeChannel{}
	publisher, err := newAMQPPublisher(ch, "orders")
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	ch.publishErr = errors.New("channel closed")

	if err := publisher.PublishStatusChanged(context.Background(), StatusChanged{OrderID: "o1", To: "ready"}); err == nil {
		t.Fatal("expected publish error")
	}
}

func TestNilPublisherErrors(t *testing.T) {
	var publisher *AMQPPublisher
	if err := publisher.PublishStatusChanged(context.Background(), StatusChanged{}); err == nil {
		t.Fatal("expected error from nil publisher")
	}
	if err := publisher.Close(); err != nil {
		t.Fatalf("close nil publisher: %v", err)
	}
}

func TestCloseClosesChannel(t *testing.T) {
	ch := &fakeChannel{}
	publisher, err := newAMQPPublisher(ch, "")
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !ch.closed {
		t.Fatal("channel not closed")
	}
}

func TestRoutingKey(t *testing.T) {
	if got := RoutingKey(" Ready "); got != "order.status.ready" {
		t.Fatalf("RoutingKey = %q", got)
	}
}

func TestDialAMQPRequiresURL(t *testing.T) {
	if _, err := DialAMQP(" ", ""); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestNopPublisher(t *testing.T) {
	var publisher Publisher = Nop{}
	if err := publisher.PublishStatusChanged(context.Background(), StatusChanged{}); err != nil {
		t.Fatalf("nop publish: %v", err)
	}
}
