package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"llanero-admin-service/internal/models"
)

const (
	streamName = "LLANERO"

	SubjectProductCreated  = "product.created"
	SubjectProductUpdated  = "product.updated"
	SubjectProductDeleted  = "product.deleted"
	SubjectProductImported = "product.imported"
	SubjectOrderStatus     = "order.status_changed"
)

// Event is the envelope published for every catalog change
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	ActorID   string                 `json:"actorId,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Publisher emits catalog events to NATS JetStream for the audit trail
type Publisher struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	logger *logrus.Entry
}

// NewPublisher connects to NATS and ensures the event stream exists
func NewPublisher(natsURL string, logger *logrus.Logger) (*Publisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name("llanero-admin-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{"product.>", "order.>"},
		Storage:  nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		logger.WithError(err).Warn("Failed to ensure event stream (may already exist)")
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		logger: logger.WithField("component", "events"),
	}, nil
}

// Close drains the NATS connection
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// PublishProductCreated publishes a product.created event
func (p *Publisher) PublishProductCreated(ctx context.Context, product *models.Product, actorID string) {
	p.publish(ctx, SubjectProductCreated, actorID, map[string]interface{}{
		"productId": product.ID.String(),
		"name":      product.Name,
		"sku":       product.SKU,
		"price":     product.Price,
		"isActive":  product.IsActive,
	})
}

// PublishProductUpdated publishes a product.updated event
func (p *Publisher) PublishProductUpdated(ctx context.Context, product *models.Product, actorID string) {
	p.publish(ctx, SubjectProductUpdated, actorID, map[string]interface{}{
		"productId": product.ID.String(),
		"name":      product.Name,
		"sku":       product.SKU,
		"price":     product.Price,
		"isActive":  product.IsActive,
	})
}

// PublishProductDeleted publishes a product.deleted event
func (p *Publisher) PublishProductDeleted(ctx context.Context, productID uuid.UUID, actorID string) {
	p.publish(ctx, SubjectProductDeleted, actorID, map[string]interface{}{
		"productId": productID.String(),
	})
}

// PublishImportFinished publishes a product.imported summary event
func (p *Publisher) PublishImportFinished(ctx context.Context, result *models.ImportResult, actorID string) {
	p.publish(ctx, SubjectProductImported, actorID, map[string]interface{}{
		"created": result.CreatedCount,
		"updated": result.UpdatedCount,
		"errors":  len(result.Errors),
	})
}

// PublishOrderStatusChanged publishes an order.status_changed event
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, order *models.Order, oldStatus models.OrderStatus, actorID string) {
	p.publish(ctx, SubjectOrderStatus, actorID, map[string]interface{}{
		"orderId":     order.ID.String(),
		"orderNumber": order.OrderNumber,
		"oldStatus":   string(oldStatus),
		"newStatus":   string(order.Status),
	})
}

// publish sends the event asynchronously so request handling never blocks
// on the broker.
func (p *Publisher) publish(ctx context.Context, subject, actorID string, payload map[string]interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      subject,
		ActorID:   actorID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.WithError(err).Error("Failed to encode event")
			return
		}
		if _, err := p.js.Publish(subject, data); err != nil {
			p.logger.WithFields(logrus.Fields{
				"eventType": subject,
				"eventId":   event.ID,
			}).WithError(err).Error("Failed to publish event")
			return
		}
		p.logger.WithFields(logrus.Fields{
			"eventType": subject,
			"eventId":   event.ID,
		}).Debug("Event published")
	}()
}
