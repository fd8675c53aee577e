// Package notify publishes order events.
package notify

import (
	"context"
	"encoding/json"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"go.uber.org/zap"
)

const subjectPrefix = "orders."

// Subject returns the subject an event is published on
func Subject(event domain.OrderEvent) string {
	return subjectPrefix + string(event.Status)
}

// publisher is satisfied by *nats.Conn
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes JSON events to NATS. Failures are logged and dropped.
type NATSPublisher struct {
	conn   publisher
	logger *zap.Logger
}

// NewNATSPublisher creates a NATSPublisher
func NewNATSPublisher(conn publisher, logger *zap.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, logger: logger}
}

// Publish implements domain.Notifier
func (p *NATSPublisher) Publish(_ context.Context, event domain.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode order event", zap.String("reference", event.Reference), zap.Error(err))
		return
	}

	if err := p.conn.Publish(Subject(event), data); err != nil {
		p.logger.Warn("failed to publish order event",
			zap.String("reference", event.Reference),
			zap.String("status", string(event.Status)),
			zap.Error(err),
		)
	}
}

// LogNotifier writes events to the log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Publish implements domain.Notifier
func (n *LogNotifier) Publish(_ context.Context, event domain.OrderEvent) {
	n.logger.Info("order event",
		zap.String("reference", event.Reference),
		zap.Int64("user_id", event.UserID),
		zap.String("status", string(event.Status)),
		zap.String("amount", event.Amount.StringFixed(2)),
		zap.String("reason", event.Reason),
	)
}
