// Package listener consumes order lifecycle events and drives the matching
// reservation transitions, so upstream services do not have to call the
// reservation endpoints themselves on cancellation or completion.
package listener

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/broker"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/reservation"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

type OrderListener struct {
	consumer *broker.Consumer
	uc       reservation.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer *broker.Consumer, uc reservation.UseCase, log logger.ZapLogger) *OrderListener {
	return &OrderListener{consumer: consumer, uc: uc, logger: log}
}

type OrderEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID string `json:"id"`
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("starting order event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping order event listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal order event", zap.Error(err))
		return
	}

	switch event.EventType {
	case "OrderCancelled":
		l.transition(ctx, event.Payload.ID, l.uc.Release)
	case "OrderCompleted":
		l.transition(ctx, event.Payload.ID, l.uc.Fulfill)
	}
}

// transition applies op to every ACTIVE reservation of the order. Transitions
// that already happened through the HTTP surface show up as INVALID_STATE and
// are skipped quietly.
func (l *OrderListener) transition(ctx context.Context, orderID string, op func(context.Context, string) (*model.Reservation, error)) {
	reservations, err := l.uc.List(ctx, &dto.ReservationFilters{
		OrderID: orderID,
		Status:  string(model.ReservationStatusActive),
	})
	if err != nil {
		l.logger.Error("failed to list reservations for order", zap.String("order_id", orderID), zap.Error(err))
		return
	}

	for _, res := range reservations {
		if _, err := op(ctx, res.ID); err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) && appErr.Code == apperrors.CodeInvalidState {
				continue
			}
			l.logger.Error("failed to transition reservation from order event",
				zap.String("order_id", orderID),
				zap.String("reservation_id", res.ID),
				zap.Error(err),
			)
		}
	}
}
