package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/broker"
)

// ReservationEvent is the envelope published on every committed lifecycle
// transition. Event types: ReservationCreated, ReservationReleased,
// ReservationFulfilled.
type ReservationEvent struct {
	EventID   string             `json:"event_id"`
	EventType string             `json:"event_type"`
	Payload   ReservationPayload `json:"payload"`
	Timestamp time.Time          `json:"timestamp"`
}

type ReservationPayload struct {
	ID      string                  `json:"id"`
	OrderID string                  `json:"orderId"`
	Items   model.LineItems         `json:"items"`
	Status  model.ReservationStatus `json:"status"`
}

func publishReservationEvent(ctx context.Context, p *broker.Producer, eventType string, res *model.Reservation) error {
	event := ReservationEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload: ReservationPayload{
			ID:      res.ID,
			OrderID: res.OrderID,
			Items:   res.Items,
			Status:  res.Status,
		},
		Timestamp: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(ctx, []byte(res.ID), value)
}
