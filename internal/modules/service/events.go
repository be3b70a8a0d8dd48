package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher delivers a JSON payload under a routing key.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// MutationEvent tells subscribers which entity a procedure changed.
type MutationEvent struct {
	EventID    string    `json:"event_id"`
	Procedure  string    `json:"procedure"`
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes mutation events. A nil publisher disables it.
type Notifier struct {
	pub EventPublisher
	log *zap.Logger
	now func() time.Time
}

func NewNotifier(pub EventPublisher, log *zap.Logger) *Notifier {
	return &Notifier{pub: pub, log: log, now: time.Now}
}

// Mutated publishes the event for procedure. Failures are logged only.
func (n *Notifier) Mutated(ctx context.Context, procedure, entity string, id int64) {
	if n == nil || n.pub == nil {
		return
	}
	ev := MutationEvent{
		EventID:    uuid.NewString(),
		Procedure:  procedure,
		Entity:     entity,
		EntityID:   id,
		OccurredAt: n.now().UTC(),
	}
	if err := n.pub.PublishJSON(ctx, procedure, ev); err != nil {
		n.log.Sugar().Warnw("publish mutation event failed", "procedure", procedure, "entity_id", id, "err", err)
	}
}
