package messaging

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a ledger event to the message broker
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}

// NewEvent creates a ledger event with a fresh time-sortable ID
func NewEvent(eventType domain.LedgerEventType, assetID string, occurredAt time.Time) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		EventID:    ulid.Make().String(),
		EventType:  eventType,
		AssetID:    assetID,
		OccurredAt: occurredAt,
	}
}

type noopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	return nil
}

func (noopPublisher) Close() {}
