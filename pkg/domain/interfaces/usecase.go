package interfaces

import (
	"context"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// HandleEvent verifies, classifies and possibly triggers a build
	// for an inbound delivery
	HandleEvent(ctx context.Context, event *model.InboundEvent) (*model.TriggerResult, error)
}
