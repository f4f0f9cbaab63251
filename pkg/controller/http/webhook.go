package http

import (
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// WebhookHandler handles GitHub webhook deliveries
type WebhookHandler struct {
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: webhookUC,
	}
}

// Handle processes one webhook delivery. Verification and
// classification happen in the use case; this layer shapes the HTTP
// exchange: 401 for rejected deliveries, 200 with an ignored body for
// verified events that warrant no build (GitHub must not retry those),
// 200 with the trigger result, 500 for everything else.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Read payload
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	event := &model.InboundEvent{
		Delivery:   r.Header.Get("X-GitHub-Delivery"),
		Name:       r.Header.Get("X-GitHub-Event"),
		Signature:  r.Header.Get("X-Hub-Signature"),
		Body:       body,
		ReceivedAt: time.Now(),
	}

	result, err := h.webhookUC.HandleEvent(ctx, event)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.Info("Build triggered",
		"delivery", event.Delivery,
		"repo", result.PullRequest.Slug(),
		"number", result.PullRequest.Number,
		"build_id", result.Build.ID,
	)
	writeJSON(w, http.StatusOK, result)
}

func (h *WebhookHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := ctxlog.From(r.Context())

	switch {
	case goerr.HasTag(err, types.ErrTagAuth):
		logger.Warn("Webhook delivery rejected", "error", err)
		writeError(w, err, http.StatusUnauthorized)

	case goerr.HasTag(err, types.ErrTagNotBuildable):
		logger.Info("Webhook ignored", "reason", err.Error())
		writeJSON(w, http.StatusOK, &model.TriggerResult{
			Outcome: model.OutcomeIgnored,
			Reason:  err.Error(),
		})

	default:
		logger.Error("Failed to process webhook event", "error", err)
		sentry.CaptureException(err)
		writeError(w, err, http.StatusInternalServerError)
	}
}
