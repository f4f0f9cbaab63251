package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

type webhookUseCase struct {
	verifier   *Verifier
	classifier *Classifier
	trigger    *Trigger
	watcher    *Watcher
}

// NewWebhook wires the full delivery pipeline: verify, classify,
// trigger, watch.
func NewWebhook(verifier *Verifier, classifier *Classifier, trigger *Trigger, watcher *Watcher) interfaces.WebhookUseCase {
	return &webhookUseCase{
		verifier:   verifier,
		classifier: classifier,
		trigger:    trigger,
		watcher:    watcher,
	}
}

// HandleEvent processes one delivery. The ordering is fixed: verify,
// decode, classify, open check, trigger. Any failure short-circuits
// the rest of the pipeline.
func (uc *webhookUseCase) HandleEvent(ctx context.Context, event *model.InboundEvent) (*model.TriggerResult, error) {
	if err := uc.verifier.Verify(ctx, event); err != nil {
		return nil, err
	}

	ev, err := model.DecodeEvent(event)
	if err != nil {
		return nil, goerr.Wrap(err, "undecodable webhook payload",
			goerr.T(types.ErrTagNotBuildable))
	}

	ctxlog.From(ctx).Info("webhook event received",
		"delivery", ev.ID,
		"type", ev.Type,
		"action", ev.Action,
	)

	pr, err := uc.classifier.Classify(ctx, ev)
	if err != nil {
		return nil, err
	}

	// Builds run against open pull requests only, whichever path
	// classified them.
	if !pr.IsOpen() {
		return nil, goerr.New("pull request is not open",
			goerr.V("repo", pr.Slug()),
			goerr.V("number", pr.Number),
			goerr.V("state", pr.State),
			goerr.T(types.ErrTagNotBuildable),
		)
	}

	build, err := uc.trigger.Trigger(ctx, pr)
	if err != nil {
		return nil, err
	}

	uc.watcher.WatchBuild(ctx, pr, build)

	return &model.TriggerResult{
		Outcome:     model.OutcomeTriggered,
		PullRequest: pr,
		Build:       build,
	}, nil
}
