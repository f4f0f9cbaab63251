package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/utils/async"
)

// Watcher follows a started build until it reaches a terminal state,
// then posts the final commit status and notifies.
type Watcher struct {
	poller   *Poller
	syncer   *Syncer
	notifier interfaces.Notifier
	interval time.Duration
}

// NewWatcher creates a watcher polling at the given interval. The
// notifier may be nil when no notification channel is configured.
func NewWatcher(poller *Poller, syncer *Syncer, notifier interfaces.Notifier, interval time.Duration) *Watcher {
	return &Watcher{
		poller:   poller,
		syncer:   syncer,
		notifier: notifier,
		interval: interval,
	}
}

// WatchBuild schedules a background task following the build. The task
// outlives the webhook request that triggered it.
func (w *Watcher) WatchBuild(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) {
	async.Dispatch(ctx, "watch-build", func(ctx context.Context) error {
		return w.FollowBuild(ctx, pr, build)
	})
}

// FollowBuild polls until the build reaches a terminal state, then
// syncs the commit status exactly once. A poll failure ends the watch
// without a status write: there are no retries beyond the tick cadence
// itself. A failed final status post is only logged; the notifier
// still runs because the build result is known either way.
func (w *Watcher) FollowBuild(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) error {
	logger := ctxlog.From(ctx)
	logger.Info("watching build",
		"build_id", build.ID,
		"repo", pr.Slug(),
		"number", pr.Number,
		"interval", w.interval,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	current := build
	for !current.Status.Terminal() {
		select {
		case <-ctx.Done():
			logger.Warn("build watch cancelled", "build_id", build.ID)
			return ctx.Err()
		case <-ticker.C:
		}

		record, err := w.poller.Poll(ctx, build.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to poll watched build",
				goerr.V("build_id", build.ID))
		}

		if record.Status != current.Status {
			logger.Info("build status changed",
				"build_id", build.ID,
				"from", current.Status,
				"to", record.Status,
			)
		}
		current = record
	}

	if err := w.syncer.Sync(ctx, pr, current); err != nil {
		logger.Error("failed to sync final build status",
			"error", err,
			"build_id", build.ID,
		)
	}

	if w.notifier != nil {
		if err := w.notifier.NotifyBuildResult(ctx, pr, current); err != nil {
			logger.Warn("failed to notify build result",
				"error", err,
				"build_id", build.ID,
			)
		}
	}

	return nil
}
