package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// Syncer maps a build state onto the commit status vocabulary and
// posts it against the pull request head.
type Syncer struct {
	github interfaces.GitHubClient
	config TriggerConfig
}

// NewSyncer creates the status synchronization use case
func NewSyncer(github interfaces.GitHubClient, config TriggerConfig) *Syncer {
	return &Syncer{
		github: github,
		config: config,
	}
}

// Sync posts the status reflecting the given build record. Idempotent:
// the same record always produces the same visible status, so posting
// twice is harmless.
func (s *Syncer) Sync(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) error {
	status := &model.CommitStatus{
		State:       model.StatusForBuild(build.Status),
		Context:     s.config.StatusContext,
		Description: fmt.Sprintf("Build %s...", build.Status),
		TargetURL:   build.ConsoleURL(s.config.Region),
	}

	if err := s.github.CreateStatus(ctx, pr, status); err != nil {
		return goerr.Wrap(err, "failed to sync build status",
			goerr.V("build_id", build.ID),
			goerr.V("build_status", build.Status),
			goerr.V("state", status.State),
			goerr.T(types.ErrTagStatusPost),
		)
	}

	ctxlog.From(ctx).Info("synced build status",
		"build_id", build.ID,
		"build_status", build.Status,
		"state", status.State,
		"repo", pr.Slug(),
		"number", pr.Number,
	)

	return nil
}
