package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// TriggerConfig carries the build service wiring: which project to
// build, the region its console lives in, and the label statuses are
// posted under.
type TriggerConfig struct {
	Project       string
	Region        string
	StatusContext string
}

// Trigger starts builds for buildable pull requests and reflects the
// start onto the head commit as pending statuses.
type Trigger struct {
	github interfaces.GitHubClient
	builds interfaces.BuildService
	config TriggerConfig
}

// NewTrigger creates the build trigger use case
func NewTrigger(github interfaces.GitHubClient, builds interfaces.BuildService, config TriggerConfig) *Trigger {
	return &Trigger{
		github: github,
		builds: builds,
		config: config,
	}
}

// Trigger runs the fixed sequence: authenticate, setup status, start
// build, running status. Each step's failure aborts the rest; posted
// statuses are never rolled back. The setup status doubles as a
// readiness probe: when GitHub rejects it, no build is started. The
// running status is best effort: the build already exists, so its
// failure is only logged.
func (t *Trigger) Trigger(ctx context.Context, pr *model.PullRequest) (*model.BuildRecord, error) {
	logger := ctxlog.From(ctx)

	if err := t.github.Authenticate(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate GitHub client")
	}

	setup := &model.CommitStatus{
		State:       model.StatusPending,
		Context:     t.config.StatusContext,
		Description: "Setting up the build...",
	}
	if err := t.github.CreateStatus(ctx, pr, setup); err != nil {
		return nil, goerr.Wrap(err, "failed to post setup status",
			goerr.V("repo", pr.Slug()),
			goerr.V("number", pr.Number),
			goerr.T(types.ErrTagStatusPost),
		)
	}

	build, err := t.builds.StartBuild(ctx, t.config.Project, pr.SourceVersion())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start build",
			goerr.V("project", t.config.Project),
			goerr.V("source_version", pr.SourceVersion()),
			goerr.T(types.ErrTagBuildService),
		)
	}

	logger.Info("build started",
		"build_id", build.ID,
		"project", build.Project,
		"source_version", build.SourceVersion,
		"repo", pr.Slug(),
		"number", pr.Number,
	)

	running := &model.CommitStatus{
		State:       model.StatusPending,
		Context:     t.config.StatusContext,
		Description: "Build is running...",
		TargetURL:   build.ConsoleURL(t.config.Region),
	}
	if err := t.github.CreateStatus(ctx, pr, running); err != nil {
		logger.Warn("failed to post running status, build continues",
			"error", err,
			"build_id", build.ID,
			"repo", pr.Slug(),
		)
	}

	return build, nil
}
