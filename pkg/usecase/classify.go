package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// Classifier decides whether a verified event warrants a build and
// produces the pull request snapshot to build against.
type Classifier struct {
	github interfaces.GitHubClient
	rules  *model.TriggerRules
}

// NewClassifier creates a classifier applying the given trigger rules
func NewClassifier(github interfaces.GitHubClient, rules *model.TriggerRules) *Classifier {
	return &Classifier{
		github: github,
		rules:  rules,
	}
}

// notBuildable reports why an event yields no build. Not an
// operational failure, simply nothing to do.
func notBuildable(reason string, options ...goerr.Option) error {
	options = append(options, goerr.T(types.ErrTagNotBuildable))
	return goerr.New(reason, options...)
}

// Classify inspects a decoded event and returns the pull request to
// build, or a not-buildable error explaining why nothing happens. The
// two buildable shapes are mutually exclusive: a pull request
// lifecycle action, or the trigger phrase commented on a pull request.
func (c *Classifier) Classify(ctx context.Context, ev *model.Event) (*model.PullRequest, error) {
	switch ev.Type {
	case model.EventTypePullRequest:
		return c.classifyPullRequest(ev)
	case model.EventTypeIssueComment:
		return c.classifyComment(ctx, ev)
	default:
		return nil, notBuildable("unsupported event type", goerr.V("type", ev.Type))
	}
}

func (c *Classifier) classifyPullRequest(ev *model.Event) (*model.PullRequest, error) {
	if !c.rules.KindEnabled(model.TriggerPullRequest) {
		return nil, notBuildable("pull request trigger is disabled")
	}
	if ev.PullRequest == nil {
		return nil, notBuildable("event has no pull request payload")
	}
	if !c.rules.PullActionAllowed(ev.Action) {
		return nil, notBuildable("pull request action does not trigger builds",
			goerr.V("action", ev.Action))
	}

	return ev.PullRequest, nil
}

func (c *Classifier) classifyComment(ctx context.Context, ev *model.Event) (*model.PullRequest, error) {
	if !c.rules.KindEnabled(model.TriggerComment) {
		return nil, notBuildable("comment trigger is disabled")
	}
	if ev.Issue == nil || ev.Comment == nil {
		return nil, notBuildable("event has no issue or comment payload")
	}
	if !c.rules.CommentActionAllowed(ev.Action) {
		return nil, notBuildable("comment action does not trigger builds",
			goerr.V("action", ev.Action))
	}
	if !ev.Issue.PullRequest {
		return nil, notBuildable("comment is not on a pull request",
			goerr.V("issue", ev.Issue.Number))
	}
	if !c.rules.PhraseMatches(ev.Comment.Body) {
		return nil, notBuildable("comment is not the trigger phrase")
	}
	if !c.rules.UserAllowed(ev.Comment.User) {
		return nil, notBuildable("commenter is not allowed to trigger builds",
			goerr.V("user", ev.Comment.User))
	}

	ctxlog.From(ctx).Info("trigger phrase received",
		"repo", ev.Issue.Owner+"/"+ev.Issue.Repo,
		"issue", ev.Issue.Number,
		"user", ev.Comment.User,
	)

	// The comment event does not embed full pull request data, so
	// fetch it from the API.
	pr, err := c.github.GetPullRequest(ctx, ev.Issue.Owner, ev.Issue.Repo, ev.Issue.Number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch pull request for comment trigger",
			goerr.V("repo", ev.Issue.Owner+"/"+ev.Issue.Repo),
			goerr.V("number", ev.Issue.Number),
		)
	}

	return pr, nil
}
