package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
)

type notifier struct {
	webhookURL string
	region     string
}

// New creates a notifier posting to a Slack incoming webhook. The
// region is only used to render the console link.
func New(webhookURL, region string) interfaces.Notifier {
	return &notifier{
		webhookURL: webhookURL,
		region:     region,
	}
}

// NotifyBuildResult posts a one-line message describing the finished
// build.
func (n *notifier) NotifyBuildResult(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("%s #%d: build %s (<%s|console>)",
			pr.Slug(), pr.Number, build.Status, build.ConsoleURL(n.region)),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack notification",
			goerr.V("build_id", build.ID),
			goerr.V("repo", pr.Slug()),
		)
	}

	return nil
}
