package config

import "github.com/urfave/cli/v3"

// Slack holds Slack notification configuration. Leaving the URL empty
// disables notifications.
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for build result notifications",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("BUILDGATE_SLACK_WEBHOOK_URL"),
		},
	}
}
