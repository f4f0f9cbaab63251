package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub configuration. Secrets are referenced by the
// parameter names they live under in the secret store, never by value:
// the webhook secret is fetched fresh per delivery and the API
// credentials are fetched once per process.
type GitHub struct {
	WebhookSecretParam string
	UsernameParam      string
	TokenParam         string
	StatusContext      string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret-param",
			Usage:       "Secret store parameter holding the webhook shared secret",
			Required:    true,
			Destination: &c.WebhookSecretParam,
			Sources:     cli.EnvVars("BUILDGATE_GITHUB_WEBHOOK_SECRET_PARAM"),
		},
		&cli.StringFlag{
			Name:        "github-username-param",
			Usage:       "Secret store parameter holding the GitHub API username",
			Required:    true,
			Destination: &c.UsernameParam,
			Sources:     cli.EnvVars("BUILDGATE_GITHUB_USERNAME_PARAM"),
		},
		&cli.StringFlag{
			Name:        "github-token-param",
			Usage:       "Secret store parameter holding the GitHub API token",
			Required:    true,
			Destination: &c.TokenParam,
			Sources:     cli.EnvVars("BUILDGATE_GITHUB_TOKEN_PARAM"),
		},
		&cli.StringFlag{
			Name:        "github-status-context",
			Usage:       "Label commit statuses are posted under",
			Value:       "ci/buildgate",
			Destination: &c.StatusContext,
			Sources:     cli.EnvVars("BUILDGATE_GITHUB_STATUS_CONTEXT"),
		},
	}
}
