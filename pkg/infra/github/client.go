package github

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
)

type client struct {
	source  *CredentialSource
	baseURL string

	mu sync.Mutex
	gh *github.Client
}

// Option configures the GitHub client
type Option func(*client)

// WithBaseURL points the client at a different API endpoint. Used by
// tests to target a local server.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// NewClient creates a GitHub client that authenticates with basic auth
// credentials drawn from the given source on first use.
func NewClient(source *CredentialSource, options ...Option) interfaces.GitHubClient {
	c := &client{source: source}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Authenticate fetches credentials and builds the underlying API
// client. Idempotent: once the client is built for this process, later
// calls return immediately.
func (c *client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gh != nil {
		return nil
	}

	creds, err := c.source.Get(ctx)
	if err != nil {
		return err
	}

	transport := &github.BasicAuthTransport{
		Username: creds.Username,
		Password: creds.Token,
	}
	gh := github.NewClient(transport.Client())

	if c.baseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return goerr.Wrap(err, "invalid API base URL", goerr.V("url", c.baseURL))
		}
		gh.BaseURL = base
	}

	c.gh = gh
	return nil
}

func (c *client) api(ctx context.Context) (*github.Client, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gh, nil
}

// GetPullRequest fetches the full pull request object
func (c *client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error) {
	gh, err := c.api(ctx)
	if err != nil {
		return nil, err
	}

	pr, _, err := gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("repo", owner+"/"+repo),
			goerr.V("number", number),
		)
	}

	return model.NewPullRequest(pr), nil
}

// CreateStatus posts a commit status against the head commit of the
// given pull request
func (c *client) CreateStatus(ctx context.Context, pr *model.PullRequest, status *model.CommitStatus) error {
	gh, err := c.api(ctx)
	if err != nil {
		return err
	}

	repoStatus := &github.RepoStatus{
		State:       github.Ptr(string(status.State)),
		Context:     github.Ptr(status.Context),
		Description: github.Ptr(status.Description),
	}
	if status.TargetURL != "" {
		repoStatus.TargetURL = github.Ptr(status.TargetURL)
	}

	if _, _, err := gh.Repositories.CreateStatus(ctx, pr.Owner, pr.Repo, pr.HeadSHA, repoStatus); err != nil {
		return goerr.Wrap(err, "failed to create commit status",
			goerr.V("repo", pr.Slug()),
			goerr.V("sha", pr.HeadSHA),
			goerr.V("state", status.State),
		)
	}

	return nil
}
