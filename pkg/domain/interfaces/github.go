package interfaces

import (
	"context"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// Authenticate attaches API credentials to the client. Idempotent:
	// once credentials are attached for this process, later calls are
	// no-ops.
	Authenticate(ctx context.Context) error

	// GetPullRequest fetches the full pull request object
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error)

	// CreateStatus posts a commit status against the head commit of the
	// given pull request
	CreateStatus(ctx context.Context, pr *model.PullRequest, status *model.CommitStatus) error
}
