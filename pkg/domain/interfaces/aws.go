package interfaces

import (
	"context"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// SecretStore is a name to decrypted-value lookup. Backed by SSM
// Parameter Store in production; holds the webhook shared secret and
// the GitHub API credentials.
type SecretStore interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// BuildService starts remote builds and looks up their current state
type BuildService interface {
	// StartBuild launches a build of the given project at the given
	// source version and returns the created record
	StartBuild(ctx context.Context, project, sourceVersion string) (*model.BuildRecord, error)

	// BatchGetBuilds returns the current records for the given build
	// ids. Unknown ids are simply absent from the result.
	BatchGetBuilds(ctx context.Context, ids []string) ([]*model.BuildRecord, error)
}
