package interfaces

import (
	"context"

	"github.com/buildgate/buildgate/pkg/domain/model"
)

// Notifier announces a finished build to humans. Implementations are
// best-effort; the commit status on GitHub stays the authoritative
// signal.
type Notifier interface {
	NotifyBuildResult(ctx context.Context, pr *model.PullRequest, build *model.BuildRecord) error
}
