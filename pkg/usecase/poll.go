package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// Poller looks up the current state of a build by id.
type Poller struct {
	builds interfaces.BuildService
}

// NewPoller creates the build polling use case
func NewPoller(builds interfaces.BuildService) *Poller {
	return &Poller{builds: builds}
}

// Poll is a stateless single-shot lookup. Callers invoke it repeatedly
// until a terminal status shows up; the record is returned verbatim.
func (p *Poller) Poll(ctx context.Context, buildID string) (*model.BuildRecord, error) {
	records, err := p.builds.BatchGetBuilds(ctx, []string{buildID})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to poll build",
			goerr.V("build_id", buildID),
			goerr.T(types.ErrTagBuildService),
		)
	}

	for _, record := range records {
		if record.ID == buildID {
			return record, nil
		}
	}

	return nil, goerr.New("build not found",
		goerr.V("build_id", buildID),
		goerr.T(types.ErrTagNotFound),
	)
}
