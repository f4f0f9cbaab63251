package codebuild

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codebuild"
	cbtypes "github.com/aws/aws-sdk-go-v2/service/codebuild/types"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
)

// API is the subset of the CodeBuild client the service uses
type API interface {
	StartBuild(ctx context.Context, params *codebuild.StartBuildInput, optFns ...func(*codebuild.Options)) (*codebuild.StartBuildOutput, error)
	BatchGetBuilds(ctx context.Context, params *codebuild.BatchGetBuildsInput, optFns ...func(*codebuild.Options)) (*codebuild.BatchGetBuildsOutput, error)
}

type client struct {
	api API
}

// New creates a build service backed by AWS CodeBuild
func New(cfg aws.Config) interfaces.BuildService {
	return &client{api: codebuild.NewFromConfig(cfg)}
}

// NewWithAPI creates a build service with a custom API implementation
func NewWithAPI(api API) interfaces.BuildService {
	return &client{api: api}
}

// StartBuild launches a build of the given project at the given source
// version
func (c *client) StartBuild(ctx context.Context, project, sourceVersion string) (*model.BuildRecord, error) {
	out, err := c.api.StartBuild(ctx, &codebuild.StartBuildInput{
		ProjectName:   aws.String(project),
		SourceVersion: aws.String(sourceVersion),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start build",
			goerr.V("project", project),
			goerr.V("source_version", sourceVersion),
		)
	}

	if out.Build == nil {
		return nil, goerr.New("build service returned no build", goerr.V("project", project))
	}

	return newBuildRecord(out.Build), nil
}

// BatchGetBuilds returns the current records for the given build ids.
// Ids unknown to the service are absent from the result.
func (c *client) BatchGetBuilds(ctx context.Context, ids []string) ([]*model.BuildRecord, error) {
	out, err := c.api.BatchGetBuilds(ctx, &codebuild.BatchGetBuildsInput{Ids: ids})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get builds", goerr.V("ids", ids))
	}

	records := make([]*model.BuildRecord, 0, len(out.Builds))
	for i := range out.Builds {
		records = append(records, newBuildRecord(&out.Builds[i]))
	}

	return records, nil
}

// newBuildRecord converts the SDK build type. CodeBuild reports
// IN_PROGRESS while a build runs; that is normalized to RUNNING. Other
// status values pass through verbatim.
func newBuildRecord(b *cbtypes.Build) *model.BuildRecord {
	record := &model.BuildRecord{
		ID:            aws.ToString(b.Id),
		Project:       aws.ToString(b.ProjectName),
		SourceVersion: aws.ToString(b.SourceVersion),
		Status:        buildStatusOf(b.BuildStatus),
	}
	if b.StartTime != nil {
		record.StartedAt = *b.StartTime
	}
	return record
}

func buildStatusOf(s cbtypes.StatusType) model.BuildStatus {
	if s == cbtypes.StatusTypeInProgress {
		return model.BuildRunning
	}
	return model.BuildStatus(s)
}
