package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// AWS holds AWS configuration. The region selects where SSM parameters
// and CodeBuild projects live and is also rendered into the console
// URLs attached to commit statuses.
type AWS struct {
	Region string
}

// Flags returns CLI flags for AWS configuration
func (c *AWS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region for SSM and CodeBuild",
			Required:    true,
			Destination: &c.Region,
			Sources:     cli.EnvVars("BUILDGATE_AWS_REGION", "AWS_REGION"),
		},
	}
}

// Load resolves the SDK configuration from the default credential
// chain, pinned to the configured region.
func (c *AWS) Load(ctx context.Context) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Region))
	if err != nil {
		return aws.Config{}, goerr.Wrap(err, "failed to load AWS configuration",
			goerr.V("region", c.Region))
	}
	return cfg, nil
}
