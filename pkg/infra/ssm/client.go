package ssm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
)

// API is the subset of the SSM client the store uses
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type client struct {
	api API
}

// New creates a secret store backed by SSM Parameter Store
func New(cfg aws.Config) interfaces.SecretStore {
	return &client{api: ssm.NewFromConfig(cfg)}
}

// NewWithAPI creates a secret store with a custom API implementation
func NewWithAPI(api API) interfaces.SecretStore {
	return &client{api: api}
}

// GetParameter returns the decrypted value of the named parameter
func (c *client) GetParameter(ctx context.Context, name string) (string, error) {
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to get parameter", goerr.V("name", name))
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", goerr.New("parameter has no value", goerr.V("name", name))
	}

	return *out.Parameter.Value, nil
}
