package github

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// CredentialSource fetches GitHub API credentials from the secret store
// and caches them for the process lifetime. A successful fetch latches;
// a failed fetch does not, so the next call retries.
type CredentialSource struct {
	store         interfaces.SecretStore
	usernameParam string
	tokenParam    string

	mu    sync.Mutex
	creds *model.Credentials
}

// NewCredentialSource creates a credential source reading the given
// parameter names from the store.
func NewCredentialSource(store interfaces.SecretStore, usernameParam, tokenParam string) *CredentialSource {
	return &CredentialSource{
		store:         store,
		usernameParam: usernameParam,
		tokenParam:    tokenParam,
	}
}

// Get returns the credentials, fetching them from the store on first
// use.
func (s *CredentialSource) Get(ctx context.Context) (*model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds != nil {
		return s.creds, nil
	}

	username, err := s.store.GetParameter(ctx, s.usernameParam)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get username parameter",
			goerr.V("param", s.usernameParam),
			goerr.T(types.ErrTagCredential),
		)
	}

	token, err := s.store.GetParameter(ctx, s.tokenParam)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get token parameter",
			goerr.V("param", s.tokenParam),
			goerr.T(types.ErrTagCredential),
		)
	}

	s.creds = &model.Credentials{
		Username: username,
		Token:    token,
	}

	return s.creds, nil
}
