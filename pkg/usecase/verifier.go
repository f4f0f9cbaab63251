package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/buildgate/buildgate/pkg/domain/interfaces"
	"github.com/buildgate/buildgate/pkg/domain/model"
	"github.com/buildgate/buildgate/pkg/domain/types"
)

// Verifier checks that an inbound delivery genuinely originated from
// GitHub by recomputing the HMAC-SHA1 signature over the raw body.
type Verifier struct {
	store       interfaces.SecretStore
	secretParam string
}

// NewVerifier creates a verifier reading the shared webhook secret
// from the named parameter.
func NewVerifier(store interfaces.SecretStore, secretParam string) *Verifier {
	return &Verifier{
		store:       store,
		secretParam: secretParam,
	}
}

// Verify validates one delivery. The shared secret is fetched fresh on
// every call: deliveries may arrive on cold or differently configured
// instances, so the secret is never cached. A verification failure
// must short-circuit all further processing of the delivery.
func (v *Verifier) Verify(ctx context.Context, event *model.InboundEvent) error {
	if event.Signature == "" || event.Name == "" || event.Delivery == "" {
		return goerr.New("missing required webhook header",
			goerr.V("has_signature", event.Signature != ""),
			goerr.V("has_event", event.Name != ""),
			goerr.V("has_delivery", event.Delivery != ""),
			goerr.T(types.ErrTagAuth),
		)
	}

	secret, err := v.store.GetParameter(ctx, v.secretParam)
	if err != nil {
		return goerr.Wrap(err, "failed to get webhook secret",
			goerr.V("param", v.secretParam),
			goerr.T(types.ErrTagCredential),
		)
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(event.Body)
	expected := "sha1=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(event.Signature)) {
		return goerr.New("webhook signature mismatch",
			goerr.V("delivery", event.Delivery),
			goerr.T(types.ErrTagAuth),
		)
	}

	ctxlog.From(ctx).Debug("webhook signature verified", "delivery", event.Delivery)
	return nil
}
