package remittest

import (
	"context"
	"fmt"

	"github.com/iov-one/remit"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. This is for the convinience and each time all signers
// (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convinience attribute when creating an authentication method for a
	// single signer.
	Signer remit.Condition

	// Signers represents an authentication of multiple signers.
	Signers []remit.Condition
}

func (a *Auth) GetConditions(remit.Context) []remit.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx remit.Context, addr remit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convinience only string type keys are allowed.
	Key string
}

// SetConditions returns a context that authenticates given conditions.
func (a *CtxAuth) SetConditions(ctx remit.Context, permissions ...remit.Condition) remit.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), permissions)
}

type ctxAuthKey string

func (a *CtxAuth) GetConditions(ctx remit.Context) []remit.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]remit.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []remit.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx remit.Context, addr remit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
