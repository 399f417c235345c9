package client

import (
	"context"

	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// Auth is the typed adapter for the user authentication service.
type Auth struct {
	caller
}

// NewAuth creates an auth service adapter over the given invoker.
func NewAuth(invoker Invoker, opts ...Option) *Auth {
	return &Auth{caller: newCaller("auth", invoker, opts...)}
}

// RegisterUser registers a new user account.
func (a *Auth) RegisterUser(ctx context.Context, in *rpc.RegisterUserRequest) (*rpc.RegisterUserResponse, error) {
	out := new(rpc.RegisterUserResponse)
	if err := a.call(ctx, rpc.MethodRegisterUser, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoginUser authenticates a user and returns a bearer token.
func (a *Auth) LoginUser(ctx context.Context, in *rpc.LoginUserRequest) (*rpc.LoginUserResponse, error) {
	out := new(rpc.LoginUserResponse)
	if err := a.call(ctx, rpc.MethodLoginUser, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyToken validates a bearer token and returns the identity payload it
// was issued for. The response is returned unchanged; payload validation is
// the authentication gate's concern.
func (a *Auth) VerifyToken(ctx context.Context, in *rpc.VerifyTokenRequest) (*rpc.VerifyTokenResponse, error) {
	out := new(rpc.VerifyTokenResponse)
	if err := a.call(ctx, rpc.MethodVerifyToken, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
