package auth

import (
	"context"

	"go-guardconsole/internal/httpclient"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Me(ctx context.Context) (AuthResponse, error)
}

type repository struct {
	client *httpclient.Client
}

// NewRepository talks to the auth API through the auth client.
func NewRepository(client *httpclient.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var env httpclient.Envelope[LoginResult]
	if err := r.client.Post(ctx, "/auth/login", req, &env); err != nil {
		return LoginResult{}, err
	}
	return env.Data, nil
}

func (r *repository) Me(ctx context.Context) (AuthResponse, error) {
	var env httpclient.Envelope[AuthResponse]
	if err := r.client.Get(ctx, "/auth/me", nil, &env); err != nil {
		return AuthResponse{}, err
	}
	return env.Data, nil
}
