package auth

import (
	"context"
	"net/http"

	autherrors "go-guardconsole/internal/auth/errors"
	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	Logout(ctx context.Context) error
	GetMe(ctx context.Context) (*AuthResponse, error)
}

type service struct {
	repo   Repository
	store  credential.Store
	newID  func() string
	logger *zap.Logger
}

func NewService(repo Repository, store credential.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:   repo,
		store:  store,
		newID:  func() string { return uuid.New().String() },
		logger: l,
	}
}

// Login exchanges credentials for a token and binds it to a new session.
func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	res, err := s.repo.Login(ctx, req)
	if err != nil {
		if status, ok := httpclient.StatusCode(err); ok &&
			(status == http.StatusUnauthorized || status == http.StatusBadRequest) {
			return SessionResponse{}, autherrors.ErrInvalidCredentials
		}
		return SessionResponse{}, err
	}

	token := res.BearerToken()
	if token == "" {
		return SessionResponse{}, autherrors.ErrMissingToken
	}

	sid := s.newID()
	sessionCtx := contextutil.WithSessionID(ctx, sid)
	if err := s.store.Set(sessionCtx, credential.KeyToken, token); err != nil {
		s.logger.Error("failed to store session credential", zap.Error(err))
		return SessionResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("console session opened",
		zap.String("user_id", res.User.ID),
		zap.String("role", res.User.Role),
	)

	return SessionResponse{SessionID: sid, User: res.User}, nil
}

func (s *service) Logout(ctx context.Context) error {
	if contextutil.GetSessionID(ctx) == "" {
		return nil
	}
	return credential.ClearAll(ctx, s.store)
}

func (s *service) GetMe(ctx context.Context) (*AuthResponse, error) {
	me, err := s.repo.Me(ctx)
	if err != nil {
		return nil, err
	}
	return &me, nil
}
