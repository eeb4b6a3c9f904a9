package httpclient

import (
	"context"
	"net/http"

	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
)

// LoginPath is where the browser is sent when redirect on 401 is enabled.
const LoginPath = "/login"

// UnauthorizedHook runs after credentials were cleared on a 401.
type UnauthorizedHook func(ctx context.Context)

// Policy is the credential contract shared by every upstream client:
// attach the stored bearer token on the way out, clear stored credentials
// when a backend answers 401. Redirecting on 401 is supported but off
// unless explicitly enabled.
type Policy struct {
	store                  credential.Store
	redirectOnUnauthorized bool
	onUnauthorized         UnauthorizedHook
	onCleared              func(ctx context.Context, path string)
	logger                 *zap.Logger
}

type PolicyOption func(*Policy)

func WithRedirectOnUnauthorized(enabled bool) PolicyOption {
	return func(p *Policy) {
		p.redirectOnUnauthorized = enabled
	}
}

// WithUnauthorizedHook replaces the default redirect hook.
func WithUnauthorizedHook(hook UnauthorizedHook) PolicyOption {
	return func(p *Policy) {
		p.onUnauthorized = hook
	}
}

// WithClearedHook is told about every session whose credentials were
// dropped after a 401, e.g. for auditing.
func WithClearedHook(hook func(ctx context.Context, path string)) PolicyOption {
	return func(p *Policy) {
		p.onCleared = hook
	}
}

func NewPolicy(store credential.Store, logger *zap.Logger, opts ...PolicyOption) *Policy {
	if logger == nil {
		logger = zap.L()
	}
	p := &Policy{
		store:  store,
		logger: logger.Named("httpclient.policy"),
		onUnauthorized: func(ctx context.Context) {
			contextutil.Redirect(ctx, LoginPath)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Policy) RedirectOnUnauthorized() bool {
	return p.redirectOnUnauthorized
}

// Apply installs the policy on each client.
func (p *Policy) Apply(clients ...*Client) {
	for _, c := range clients {
		c.UseRequest(p.BeforeRequest)
		c.UseResponse(p.AfterResponse)
	}
}

// BeforeRequest attaches the bearer token. Multipart bodies drop the default
// content type so the encoder can set one carrying the boundary.
func (p *Policy) BeforeRequest(ctx context.Context, req *Request) error {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if _, ok := req.Body.(*FormData); ok {
		req.Header.Del("Content-Type")
	}

	token, ok, err := credential.Lookup(ctx, p.store)
	if err != nil {
		p.logger.Warn("credential lookup failed, sending request without token",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// AfterResponse clears stored credentials on 401. Every other status passes
// through untouched.
func (p *Policy) AfterResponse(ctx context.Context, resp *http.Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}

	path := ""
	if resp.Request != nil && resp.Request.URL != nil {
		path = resp.Request.URL.Path
	}

	if err := credential.ClearAll(ctx, p.store); err != nil {
		p.logger.Error("clear credentials after 401 failed",
			zap.String("session_id", contextutil.GetSessionID(ctx)),
			zap.Error(err),
		)
	} else {
		p.logger.Info("credentials cleared after 401",
			zap.String("session_id", contextutil.GetSessionID(ctx)),
			zap.String("path", path),
		)
		if p.onCleared != nil {
			p.onCleared(ctx, path)
		}
	}

	if p.redirectOnUnauthorized && p.onUnauthorized != nil {
		p.onUnauthorized(ctx)
	}
	return nil
}
