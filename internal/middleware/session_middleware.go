package middleware

import (
	"net/http"
	"time"

	"go-guardconsole/internal/auth"
	autherrors "go-guardconsole/internal/auth/errors"
	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/shared/apperror"
	"go-guardconsole/internal/shared/contextutil"
	"go-guardconsole/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-ID"
	// RedirectHeader tells the console where to navigate when a backend
	// call decided the browser must leave the current page.
	RedirectHeader = "X-Console-Redirect"
)

// Session puts the session id and the redirect hook into the request
// context. It never rejects a request; SessionAuth does that.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(auth.SessionCookie)
		if err != nil || sid == "" {
			sid = c.GetHeader(SessionHeader)
		}

		ctx := c.Request.Context()
		if sid != "" {
			c.Set("session_id", sid)
			ctx = contextutil.WithSessionID(ctx, sid)
		}
		ctx = contextutil.WithRedirect(ctx, func(location string) {
			c.Header(RedirectHeader, location)
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
	c.Abort()
}

type sessionAuthOptions struct {
	limiter *KeyedRateLimiter
}

type SessionAuthOption func(*sessionAuthOptions)

// WithUserRateLimit throttles authenticated requests per user id. The key
// comes from the validated token, never from client-supplied session ids.
func WithUserRateLimit(limiter *KeyedRateLimiter) SessionAuthOption {
	return func(o *sessionAuthOptions) {
		o.limiter = limiter
	}
}

// SessionAuth requires a session holding a readable token and exposes
// the token claims as user_id and role.
func SessionAuth(store credential.Store, secret string, opts ...SessionAuthOption) gin.HandlerFunc {
	var o sessionAuthOptions
	for _, opt := range opts {
		opt(&o)
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if contextutil.GetSessionID(ctx) == "" {
			abortWith(c, autherrors.ErrNoSession)
			return
		}

		token, ok, err := credential.Lookup(ctx, store)
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Error("credential lookup failed", zap.Error(err))
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Failed to read session", nil)
			c.Abort()
			return
		}
		if !ok {
			abortWith(c, autherrors.ErrNoSession)
			return
		}

		claims, err := auth.ParseClaims(token, secret, time.Now())
		if err != nil {
			if appErr, ok := apperror.As(err); ok {
				abortWith(c, appErr)
			} else {
				abortWith(c, autherrors.ErrInvalidToken)
			}
			return
		}

		userID := claims.Principal()
		if o.limiter != nil && !o.limiter.Allow("user:"+userID) {
			tooManyRequests(c, "Too many requests from this user")
			return
		}
		c.Set("user_id", userID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(contextutil.WithUserID(ctx, userID))

		c.Next()
	}
}
