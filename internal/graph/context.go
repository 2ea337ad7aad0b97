package graph

import (
	"context"

	"storefront/api/internal/models"
)

type viewerKey struct{}

// WithViewer attaches the authenticated user to the request context. A nil
// user means the request is anonymous; resolvers never mutate the value.
func WithViewer(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, viewerKey{}, user)
}

func ViewerFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(viewerKey{}).(*models.User)
	return user
}

// CookieWriter sets or clears the session cookie on the in-flight response.
// The HTTP layer provides the implementation.
type CookieWriter interface {
	SetToken(token string)
	ClearToken()
}

type cookieKey struct{}

func WithCookies(ctx context.Context, cw CookieWriter) context.Context {
	return context.WithValue(ctx, cookieKey{}, cw)
}

func CookiesFrom(ctx context.Context) CookieWriter {
	cw, _ := ctx.Value(cookieKey{}).(CookieWriter)
	return cw
}
