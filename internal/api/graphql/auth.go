package graphql

import (
	"context"

	"github.com/propsetu/estate-backend/internal/api/middleware"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	apierrors "github.com/propsetu/estate-backend/internal/api/shared/errors"
)

// contextKey is a private type so request-scoped values cannot collide with
// other packages
type contextKey string

const (
	claimsContextKey    contextKey = "auth_claims"
	clientIPContextKey  contextKey = "client_ip"
	userAgentContextKey contextKey = "user_agent"
)

// withClaims stores validated token claims for resolvers
func withClaims(ctx context.Context, claims *middleware.AccessClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// claimsFromContext returns the validated token claims, or nil when the
// operation was not authenticated
func claimsFromContext(ctx context.Context) *middleware.AccessClaims {
	claims, ok := ctx.Value(claimsContextKey).(*middleware.AccessClaims)
	if !ok {
		return nil
	}
	return claims
}

func withClientInfo(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPContextKey, ip)
	return context.WithValue(ctx, userAgentContextKey, userAgent)
}

// actorFromContext builds the executor actor for the authenticated caller.
// Exactly one of AdminID/UserID is set, matching the token's account type.
func actorFromContext(ctx context.Context) (executor.Actor, error) {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return executor.Actor{}, apierrors.NewUnauthenticatedError("Authentication required")
	}

	id, err := claims.AccountID()
	if err != nil {
		return executor.Actor{}, apierrors.NewUnauthenticatedError("Invalid token subject")
	}

	actor := executor.Actor{}
	if claims.IsAdmin() {
		actor.AdminID = &id
	} else {
		actor.UserID = &id
	}
	if ip, ok := ctx.Value(clientIPContextKey).(string); ok && ip != "" {
		actor.IPAddress = &ip
	}
	if ua, ok := ctx.Value(userAgentContextKey).(string); ok && ua != "" {
		actor.UserAgent = &ua
	}
	return actor, nil
}

// adminFromContext returns the admin account id, or a forbidden error when
// the caller is not staff
func adminFromContext(ctx context.Context) (uint64, error) {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return 0, apierrors.NewUnauthenticatedError("Authentication required")
	}
	if !claims.IsAdmin() {
		return 0, apierrors.NewForbiddenError("Admin privileges required")
	}
	return claims.AccountID()
}

// userFromContext returns the user account id, or a forbidden error when the
// caller is not an end user
func userFromContext(ctx context.Context) (uint64, error) {
	claims := claimsFromContext(ctx)
	if claims == nil {
		return 0, apierrors.NewUnauthenticatedError("Authentication required")
	}
	if claims.IsAdmin() {
		return 0, apierrors.NewForbiddenError("This operation is for user accounts")
	}
	return claims.AccountID()
}
