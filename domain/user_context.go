package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user within a tenant.
type UserRole string

const (
	UserRoleUser        UserRole = "user"
	UserRoleAdmin       UserRole = "admin"
	UserRoleTenantAdmin UserRole = "tenant_admin"
	UserRoleReadOnly    UserRole = "readonly"
)

// UserContext represents the authenticated user context for requests.
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Domain    string    `json:"domain"`
	SessionID string    `json:"session_id"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is usable and not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil &&
		uc.Email != "" &&
		(uc.ExpiresAt.IsZero() || uc.ExpiresAt.After(time.Now()))
}

// IdentityKeys returns the push-channel keys this user should receive events
// for: the personal email plus the tenant domain.
func (uc *UserContext) IdentityKeys() []IdentityKey {
	keys := make([]IdentityKey, 0, 2)
	if uc.Email != "" {
		keys = append(keys, uc.Email)
	}
	if uc.Domain != "" {
		keys = append(keys, uc.Domain)
	}
	return keys
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext extracts the authenticated user from a request context.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}

	return user, nil
}

// SetUserContext attaches an authenticated user to a request context.
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
