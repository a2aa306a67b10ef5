package domain

import (
	"time"

	"github.com/google/uuid"
)

// SharingLevel represents the coarse-grained visibility tier of a pipeline.
type SharingLevel string

const (
	SharingLevelPrivate      SharingLevel = "private"
	SharingLevelTeam         SharingLevel = "team"
	SharingLevelOrganization SharingLevel = "organization"
	SharingLevelPublic       SharingLevel = "public"
)

// ParseSharingLevel converts a string to a SharingLevel.
// Values outside the enum fail with ErrInvalidSharingLevel.
func ParseSharingLevel(s string) (SharingLevel, error) {
	switch SharingLevel(s) {
	case SharingLevelPrivate, SharingLevelTeam, SharingLevelOrganization, SharingLevelPublic:
		return SharingLevel(s), nil
	default:
		return "", ErrInvalidSharingLevel
	}
}

// IsValid returns true if the sharing level is a known value.
func (l SharingLevel) IsValid() bool {
	_, err := ParseSharingLevel(string(l))
	return err == nil
}

// String returns the string representation of the sharing level.
func (l SharingLevel) String() string {
	return string(l)
}

// Permission represents the per-invitee capability tier layered atop the
// sharing level.
type Permission string

const (
	// PermissionNone is only ever a resolution result, never stored on a roster.
	PermissionNone   Permission = "none"
	PermissionViewer Permission = "viewer"
	PermissionEditor Permission = "editor"
	PermissionAdmin  Permission = "admin"
)

// ParsePermission converts a string to a grantable Permission.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case PermissionViewer, PermissionEditor, PermissionAdmin:
		return Permission(s), nil
	default:
		return "", ErrInvalidPermission
	}
}

// String returns the string representation of the permission.
func (p Permission) String() string {
	return string(p)
}

// AtLeast reports whether p grants at least the capability of other.
func (p Permission) AtLeast(other Permission) bool {
	return permissionRank(p) >= permissionRank(other)
}

func permissionRank(p Permission) int {
	switch p {
	case PermissionViewer:
		return 1
	case PermissionEditor:
		return 2
	case PermissionAdmin:
		return 3
	default:
		return 0
	}
}

// UserAccess is one roster entry: an invited identity and its granted
// permission. InviteID addresses the entry for revoke and permission updates.
type UserAccess struct {
	InviteID   uuid.UUID  `json:"invite_id"`
	Email      string     `json:"email"`
	Permission Permission `json:"permission"`
	InvitedAt  time.Time  `json:"invited_at"`
}

// SharingConfiguration is the full sharing state of one pipeline. Users keeps
// invite order; one email appears at most once.
type SharingConfiguration struct {
	Level       SharingLevel `json:"level"`
	AllowCopy   bool         `json:"allow_copy"`
	AllowExport bool         `json:"allow_export"`
	Users       []UserAccess `json:"users"`
}

// DefaultSharingConfiguration is the state created the first time sharing is
// opened for a pipeline.
func DefaultSharingConfiguration() SharingConfiguration {
	return SharingConfiguration{
		Level:       SharingLevelPrivate,
		AllowCopy:   true,
		AllowExport: true,
	}
}

// RosterEntry returns the roster entry for an email, if present.
func (c SharingConfiguration) RosterEntry(email string) (UserAccess, bool) {
	for _, u := range c.Users {
		if u.Email == email {
			return u, true
		}
	}
	return UserAccess{}, false
}

// EffectivePermission resolves the capability an identity holds on a pipeline.
// It is the single authority for access gating; no other component re-derives
// this logic. The resolution is total: the owner is always admin, an explicit
// roster entry wins next, any non-private level implies viewer for the rest of
// the tenant, and everything else is none.
func EffectivePermission(identity string, ownerID string, config SharingConfiguration) Permission {
	if identity != "" && identity == ownerID {
		return PermissionAdmin
	}
	if entry, ok := config.RosterEntry(identity); ok {
		return entry.Permission
	}
	if config.Level != SharingLevelPrivate {
		return PermissionViewer
	}
	return PermissionNone
}
