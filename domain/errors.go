package domain

import "errors"

// Sentinel domain errors used with errors.Is() across layers.
var (
	ErrInvalidSharingLevel = errors.New("invalid sharing level")
	ErrInvalidPermission   = errors.New("invalid permission")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrDuplicateInvite     = errors.New("user already invited")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrPipelineNotFound    = errors.New("pipeline not found")
	ErrForbidden           = errors.New("insufficient permission")
	ErrTenantNotFound      = errors.New("tenant context not found")
)
