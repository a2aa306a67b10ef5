package rest

import (
	"pipeshare/domain"
)

// MessageResponse is the success envelope for mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

type CreatePipelineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePipelineRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	SalesTarget *float64       `json:"sales_target,omitempty"`
	Stages      []domain.Stage `json:"stages,omitempty"`
}

type InviteUserRequest struct {
	Email      string `json:"email"`
	Permission string `json:"permission"`
}

type InviteResponse struct {
	Message string            `json:"message"`
	Invite  domain.UserAccess `json:"invite"`
}

type ChangePermissionRequest struct {
	Permission string `json:"permission"`
}

type UpdateSharingLevelRequest struct {
	StatusShare string `json:"status_share"`
	AllowCopy   bool   `json:"allow_copy"`
	AllowExport bool   `json:"allow_export"`
}

type RosterResponse struct {
	StatusShare string              `json:"status_share"`
	AllowCopy   bool                `json:"allow_copy"`
	AllowExport bool                `json:"allow_export"`
	Users       []domain.UserAccess `json:"users"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
