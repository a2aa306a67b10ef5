package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a reference to one column of a pipeline board.
type Stage struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

// Pipeline is a sales pipeline owned by one tenant. Within this service a
// pipeline is mutated by CRUD and by its sharing-level field; the embedded
// sharing configuration travels with it over the push channel.
type Pipeline struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Domain      string               `json:"domain"`
	OwnerID     uuid.UUID            `json:"owner_id"`
	OwnerEmail  string               `json:"owner_email"`
	SalesTarget float64              `json:"sales_target"`
	Stages      []Stage              `json:"stages,omitempty"`
	Sharing     SharingConfiguration `json:"sharing"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// PipelineUpdates carries the mutable CRUD fields of a pipeline. Nil fields
// are left untouched.
type PipelineUpdates struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	SalesTarget *float64 `json:"sales_target,omitempty"`
	Stages      []Stage  `json:"stages,omitempty"`
}

// PipelineList is the response shape of a pipeline listing for one caller.
type PipelineList struct {
	Pipelines  []Pipeline `json:"pipelines"`
	TotalDeals int        `json:"total_deals"`
}
