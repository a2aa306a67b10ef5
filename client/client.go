// Package client is the collaboration layer consumed by pipeline UIs: a
// sharing controller, identity registrar, push-channel consumer, and pipeline
// cache reconciler over the store's HTTP JSON + SSE surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// genericErrorMessage is shown when the store's failure payload is absent or
// unparsable.
const genericErrorMessage = "an unexpected error occurred"

// StoreError is a failure reported by the sharing record store, carrying the
// store's code and a message safe to show to users. Known codes unwrap to
// domain sentinels so callers can branch with errors.Is.
type StoreError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	switch e.Code {
	case "DUPLICATE_INVITE":
		return domain.ErrDuplicateInvite
	case "INVITE_NOT_FOUND":
		return domain.ErrInviteNotFound
	case "PIPELINE_NOT_FOUND":
		return domain.ErrPipelineNotFound
	case "FORBIDDEN":
		return domain.ErrForbidden
	default:
		return nil
	}
}

// Client talks to the sharing record store. All methods return a *StoreError
// for store-reported failures and a transport error otherwise.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBackendToken sets the backend token sent on every request.
func WithBackendToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rosterPayload struct {
	StatusShare string              `json:"status_share"`
	AllowCopy   bool                `json:"allow_copy"`
	AllowExport bool                `json:"allow_export"`
	Users       []domain.UserAccess `json:"users"`
}

type invitePayload struct {
	Message string            `json:"message"`
	Invite  domain.UserAccess `json:"invite"`
}

// ListPipelines fetches the caller's pipeline list.
func (c *Client) ListPipelines(ctx context.Context) (domain.PipelineList, error) {
	var list domain.PipelineList
	if err := c.do(ctx, http.MethodGet, "/v1/pipelines", nil, &list); err != nil {
		return domain.PipelineList{}, err
	}
	return list, nil
}

// FetchRoster fetches the sharing configuration of a pipeline.
func (c *Client) FetchRoster(ctx context.Context, pipelineID uuid.UUID) (domain.SharingConfiguration, error) {
	var payload rosterPayload
	path := fmt.Sprintf("/v1/pipelines/%s/invites", pipelineID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return domain.SharingConfiguration{}, err
	}

	level, err := domain.ParseSharingLevel(payload.StatusShare)
	if err != nil {
		return domain.SharingConfiguration{}, fmt.Errorf("store returned unknown sharing level %q", payload.StatusShare)
	}

	return domain.SharingConfiguration{
		Level:       level,
		AllowCopy:   payload.AllowCopy,
		AllowExport: payload.AllowExport,
		Users:       payload.Users,
	}, nil
}

// Invite creates an invite on a pipeline.
func (c *Client) Invite(ctx context.Context, pipelineID uuid.UUID, email string, permission domain.Permission) (domain.UserAccess, error) {
	body := map[string]string{
		"email":      email,
		"permission": permission.String(),
	}

	var payload invitePayload
	path := fmt.Sprintf("/v1/pipelines/%s/invites", pipelineID)
	if err := c.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return domain.UserAccess{}, err
	}
	return payload.Invite, nil
}

// Revoke deletes an invite.
func (c *Client) Revoke(ctx context.Context, inviteID uuid.UUID) error {
	path := fmt.Sprintf("/v1/invites/%s", inviteID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ChangePermission overwrites an invite's permission.
func (c *Client) ChangePermission(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error {
	body := map[string]string{"permission": permission.String()}
	path := fmt.Sprintf("/v1/invites/%s/permission", inviteID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// UpdateSharingLevel persists a pipeline's sharing level and flags.
func (c *Client) UpdateSharingLevel(ctx context.Context, pipelineID uuid.UUID, level domain.SharingLevel, allowCopy, allowExport bool) error {
	body := map[string]interface{}{
		"status_share": level.String(),
		"allow_copy":   allowCopy,
		"allow_export": allowExport,
	}
	path := fmt.Sprintf("/v1/pipelines/%s/sharing-level", pipelineID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Pipeshare-Backend-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseStoreError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// parseStoreError decodes the store's failure envelope. A missing or
// unparsable payload yields the generic message.
func parseStoreError(resp *http.Response) error {
	storeErr := &StoreError{
		StatusCode: resp.StatusCode,
		Message:    genericErrorMessage,
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return storeErr
	}

	var payload struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return storeErr
	}

	storeErr.Code = payload.Code
	switch {
	case payload.Message != "":
		storeErr.Message = payload.Message
	case payload.Error != "":
		storeErr.Message = payload.Error
	}
	return storeErr
}

// IsStoreError reports whether err is a store-reported failure and returns it.
func IsStoreError(err error) (*StoreError, bool) {
	var storeErr *StoreError
	if stderrors.As(err, &storeErr) {
		return storeErr, true
	}
	return nil, false
}
