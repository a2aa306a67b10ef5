package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pipeshare/domain"
	"pipeshare/utils/logger"
)

const (
	initialReconnectDelay = time.Second
	maxReconnectDelay     = 30 * time.Second
)

// EventStream consumes the store's SSE push channel. The stream is a latency
// optimization over re-fetch, never the source of truth: on every (re)connect
// the registrar's full desired key set is carried, and the OnConnect hook lets
// the owner re-fetch anything missed while disconnected.
type EventStream struct {
	store     *Client
	registrar *Registrar

	// OnShared receives each decoded share event.
	OnShared func(event *domain.ShareEvent)
	// OnConnect runs after a connection is established and its keys confirmed.
	OnConnect func(ctx context.Context)
}

func NewEventStream(store *Client, registrar *Registrar) *EventStream {
	return &EventStream{
		store:     store,
		registrar: registrar,
	}
}

// Register adds identity keys to the desired set. Returns true when the live
// connection does not yet carry one of them, meaning a reconnect is needed;
// keys carried onto the stream at connect time need nothing further.
func (s *EventStream) Register(keys ...domain.IdentityKey) bool {
	return len(s.registrar.Want(keys...)) > 0
}

// Run connects and keeps the stream alive until ctx is cancelled, reconnecting
// with backoff. Each reconnect re-registers the full desired key set.
func (s *EventStream) Run(ctx context.Context) {
	delay := initialReconnectDelay
	for {
		if err := s.consume(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Logger.Warn("Push channel disconnected, reconnecting", "error", err, "delay", delay)
		}

		s.registrar.Reset()

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

func (s *EventStream) consume(ctx context.Context) error {
	keys := s.registrar.Desired()

	streamURL := s.store.baseURL + "/v1/events/stream"
	if len(keys) > 0 {
		streamURL += "?keys=" + url.QueryEscape(strings.Join(keys, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if s.store.token != "" {
		req.Header.Set("X-Pipeshare-Backend-Token", s.store.token)
	}

	// The stream stays open indefinitely, so bypass the store client's
	// request timeout.
	httpClient := &http.Client{Transport: s.store.httpClient.Transport}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var eventName string
	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			s.dispatch(ctx, eventName, data.String())
			eventName = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
			// Heartbeat comment.
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream read failed: %w", err)
	}
	return fmt.Errorf("stream closed by server")
}

func (s *EventStream) dispatch(ctx context.Context, eventName, data string) {
	if data == "" {
		return
	}

	switch eventName {
	case "registered":
		var payload struct {
			Keys []domain.IdentityKey `json:"keys"`
		}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			logger.Logger.Warn("Failed to parse registration confirmation", "error", err)
			return
		}
		s.registrar.Confirm(payload.Keys...)
		if s.OnConnect != nil {
			s.OnConnect(ctx)
		}

	case "resource-shared":
		var event domain.ShareEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			logger.Logger.Warn("Failed to parse share event", "error", err)
			return
		}
		if s.OnShared != nil {
			s.OnShared(&event)
		}
	}
}
