package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeshare/domain"
)

func writeRoster(w http.ResponseWriter, level string, users []domain.UserAccess) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status_share": level,
		"allow_copy":   false,
		"allow_export": false,
		"users":        users,
	})
}

func TestSharingController_OpenLoadsRoster(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeRoster(w, "team", []domain.UserAccess{
			{InviteID: inviteID, Email: "bob@acme.com", Permission: domain.PermissionViewer},
		})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))

	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	sharing := sc.Sharing()
	assert.Equal(t, domain.SharingLevelTeam, sharing.Level)
	require.Len(t, sharing.Users, 1)
	assert.Equal(t, "bob@acme.com", sharing.Users[0].Email)
}

func TestSharingController_StaleRosterDropped(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, firstID.String()) {
			// The roster of the first pipeline arrives late.
			<-release
			writeRoster(w, "public", []domain.UserAccess{
				{InviteID: uuid.New(), Email: "stale@acme.com", Permission: domain.PermissionAdmin},
			})
			return
		}
		writeRoster(w, "team", []domain.UserAccess{
			{InviteID: uuid.New(), Email: "current@acme.com", Permission: domain.PermissionViewer},
		})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sc.Open(context.Background(), firstID)
	}()

	// Give the first Open a moment to reach the store, then switch pipelines.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, sc.Open(context.Background(), secondID))

	close(release)
	wg.Wait()

	sharing := sc.Sharing()
	assert.Equal(t, domain.SharingLevelTeam, sharing.Level)
	require.Len(t, sharing.Users, 1)
	assert.Equal(t, "current@acme.com", sharing.Users[0].Email, "late roster of an abandoned pipeline must not win")
}

func TestSharingController_InviteAppendsOnConfirmedSuccess(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", nil)
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "bob@acme.com", body["email"], "email must be normalized before the store sees it")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "invite created",
			"invite": domain.UserAccess{
				InviteID:   inviteID,
				Email:      "bob@acme.com",
				Permission: domain.PermissionViewer,
			},
		})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	require.NoError(t, sc.Invite(context.Background(), "  Bob@Acme.COM ", domain.PermissionViewer))

	sharing := sc.Sharing()
	require.Len(t, sharing.Users, 1)
	assert.Equal(t, inviteID, sharing.Users[0].InviteID)
}

func TestSharingController_InviteInvalidEmailNeverReachesStore(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", nil)
			return
		}
		calls++
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	err := sc.Invite(context.Background(), "not-an-email", domain.PermissionViewer)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "please enter a valid email address", sc.LastError())
	assert.Empty(t, sc.Sharing().Users)
}

func TestSharingController_DuplicateInviteLeavesRosterUntouched(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", []domain.UserAccess{
				{InviteID: inviteID, Email: "bob@acme.com", Permission: domain.PermissionViewer},
			})
			return
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "DUPLICATE_INVITE",
			"message": "this user has already been invited",
		})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	err := sc.Invite(context.Background(), "bob@acme.com", domain.PermissionEditor)
	assert.ErrorIs(t, err, domain.ErrDuplicateInvite)
	assert.Equal(t, "this user has already been invited", sc.LastError())

	sharing := sc.Sharing()
	require.Len(t, sharing.Users, 1)
	assert.Equal(t, domain.PermissionViewer, sharing.Users[0].Permission, "failed invite must not change the roster")
}

func TestSharingController_RevokeUnknownIDKeepsRoster(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", []domain.UserAccess{
				{InviteID: inviteID, Email: "bob@acme.com", Permission: domain.PermissionViewer},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "INVITE_NOT_FOUND",
			"message": "invite not found",
		})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	err := sc.Revoke(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	assert.Len(t, sc.Sharing().Users, 1)
}

func TestSharingController_RevokeRemovesEntry(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", []domain.UserAccess{
				{InviteID: inviteID, Email: "bob@acme.com", Permission: domain.PermissionViewer},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "invite revoked"})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	require.NoError(t, sc.Revoke(context.Background(), inviteID))
	assert.Empty(t, sc.Sharing().Users)
}

func TestSharingController_ChangePermissionOverwrites(t *testing.T) {
	inviteID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", []domain.UserAccess{
				{InviteID: inviteID, Email: "bob@acme.com", Permission: domain.PermissionViewer},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "permission updated"})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))
	require.NoError(t, sc.Open(context.Background(), uuid.New()))

	require.NoError(t, sc.ChangePermission(context.Background(), inviteID, domain.PermissionEditor))

	sharing := sc.Sharing()
	require.Len(t, sharing.Users, 1)
	assert.Equal(t, domain.PermissionEditor, sharing.Users[0].Permission)
}

func TestSharingController_SaveLevelRunsHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", nil)
			return
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "team", body["status_share"])
		json.NewEncoder(w).Encode(map[string]string{"message": "sharing level updated"})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))

	var refreshed bool
	sc.OnLevelSaved(func(ctx context.Context) { refreshed = true })

	require.NoError(t, sc.Open(context.Background(), uuid.New()))
	sc.SetLevel(domain.SharingLevelTeam)

	require.NoError(t, sc.SaveLevel(context.Background()))
	assert.True(t, refreshed)
	assert.Equal(t, domain.SharingLevelTeam, sc.StatusShare())
}

func TestSharingController_SaveLevelFailureSkipsHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRoster(w, "private", nil)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"code": "FORBIDDEN", "message": "access denied"})
	}))
	defer server.Close()

	sc := NewSharingController(NewClient(server.URL))

	var refreshed bool
	sc.OnLevelSaved(func(ctx context.Context) { refreshed = true })

	require.NoError(t, sc.Open(context.Background(), uuid.New()))
	sc.SetLevel(domain.SharingLevelPublic)

	err := sc.SaveLevel(context.Background())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, refreshed)
	assert.Equal(t, "access denied", sc.LastError())
}
