package client

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// SharingController owns the sharing state of the currently active pipeline.
// It mutates local state only on confirmed store success and never retries;
// stale roster responses from abandoned Open calls are dropped by a
// per-request sequence token.
type SharingController struct {
	store *Client

	// onLevelSaved, when set, runs after a successful SaveLevel so the caller
	// can refresh its pipeline list.
	onLevelSaved func(ctx context.Context)

	mu         sync.Mutex
	activeID   uuid.UUID
	hasActive  bool
	sharing    domain.SharingConfiguration
	loaded     bool
	openSeq    uint64
	lastErrMsg string
}

func NewSharingController(store *Client) *SharingController {
	return &SharingController{store: store}
}

// OnLevelSaved installs the hook run after a sharing level is persisted.
func (sc *SharingController) OnLevelSaved(fn func(ctx context.Context)) {
	sc.onLevelSaved = fn
}

// Open activates a pipeline. The previous model is reset before any network
// traffic; the roster fetch for an Open that has since been superseded is
// discarded, so rapid switches never leave another pipeline's roster behind.
func (sc *SharingController) Open(ctx context.Context, pipelineID uuid.UUID) error {
	sc.mu.Lock()
	sc.openSeq++
	seq := sc.openSeq
	sc.activeID = pipelineID
	sc.hasActive = true
	sc.sharing = domain.DefaultSharingConfiguration()
	sc.loaded = false
	sc.mu.Unlock()

	sharing, err := sc.store.FetchRoster(ctx, pipelineID)
	if err != nil {
		return sc.fail(err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if seq != sc.openSeq {
		// A later Open won the race; this response is stale.
		return nil
	}
	sc.sharing = sharing
	sc.loaded = true
	return nil
}

// Sharing returns a snapshot of the active pipeline's sharing configuration.
func (sc *SharingController) Sharing() domain.SharingConfiguration {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	snapshot := sc.sharing
	snapshot.Users = append([]domain.UserAccess(nil), sc.sharing.Users...)
	return snapshot
}

// StatusShare returns the sharing level of the active pipeline.
func (sc *SharingController) StatusShare() domain.SharingLevel {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sharing.Level
}

// SetLevel changes the level in memory only; SaveLevel persists it.
func (sc *SharingController) SetLevel(level domain.SharingLevel) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sharing.Level = level
}

// Invite validates the email locally, then creates the invite. The roster
// gains the entry only after the store confirms; a duplicate surfaces
// domain.ErrDuplicateInvite with the roster untouched.
func (sc *SharingController) Invite(ctx context.Context, email string, permission domain.Permission) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := domain.ValidateEmail(email); err != nil {
		return sc.fail(err)
	}

	sc.mu.Lock()
	if !sc.hasActive {
		sc.mu.Unlock()
		return sc.fail(stderrors.New("no active pipeline"))
	}
	pipelineID := sc.activeID
	seq := sc.openSeq
	sc.mu.Unlock()

	invite, err := sc.store.Invite(ctx, pipelineID, email, permission)
	if err != nil {
		return sc.fail(err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if seq != sc.openSeq {
		return nil
	}
	for i, user := range sc.sharing.Users {
		if user.Email == invite.Email {
			sc.sharing.Users[i] = invite
			return nil
		}
	}
	sc.sharing.Users = append(sc.sharing.Users, invite)
	return nil
}

// Revoke removes an invite. An unknown id is reported but leaves the roster
// as it was.
func (sc *SharingController) Revoke(ctx context.Context, inviteID uuid.UUID) error {
	sc.mu.Lock()
	seq := sc.openSeq
	sc.mu.Unlock()

	if err := sc.store.Revoke(ctx, inviteID); err != nil {
		return sc.fail(err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if seq != sc.openSeq {
		return nil
	}
	for i, user := range sc.sharing.Users {
		if user.InviteID == inviteID {
			sc.sharing.Users = append(sc.sharing.Users[:i], sc.sharing.Users[i+1:]...)
			break
		}
	}
	return nil
}

// ChangePermission overwrites an invite's permission, locally only after the
// store confirms.
func (sc *SharingController) ChangePermission(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error {
	sc.mu.Lock()
	seq := sc.openSeq
	sc.mu.Unlock()

	if err := sc.store.ChangePermission(ctx, inviteID, permission); err != nil {
		return sc.fail(err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if seq != sc.openSeq {
		return nil
	}
	for i, user := range sc.sharing.Users {
		if user.InviteID == inviteID {
			sc.sharing.Users[i].Permission = permission
			break
		}
	}
	return nil
}

// SaveLevel persists the in-memory sharing level. On success the level-saved
// hook runs so the pipeline list can be refreshed.
func (sc *SharingController) SaveLevel(ctx context.Context) error {
	sc.mu.Lock()
	if !sc.hasActive {
		sc.mu.Unlock()
		return sc.fail(stderrors.New("no active pipeline"))
	}
	pipelineID := sc.activeID
	level := sc.sharing.Level
	allowCopy := sc.sharing.AllowCopy
	allowExport := sc.sharing.AllowExport
	sc.mu.Unlock()

	if err := sc.store.UpdateSharingLevel(ctx, pipelineID, level, allowCopy, allowExport); err != nil {
		return sc.fail(err)
	}

	if sc.onLevelSaved != nil {
		sc.onLevelSaved(ctx)
	}
	return nil
}

// LastError returns the human-readable message of the most recent failure.
func (sc *SharingController) LastError() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.lastErrMsg
}

// fail records a user-facing message for err and returns it unchanged.
func (sc *SharingController) fail(err error) error {
	message := genericErrorMessage
	if storeErr, ok := IsStoreError(err); ok {
		message = storeErr.Message
	} else if stderrors.Is(err, domain.ErrInvalidEmail) {
		message = "please enter a valid email address"
	}

	sc.mu.Lock()
	sc.lastErrMsg = message
	sc.mu.Unlock()
	return err
}
