package access_guard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pipeshare/domain"
	"pipeshare/mocks"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

func TestAccessGuard_Load(t *testing.T) {
	logger.InitLogger()

	pipelineID := uuid.New()
	ownerEmail := "owner@acme.com"

	basePipeline := func(level domain.SharingLevel) *domain.Pipeline {
		return &domain.Pipeline{
			ID:         pipelineID,
			Name:       "Q3 Enterprise",
			Domain:     "acme.com",
			OwnerEmail: ownerEmail,
			Sharing: domain.SharingConfiguration{
				Level:       level,
				AllowCopy:   true,
				AllowExport: true,
			},
		}
	}

	tests := []struct {
		name      string
		caller    *domain.UserContext
		level     domain.SharingLevel
		roster    []domain.UserAccess
		want      domain.Permission
		wantErr   bool
		sentinel  error
		fetchFail error
	}{
		{
			name:   "owner_gets_admin",
			caller: &domain.UserContext{UserID: uuid.New(), Email: ownerEmail, Domain: "acme.com"},
			level:  domain.SharingLevelPrivate,
			want:   domain.PermissionAdmin,
		},
		{
			name:   "roster_entry_gets_granted_permission",
			caller: &domain.UserContext{UserID: uuid.New(), Email: "editor@acme.com", Domain: "acme.com"},
			level:  domain.SharingLevelPrivate,
			roster: []domain.UserAccess{{InviteID: uuid.New(), Email: "editor@acme.com", Permission: domain.PermissionEditor}},
			want:   domain.PermissionEditor,
		},
		{
			name:   "team_level_grants_viewer_inside_domain",
			caller: &domain.UserContext{UserID: uuid.New(), Email: "someone@acme.com", Domain: "acme.com"},
			level:  domain.SharingLevelTeam,
			want:   domain.PermissionViewer,
		},
		{
			name:   "team_level_grants_nothing_outside_domain",
			caller: &domain.UserContext{UserID: uuid.New(), Email: "intruder@other.com", Domain: "other.com"},
			level:  domain.SharingLevelTeam,
			want:   domain.PermissionNone,
		},
		{
			name:   "public_level_grants_viewer_outside_domain",
			caller: &domain.UserContext{UserID: uuid.New(), Email: "guest@other.com", Domain: "other.com"},
			level:  domain.SharingLevelPublic,
			want:   domain.PermissionViewer,
		},
		{
			name:   "roster_entry_survives_cross_domain",
			caller: &domain.UserContext{UserID: uuid.New(), Email: "partner@other.com", Domain: "other.com"},
			level:  domain.SharingLevelPrivate,
			roster: []domain.UserAccess{{InviteID: uuid.New(), Email: "partner@other.com", Permission: domain.PermissionViewer}},
			want:   domain.PermissionViewer,
		},
		{
			name:      "missing_pipeline_propagates_sentinel",
			caller:    &domain.UserContext{UserID: uuid.New(), Email: "x@acme.com", Domain: "acme.com"},
			level:     domain.SharingLevelPrivate,
			wantErr:   true,
			sentinel:  domain.ErrPipelineNotFound,
			fetchFail: domain.ErrPipelineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetchPort := mocks.NewMockFetchPipelinePort(ctrl)
			listPort := mocks.NewMockListInvitesPort(ctrl)

			if tt.fetchFail != nil {
				fetchPort.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(nil, tt.fetchFail)
			} else {
				fetchPort.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(basePipeline(tt.level), nil)
				listPort.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(tt.roster, nil)
			}

			guard := NewAccessGuard(fetchPort, listPort)
			_, effective, err := guard.Load(context.Background(), pipelineID, tt.caller)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.sentinel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, effective)
		})
	}
}

func TestAccessGuard_Require(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineID := uuid.New()
	pipeline := &domain.Pipeline{
		ID:         pipelineID,
		Domain:     "acme.com",
		OwnerEmail: "owner@acme.com",
		Sharing:    domain.SharingConfiguration{Level: domain.SharingLevelTeam},
	}

	fetchPort := mocks.NewMockFetchPipelinePort(ctrl)
	listPort := mocks.NewMockListInvitesPort(ctrl)
	fetchPort.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline, nil)
	listPort.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(nil, nil)

	guard := NewAccessGuard(fetchPort, listPort)
	caller := &domain.UserContext{UserID: uuid.New(), Email: "viewer@acme.com", Domain: "acme.com"}

	// Team level yields viewer, which is not enough for admin operations.
	_, err := guard.Require(context.Background(), pipelineID, caller, domain.PermissionAdmin)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeForbidden, errors.Code(err))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
