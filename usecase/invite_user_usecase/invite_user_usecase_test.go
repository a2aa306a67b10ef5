package invite_user_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pipeshare/domain"
	"pipeshare/mocks"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

func TestInviteUserUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	pipelineID := uuid.New()
	ownerEmail := "owner@acme.com"
	owner := &domain.UserContext{UserID: uuid.New(), Email: ownerEmail, Domain: "acme.com"}

	pipeline := func() *domain.Pipeline {
		return &domain.Pipeline{
			ID:         pipelineID,
			Domain:     "acme.com",
			OwnerEmail: ownerEmail,
			Sharing:    domain.DefaultSharingConfiguration(),
		}
	}

	tests := []struct {
		name       string
		caller     *domain.UserContext
		email      string
		permission domain.Permission
		mockSetup  func(*mocks.MockCreateInvitePort, *mocks.MockFetchPipelinePort, *mocks.MockListInvitesPort, *mocks.MockEventPublisherPort)
		wantCode   errors.ErrorCode
		sentinel   error
	}{
		{
			name:       "owner_invites_viewer",
			caller:     owner,
			email:      "alice@acme.com",
			permission: domain.PermissionViewer,
			mockSetup: func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {
				fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline(), nil)
				list.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(nil, nil)
				create.EXPECT().CreateInvite(gomock.Any(), pipelineID, "alice@acme.com", domain.PermissionViewer).
					Return(domain.UserAccess{InviteID: uuid.New(), Email: "alice@acme.com", Permission: domain.PermissionViewer}, nil)
				publish.EXPECT().PublishPipelineShared(gomock.Any(), "alice@acme.com", gomock.Any()).Return(nil)
			},
		},
		{
			name:       "email_is_normalized_before_store_call",
			caller:     owner,
			email:      "  Bob@Acme.COM ",
			permission: domain.PermissionEditor,
			mockSetup: func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {
				fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline(), nil)
				list.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(nil, nil)
				create.EXPECT().CreateInvite(gomock.Any(), pipelineID, "bob@acme.com", domain.PermissionEditor).
					Return(domain.UserAccess{InviteID: uuid.New(), Email: "bob@acme.com", Permission: domain.PermissionEditor}, nil)
				publish.EXPECT().PublishPipelineShared(gomock.Any(), "bob@acme.com", gomock.Any()).Return(nil)
			},
		},
		{
			name:       "invalid_email_never_reaches_store",
			caller:     owner,
			email:      "not-an-email",
			permission: domain.PermissionViewer,
			mockSetup:  func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {},
			wantCode:   errors.ErrCodeValidation,
		},
		{
			name:       "duplicate_invite_surfaces_conflict",
			caller:     owner,
			email:      "alice@acme.com",
			permission: domain.PermissionViewer,
			mockSetup: func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {
				fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline(), nil)
				list.EXPECT().ListInvites(gomock.Any(), pipelineID).Return([]domain.UserAccess{
					{InviteID: uuid.New(), Email: "alice@acme.com", Permission: domain.PermissionViewer},
				}, nil)
				create.EXPECT().CreateInvite(gomock.Any(), pipelineID, "alice@acme.com", domain.PermissionViewer).
					Return(domain.UserAccess{}, domain.ErrDuplicateInvite)
			},
			wantCode: errors.ErrCodeDuplicateInvite,
			sentinel: domain.ErrDuplicateInvite,
		},
		{
			name:       "non_admin_caller_is_forbidden",
			caller:     &domain.UserContext{UserID: uuid.New(), Email: "viewer@acme.com", Domain: "acme.com"},
			email:      "alice@acme.com",
			permission: domain.PermissionViewer,
			mockSetup: func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {
				shared := pipeline()
				shared.Sharing.Level = domain.SharingLevelTeam
				fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(shared, nil)
				list.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(nil, nil)
			},
			wantCode: errors.ErrCodeForbidden,
			sentinel: domain.ErrForbidden,
		},
		{
			name:       "missing_pipeline_is_not_found",
			caller:     owner,
			email:      "alice@acme.com",
			permission: domain.PermissionViewer,
			mockSetup: func(create *mocks.MockCreateInvitePort, fetch *mocks.MockFetchPipelinePort, list *mocks.MockListInvitesPort, publish *mocks.MockEventPublisherPort) {
				fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(nil, domain.ErrPipelineNotFound)
			},
			wantCode: errors.ErrCodePipelineNotFound,
			sentinel: domain.ErrPipelineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			create := mocks.NewMockCreateInvitePort(ctrl)
			fetch := mocks.NewMockFetchPipelinePort(ctrl)
			list := mocks.NewMockListInvitesPort(ctrl)
			publish := mocks.NewMockEventPublisherPort(ctrl)
			tt.mockSetup(create, fetch, list, publish)

			usecase := NewInviteUserUsecase(create, access_guard.NewAccessGuard(fetch, list))
			usecase.SetEventPublisher(publish)

			ctx := domain.SetUserContext(context.Background(), tt.caller)
			access, err := usecase.Execute(ctx, pipelineID, tt.email, tt.permission)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.Code(err))
				if tt.sentinel != nil {
					assert.ErrorIs(t, err, tt.sentinel)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, access.InviteID)
		})
	}
}

func TestInviteUserUsecase_PublishFailureDoesNotFailInvite(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineID := uuid.New()
	owner := &domain.UserContext{UserID: uuid.New(), Email: "owner@acme.com", Domain: "acme.com"}

	create := mocks.NewMockCreateInvitePort(ctrl)
	fetch := mocks.NewMockFetchPipelinePort(ctrl)
	list := mocks.NewMockListInvitesPort(ctrl)
	publish := mocks.NewMockEventPublisherPort(ctrl)

	fetch.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(&domain.Pipeline{
		ID:         pipelineID,
		Domain:     "acme.com",
		OwnerEmail: owner.Email,
		Sharing:    domain.DefaultSharingConfiguration(),
	}, nil)
	list.EXPECT().ListInvites(gomock.Any(), pipelineID).Return(nil, nil)
	create.EXPECT().CreateInvite(gomock.Any(), pipelineID, "alice@acme.com", domain.PermissionViewer).
		Return(domain.UserAccess{InviteID: uuid.New(), Email: "alice@acme.com", Permission: domain.PermissionViewer}, nil)
	publish.EXPECT().PublishPipelineShared(gomock.Any(), "alice@acme.com", gomock.Any()).
		Return(assert.AnError)

	usecase := NewInviteUserUsecase(create, access_guard.NewAccessGuard(fetch, list))
	usecase.SetEventPublisher(publish)

	ctx := domain.SetUserContext(context.Background(), owner)
	_, err := usecase.Execute(ctx, pipelineID, "alice@acme.com", domain.PermissionViewer)
	assert.NoError(t, err)
}
