package change_permission_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pipeshare/domain"
	"pipeshare/mocks"
	"pipeshare/port/invite_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

func TestChangePermissionUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	pipelineID := uuid.New()
	inviteID := uuid.New()
	owner := &domain.UserContext{UserID: uuid.New(), Email: "owner@acme.com", Domain: "acme.com"}

	invite := &invite_port.Invite{
		PipelineID: pipelineID,
		Access:     domain.UserAccess{InviteID: inviteID, Email: "alice@acme.com", Permission: domain.PermissionViewer},
	}
	pipeline := func() *domain.Pipeline {
		return &domain.Pipeline{
			ID:         pipelineID,
			Domain:     "acme.com",
			OwnerEmail: owner.Email,
			Sharing:    domain.DefaultSharingConfiguration(),
		}
	}

	t.Run("overwrites_permission_and_publishes_to_invitee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		updateInvite := mocks.NewMockUpdateInvitePermissionPort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)
		publish := mocks.NewMockEventPublisherPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(invite, nil)
		fetchPipeline.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline(), nil)
		listInvites.EXPECT().ListInvites(gomock.Any(), pipelineID).Return([]domain.UserAccess{invite.Access}, nil)
		updateInvite.EXPECT().UpdateInvitePermission(gomock.Any(), inviteID, domain.PermissionEditor).Return(nil)
		publish.EXPECT().PublishPipelineShared(gomock.Any(), "alice@acme.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p domain.Pipeline) error {
				entry, ok := p.Sharing.RosterEntry("alice@acme.com")
				require.True(t, ok)
				assert.Equal(t, domain.PermissionEditor, entry.Permission)
				return nil
			})

		usecase := NewChangePermissionUsecase(fetchInvite, updateInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		usecase.SetEventPublisher(publish)

		ctx := domain.SetUserContext(context.Background(), owner)
		assert.NoError(t, usecase.Execute(ctx, inviteID, domain.PermissionEditor))
	})

	t.Run("unknown_invite_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		updateInvite := mocks.NewMockUpdateInvitePermissionPort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(nil, domain.ErrInviteNotFound)

		usecase := NewChangePermissionUsecase(fetchInvite, updateInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		ctx := domain.SetUserContext(context.Background(), owner)
		err := usecase.Execute(ctx, inviteID, domain.PermissionEditor)

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInviteNotFound, errors.Code(err))
	})

	t.Run("invalid_permission_rejected_before_any_io", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		updateInvite := mocks.NewMockUpdateInvitePermissionPort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		usecase := NewChangePermissionUsecase(fetchInvite, updateInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		ctx := domain.SetUserContext(context.Background(), owner)
		err := usecase.Execute(ctx, inviteID, domain.Permission("superuser"))

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeValidation, errors.Code(err))
	})
}
