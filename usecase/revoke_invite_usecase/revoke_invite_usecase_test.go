package revoke_invite_usecase

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

func TestRevokeInviteUsecase_Execute(t *testing.T) {
	logger.InitLogger()

	pipelineID := uuid.New()
	inviteID := uuid.New()
	owner := &domain.UserContext{UserID: uuid.New(), Email: "owner@acme.com", Domain: "acme.com"}

	pipeline := &domain.Pipeline{
		ID:         pipelineID,
		Domain:     "acme.com",
		OwnerEmail: owner.Email,
		Sharing:    domain.DefaultSharingConfiguration(),
	}
	invite := &invite_port.Invite{
		PipelineID: pipelineID,
		Access:     domain.UserAccess{InviteID: inviteID, Email: "alice@acme.com", Permission: domain.PermissionViewer},
	}

	t.Run("revoke_existing_invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		deleteInvite := mocks.NewMockDeleteInvitePort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(invite, nil)
		fetchPipeline.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline, nil)
		listInvites.EXPECT().ListInvites(gomock.Any(), pipelineID).Return([]domain.UserAccess{invite.Access}, nil)
		deleteInvite.EXPECT().DeleteInvite(gomock.Any(), inviteID).Return(nil)

		usecase := NewRevokeInviteUsecase(fetchInvite, deleteInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		ctx := domain.SetUserContext(context.Background(), owner)
		assert.NoError(t, usecase.Execute(ctx, inviteID))
	})

	t.Run("unknown_invite_is_reported_not_found_without_delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		deleteInvite := mocks.NewMockDeleteInvitePort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(nil, domain.ErrInviteNotFound)

		usecase := NewRevokeInviteUsecase(fetchInvite, deleteInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		ctx := domain.SetUserContext(context.Background(), owner)
		err := usecase.Execute(ctx, inviteID)

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInviteNotFound, errors.Code(err))
		assert.ErrorIs(t, err, domain.ErrInviteNotFound)
	})

	t.Run("non_admin_cannot_revoke", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		deleteInvite := mocks.NewMockDeleteInvitePort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(invite, nil)
		fetchPipeline.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline, nil)
		listInvites.EXPECT().ListInvites(gomock.Any(), pipelineID).Return([]domain.UserAccess{invite.Access}, nil)

		usecase := NewRevokeInviteUsecase(fetchInvite, deleteInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		viewer := &domain.UserContext{UserID: uuid.New(), Email: "alice@acme.com", Domain: "acme.com"}
		ctx := domain.SetUserContext(context.Background(), viewer)
		err := usecase.Execute(ctx, inviteID)

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeForbidden, errors.Code(err))
	})

	t.Run("concurrent_delete_still_reports_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		fetchInvite := mocks.NewMockFetchInvitePort(ctrl)
		deleteInvite := mocks.NewMockDeleteInvitePort(ctrl)
		fetchPipeline := mocks.NewMockFetchPipelinePort(ctrl)
		listInvites := mocks.NewMockListInvitesPort(ctrl)

		fetchInvite.EXPECT().FetchInviteByID(gomock.Any(), inviteID).Return(invite, nil)
		fetchPipeline.EXPECT().FetchPipelineByID(gomock.Any(), pipelineID).Return(pipeline, nil)
		listInvites.EXPECT().ListInvites(gomock.Any(), pipelineID).Return([]domain.UserAccess{invite.Access}, nil)
		deleteInvite.EXPECT().DeleteInvite(gomock.Any(), inviteID).Return(domain.ErrInviteNotFound)

		usecase := NewRevokeInviteUsecase(fetchInvite, deleteInvite, access_guard.NewAccessGuard(fetchPipeline, listInvites))
		ctx := domain.SetUserContext(context.Background(), owner)
		err := usecase.Execute(ctx, inviteID)

		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInviteNotFound, errors.Code(err))
	})
}
