// Package di wires the application graph: drivers into gateways, gateways
// into usecases.
package di

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"pipeshare/driver/pipeline_db"
	"pipeshare/driver/pubsub"
	"pipeshare/gateway/invite_gateway"
	"pipeshare/gateway/pipeline_gateway"
	"pipeshare/gateway/share_event_gateway"
	"pipeshare/gateway/sharing_gateway"
	"pipeshare/realtime"
	"pipeshare/usecase/access_guard"
	"pipeshare/usecase/change_permission_usecase"
	"pipeshare/usecase/invite_user_usecase"
	"pipeshare/usecase/list_roster_usecase"
	"pipeshare/usecase/pipeline_usecase"
	"pipeshare/usecase/revoke_invite_usecase"
	"pipeshare/usecase/update_sharing_level_usecase"
	"pipeshare/utils/logger"
)

type ApplicationComponents struct {
	CreatePipelineUsecase     *pipeline_usecase.CreatePipelineUsecase
	ListPipelinesUsecase      *pipeline_usecase.ListPipelinesUsecase
	UpdatePipelineUsecase     *pipeline_usecase.UpdatePipelineUsecase
	DeletePipelineUsecase     *pipeline_usecase.DeletePipelineUsecase
	InviteUserUsecase         *invite_user_usecase.InviteUserUsecase
	RevokeInviteUsecase       *revoke_invite_usecase.RevokeInviteUsecase
	ChangePermissionUsecase   *change_permission_usecase.ChangePermissionUsecase
	ListRosterUsecase         *list_roster_usecase.ListRosterUsecase
	UpdateSharingLevelUsecase *update_sharing_level_usecase.UpdateSharingLevelUsecase

	PipelineDBRepository *pipeline_db.PipelineDBRepository
	Registry             *realtime.Registry
	Hub                  *realtime.Hub
}

func NewApplicationComponents(pool *pgxpool.Pool, redisDriver *pubsub.RedisDriver, subscriberBuffer int) *ApplicationComponents {
	pipelineGateway := pipeline_gateway.NewPipelineGateway(pool)
	inviteGateway := invite_gateway.NewInviteGateway(pool)
	sharingGateway := sharing_gateway.NewSharingGateway(pool)
	shareEventGateway := share_event_gateway.NewShareEventGateway(redisDriver, logger.Logger)

	guard := access_guard.NewAccessGuard(pipelineGateway, inviteGateway)

	createPipelineUsecase := pipeline_usecase.NewCreatePipelineUsecase(pipelineGateway)
	listPipelinesUsecase := pipeline_usecase.NewListPipelinesUsecase(pipelineGateway)
	updatePipelineUsecase := pipeline_usecase.NewUpdatePipelineUsecase(pipelineGateway, guard)
	deletePipelineUsecase := pipeline_usecase.NewDeletePipelineUsecase(pipelineGateway, guard)

	inviteUserUsecase := invite_user_usecase.NewInviteUserUsecase(inviteGateway, guard)
	inviteUserUsecase.SetEventPublisher(shareEventGateway)

	revokeInviteUsecase := revoke_invite_usecase.NewRevokeInviteUsecase(inviteGateway, inviteGateway, guard)

	changePermissionUsecase := change_permission_usecase.NewChangePermissionUsecase(inviteGateway, inviteGateway, guard)
	changePermissionUsecase.SetEventPublisher(shareEventGateway)

	listRosterUsecase := list_roster_usecase.NewListRosterUsecase(guard)

	updateSharingLevelUsecase := update_sharing_level_usecase.NewUpdateSharingLevelUsecase(sharingGateway, guard)
	updateSharingLevelUsecase.SetEventPublisher(shareEventGateway)

	registry := realtime.NewRegistry(subscriberBuffer)
	hub := realtime.NewHub(registry, redisDriver)

	return &ApplicationComponents{
		CreatePipelineUsecase:     createPipelineUsecase,
		ListPipelinesUsecase:      listPipelinesUsecase,
		UpdatePipelineUsecase:     updatePipelineUsecase,
		DeletePipelineUsecase:     deletePipelineUsecase,
		InviteUserUsecase:         inviteUserUsecase,
		RevokeInviteUsecase:       revokeInviteUsecase,
		ChangePermissionUsecase:   changePermissionUsecase,
		ListRosterUsecase:         listRosterUsecase,
		UpdateSharingLevelUsecase: updateSharingLevelUsecase,
		PipelineDBRepository:      pipeline_db.NewPipelineDBRepository(pool),
		Registry:                  registry,
		Hub:                       hub,
	}
}
