package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pipeshare/config"
	"pipeshare/di"
	"pipeshare/domain"
)

func registerSharingRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.POST("/pipelines/:id/invites", inviteUserHandler(container))
	v1.GET("/pipelines/:id/invites", listRosterHandler(container))
	v1.DELETE("/invites/:id", revokeInviteHandler(container))
	v1.PUT("/invites/:id/permission", changePermissionHandler(container))
	v1.PUT("/pipelines/:id/sharing-level", updateSharingLevelHandler(container))
}

func inviteUserHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pipelineID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid pipeline id", "id", c.Param("id"))
		}

		var req InviteUserRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		if req.Email == "" {
			return handleValidationError(c, "email is required", "email", req.Email)
		}

		permission, err := domain.ParsePermission(req.Permission)
		if err != nil {
			return handleValidationError(c, "invalid permission", "permission", req.Permission)
		}

		invite, err := container.InviteUserUsecase.Execute(c.Request().Context(), pipelineID, req.Email, permission)
		if err != nil {
			return handleError(c, err, "inviteUser")
		}

		return c.JSON(http.StatusCreated, InviteResponse{
			Message: "user invited",
			Invite:  invite,
		})
	}
}

func listRosterHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pipelineID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid pipeline id", "id", c.Param("id"))
		}

		sharing, err := container.ListRosterUsecase.Execute(c.Request().Context(), pipelineID)
		if err != nil {
			return handleError(c, err, "listRoster")
		}

		return c.JSON(http.StatusOK, RosterResponse{
			StatusShare: sharing.Level.String(),
			AllowCopy:   sharing.AllowCopy,
			AllowExport: sharing.AllowExport,
			Users:       sharing.Users,
		})
	}
}

func revokeInviteHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		inviteID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid invite id", "id", c.Param("id"))
		}

		if err := container.RevokeInviteUsecase.Execute(c.Request().Context(), inviteID); err != nil {
			return handleError(c, err, "revokeInvite")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "invite revoked"})
	}
}

func changePermissionHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		inviteID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid invite id", "id", c.Param("id"))
		}

		var req ChangePermissionRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		permission, err := domain.ParsePermission(req.Permission)
		if err != nil {
			return handleValidationError(c, "invalid permission", "permission", req.Permission)
		}

		if err := container.ChangePermissionUsecase.Execute(c.Request().Context(), inviteID, permission); err != nil {
			return handleError(c, err, "changePermission")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "permission updated"})
	}
}

func updateSharingLevelHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pipelineID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid pipeline id", "id", c.Param("id"))
		}

		var req UpdateSharingLevelRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		level, err := domain.ParseSharingLevel(req.StatusShare)
		if err != nil {
			return handleValidationError(c, "invalid sharing level", "status_share", req.StatusShare)
		}

		if err := container.UpdateSharingLevelUsecase.Execute(c.Request().Context(), pipelineID, level, req.AllowCopy, req.AllowExport); err != nil {
			return handleError(c, err, "updateSharingLevel")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "sharing level updated"})
	}
}
