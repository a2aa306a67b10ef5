package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pipeshare/config"
	"pipeshare/di"
	"pipeshare/domain"
)

func registerPipelineRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.POST("/pipelines", createPipelineHandler(container))
	v1.GET("/pipelines", listPipelinesHandler(container))
	v1.PUT("/pipelines/:id", updatePipelineHandler(container))
	v1.DELETE("/pipelines/:id", deletePipelineHandler(container))
}

func createPipelineHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CreatePipelineRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		if req.Name == "" {
			return handleValidationError(c, "pipeline name is required", "name", req.Name)
		}

		pipeline, err := container.CreatePipelineUsecase.Execute(c.Request().Context(), req.Name, req.Description)
		if err != nil {
			return handleError(c, err, "createPipeline")
		}

		return c.JSON(http.StatusCreated, pipeline)
	}
}

func listPipelinesHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := container.ListPipelinesUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "listPipelines")
		}

		return c.JSON(http.StatusOK, list)
	}
}

func updatePipelineHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pipelineID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid pipeline id", "id", c.Param("id"))
		}

		var req UpdatePipelineRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		updates := domain.PipelineUpdates{
			Name:        req.Name,
			Description: req.Description,
			SalesTarget: req.SalesTarget,
			Stages:      req.Stages,
		}

		if err := container.UpdatePipelineUsecase.Execute(c.Request().Context(), pipelineID, updates); err != nil {
			return handleError(c, err, "updatePipeline")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "pipeline updated"})
	}
}

func deletePipelineHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pipelineID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid pipeline id", "id", c.Param("id"))
		}

		if err := container.DeletePipelineUsecase.Execute(c.Request().Context(), pipelineID); err != nil {
			return handleError(c, err, "deletePipeline")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "pipeline deleted"})
	}
}
