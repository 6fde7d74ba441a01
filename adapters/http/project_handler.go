package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/tuanhng/me-api/internal/application/usecase/project"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	defaultProfileID    int64
	logger              logger.Logger
}

func NewProjectHandler(uc *projectUC.ListProjectsUseCase, defaultProfileID int64, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{listProjectsUseCase: uc, defaultProfileID: defaultProfileID, logger: log}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	profileID, err := queryInt64(c, "profile_id", h.defaultProfileID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("'profile_id' must be an integer", err))
		return
	}

	input := projectUC.ListProjectsInput{
		ProfileID: profileID,
		Tag:       c.Query("skill"),
	}
	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Projects)
}
