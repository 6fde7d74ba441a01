package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/tuanhng/me-api/internal/application/usecase/skill"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type SkillHandler struct {
	listSkillsUseCase *skillUC.ListSkillsUseCase
	defaultProfileID  int64
	logger            logger.Logger
}

func NewSkillHandler(uc *skillUC.ListSkillsUseCase, defaultProfileID int64, log logger.Logger) *SkillHandler {
	return &SkillHandler{listSkillsUseCase: uc, defaultProfileID: defaultProfileID, logger: log}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	profileID, err := queryInt64(c, "profile_id", h.defaultProfileID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("'profile_id' must be an integer", err))
		return
	}

	output, err := h.listSkillsUseCase.Execute(c.Request.Context(), skillUC.ListSkillsInput{ProfileID: profileID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Skills)
}
