package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileUC "github.com/tuanhng/me-api/internal/application/usecase/profile"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type ProfileHandler struct {
	getProfileUseCase    *profileUC.GetProfileUseCase
	createProfileUseCase *profileUC.CreateProfileUseCase
	updateProfileUseCase *profileUC.UpdateProfileUseCase
	defaultProfileID     int64
	logger               logger.Logger
}

func NewProfileHandler(
	getUC *profileUC.GetProfileUseCase,
	createUC *profileUC.CreateProfileUseCase,
	updateUC *profileUC.UpdateProfileUseCase,
	defaultProfileID int64,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getUC,
		createProfileUseCase: createUC,
		updateProfileUseCase: updateUC,
		defaultProfileID:     defaultProfileID,
		logger:               log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := queryInt64(c, "id", h.defaultProfileID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("'id' must be an integer", err))
		return
	}

	output, err := h.getProfileUseCase.Execute(c.Request.Context(), profileUC.GetProfileInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Representation)
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile create", err))
		return
	}

	bundle, err := req.ToBundle()
	if err != nil {
		c.Error(apperror.NewInvalidInput(err.Error(), err))
		return
	}

	output, err := h.createProfileUseCase.Execute(c.Request.Context(), profileUC.CreateProfileInput{Bundle: bundle})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Representation)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("profile id must be an integer", err))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{ID: id, Update: req.ToDomainUpdate()}
	output, err := h.updateProfileUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Representation)
}

func queryInt64(c *gin.Context, key string, fallback int64) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
