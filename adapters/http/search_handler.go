package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/tuanhng/me-api/internal/application/usecase/search"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type SearchHandler struct {
	searchUseCase    *searchUC.SearchUseCase
	defaultProfileID int64
	logger           logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, defaultProfileID int64, log logger.Logger) *SearchHandler {
	return &SearchHandler{searchUseCase: uc, defaultProfileID: defaultProfileID, logger: log}
}

func (h *SearchHandler) Search(c *gin.Context) {
	profileID, err := queryInt64(c, "profile_id", h.defaultProfileID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("'profile_id' must be an integer", err))
		return
	}

	input := searchUC.SearchInput{
		ProfileID: profileID,
		Query:     c.Query("q"),
	}
	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}
