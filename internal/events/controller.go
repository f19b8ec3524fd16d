package events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketly/internal/shared/apperrors"
	"ticketly/internal/shared/utils/response"
	"ticketly/pkg/logger"
)

type Controller interface {
	GetAllEvents(c *gin.Context)
	GetEvent(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	summaries, err := ctrl.service.ListEvents(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.OK(c, summaries)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	bundle, err := ctrl.service.GetEventDetail(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found")
			return
		}
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.OK(c, bundle)
}
