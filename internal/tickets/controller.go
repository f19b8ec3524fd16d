package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ticketly/internal/shared/apperrors"
	"ticketly/internal/shared/utils/response"
	"ticketly/pkg/logger"
)

type Controller interface {
	CreateTicket(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTicket(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	ticket, err := ctrl.service.CreateTicket(c.Request.Context(), eventID, req)
	if err != nil {
		if apperrors.IsValidation(err) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, CreateTicketResponse{
		Message: "Ticket created successfully",
		Ticket:  *ticket,
	})
}

// bindingErrorMessage names the first missing field; anything else (malformed
// JSON, wrong types) gets the generic message.
func bindingErrorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "BuyerName":
			return "buyer name is required"
		case "BuyerEmail":
			return "buyer email is required"
		}
	}
	return "Invalid request body"
}
