package travel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfare/internal/shared/utils/response"
)

type Controller interface {
	CreateTravelOption(c *gin.Context)
	GetTravelOption(c *gin.Context)
	UpdateTravelOption(c *gin.Context)
	DeleteTravelOption(c *gin.Context)
	ListTravelOptions(c *gin.Context)
	GetUpcomingTravelOptions(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTravelOption(c *gin.Context) {
	var req CreateTravelOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	option, err := ctrl.service.CreateTravelOption(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Travel option created successfully", option, nil)
}

func (ctrl *controller) GetTravelOption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("travelId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid travel option ID", nil, err.Error())
		return
	}

	option, err := ctrl.service.GetTravelOptionByID(c.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Travel option retrieved successfully", option, nil)
}

func (ctrl *controller) UpdateTravelOption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("travelId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid travel option ID", nil, err.Error())
		return
	}

	var req UpdateTravelOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	option, err := ctrl.service.UpdateTravelOption(c.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Travel option updated successfully", option, nil)
}

func (ctrl *controller) DeleteTravelOption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("travelId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid travel option ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteTravelOption(c.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrHasBookings):
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Travel option deleted successfully", nil, nil)
}

func (ctrl *controller) ListTravelOptions(c *gin.Context) {
	var query TravelListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := ctrl.service.FindAvailable(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Travel options retrieved successfully", result, nil)
}

func (ctrl *controller) GetUpcomingTravelOptions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	result, err := ctrl.service.GetUpcoming(c.Request.Context(), limit)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Upcoming travel options retrieved successfully", result, nil)
}
