package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/shared/utils/response"
)

type Controller interface {
	GetHomeOverview(c *gin.Context)
	GetBookingOverview(c *gin.Context)
	GetDailyBookingStats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetHomeOverview(c *gin.Context) {
	overview, err := ctrl.service.GetHomeOverview(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load stats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Stats retrieved successfully", overview, nil)
}

func (ctrl *controller) GetBookingOverview(c *gin.Context) {
	overview, err := ctrl.service.GetBookingOverview(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load booking overview", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking overview retrieved successfully", overview, nil)
}

func (ctrl *controller) GetDailyBookingStats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	stats, err := ctrl.service.GetDailyBookingStats(c.Request.Context(), days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load daily stats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Daily stats retrieved successfully", stats, nil)
}
