package cancellation

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfare/internal/shared/middleware"
	"wayfare/internal/shared/utils/response"
)

type Controller interface {
	ListUserCancellations(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListUserCancellations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	cancellations, totalCount, err := ctrl.service.GetUserCancellations(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load cancellations", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cancellations retrieved successfully", gin.H{
		"cancellations": cancellations,
		"total_count":   totalCount,
		"page":          page,
		"limit":         limit,
	}, nil)
}
