package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/shared/middleware"
	"wayfare/internal/shared/utils/response"
)

type Controller interface {
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	CreateProfile(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func profileStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProfileExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (ctrl *controller) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	user, err := ctrl.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", profileStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User retrieved successfully", user, nil)
}

func (ctrl *controller) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	user, err := ctrl.service.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", profileStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User updated successfully", user, nil)
}

func (ctrl *controller) CreateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	profile, err := ctrl.service.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", profileStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Profile created successfully", profile, nil)
}

func (ctrl *controller) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	profile, err := ctrl.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", profileStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile retrieved successfully", profile, nil)
}

func (ctrl *controller) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Authentication required", nil, nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	profile, err := ctrl.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", profileStatus(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile updated successfully", profile, nil)
}
