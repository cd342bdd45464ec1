package handlers

import (
	"net/http"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidationError(err.Error()))
		return
	}

	token, err := h.userService.Register(c, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

func (h *UserHandler) Login(c *gin.Context) {
	var creds models.LoginRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		_ = c.Error(apperrors.NewValidationError(err.Error()))
		return
	}

	token, err := h.userService.Login(c, creds.Email, creds.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, token)
}
