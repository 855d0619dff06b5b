package controllers

import (
	"net/http"

	"pepe-order/middleware"
	"pepe-order/models"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new customer
// @Description Create a customer account on the ordering API and log this device in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device id"
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), middleware.DeviceID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Registration successful", resp)
}

// Login godoc
// @Summary Customer login
// @Description Login with email and password; the token is kept for this device
// @Tags Authentication
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device id"
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), middleware.DeviceID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

// Logout godoc
// @Summary Logout
// @Description Forget the stored session, table and cart of this device
// @Tags Authentication
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.auth.Logout(c.Request.Context(), middleware.DeviceID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Logged out", nil)
}
