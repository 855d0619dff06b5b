package controllers

import (
	"errors"
	"net/http"

	"pepe-order/models"

	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to the HTTP status the client sees.
func statusFor(appErr *models.AppError) int {
	switch appErr.Kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindNetwork:
		return http.StatusServiceUnavailable
	case models.KindApplication:
		return http.StatusBadGateway
	case models.KindState:
		if errors.Is(appErr, models.ErrLoginRequired) {
			return http.StatusUnauthorized
		}
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	appErr := models.AsAppError(err)
	_ = c.Error(err)

	resp := models.ErrorResponse{
		Success:   false,
		Message:   appErr.Message,
		Retryable: appErr.Retryable(),
	}
	if appErr.Err != nil && gin.Mode() != gin.ReleaseMode {
		resp.Error = appErr.Err.Error()
	}
	c.JSON(statusFor(appErr), resp)
}

func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
