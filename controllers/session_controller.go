package controllers

import (
	"net/http"

	"pepe-order/middleware"
	"pepe-order/models"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// Resume godoc
// @Summary Resume target
// @Description Where the app continues on start: login, the active order's receipt, or the table scanner
// @Tags Session
// @Produce json
// @Param X-Device-ID header string false "Device id"
// @Success 200 {object} models.Response{data=models.ResumeTarget}
// @Failure 503 {object} models.ErrorResponse
// @Router /session/resume [get]
func (ctrl *SessionController) Resume(c *gin.Context) {
	target, err := ctrl.sessions.ResumeTarget(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Resume target resolved", target)
}

// ScanTable godoc
// @Summary Scan table QR
// @Description Start a table session from a scanned QR payload. The cart is emptied.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param request body models.ScanTableRequest true "QR payload"
// @Success 200 {object} models.Response{data=models.TableContext}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /tables/scan [post]
func (ctrl *SessionController) ScanTable(c *gin.Context) {
	var req models.ScanTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	table, err := ctrl.sessions.StartTableSession(c.Request.Context(), middleware.DeviceID(c), req.Payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Table session started", table)
}
