package controllers

import (
	"net/http"

	"pepe-order/middleware"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	carts *services.CartService
}

func NewMenuController(carts *services.CartService) *MenuController {
	return &MenuController{carts: carts}
}

// GetMenu godoc
// @Summary Outlet menu
// @Description Menu of the outlet the device is seated at, grouped by category
// @Tags Menu
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param search query string false "Keyword on name, description or category"
// @Success 200 {object} models.Response{data=models.MenuView}
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	menu, err := ctrl.carts.Menu(c.Request.Context(), middleware.DeviceID(c), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Menu retrieved successfully", menu)
}
