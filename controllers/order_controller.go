package controllers

import (
	"net/http"

	"pepe-order/middleware"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkout *services.CheckoutService
	sessions *services.SessionService
}

func NewOrderController(checkout *services.CheckoutService, sessions *services.SessionService) *OrderController {
	return &OrderController{checkout: checkout, sessions: sessions}
}

// Checkout godoc
// @Summary Place order
// @Description Submit the cart as an order. On success the order becomes the device's active order and the ordered items leave the cart.
// @Tags Orders
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Success 201 {object} models.Response{data=models.CheckoutResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /orders/checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	resp, err := ctrl.checkout.Checkout(c.Request.Context(), middleware.DeviceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Order created successfully", resp)
}

// GetReceipt godoc
// @Summary Order receipt
// @Description Receipt of the active order, or of the order given by uid, as reported by the server
// @Tags Orders
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param uid query string false "Order uid"
// @Success 200 {object} models.Response{data=models.ReceiptView}
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /orders/receipt [get]
func (ctrl *OrderController) GetReceipt(c *gin.Context) {
	receipt, err := ctrl.sessions.Receipt(c.Request.Context(), middleware.DeviceID(c), c.Query("uid"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Receipt retrieved successfully", receipt)
}

// CompleteOrder godoc
// @Summary Make another order
// @Description End the active order cycle; the next start goes to the table scanner
// @Tags Orders
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Success 200 {object} models.Response
// @Router /orders/complete [post]
func (ctrl *OrderController) CompleteOrder(c *gin.Context) {
	if err := ctrl.sessions.CompleteOrderCycle(c.Request.Context(), middleware.DeviceID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Order cycle completed", nil)
}
