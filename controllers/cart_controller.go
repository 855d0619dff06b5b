package controllers

import (
	"net/http"
	"strconv"

	"pepe-order/middleware"
	"pepe-order/models"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart godoc
// @Summary Cart
// @Description Cart items with estimated totals
// @Tags Cart
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	respondOK(c, http.StatusOK, "Cart retrieved successfully", ctrl.carts.View(middleware.DeviceID(c)))
}

// AddItem godoc
// @Summary Add to cart
// @Description Add a customized menu item. An identical configuration already in the cart has its quantity increased.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param request body models.AddCartItemRequest true "Item"
// @Success 201 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	cart, err := ctrl.carts.AddItem(c.Request.Context(), middleware.DeviceID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Item added to cart", cart)
}

// UpdateQuantity godoc
// @Summary Change quantity
// @Description Set the quantity of a cart item; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param index path int true "Item position"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{index} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid item position"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Cart updated", ctrl.carts.UpdateQuantity(middleware.DeviceID(c), index, *req.Quantity))
}

// RemoveItem godoc
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Param index path int true "Item position"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid item position"})
		return
	}

	respondOK(c, http.StatusOK, "Cart updated", ctrl.carts.RemoveItem(middleware.DeviceID(c), index))
}

// ClearCart godoc
// @Summary Empty cart
// @Tags Cart
// @Produce json
// @Param X-Device-ID header string true "Device id"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	respondOK(c, http.StatusOK, "Cart cleared", ctrl.carts.Clear(middleware.DeviceID(c)))
}
