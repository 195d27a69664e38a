package api

import (
	"errors"
	"net/http"

	reqdto "havenmart/internal/handler/dto/request"
	resdto "havenmart/internal/handler/dto/response"
	"havenmart/internal/handler/httperr"
	"havenmart/internal/handler/middleware"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Check out the whole cart with cash on delivery
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Place order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /order/place [post]
func (h *OrderHandler) Place(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Place(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		h.abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Place order via Stripe
// @Description Check out the cart and return the checkout session redirect
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Place order request"
// @Success 201 {object} commands.StripeSession
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /order/stripe [post]
func (h *OrderHandler) PlaceStripe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	session, err := h.cmds.PlaceStripe(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		h.abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// @Summary Verify Stripe payment
// @Description Confirm or abandon a stripe order after the checkout redirect
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyStripeRequest true "Verify request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /order/verifyStripe [post]
func (h *OrderHandler) VerifyStripe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.VerifyStripeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.VerifyStripe(c.Request.Context(), userID, req.OrderID, *req.Success); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Verify payment failed", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": *req.Success})
}

// @Summary List own orders
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /order/userorders [post]
func (h *OrderHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": resdto.FromOrderList(views)})
}

func (h *OrderHandler) abortCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
	case errors.Is(err, errs.ErrUnknownCartLine):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cart references an unavailable property", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
	}
}
