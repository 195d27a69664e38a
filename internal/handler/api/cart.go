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
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Add to cart
// @Description Increment the quantity of a (property, size) line by one
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartLineRequest true "Add cart line request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/add [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.AddLine(c.Request.Context(), userID, req.PropertyID, req.Size); err != nil {
		h.abortCartError(c, err, "Add to cart failed")
		return
	}

	h.respondCart(c, userID)
}

// @Summary Update cart line
// @Description Overwrite the quantity of a (property, size) line; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetCartLineRequest true "Set cart line request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/update [post]
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.SetCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetLine(c.Request.Context(), userID, req.PropertyID, req.Size, *req.Quantity); err != nil {
		h.abortCartError(c, err, "Update cart failed")
		return
	}

	h.respondCart(c, userID)
}

// @Summary Get cart
// @Description Current cart lines with the derived count and amount
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart/get [post]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	h.respondCart(c, userID)
}

func (h *CartHandler) respondCart(c *gin.Context, userID uuid.UUID) {
	view, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CartHandler) abortCartError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
