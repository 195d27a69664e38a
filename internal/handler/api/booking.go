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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List viewing slots
// @Description Seven-day viewing schedule; today's slots start no earlier than one hour from now
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.DayScheduleResponse
// @Router /bookings/slots [get]
func (h *BookingHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": resdto.FromSchedule(h.q.Slots())})
}

// @Summary Book a viewing
// @Description Reserve a slot from the current schedule for a property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Book(c.Request.Context(), userID, req.PropertyID, req.SlotStart, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		case errors.Is(err, errs.ErrSlotNotBookable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List own bookings
// @Description List the authenticated user's viewing appointments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookingList(views)})
}

// @Summary Cancel booking
// @Description Cancel own booking (admins can cancel any)
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), actorID, middleware.IsAdmin(c), id); err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cancel booking failed", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
