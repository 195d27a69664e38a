package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"havenmart/internal/domain/ticket"
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

const uploadDir = "uploads"

type TicketHandler struct {
	cmds commands.TicketCommands
	q    queries.TicketQueries
}

func NewTicketHandler(cmds commands.TicketCommands, q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{cmds: cmds, q: q}
}

// @Summary Create ticket
// @Description Open a support ticket; accepts multipart form data with an optional image
// @Tags tickets
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param category formData string true "Category"
// @Param product formData string true "Product"
// @Param subject formData string true "Subject (max 80 chars)"
// @Param inquiry formData string true "Inquiry (max 500 chars)"
// @Param image formData file false "PNG or JPEG up to 5 MB"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /tickets/create [post]
func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	imageRef, err := h.storeImage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), commands.CreateTicketParams{
		RequesterID: userID,
		Category:    req.Category,
		Product:     req.Product,
		Subject:     req.Subject,
		Inquiry:     req.Inquiry,
		ImageRef:    imageRef,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create ticket failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(view))
}

// storeImage validates and persists the optional upload, returning the
// stored reference. A missing file is not an error.
func (h *TicketHandler) storeImage(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	if err := ticket.ValidateImage(file.Header.Get("Content-Type"), file.Size); err != nil {
		return nil, err
	}

	ref := filepath.Join(uploadDir, fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// @Summary Get ticket
// @Description Get a ticket with its replies; requesters only see their own
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
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

	view, err := h.q.GetByID(c.Request.Context(), actorID, middleware.IsAdmin(c), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, errs.ErrTicketForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary List own tickets
// @Description List the authenticated user's tickets, newest first
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TicketListItemResponse
// @Failure 401 {object} map[string]string
// @Router /tickets/user [get]
func (h *TicketHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": resdto.FromTicketList(items)})
}

// @Summary List all tickets
// @Description Admin view over every ticket in the system
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TicketListItemResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tickets/all [get]
func (h *TicketHandler) ListAll(c *gin.Context) {
	items, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": resdto.FromTicketList(items)})
}

// @Summary Update ticket
// @Description Edit own ticket; rejected while the 24h edit cooldown is active
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body reqdto.UpdateTicketRequest true "Update ticket request"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /tickets/update/{id} [put]
func (h *TicketHandler) Update(c *gin.Context) {
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

	var req reqdto.UpdateTicketRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actorID, id, commands.UpdateTicketParams{
		Subject:  req.Subject,
		Inquiry:  req.Inquiry,
		ImageRef: req.ImageRef,
	})
	if err != nil {
		var cooldown *commands.CooldownError
		switch {
		case errors.As(err, &cooldown):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Edit cooldown active", resdto.NewCooldownResponse(cooldown.NextAllowedAt))
		case errors.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, errs.ErrTicketForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update ticket failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Delete ticket
// @Description Delete own ticket (admins can delete any)
// @Tags tickets
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/delete/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
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

	if err := h.cmds.Delete(c.Request.Context(), actorID, middleware.IsAdmin(c), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, errs.ErrTicketForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete ticket failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reply to ticket
// @Description Admin reply; the first reply marks the ticket resolved
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplyTicketRequest true "Reply request"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/reply [post]
func (h *TicketHandler) Reply(c *gin.Context) {
	var req reqdto.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}

	view, err := h.cmds.Reply(c.Request.Context(), ticketID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reply", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reply failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}
