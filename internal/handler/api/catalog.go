package api

import (
	"errors"
	"net/http"

	reqdto "havenmart/internal/handler/dto/request"
	resdto "havenmart/internal/handler/dto/response"
	"havenmart/internal/handler/httperr"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List properties
// @Description List every property in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Failure 500 {object} map[string]string
// @Router /product/list [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": resdto.FromPropertyList(views)})
}

// @Summary Get property
// @Description Get a single property by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /product/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary Add property
// @Description Admin-only catalog entry creation
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddPropertyRequest true "Add property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /product/add [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var req reqdto.AddPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.AddProperty(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid property data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Add property failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}
