package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "havenmart/internal/handler/dto/request"
	resdto "havenmart/internal/handler/dto/response"
	"havenmart/internal/handler/httperr"
	"havenmart/internal/handler/middleware"
	"havenmart/internal/pkg/config"
	"havenmart/internal/pkg/cookie"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/pkg/jwt"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	userQuery queries.UserQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, userQuery queries.UserQueries, cookieCfg config.CookieConfig, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		userQuery: userQuery,
		cookieCfg: cookieCfg,
		tokenTTL:  jwtService.TokenDuration(),
	}
}

// @Summary Register
// @Description Create a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.tokenTTL)
	c.JSON(http.StatusCreated, resdto.LoginResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

// @Summary User login
// @Description Login with email and password; an optional guest cart is merged into the account cart
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials, req.GuestCartLines())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.tokenTTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.userQuery.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
