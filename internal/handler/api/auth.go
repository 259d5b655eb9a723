package api

import (
	"net/http"

	reqdto "stayfinder/internal/handler/dto/request"
	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/handler/middleware"
	"stayfinder/internal/pkg/config"
	"stayfinder/internal/pkg/cookie"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/pkg/jwt"
	"stayfinder/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	tokens       *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, tokens *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		tokens:       tokens,
		cookieCfg:    cookieCfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), commands.RegisterUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.setSessionCookies(c, result.Tokens)
	c.JSON(http.StatusCreated, resdto.FromUser(result.User))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.setSessionCookies(c, result.Tokens)
	c.JSON(http.StatusOK, resdto.FromUser(result.User))
}

// Refresh rotates the token pair from the refresh-token cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("refresh token missing"), httperr.KindUnauthorized, "Refresh token required")
		return
	}

	tokens, err := h.authCommands.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.setSessionCookies(c, *tokens)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), httperr.KindUnauthorized, "User not authenticated")
		return
	}

	user, err := h.authCommands.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(user))
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, tokens commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg,
		tokens.AccessToken, tokens.RefreshToken,
		h.tokens.AccessTokenDuration(), h.tokens.RefreshTokenDuration())
}
