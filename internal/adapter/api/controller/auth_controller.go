package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// AuthController maneja las peticiones de autenticación
type AuthController struct {
	userRepo     user.Repository
	resellerRepo reseller.Repository
	jwtService   *auth.JWTService
	logger       logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(userRepo user.Repository, resellerRepo reseller.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:     userRepo,
		resellerRepo: resellerRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login autentica un usuario y devuelve un token JWT
// @Summary Iniciar sesión
// @Description Verifica las credenciales del usuario y devuelve un token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
			return
		}
		c.logger.Error("error al buscar usuario para login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al autenticar", err.Error()))
		return
	}

	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "usuario inactivo", ""))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
		return
	}

	// Un revendedor lleva el ID de su perfil en las claims
	var resellerID string
	if u.Role == user.RoleReseller {
		res, err := c.resellerRepo.FindByUserID(ctx, u.ID)
		if err != nil && !errors.Is(err, reseller.ErrNotFound) {
			c.logger.Error("error al resolver perfil de revendedor", "user_id", u.ID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al autenticar", err.Error()))
			return
		}
		if res != nil {
			resellerID = res.ID
		}
	}

	token, err := c.jwtService.GenerateToken(u, resellerID)
	if err != nil {
		c.logger.Error("error al generar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar token", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("error al registrar último acceso", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	})
}

// RefreshToken renueva un token JWT
// @Summary Renovar token
// @Description Renueva un token JWT existente
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a renovar"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	newToken, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTokenResponse{AccessToken: newToken})
}

// Me devuelve los datos del usuario autenticado
// @Summary Usuario actual
// @Description Devuelve los datos del usuario autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(auth.ContextUserID)

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		respondError(ctx, err, "error al buscar usuario")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
