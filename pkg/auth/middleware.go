package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Claves bajo las que el middleware deja las claims en el contexto
const (
	ContextUserID     = "user_id"
	ContextRole       = "role"
	ContextResellerID = "reseller_id"
)

// Middleware valida el token Bearer y deja las claims en el contexto
func Middleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "token no informado"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "token inválido"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "token inválido", "details": err.Error()})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextResellerID, claims.ResellerID)

		c.Next()
	}
}

// RequireRole corta la petición si el rol del contexto no es uno de los
// permitidos
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": http.StatusForbidden, "message": "no tiene permisos para esta operación"})
	}
}
