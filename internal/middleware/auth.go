package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/config"
	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

const currentVetKey = "currentVeterinarian"

// AuthMiddleware creates a middleware for bearer-token authentication.
// The token must resolve to an existing, active veterinarian; inactive
// accounts are rejected even when the token itself verifies.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		var vet models.Veterinarian
		if err := db.Where("email = ?", claims.Email).First(&vet).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.Unauthorized(c, "Could not validate credentials")
			} else {
				utils.InternalServerError(c, "Database error: "+err.Error())
			}
			c.Abort()
			return
		}

		if !vet.IsActive {
			utils.Unauthorized(c, "Inactive account")
			c.Abort()
			return
		}

		c.Set(currentVetKey, &vet)
		c.Next()
	}
}

// CurrentVeterinarian returns the authenticated veterinarian from the context.
func CurrentVeterinarian(c *gin.Context) (*models.Veterinarian, bool) {
	value, exists := c.Get(currentVetKey)
	if !exists {
		return nil, false
	}
	vet, ok := value.(*models.Veterinarian)
	return vet, ok
}
