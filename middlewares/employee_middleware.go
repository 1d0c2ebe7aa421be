package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/utils"
)

// EmployeeAuthMiddleware gates the employee surface. Same token mechanism as
// AuthMiddleware, but the freshly loaded user must hold the washer or admin
// role; the check runs on every request, never from a cached claim.
func EmployeeAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Not authorized, no token"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil || claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Not authorized, token failed"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Employee not found"))
			c.Abort()
			return
		}

		if !user.IsEmployee() {
			utils.RespondError(c, http.StatusForbidden, errors.New("Access denied. Employee role required."))
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}
