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

// AuthMiddleware verifies the bearer token and loads the caller from the
// users table. The token carries only the subject id; role and profile are
// re-read here on every request, so a role change is effective immediately.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
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
			utils.RespondError(c, http.StatusUnauthorized, errors.New("User not found"))
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user placed in the context by
// AuthMiddleware or EmployeeAuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
