package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/utils"
)

var errStoreUnavailable = errors.New("Database not connected. Please check server configuration.")

// RequireDB pings the store before the handler runs. On failure it makes one
// transparent reconnect attempt (the database/sql pool re-dials on ping);
// if the store is still unreachable the request is answered with 503. No
// other retry exists anywhere on a business operation.
func RequireDB(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			utils.RespondError(c, http.StatusServiceUnavailable, errStoreUnavailable)
			c.Abort()
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, errStoreUnavailable)
			c.Abort()
			return
		}

		if err := sqlDB.Ping(); err != nil {
			utils.ErrorLogger.Printf("Store ping failed, retrying once: %v", err)
			if err := sqlDB.Ping(); err != nil {
				utils.RespondError(c, http.StatusServiceUnavailable, errStoreUnavailable)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
